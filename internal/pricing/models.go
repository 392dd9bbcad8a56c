package pricing

import "time"

// Service identifiers for the bundled profiles.
const (
	ServicePremium = "premium"
	ServiceBudget  = "budget"
	ServiceTaxi    = "taxi"
)

// Surge reason strings surfaced to the comparison UI.
const (
	ReasonLateNightAirport = "Late night airport premium"
	ReasonPeakAirport      = "Peak hours airport demand"
	ReasonAirport          = "Airport route"
	ReasonLateNight        = "Late night premium"
	ReasonRushHour         = "Rush hour demand"
	ReasonStandard         = "Standard pricing"
)

// ServiceProfile holds the pricing table for one service. All currency
// amounts are in the service's base unit. Profiles are loaded once at
// construction and never mutated.
type ServiceProfile struct {
	Name          string  `json:"name"`
	BaseFare      float64 `json:"base_fare"`
	PerMileRate   float64 `json:"per_mile_rate"`
	PerMinuteRate float64 `json:"per_minute_rate"`
	BookingFee    float64 `json:"booking_fee"`
	SafetyFee     float64 `json:"safety_fee"`
	MinimumFare   float64 `json:"minimum_fare"`

	AirportPickupFee  float64 `json:"airport_pickup_fee"`
	AirportDropoffFee float64 `json:"airport_dropoff_fee"`
	// AirportFeeOverrides replaces the generic airport fee for specific
	// airport codes. No bundled profile populates it; it is an extension
	// point, consulted before the generic fee.
	AirportFeeOverrides map[string]float64 `json:"airport_fee_overrides,omitempty"`

	CBDSurcharge  float64 `json:"cbd_surcharge"`
	LongRideMiles float64 `json:"long_ride_miles"`
	LongRideFee   float64 `json:"long_ride_fee"`
	MaxSurge      float64 `json:"max_surge"`
}

// SurgeSchedule maps half-hour slot keys ("08:00-08:30") to multipliers.
// Lookup is by exact slot key only; a slot with no entry means 1.0.
type SurgeSchedule map[string]float64

// LocationModifiers are the airport additive factors and downtown
// time-of-day factors on the CBD surcharge.
type LocationModifiers struct {
	AirportLateNight  float64 `json:"airport_late_night"`
	AirportPeak       float64 `json:"airport_peak"`
	DowntownBusiness  float64 `json:"downtown_business"`
	DowntownNightlife float64 `json:"downtown_nightlife"`
}

// BoundingBox is a lat/lng rectangle around a recognized metro core.
type BoundingBox struct {
	Name   string  `json:"name"`
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// Contains reports whether the coordinates fall inside the box.
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// Coordinates is a WGS84 coordinate pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PricingInput is one fare request. RequestedAt zero means "now";
// ObservedSeconds/ExpectedSeconds are the optional traffic signal.
type PricingInput struct {
	Service         string      `json:"service"`
	Pickup          Coordinates `json:"pickup"`
	Destination     Coordinates `json:"destination"`
	DistanceKm      float64     `json:"distance_km"`
	DurationMinutes float64     `json:"duration_minutes"`
	RequestedAt     time.Time   `json:"requested_at,omitempty"`
	ObservedSeconds *float64    `json:"observed_seconds,omitempty"`
	ExpectedSeconds *float64    `json:"expected_seconds,omitempty"`
	IncludeDebug    bool        `json:"include_debug,omitempty"`
}

// PricingBreakdown is the fully itemized result. Every currency value is
// rounded to two decimals at the point it is produced.
type PricingBreakdown struct {
	BaseFare          float64 `json:"base_fare"`
	DistanceFee       float64 `json:"distance_fee"`
	TimeFee           float64 `json:"time_fee"`
	BookingFee        float64 `json:"booking_fee"`
	SafetyFee         float64 `json:"safety_fee"`
	AirportFees       float64 `json:"airport_fees"`
	LocationSurcharge float64 `json:"location_surcharge"`
	LongRideFee       float64 `json:"long_ride_fee"`
	Subtotal          float64 `json:"subtotal"`
	SurgeMultiplier   float64 `json:"surge_multiplier"`
	SurgeFee          float64 `json:"surge_fee"`
	TrafficMultiplier float64 `json:"traffic_multiplier"`
	TrafficFee        float64 `json:"traffic_fee"`
	FinalFare         float64 `json:"final_fare"`
	AppliedMinFare    bool    `json:"applied_min_fare"`
	Confidence        float64 `json:"confidence"`
}

// PricingResult is the priced, explained, confidence-scored answer for one
// service. Identical input (including RequestedAt) yields identical output.
type PricingResult struct {
	Service     string                 `json:"service"`
	Price       float64                `json:"price"`
	Breakdown   PricingBreakdown       `json:"breakdown"`
	SurgeReason string                 `json:"surge_reason"`
	Debug       map[string]interface{} `json:"debug,omitempty"`
}

// SurgeResult is the standalone surge classification: a multiplier before the
// per-service cap, and a human-readable demand reason.
type SurgeResult struct {
	Multiplier float64 `json:"multiplier"`
	Reason     string  `json:"reason"`
}
