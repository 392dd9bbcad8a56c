package pricing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/richxcame/fare-compare/internal/airports"
)

// ErrUnsupportedService is returned when no pricing profile matches the
// requested service identifier. It indicates a caller or configuration bug,
// not a runtime condition, and is the engine's only failure mode.
var ErrUnsupportedService = errors.New("unsupported service")

var fareCalculations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fare_calculations_total",
		Help: "Total number of fare calculations by service and surge reason",
	},
	[]string{"service", "surge_reason"},
)

// Engine is the fare and surge pricing engine: a pure computation over its
// inputs, the static configuration table and the airport locator. It holds no
// per-request state and is safe for unbounded concurrent use.
type Engine struct {
	cfg     *Config
	locator airports.Locator
}

// NewEngine creates an engine over an immutable configuration table and a
// pure airport locator.
func NewEngine(cfg *Config, locator airports.Locator) *Engine {
	return &Engine{cfg: cfg, locator: locator}
}

// Services returns the configured service identifiers.
func (e *Engine) Services() []string {
	names := make([]string, 0, len(e.cfg.Profiles))
	for name := range e.cfg.Profiles {
		names = append(names, name)
	}
	return names
}

// CalculateFare prices one trip for one service. Zero or negative distance,
// duration and unknown coordinates are valid inputs that resolve through the
// minimum-fare floor; only an unknown service identifier fails.
func (e *Engine) CalculateFare(input PricingInput) (*PricingResult, error) {
	profile, ok := e.cfg.Profiles[input.Service]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedService, input.Service)
	}

	at := input.RequestedAt
	if at.IsZero() {
		at = time.Now()
	}

	pickupAirport := e.locator.Locate(input.Pickup.Latitude, input.Pickup.Longitude)
	dropoffAirport := e.locator.Locate(input.Destination.Latitude, input.Destination.Longitude)
	miles := kmToMiles(input.DistanceKm)

	b := PricingBreakdown{
		BaseFare:    round2(profile.BaseFare),
		DistanceFee: round2(miles * profile.PerMileRate),
		TimeFee:     round2(input.DurationMinutes * profile.PerMinuteRate),
		BookingFee:  round2(profile.BookingFee),
		SafetyFee:   round2(profile.SafetyFee),
	}
	b.AirportFees = airportFees(profile, pickupAirport, dropoffAirport)
	b.LocationSurcharge = e.downtownSurcharge(profile, input.Pickup, input.Destination, at)
	b.LongRideFee = longRideFee(profile, miles)
	b.Subtotal = round2(b.BaseFare + b.DistanceFee + b.TimeFee + b.BookingFee +
		b.SafetyFee + b.AirportFees + b.LocationSurcharge + b.LongRideFee)

	reason, delta := e.classifySurge(pickupAirport != nil || dropoffAirport != nil, at)
	b.SurgeMultiplier = math.Min(e.baseSurge(at)+delta, profile.MaxSurge)
	b.SurgeFee = round2(b.Subtotal * (b.SurgeMultiplier - 1))

	// Surge and traffic are parallel additive adjustments on the pre-surge
	// subtotal, never compounded on each other.
	b.TrafficMultiplier = trafficMultiplier(input.ObservedSeconds, input.ExpectedSeconds)
	b.TrafficFee = round2(b.Subtotal * (b.TrafficMultiplier - 1))

	b.FinalFare = round2(b.Subtotal + b.SurgeFee + b.TrafficFee)
	if b.FinalFare < profile.MinimumFare {
		b.FinalFare = profile.MinimumFare
	}
	b.AppliedMinFare = b.FinalFare == profile.MinimumFare
	b.Confidence = confidence(input.DistanceKm, b.SurgeMultiplier, b.TrafficMultiplier, at.Hour())

	res := &PricingResult{
		Service:     input.Service,
		Price:       b.FinalFare,
		Breakdown:   b,
		SurgeReason: reason,
	}
	if input.IncludeDebug {
		res.Debug = debugPayload(input, at, miles, pickupAirport, dropoffAirport, e.baseSurge(at), delta)
	}

	fareCalculations.WithLabelValues(input.Service, reason).Inc()
	return res, nil
}

// confidence starts at 0.9 and accumulates independent penalties, floored at
// 0.5. Long trips, high surge, heavy traffic and small-hour requests all
// widen the real-world variance of the point estimate.
func confidence(distanceKm, surgeMultiplier, trafficMultiplier float64, hour int) float64 {
	c := 0.9

	switch {
	case distanceKm > 50:
		c -= 0.15
	case distanceKm > 25:
		c -= 0.10
	}
	if surgeMultiplier > 2.0 {
		c -= 0.10
	}
	// Heavy and severe bands only; the 1.1 moderate step is routine noise.
	if trafficMultiplier >= 1.25 {
		c -= 0.10
	}
	if hour >= 1 && hour <= 5 {
		c -= 0.10
	}

	return round2(math.Max(0.5, c))
}

func debugPayload(input PricingInput, at time.Time, miles float64, pickup, dropoff *airports.Airport, baseSurge, delta float64) map[string]interface{} {
	d := map[string]interface{}{
		"slot_key":    slotKey(at),
		"weekend":     isWeekend(at),
		"base_surge":  baseSurge,
		"surge_delta": round2(delta),
		"miles":       round2(miles),
	}
	if pickup != nil {
		d["pickup_airport"] = pickup.Code
	}
	if dropoff != nil {
		d["dropoff_airport"] = dropoff.Code
	}
	if input.ObservedSeconds != nil && input.ExpectedSeconds != nil && *input.ExpectedSeconds > 0 {
		d["traffic_ratio"] = round2(*input.ObservedSeconds / *input.ExpectedSeconds)
	}
	return d
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
