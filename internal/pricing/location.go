package pricing

import (
	"time"

	"github.com/richxcame/fare-compare/internal/airports"
)

const milesPerKm = 0.621371

func kmToMiles(km float64) float64 {
	return km * milesPerKm
}

// airportFee resolves the fee for one endpoint: the per-airport override when
// the profile defines one, the generic fee otherwise.
func airportFee(p ServiceProfile, a *airports.Airport, generic float64) float64 {
	if a == nil {
		return 0
	}
	if override, ok := p.AirportFeeOverrides[a.Code]; ok {
		return override
	}
	return generic
}

// airportFees sums pickup-side and dropoff-side fees independently; both
// apply on an airport-to-airport trip.
func airportFees(p ServiceProfile, pickup, dropoff *airports.Airport) float64 {
	return round2(airportFee(p, pickup, p.AirportPickupFee) + airportFee(p, dropoff, p.AirportDropoffFee))
}

// isDowntown reports whether the coordinates fall inside any metro core box.
func (e *Engine) isDowntown(c Coordinates) bool {
	for _, zone := range e.cfg.DowntownZones {
		if zone.Contains(c.Latitude, c.Longitude) {
			return true
		}
	}
	return false
}

// downtownSurcharge applies the CBD surcharge at most once per trip, scaled
// by time of day: business hours halve it, nightlife hours raise it.
func (e *Engine) downtownSurcharge(p ServiceProfile, pickup, destination Coordinates, t time.Time) float64 {
	if !e.isDowntown(pickup) && !e.isDowntown(destination) {
		return 0
	}

	factor := 1.0
	h := t.Hour()
	switch {
	case h >= 9 && h < 17:
		factor = e.cfg.Modifiers.DowntownBusiness
	case h >= 20 || h < 2:
		factor = e.cfg.Modifiers.DowntownNightlife
	}
	return round2(p.CBDSurcharge * factor)
}

// longRideFee is a flat fee once the trip length reaches the profile's mile
// threshold.
func longRideFee(p ServiceProfile, miles float64) float64 {
	if p.LongRideMiles > 0 && miles >= p.LongRideMiles {
		return round2(p.LongRideFee)
	}
	return 0
}

// HasAirportSurcharge reports whether either endpoint resolves to an airport.
func (e *Engine) HasAirportSurcharge(pickup, destination Coordinates) bool {
	return e.locator.Locate(pickup.Latitude, pickup.Longitude) != nil ||
		e.locator.Locate(destination.Latitude, destination.Longitude) != nil
}
