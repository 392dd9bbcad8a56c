package pricing

import (
	"fmt"
	"time"
)

// slotKey returns the half-hour slot covering t, formatted "HH:MM-HH:MM".
// The last slot of the day wraps to "23:30-00:00".
func slotKey(t time.Time) string {
	h := t.Hour()
	if t.Minute() < 30 {
		return fmt.Sprintf("%02d:00-%02d:30", h, h)
	}
	return fmt.Sprintf("%02d:30-%02d:00", h, (h+1)%24)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func isLateNight(t time.Time) bool {
	h := t.Hour()
	return h >= 23 || h <= 5
}

func isPeakCommute(t time.Time) bool {
	if isWeekend(t) {
		return false
	}
	h := t.Hour()
	return (h >= 7 && h <= 9) || (h >= 17 && h <= 19)
}

// baseSurge looks the slot key up in the weekday or weekend schedule.
// Exact-match only; an uncovered slot is 1.0.
func (e *Engine) baseSurge(t time.Time) float64 {
	table := e.cfg.WeekdaySurge
	if isWeekend(t) {
		table = e.cfg.WeekendSurge
	}
	if m, ok := table[slotKey(t)]; ok {
		return m
	}
	return 1.0
}

// classifySurge picks the demand reason and the additive airport delta.
// It runs on broad time bands, independent of the slot schedule: the reason
// and the multiplier can legitimately disagree.
func (e *Engine) classifySurge(airportRoute bool, t time.Time) (reason string, delta float64) {
	late := isLateNight(t)
	peak := isPeakCommute(t)

	switch {
	case airportRoute && late:
		return ReasonLateNightAirport, e.cfg.Modifiers.AirportLateNight - 1
	case airportRoute && peak:
		return ReasonPeakAirport, e.cfg.Modifiers.AirportPeak - 1
	case airportRoute:
		return ReasonAirport, 0
	case late:
		return ReasonLateNight, 0
	case peak:
		return ReasonRushHour, 0
	}
	return ReasonStandard, 0
}

// CalculateSurge exposes the surge classifier standalone. The returned
// multiplier is uncapped; the per-service cap is applied at fare time, where
// a profile is in scope. A zero timestamp means "now".
func (e *Engine) CalculateSurge(pickup, destination Coordinates, at time.Time) SurgeResult {
	if at.IsZero() {
		at = time.Now()
	}
	airportRoute := e.locator.Locate(pickup.Latitude, pickup.Longitude) != nil ||
		e.locator.Locate(destination.Latitude, destination.Longitude) != nil

	reason, delta := e.classifySurge(airportRoute, at)
	return SurgeResult{Multiplier: e.baseSurge(at) + delta, Reason: reason}
}
