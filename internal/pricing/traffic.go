package pricing

// Traffic ratio band boundaries (observed / expected free-flow duration).
const (
	trafficLightMax    = 1.1
	trafficModerateMax = 1.3
	trafficHeavyMax    = 1.6
)

// trafficMultiplier maps the congestion ratio onto a step function. Missing
// or unusable data means no adjustment.
func trafficMultiplier(observed, expected *float64) float64 {
	if observed == nil || expected == nil || *expected <= 0 {
		return 1.0
	}

	ratio := *observed / *expected
	switch {
	case ratio <= trafficLightMax:
		return 1.0
	case ratio <= trafficModerateMax:
		return 1.1
	case ratio <= trafficHeavyMax:
		return 1.25
	default:
		return 1.4
	}
}
