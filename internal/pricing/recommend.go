package pricing

import "time"

// BestTimeRecommendations returns advisory copy for the given moment, chosen
// by the same broad time bands the surge reason classifier uses. It is a
// function of the timestamp only; a zero value means "now". The tips never
// feed into a priced result.
func (e *Engine) BestTimeRecommendations(at time.Time) []string {
	if at.IsZero() {
		at = time.Now()
	}

	h := at.Hour()
	switch {
	case h >= 14 && h <= 16:
		return []string{
			"Current time (2-4 PM) typically has lower prices",
			"Good window to book before the evening rush begins",
		}
	case h >= 7 && h <= 9:
		return []string{
			"Morning rush hour - expect surge pricing until 9:30 AM",
			"Prices usually drop after 10 AM",
			"Consider waiting 30-60 minutes if your trip is flexible",
		}
	case h >= 17 && h <= 19:
		return []string{
			"Evening rush hour - expect surge pricing until 7:30 PM",
			"Prices usually drop after 8 PM",
			"Off-peak windows tomorrow: 10 AM - 4 PM",
		}
	case h >= 20 || h <= 5:
		return []string{
			"Late night rides can carry premiums, especially on airport routes",
			"Cheapest window is usually 6 AM - 7 AM or mid-afternoon",
		}
	}
	return []string{
		"Prices are near their daily baseline right now",
		"Avoid 7-9 AM and 5-7 PM weekday rushes for the best rates",
	}
}
