package airports

// Airport is a geofenced airport record.
type Airport struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Locator resolves a coordinate pair to the airport covering it, or nil when
// no airport matches. Implementations must be pure functions of the
// coordinates: no network, no mutable state, same answer for the same input.
type Locator interface {
	Locate(lat, lng float64) *Airport
}

// DefaultAirports returns the bundled airport geofence table.
func DefaultAirports() []Airport {
	return []Airport{
		{Code: "JFK", Name: "John F. Kennedy International", Latitude: 40.6413, Longitude: -73.7781},
		{Code: "LGA", Name: "LaGuardia", Latitude: 40.7769, Longitude: -73.8740},
		{Code: "EWR", Name: "Newark Liberty International", Latitude: 40.6895, Longitude: -74.1745},
		{Code: "ORD", Name: "O'Hare International", Latitude: 41.9742, Longitude: -87.9073},
		{Code: "MDW", Name: "Chicago Midway International", Latitude: 41.7868, Longitude: -87.7522},
		{Code: "LAX", Name: "Los Angeles International", Latitude: 33.9416, Longitude: -118.4085},
		{Code: "SFO", Name: "San Francisco International", Latitude: 37.6213, Longitude: -122.3790},
	}
}
