package airports

import "math"

// DefaultTolerance is the bounding tolerance in degrees (~2 km at the
// latitudes of the bundled airports).
const DefaultTolerance = 0.02

// StaticLocator answers airport lookups with a tolerance-based bounding check
// against a fixed table.
type StaticLocator struct {
	airports  []Airport
	tolerance float64
}

// NewStaticLocator creates a locator over the given table. A zero tolerance
// falls back to DefaultTolerance.
func NewStaticLocator(airports []Airport, tolerance float64) *StaticLocator {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &StaticLocator{airports: airports, tolerance: tolerance}
}

// Locate returns the first airport whose bounding square contains the
// coordinates, or nil.
func (s *StaticLocator) Locate(lat, lng float64) *Airport {
	for i := range s.airports {
		a := s.airports[i]
		if math.Abs(lat-a.Latitude) <= s.tolerance && math.Abs(lng-a.Longitude) <= s.tolerance {
			return &a
		}
	}
	return nil
}
