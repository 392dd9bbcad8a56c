package airports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestH3Locator_Locate(t *testing.T) {
	locator, err := NewH3Locator(DefaultAirports())
	require.NoError(t, err)

	for _, a := range DefaultAirports() {
		got := locator.Locate(a.Latitude, a.Longitude)
		require.NotNil(t, got, a.Code)
		assert.Equal(t, a.Code, got.Code)
	}

	assert.Nil(t, locator.Locate(40.7300, -73.9900))
	assert.Nil(t, locator.Locate(0, 0))
}

// Both Locator implementations must agree: the pricing engine treats them as
// interchangeable geofence backends.
func TestH3Locator_AgreesWithStaticLocator(t *testing.T) {
	h3Locator, err := NewH3Locator(DefaultAirports())
	require.NoError(t, err)
	static := NewStaticLocator(DefaultAirports(), DefaultTolerance)

	points := []struct {
		lat, lng float64
	}{
		{40.6413, -73.7781}, // JFK
		{40.6450, -73.7820}, // inside JFK footprint
		{40.7769, -73.8740}, // LGA
		{33.9416, -118.4085}, // LAX
		{40.7300, -73.9900}, // Manhattan, no airport
		{0, 0},
	}

	for _, p := range points {
		fromH3 := h3Locator.Locate(p.lat, p.lng)
		fromStatic := static.Locate(p.lat, p.lng)

		if fromStatic == nil {
			assert.Nil(t, fromH3)
			continue
		}
		require.NotNil(t, fromH3)
		assert.Equal(t, fromStatic.Code, fromH3.Code)
	}
}
