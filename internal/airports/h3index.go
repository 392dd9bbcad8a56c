package airports

import (
	"github.com/uber/h3-go/v4"
)

const (
	// Resolution 7 hexagons average ~1.2 km across, comparable to the
	// bounding tolerance of StaticLocator.
	h3Resolution = 7
	h3CoverRings = 2
)

// H3Locator answers airport lookups from a precomputed H3 cell cover. It is
// interchangeable with StaticLocator: both implement Locator and agree on the
// bundled airport table.
type H3Locator struct {
	cells map[h3.Cell]Airport
}

// NewH3Locator builds the cell cover once; lookups afterwards are a single
// cell hash per call and allocate nothing but the returned record.
func NewH3Locator(airports []Airport) (*H3Locator, error) {
	cells := make(map[h3.Cell]Airport)
	for _, a := range airports {
		center, err := h3.LatLngToCell(h3.LatLng{Lat: a.Latitude, Lng: a.Longitude}, h3Resolution)
		if err != nil {
			return nil, err
		}
		disk, err := h3.GridDisk(center, h3CoverRings)
		if err != nil {
			return nil, err
		}
		for _, cell := range disk {
			if _, taken := cells[cell]; !taken {
				cells[cell] = a
			}
		}
	}
	return &H3Locator{cells: cells}, nil
}

// Locate returns the airport whose cover contains the coordinate's cell, or nil.
func (l *H3Locator) Locate(lat, lng float64) *Airport {
	cell, err := h3.LatLngToCell(h3.LatLng{Lat: lat, Lng: lng}, h3Resolution)
	if err != nil {
		return nil
	}
	if a, ok := l.cells[cell]; ok {
		return &a
	}
	return nil
}
