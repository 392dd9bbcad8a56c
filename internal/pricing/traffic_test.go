package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func TestTrafficMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		observed *float64
		expected *float64
		want     float64
	}{
		{"no data at all", nil, nil, 1.0},
		{"missing observed", nil, fptr(600), 1.0},
		{"missing expected", fptr(600), nil, 1.0},
		{"zero expected treated as missing", fptr(600), fptr(0), 1.0},
		{"free flow", fptr(600), fptr(600), 1.0},
		{"light boundary ratio 1.1", fptr(660), fptr(600), 1.0},
		{"moderate ratio 1.2", fptr(720), fptr(600), 1.1},
		{"moderate boundary ratio 1.3", fptr(780), fptr(600), 1.1},
		{"heavy ratio 1.5", fptr(900), fptr(600), 1.25},
		{"heavy boundary ratio 1.6", fptr(960), fptr(600), 1.25},
		{"severe ratio 1.7", fptr(1020), fptr(600), 1.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, trafficMultiplier(tt.observed, tt.expected), 1e-9)
		})
	}
}
