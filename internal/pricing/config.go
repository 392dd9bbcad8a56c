package pricing

// Config is the engine's static configuration table: service profiles, surge
// schedules, location modifiers and downtown zones. It is constructed once
// and treated as immutable afterwards; the engine never writes to it.
type Config struct {
	Profiles      map[string]ServiceProfile
	WeekdaySurge  SurgeSchedule
	WeekendSurge  SurgeSchedule
	Modifiers     LocationModifiers
	DowntownZones []BoundingBox
}

// DefaultConfig returns the bundled pricing table.
//
// The surge schedules are deliberately sparse: only the commute and weekend
// nightlife half-hours carry entries, everything else falls back to the 1.0
// default. The surge reason classifier runs on broad bands independently of
// this table, so a late-night request can read "Late night premium" while its
// multiplier stays at 1.0.
func DefaultConfig() *Config {
	return &Config{
		Profiles: map[string]ServiceProfile{
			ServicePremium: {
				Name:              ServicePremium,
				BaseFare:          2.55,
				PerMileRate:       1.15,
				PerMinuteRate:     0.38,
				BookingFee:        2.75,
				SafetyFee:         0.75,
				MinimumFare:       8.55,
				AirportPickupFee:  4.25,
				AirportDropoffFee: 2.75,
				CBDSurcharge:      2.50,
				LongRideMiles:     25,
				LongRideFee:       8.00,
				MaxSurge:          3.0,
			},
			ServiceBudget: {
				Name:              ServiceBudget,
				BaseFare:          1.25,
				PerMileRate:       0.95,
				PerMinuteRate:     0.28,
				BookingFee:        2.05,
				SafetyFee:         0.65,
				MinimumFare:       7.25,
				AirportPickupFee:  3.75,
				AirportDropoffFee: 2.25,
				CBDSurcharge:      2.00,
				LongRideMiles:     30,
				LongRideFee:       5.50,
				MaxSurge:          2.8,
			},
			ServiceTaxi: {
				Name:              ServiceTaxi,
				BaseFare:          3.50,
				PerMileRate:       2.70,
				PerMinuteRate:     0.45,
				BookingFee:        0,
				SafetyFee:         0.30,
				MinimumFare:       10.00,
				AirportPickupFee:  5.00,
				AirportDropoffFee: 0,
				CBDSurcharge:      3.00,
				LongRideMiles:     20,
				LongRideFee:       10.00,
				// Metered taxis are rate-regulated; cap well below the networks.
				MaxSurge: 1.5,
			},
		},
		WeekdaySurge: SurgeSchedule{
			"07:00-07:30": 1.25,
			"07:30-08:00": 1.40,
			"08:00-08:30": 1.50,
			"08:30-09:00": 1.45,
			"09:00-09:30": 1.20,
			"17:00-17:30": 1.35,
			"17:30-18:00": 1.50,
			"18:00-18:30": 1.50,
			"18:30-19:00": 1.30,
		},
		WeekendSurge: SurgeSchedule{
			"10:00-10:30": 1.15,
			"22:00-22:30": 1.20,
			"22:30-23:00": 1.30,
			"23:00-23:30": 1.35,
			"23:30-00:00": 1.40,
			"00:00-00:30": 1.35,
			"00:30-01:00": 1.25,
		},
		Modifiers: LocationModifiers{
			AirportLateNight:  1.25,
			AirportPeak:       1.35,
			DowntownBusiness:  0.5,
			DowntownNightlife: 1.2,
		},
		DowntownZones: []BoundingBox{
			{Name: "Manhattan Core", MinLat: 40.700, MaxLat: 40.770, MinLng: -74.020, MaxLng: -73.960},
			{Name: "Chicago Loop", MinLat: 41.860, MaxLat: 41.900, MinLng: -87.650, MaxLng: -87.600},
			{Name: "Downtown Los Angeles", MinLat: 34.030, MaxLat: 34.062, MinLng: -118.270, MaxLng: -118.230},
			{Name: "San Francisco Financial District", MinLat: 37.770, MaxLat: 37.800, MinLng: -122.420, MaxLng: -122.385},
		},
	}
}
