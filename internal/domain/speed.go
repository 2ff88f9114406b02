package domain

// Summary statistics over a vehicle's recent trip speeds, plus a
// qualitative advisory. Derived from up to the 50 most recent trips.
type SpeedReport struct {
	VehicleID     int64
	AvgSpeed      float64
	MaxSpeed      float64
	MinSpeed      float64
	SpeedVariance float64
	SpeedTrend    string
	Feedback      string
	TripsAnalyzed int
}
