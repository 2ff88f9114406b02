package dto

type SpeedReportResponse struct {
	VehicleID     int64   `json:"vehicle_id"`
	AvgSpeed      float64 `json:"avg_speed"`
	MaxSpeed      float64 `json:"max_speed"`
	MinSpeed      float64 `json:"min_speed"`
	SpeedVariance float64 `json:"speed_variance"`
	SpeedTrend    string  `json:"speed_trend"`
	Feedback      string  `json:"feedback"`
	TripsAnalyzed int     `json:"total_trips_analyzed"`
}
