package dto

// Request body for /predict-eta. Pointer fields distinguish absent values,
// which get the service defaults, from explicit zeroes, which are validated.
type PredictETARequest struct {
	Distance     *float64 `json:"distance"`
	VehicleType  string   `json:"vehicleType"`
	IsElectric   bool     `json:"isElectric"`
	HourOfDay    *int     `json:"hourOfDay"`
	DayOfWeek    *int     `json:"dayOfWeek"`
	CurrentSpeed *float64 `json:"currentSpeed"`
}

type ETAResponse struct {
	EstimatedDurationMinutes float64 `json:"estimated_duration_minutes"`
	EstimatedDurationHours   float64 `json:"estimated_duration_hours"`
	ConfidenceInterval       float64 `json:"confidence_interval"`
	MinDuration              float64 `json:"min_duration"`
	MaxDuration              float64 `json:"max_duration"`
	CurrentSpeed             float64 `json:"current_speed"`
	RecommendedSpeed         float64 `json:"recommended_speed"`
}
