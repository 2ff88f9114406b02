package domain

// Result of a single ETA prediction.
// The confidence interval is a fixed 15% band around the point estimate,
// a heuristic carried over from the historical service rather than a
// statistically derived interval.
type ETAPrediction struct {
	EstimatedDurationMinutes float64
	EstimatedDurationHours   float64
	ConfidenceInterval       float64
	MinDuration              float64
	MaxDuration              float64
	CurrentSpeed             float64
	RecommendedSpeed         float64
}
