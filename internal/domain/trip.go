package domain

import "time"

// Represents a single completed trip fetched from historical storage.
// Records are immutable once fetched and are used only as training input
// for the ETA model.
type TripRecord struct {
	Distance    float64
	Duration    float64
	StartTime   time.Time
	EndTime     time.Time
	VehicleType string
	IsElectric  bool
	Speed       float64
}

// ActualDurationMinutes returns the observed trip duration derived from the
// start/end timestamps, which is the regression target during training.
func (t TripRecord) ActualDurationMinutes() float64 {
	return t.EndTime.Sub(t.StartTime).Minutes()
}
