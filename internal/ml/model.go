package ml

import (
	"errors"
	"time"
)

// Model is the trained artifact: the regression forest together with the
// feature-scaling transform it was fit with. The two are persisted and
// loaded as one unit; either half alone is an invalid state.
type Model struct {
	Version     string    `json:"version"`
	TrainedAt   time.Time `json:"trained_at"`
	SampleCount int       `json:"sample_count"`
	Scaler      *Scaler   `json:"scaler"`
	Forest      *Forest   `json:"forest"`
}

// Validate rejects artifacts missing either the scaler or the forest.
func (m *Model) Validate() error {
	if m == nil {
		return errors.New("model: nil")
	}
	if m.Scaler == nil || m.Forest == nil {
		return errors.New("model: scaler and forest must be persisted together")
	}
	if len(m.Scaler.Mean) != NumFeatures || len(m.Scaler.Std) != NumFeatures {
		return errors.New("model: scaler width does not match feature schema")
	}
	if len(m.Forest.Trees) == 0 {
		return errors.New("model: forest has no trees")
	}
	return nil
}

// Predict scales the raw feature vector and runs the forest. Predictions
// are clamped to zero since an ensemble of means can go slightly negative
// on out-of-range inputs.
func (m *Model) Predict(features []float64) float64 {
	pred := m.Forest.Predict(m.Scaler.Transform(features))
	if pred < 0 {
		return 0
	}
	return pred
}
