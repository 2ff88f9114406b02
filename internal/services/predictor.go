package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"fleet-ai-service/internal/domain"
	"fleet-ai-service/internal/ml"

	"go.uber.org/zap"
)

// Heuristic band around the point estimate; not a statistically derived
// interval.
const confidenceBand = 0.15

// Anything that can produce a freshly fitted model. Satisfied by Trainer.
type ModelFitter interface {
	Fit(ctx context.Context) (*ml.Model, error)
}

// Predictor serves ETA predictions against the currently loaded model.
// The model is immutable once loaded; retraining fits a new one and swaps
// it in as a single pointer replacement, so in-flight predictions never
// observe a half-updated model. Retrains are serialized.
type Predictor struct {
	current atomic.Pointer[ml.Model]

	retrainMu sync.Mutex
	fitter    ModelFitter
	log       *zap.Logger
}

func NewPredictor(fitter ModelFitter, log *zap.Logger) *Predictor {
	return &Predictor{fitter: fitter, log: log}
}

// SetModel installs a model, typically the one loaded or trained at startup.
func (p *Predictor) SetModel(m *ml.Model) {
	p.current.Store(m)
}

// Model returns the currently installed model, or nil before startup
// installs one.
func (p *Predictor) Model() *ml.Model {
	return p.current.Load()
}

// Predict encodes the request, runs the model and derives the confidence
// band and recommended speed. Distance and vehicle type are required; all
// other fields follow the encoder's permissive defaulting.
func (p *Predictor) Predict(req TripFeatures) (*domain.ETAPrediction, error) {
	if req.Distance <= 0 {
		predictionsRejected.Inc()
		return nil, fmt.Errorf("predict eta: distance must be positive, got %v: %w", req.Distance, ErrInvalidInput)
	}
	if strings.TrimSpace(req.VehicleType) == "" {
		predictionsRejected.Inc()
		return nil, fmt.Errorf("predict eta: vehicle type is required: %w", ErrInvalidInput)
	}

	model := p.current.Load()
	if model == nil {
		return nil, fmt.Errorf("predict eta: %w", ErrModelNotReady)
	}

	duration := model.Predict(EncodeFeatures(req))
	band := duration * confidenceBand

	// Guard the divide: a duration that rounds to zero would otherwise
	// recommend an infinite speed.
	recommended := 0.0
	if round2(duration) > 0 {
		recommended = round2(req.Distance / (duration / 60))
	}

	predictionsServed.Inc()
	return &domain.ETAPrediction{
		EstimatedDurationMinutes: round2(duration),
		EstimatedDurationHours:   round2(duration / 60),
		ConfidenceInterval:       round2(band),
		MinDuration:              round2(duration - band),
		MaxDuration:              round2(duration + band),
		CurrentSpeed:             req.Speed,
		RecommendedSpeed:         recommended,
	}, nil
}

// Retrain fits a new model and swaps it in atomically. A second retrain
// while one is running is rejected rather than queued.
func (p *Predictor) Retrain(ctx context.Context) error {
	if !p.retrainMu.TryLock() {
		return ErrRetrainInProgress
	}
	defer p.retrainMu.Unlock()

	model, err := p.fitter.Fit(ctx)
	if err != nil {
		return fmt.Errorf("retrain: %w", err)
	}

	p.current.Store(model)
	p.log.Info("model swapped in", zap.Int("samples", model.SampleCount))
	return nil
}
