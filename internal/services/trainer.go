package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"fleet-ai-service/internal/domain"
	"fleet-ai-service/internal/ml"
	"fleet-ai-service/internal/platform/obs"
	"fleet-ai-service/internal/ports"

	"go.uber.org/zap"
)

const (
	// A regression fit on a handful of points does not generalize;
	// below this count training falls back to the synthetic bootstrap.
	minTrainingRecords = 11

	syntheticSamples    = 100
	syntheticMinMinutes = 10
	syntheticMaxMinutes = 70

	forestTrees    = 100
	forestMaxDepth = 10

	modelVersion = "forest-v1"
)

// Trainer fits the ETA model from historical trips, falling back to a
// synthetic bootstrap when the store is empty or unreachable so the service
// is always serviceable, even cold.
type Trainer struct {
	repo  ports.TripRepository
	store ports.ModelStore
	rng   *rand.Rand
	log   *zap.Logger
}

func NewTrainer(repo ports.TripRepository, store ports.ModelStore, seed int64, log *zap.Logger) *Trainer {
	return &Trainer{
		repo:  repo,
		store: store,
		rng:   rand.New(rand.NewSource(seed)),
		log:   log,
	}
}

// Fit fetches historical trips, fits scaler and forest, and persists them
// as one artifact. The context aborts a long fit between trees without
// touching the previously persisted artifact.
func (t *Trainer) Fit(ctx context.Context) (model *ml.Model, err error) {
	defer obs.Time(t.log, "train_model")(&err)
	start := time.Now()

	records, err := t.repo.FetchHistoricalTrips(ctx)
	if err != nil {
		// Degraded but serviceable: train on synthetic data instead.
		t.log.Warn("historical trips unavailable, using synthetic bootstrap", zap.Error(err))
		records = nil
		err = nil
	}

	model, err = t.fitRecords(ctx, records)
	if err != nil {
		return nil, err
	}

	if err := t.store.Save(model); err != nil {
		return nil, fmt.Errorf("train model: persist artifact: %w", err)
	}

	trainingRuns.Inc()
	trainingDuration.Observe(time.Since(start).Seconds())
	t.log.Info("model trained",
		zap.Int("samples", model.SampleCount),
		zap.Time("trained_at", model.TrainedAt),
	)
	return model, nil
}

func (t *Trainer) fitRecords(ctx context.Context, records []domain.TripRecord) (*ml.Model, error) {
	features, targets := trainingMatrix(records)

	if len(targets) < minTrainingRecords {
		t.log.Info("insufficient training data, using synthetic bootstrap",
			zap.Int("usable_records", len(targets)),
			zap.Int("required", minTrainingRecords),
		)
		features, targets = t.syntheticDataset()
	}

	scaler, err := ml.FitScaler(features)
	if err != nil {
		return nil, fmt.Errorf("train model: %w", err)
	}

	forest, err := ml.FitForest(ctx, scaler.TransformMatrix(features), targets, forestTrees, forestMaxDepth, t.rng)
	if err != nil {
		return nil, fmt.Errorf("train model: %w", err)
	}

	return &ml.Model{
		Version:     modelVersion,
		TrainedAt:   time.Now().UTC(),
		SampleCount: len(targets),
		Scaler:      scaler,
		Forest:      forest,
	}, nil
}

// trainingMatrix keeps records with positive distance/duration and a valid
// time span, deriving the regression target from the observed timestamps.
func trainingMatrix(records []domain.TripRecord) ([][]float64, []float64) {
	features := make([][]float64, 0, len(records))
	targets := make([]float64, 0, len(records))

	for _, rec := range records {
		actual := rec.ActualDurationMinutes()
		if rec.Distance <= 0 || rec.Duration <= 0 || actual <= 0 {
			continue
		}
		features = append(features, recordFeatures(rec))
		targets = append(targets, actual)
	}

	return features, targets
}

// syntheticDataset draws feature vectors uniformly in [0,1) per dimension
// and durations uniformly in [10,70) minutes.
func (t *Trainer) syntheticDataset() ([][]float64, []float64) {
	features := make([][]float64, syntheticSamples)
	targets := make([]float64, syntheticSamples)

	for i := range features {
		row := make([]float64, ml.NumFeatures)
		for j := range row {
			row[j] = t.rng.Float64()
		}
		features[i] = row
		targets[i] = syntheticMinMinutes + t.rng.Float64()*(syntheticMaxMinutes-syntheticMinMinutes)
	}

	return features, targets
}
