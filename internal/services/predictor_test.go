package services

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"

	"fleet-ai-service/internal/adapters/modelstore"
	"fleet-ai-service/internal/adapters/repositories"
	"fleet-ai-service/internal/ml"

	"go.uber.org/zap"
)

type stubFitter struct {
	model *ml.Model
	err   error
	block chan struct{}
}

func (s *stubFitter) Fit(ctx context.Context) (*ml.Model, error) {
	if s.block != nil {
		<-s.block
	}
	return s.model, s.err
}

func trainedPredictor(t *testing.T) *Predictor {
	t.Helper()

	trainer := NewTrainer(&repositories.MockTripRepository{}, &modelstore.MemoryModelStore{}, 42, zap.NewNop())
	model, err := trainer.Fit(context.Background())
	if err != nil {
		t.Fatalf("fit: %v", err)
	}

	p := NewPredictor(trainer, zap.NewNop())
	p.SetModel(model)
	return p
}

func TestPredictInvalidInput(t *testing.T) {
	p := trainedPredictor(t)

	cases := []struct {
		name string
		req  TripFeatures
	}{
		{"zero distance", TripFeatures{Distance: 0, VehicleType: "SEDAN"}},
		{"negative distance", TripFeatures{Distance: -3, VehicleType: "SEDAN"}},
		{"empty vehicle type", TripFeatures{Distance: 10, VehicleType: "  "}},
	}

	for _, c := range cases {
		if _, err := p.Predict(c.req); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: error = %v, want ErrInvalidInput", c.name, err)
		}
	}
}

func TestPredictModelNotReady(t *testing.T) {
	p := NewPredictor(&stubFitter{}, zap.NewNop())

	_, err := p.Predict(TripFeatures{Distance: 10, VehicleType: "SEDAN"})
	if !errors.Is(err, ErrModelNotReady) {
		t.Fatalf("error = %v, want ErrModelNotReady", err)
	}
}

func TestPredictEndToEnd(t *testing.T) {
	p := trainedPredictor(t)

	pred, err := p.Predict(TripFeatures{
		Distance:    25.5,
		VehicleType: "SEDAN",
		IsElectric:  false,
		HourOfDay:   14,
		DayOfWeek:   3,
		Speed:       45,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pred.EstimatedDurationMinutes <= 0 {
		t.Fatalf("duration = %v, want > 0", pred.EstimatedDurationMinutes)
	}

	wantSpeed := 25.5 / (pred.EstimatedDurationMinutes / 60)
	if math.Abs(pred.RecommendedSpeed-wantSpeed) > 0.5 {
		t.Errorf("recommended speed = %v, want about %v", pred.RecommendedSpeed, wantSpeed)
	}

	wantBand := round2(pred.EstimatedDurationMinutes * 0.15)
	if math.Abs(pred.ConfidenceInterval-wantBand) > 0.02 {
		t.Errorf("confidence interval = %v, want about %v", pred.ConfidenceInterval, wantBand)
	}
	if pred.MinDuration > pred.EstimatedDurationMinutes || pred.MaxDuration < pred.EstimatedDurationMinutes {
		t.Errorf("band [%v, %v] does not bracket %v", pred.MinDuration, pred.MaxDuration, pred.EstimatedDurationMinutes)
	}
	if pred.CurrentSpeed != 45 {
		t.Errorf("current speed echoed as %v, want 45", pred.CurrentSpeed)
	}
}

func TestRetrainSwapsModel(t *testing.T) {
	p := trainedPredictor(t)
	before := p.Model()

	next := constantTestModel(t, 33)
	p.fitter = &stubFitter{model: next}

	if err := p.Retrain(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Model() == before {
		t.Fatal("model was not swapped")
	}
	if p.Model() != next {
		t.Fatal("swapped model is not the fitted one")
	}
}

func TestRetrainFailureKeepsOldModel(t *testing.T) {
	p := trainedPredictor(t)
	before := p.Model()

	p.fitter = &stubFitter{err: errors.New("store down")}

	if err := p.Retrain(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if p.Model() != before {
		t.Fatal("failed retrain must not replace the model")
	}
}

func TestRetrainSerialized(t *testing.T) {
	p := trainedPredictor(t)

	block := make(chan struct{})
	p.fitter = &stubFitter{model: constantTestModel(t, 30), block: block}

	done := make(chan error, 1)
	go func() { done <- p.Retrain(context.Background()) }()

	// Wait until the first retrain holds the lock.
	for {
		if !p.retrainMu.TryLock() {
			break
		}
		p.retrainMu.Unlock()
	}

	if err := p.Retrain(context.Background()); !errors.Is(err, ErrRetrainInProgress) {
		t.Fatalf("concurrent retrain error = %v, want ErrRetrainInProgress", err)
	}

	close(block)
	if err := <-done; err != nil {
		t.Fatalf("first retrain failed: %v", err)
	}
}

// Predictions racing a retrain must always see a complete model.
func TestConcurrentPredictionsDuringRetrain(t *testing.T) {
	p := trainedPredictor(t)

	req := TripFeatures{Distance: 12, VehicleType: "VAN", HourOfDay: 8, DayOfWeek: 2, Speed: 50}

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				pred, err := p.Predict(req)
				if err != nil {
					t.Errorf("prediction failed mid-retrain: %v", err)
					return
				}
				if pred.EstimatedDurationMinutes < 0 {
					t.Errorf("prediction from partial model: %v", pred.EstimatedDurationMinutes)
					return
				}
			}
		}()
	}

	for i := 0; i < 10; i++ {
		p.fitter = &stubFitter{model: constantTestModel(t, float64(20+i))}
		if err := p.Retrain(context.Background()); err != nil {
			t.Fatalf("retrain %d failed: %v", i, err)
		}
	}

	close(stop)
	wg.Wait()
}

func constantTestModel(t *testing.T, value float64) *ml.Model {
	t.Helper()

	features := make([][]float64, 12)
	targets := make([]float64, 12)
	for i := range features {
		row := make([]float64, ml.NumFeatures)
		for j := range row {
			row[j] = float64(i + j)
		}
		features[i] = row
		targets[i] = value
	}

	scaler, err := ml.FitScaler(features)
	if err != nil {
		t.Fatalf("fit scaler: %v", err)
	}
	forest, err := ml.FitForest(context.Background(), scaler.TransformMatrix(features), targets, 3, 2, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("fit forest: %v", err)
	}

	return &ml.Model{Version: "test", SampleCount: 12, Scaler: scaler, Forest: forest}
}
