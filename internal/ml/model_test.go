package ml

import (
	"context"
	"math/rand"
	"testing"
	"time"
)

func constantModel(t *testing.T, value float64) *Model {
	t.Helper()

	features := make([][]float64, 12)
	targets := make([]float64, 12)
	for i := range features {
		row := make([]float64, NumFeatures)
		for j := range row {
			row[j] = float64(i + j)
		}
		features[i] = row
		targets[i] = value
	}

	scaler, err := FitScaler(features)
	if err != nil {
		t.Fatalf("fit scaler: %v", err)
	}
	forest, err := FitForest(context.Background(), scaler.TransformMatrix(features), targets, 5, 3, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("fit forest: %v", err)
	}

	return &Model{
		Version:     "test",
		TrainedAt:   time.Now(),
		SampleCount: len(targets),
		Scaler:      scaler,
		Forest:      forest,
	}
}

func TestModelPredictConstantTarget(t *testing.T) {
	m := constantModel(t, 30)

	got := m.Predict(make([]float64, NumFeatures))
	if got != 30 {
		t.Fatalf("prediction = %v, want 30", got)
	}
}

func TestModelPredictClampsNegative(t *testing.T) {
	m := constantModel(t, -5)

	if got := m.Predict(make([]float64, NumFeatures)); got != 0 {
		t.Fatalf("prediction = %v, want clamp to 0", got)
	}
}

func TestModelValidate(t *testing.T) {
	m := constantModel(t, 30)
	if err := m.Validate(); err != nil {
		t.Fatalf("valid model rejected: %v", err)
	}

	broken := &Model{Scaler: m.Scaler}
	if err := broken.Validate(); err == nil {
		t.Fatal("expected error for artifact missing the forest")
	}

	var nilModel *Model
	if err := nilModel.Validate(); err == nil {
		t.Fatal("expected error for nil model")
	}
}
