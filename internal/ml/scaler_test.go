package ml

import (
	"math"
	"testing"
)

func TestFitScalerMoments(t *testing.T) {
	features := [][]float64{
		{1, 5},
		{3, 5},
	}

	s, err := FitScaler(features)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Mean[0] != 2 {
		t.Errorf("mean[0] = %v, want 2", s.Mean[0])
	}
	if s.Std[0] != 1 {
		t.Errorf("std[0] = %v, want 1", s.Std[0])
	}

	// Zero-spread column keeps a unit divisor.
	if s.Std[1] != 1 {
		t.Errorf("std[1] = %v, want 1", s.Std[1])
	}

	got := s.Transform([]float64{3, 5})
	if got[0] != 1 {
		t.Errorf("transform[0] = %v, want 1", got[0])
	}
	if got[1] != 0 {
		t.Errorf("transform[1] = %v, want 0", got[1])
	}
	for _, v := range got {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("transform produced non-finite value: %v", got)
		}
	}
}

func TestFitScalerEmptyMatrix(t *testing.T) {
	if _, err := FitScaler(nil); err == nil {
		t.Fatal("expected error for empty matrix")
	}
}

func TestFitScalerRaggedMatrix(t *testing.T) {
	if _, err := FitScaler([][]float64{{1, 2}, {1}}); err == nil {
		t.Fatal("expected error for ragged matrix")
	}
}
