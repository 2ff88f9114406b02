package services

import (
	"context"
	"errors"
	"testing"

	"fleet-ai-service/internal/adapters/repositories"

	"go.uber.org/zap"
)

func TestAnalyzeNoSamples(t *testing.T) {
	repo := &repositories.MockTripRepository{Speeds: map[int64][]float64{}}
	analyzer := NewSpeedAnalyzer(repo, zap.NewNop())

	report, err := analyzer.Analyze(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.VehicleID != 7 {
		t.Errorf("vehicle id = %d, want 7", report.VehicleID)
	}
	if report.AvgSpeed != 0 || report.MaxSpeed != 0 || report.MinSpeed != 0 || report.SpeedVariance != 0 {
		t.Errorf("expected zero-valued stats, got %+v", report)
	}
	if report.Feedback != "no trip data available" {
		t.Errorf("feedback = %q, want %q", report.Feedback, "no trip data available")
	}
	if report.TripsAnalyzed != 0 {
		t.Errorf("trips analyzed = %d, want 0", report.TripsAnalyzed)
	}
}

func TestAnalyzeAllZeroSamplesTreatedAsNoData(t *testing.T) {
	repo := &repositories.MockTripRepository{Speeds: map[int64][]float64{3: {0, 0, 0}}}
	analyzer := NewSpeedAnalyzer(repo, zap.NewNop())

	report, err := analyzer.Analyze(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Feedback != "no trip data available" {
		t.Errorf("feedback = %q, want no-data advisory", report.Feedback)
	}
}

func TestAnalyzePopulationStats(t *testing.T) {
	repo := &repositories.MockTripRepository{Speeds: map[int64][]float64{1: {10, 70, 70, 10}}}
	analyzer := NewSpeedAnalyzer(repo, zap.NewNop())

	report, err := analyzer.Analyze(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.AvgSpeed != 40 {
		t.Errorf("avg = %v, want 40", report.AvgSpeed)
	}
	if report.MaxSpeed != 70 {
		t.Errorf("max = %v, want 70", report.MaxSpeed)
	}
	if report.MinSpeed != 10 {
		t.Errorf("min = %v, want 10", report.MinSpeed)
	}
	if report.SpeedVariance != 900 {
		t.Errorf("variance = %v, want population variance 900", report.SpeedVariance)
	}
	if report.SpeedTrend != "variable" {
		t.Errorf("trend = %q, want variable", report.SpeedTrend)
	}
	if report.TripsAnalyzed != 4 {
		t.Errorf("trips analyzed = %d, want 4", report.TripsAnalyzed)
	}
}

func TestAnalyzeFeedbackThresholds(t *testing.T) {
	cases := []struct {
		name   string
		speeds []float64
		want   string
		trend  string
	}{
		{"high", []float64{65, 66, 64}, "Average speed is high. Consider promoting safer driving.", "stable"},
		{"low", []float64{15, 16, 14}, "Average speed is low. Check for route efficiency issues.", "stable"},
		{"optimal", []float64{40, 41, 39}, "Speed is within optimal range.", "stable"},
	}

	for _, c := range cases {
		repo := &repositories.MockTripRepository{Speeds: map[int64][]float64{1: c.speeds}}
		analyzer := NewSpeedAnalyzer(repo, zap.NewNop())

		report, err := analyzer.Analyze(context.Background(), 1)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if report.Feedback != c.want {
			t.Errorf("%s: feedback = %q, want %q", c.name, report.Feedback, c.want)
		}
		if report.SpeedTrend != c.trend {
			t.Errorf("%s: trend = %q, want %q", c.name, report.SpeedTrend, c.trend)
		}
	}
}

func TestAnalyzeStoreUnreachable(t *testing.T) {
	repo := &repositories.MockTripRepository{Err: errors.New("connection refused")}
	analyzer := NewSpeedAnalyzer(repo, zap.NewNop())

	_, err := analyzer.Analyze(context.Background(), 1)
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("error = %v, want ErrDataUnavailable", err)
	}
}
