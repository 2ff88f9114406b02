package services

import (
	"context"
	"fmt"

	"fleet-ai-service/internal/domain"
	"fleet-ai-service/internal/ports"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	highSpeedThreshold = 60
	lowSpeedThreshold  = 20

	// (km/h)^2; at or above this the trend is reported as variable.
	variableVarianceThreshold = 100
)

const (
	feedbackNoData  = "no trip data available"
	feedbackHigh    = "Average speed is high. Consider promoting safer driving."
	feedbackLow     = "Average speed is low. Check for route efficiency issues."
	feedbackOptimal = "Speed is within optimal range."
	trendStable     = "stable"
	trendVariable   = "variable"
)

// SpeedAnalyzer aggregates a vehicle's recent trip speeds into summary
// statistics and a qualitative advisory.
type SpeedAnalyzer struct {
	repo ports.TripRepository
	log  *zap.Logger
}

func NewSpeedAnalyzer(repo ports.TripRepository, log *zap.Logger) *SpeedAnalyzer {
	return &SpeedAnalyzer{repo: repo, log: log}
}

// Analyze fetches up to the 50 most recent speed samples and computes mean,
// max, min and population variance. A vehicle with no usable samples gets a
// zero-valued report, not an error; an unreachable store is surfaced as
// ErrDataUnavailable and left to the caller to retry.
func (a *SpeedAnalyzer) Analyze(ctx context.Context, vehicleID int64) (*domain.SpeedReport, error) {
	samples, err := a.repo.FetchRecentSpeeds(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("speed feedback: fetch recent speeds for vehicle %d: %w: %v", vehicleID, ErrDataUnavailable, err)
	}

	speeds := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s > 0 {
			speeds = append(speeds, s)
		}
	}

	if len(speeds) == 0 {
		speedReportsServed.Inc()
		return &domain.SpeedReport{
			VehicleID: vehicleID,
			Feedback:  feedbackNoData,
		}, nil
	}

	avg := stat.Mean(speeds, nil)
	variance := stat.PopVariance(speeds, nil)

	feedback := feedbackOptimal
	switch {
	case avg > highSpeedThreshold:
		feedback = feedbackHigh
	case avg < lowSpeedThreshold:
		feedback = feedbackLow
	}

	trend := trendStable
	if variance >= variableVarianceThreshold {
		trend = trendVariable
	}

	speedReportsServed.Inc()
	return &domain.SpeedReport{
		VehicleID:     vehicleID,
		AvgSpeed:      round2(avg),
		MaxSpeed:      round2(floats.Max(speeds)),
		MinSpeed:      round2(floats.Min(speeds)),
		SpeedVariance: round2(variance),
		SpeedTrend:    trend,
		Feedback:      feedback,
		TripsAnalyzed: len(speeds),
	}, nil
}
