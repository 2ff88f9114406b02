package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	predictionsServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fleetai_predictions_total",
		Help: "Total number of ETA predictions served.",
	})
	predictionsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fleetai_predictions_rejected_total",
		Help: "Total number of ETA requests rejected as invalid.",
	})
	trainingRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fleetai_training_runs_total",
		Help: "Total number of model training runs.",
	})
	trainingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fleetai_training_duration_seconds",
		Help:    "Duration of model training runs.",
		Buckets: []float64{0.1, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
	})
	routePlansComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fleetai_route_plans_total",
		Help: "Total number of route plans computed.",
	})
	speedReportsServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fleetai_speed_reports_total",
		Help: "Total number of speed reports served.",
	})
)
