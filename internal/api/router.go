package api

import (
	"net/http"

	"fleet-ai-service/internal/api/handlers"
	"fleet-ai-service/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware of
// concrete adapters.
func NewRouter(
	predictor *services.Predictor,
	estimator *services.RouteEstimator,
	analyzer *services.SpeedAnalyzer,
	exporter *services.Exporter,
	optimizer *services.BatchOptimizer,
	log *zap.Logger,
) http.Handler {
	etaHandler := &handlers.ETAHandler{Predictor: predictor, Log: log}
	routeHandler := &handlers.RouteHandler{Estimator: estimator, Log: log}
	speedHandler := &handlers.SpeedHandler{Analyzer: analyzer, Log: log}
	exportHandler := &handlers.ExportHandler{Exporter: exporter, Log: log}
	trainHandler := &handlers.TrainHandler{Predictor: predictor, Log: log}
	batchHandler := &handlers.BatchHandler{Optimizer: optimizer, Log: log}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(requestLogger(log))

	r.Get("/health", handlers.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/ai", func(r chi.Router) {
		r.Post("/predict-eta", etaHandler.PredictETA)
		r.Post("/calculate-route", routeHandler.CalculateRoute)
		r.Get("/speed-feedback/{vehicleID}", speedHandler.SpeedFeedback)
		r.Get("/export-route-data", exportHandler.ExportRouteData)
		r.Post("/retrain-model", trainHandler.RetrainModel)
		r.Post("/batch-optimize", batchHandler.BatchOptimize)
	})

	return r
}
