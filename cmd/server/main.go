package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fleet-ai-service/internal/adapters/modelstore"
	"fleet-ai-service/internal/adapters/repositories"
	"fleet-ai-service/internal/api"
	"fleet-ai-service/internal/config"
	"fleet-ai-service/internal/platform/db"
	"fleet-ai-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, file model store) behind ports,
// guarantees a model is loaded or trained before serving, and starts the
// HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	port := config.Get("PORT", "8080")
	modelPath := config.Get("MODEL_PATH", "models/eta_model.json")
	trainSeed := config.GetInt64("TRAIN_SEED", 42)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, databaseURL)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer database.Close()

	repo := repositories.NewPostgresTripRepository(database)
	store := modelstore.NewFileModelStore(modelPath)

	trainer := services.NewTrainer(repo, store, trainSeed, logger)
	predictor := services.NewPredictor(trainer, logger)

	// Load the persisted artifact, or synthesize one so predictions are
	// serviceable from the first request.
	model, err := store.Load()
	switch {
	case err == nil:
		logger.Info("model loaded",
			zap.String("path", modelPath),
			zap.Time("trained_at", model.TrainedAt),
			zap.Int("samples", model.SampleCount),
		)
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("no persisted model, training", zap.String("path", modelPath))
		model, err = trainer.Fit(ctx)
		if err != nil {
			logger.Fatal("initial training failed", zap.Error(err))
		}
	default:
		// Corrupt artifact. Fail fast instead of serving an uninitialized model.
		logger.Fatal("model artifact unreadable", zap.String("path", modelPath), zap.Error(err))
	}
	predictor.SetModel(model)

	estimator := services.NewRouteEstimator(rand.New(rand.NewSource(time.Now().UnixNano())))
	analyzer := services.NewSpeedAnalyzer(repo, logger)
	exporter := services.NewExporter(repo, logger)
	optimizer := services.NewBatchOptimizer(predictor, estimator)

	router := api.NewRouter(predictor, estimator, analyzer, exporter, optimizer, logger)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown incomplete", zap.Error(err))
	}
}
