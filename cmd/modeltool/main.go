package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"fleet-ai-service/internal/adapters/modelstore"
	"fleet-ai-service/internal/adapters/repositories"
	"fleet-ai-service/internal/config"
	"fleet-ai-service/internal/platform/db"
	"fleet-ai-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Offline retraining tool: fits a fresh model from historical trips and
// writes the artifact the server loads at startup. Interrupting it leaves
// any previously persisted artifact untouched.
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

	model, err := services.NewTrainer(repo, store, trainSeed, logger).Fit(ctx)
	if err != nil {
		logger.Fatal("training failed", zap.Error(err))
	}

	logger.Info("model written",
		zap.String("path", modelPath),
		zap.Int("samples", model.SampleCount),
		zap.Time("trained_at", model.TrainedAt),
	)
}
