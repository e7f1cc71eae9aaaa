package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"trivia-api/internal/config"
	"trivia-api/internal/logger"
	"trivia-api/internal/opentdb"
	"trivia-api/internal/seed"
	"trivia-api/internal/trivia/sqlstore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	configPath := flag.String("config", "", "optional config file (yaml, json or toml)")
	amount := flag.Int("questions", 0, "number of questions to import from OpenTriviaDB (0 seeds categories only)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLogger := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, *amount, zapLogger)
	stop()
	if err != nil {
		zapLogger.Error("seeding failed", zap.Error(err))
		_ = zapLogger.Sync()
		os.Exit(1)
	}
	_ = zapLogger.Sync()
}

// run seeds the default categories and, when amount is positive, imports
// that many OpenTriviaDB questions.
func run(ctx context.Context, cfg *config.Config, amount int, zapLogger *zap.Logger) error {
	store, err := sqlstore.Open(sqlstore.Options{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			zapLogger.Error("failed to close store", zap.Error(err))
		}
	}()

	fetcher := opentdb.NewClient(
		&http.Client{Timeout: cfg.OpenTDB.Timeout},
		opentdb.WithBaseURL(cfg.OpenTDB.BaseURL),
	)
	seeder := seed.NewSeeder(store, fetcher, zapLogger)

	categories, err := seeder.SeedDefaultCategories(ctx)
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	zapLogger.Info("categories seeded", zap.Int("count", len(categories)))

	if amount <= 0 {
		return nil
	}
	if _, err := seeder.ImportQuestions(ctx, amount); err != nil {
		return fmt.Errorf("import questions: %w", err)
	}
	return nil
}
