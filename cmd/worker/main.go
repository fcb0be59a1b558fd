package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fhuszti/movies-ms-go/internal/config"
	"github.com/fhuszti/movies-ms-go/internal/db"
	workerHandler "github.com/fhuszti/movies-ms-go/internal/handler/worker"
	"github.com/fhuszti/movies-ms-go/internal/logger"
	"github.com/fhuszti/movies-ms-go/internal/metrics"
	"github.com/fhuszti/movies-ms-go/internal/migration"
	"github.com/fhuszti/movies-ms-go/internal/repository"
	"github.com/fhuszti/movies-ms-go/internal/task"
	"github.com/fhuszti/movies-ms-go/internal/upstream/omdb"
	movieSvc "github.com/fhuszti/movies-ms-go/internal/usecase/movie"
	"github.com/hibiken/asynq"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	database := initDb(cfg)
	repo, err := repository.NewMovieRepository(database)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to build movie repository: %v", err)
		os.Exit(1)
	}

	provider := omdb.NewClient(omdb.Config{
		BaseURL: cfg.OMDbAPIURL,
		APIKey:  cfg.OMDbAPIKey,
		Timeout: cfg.OMDbTimeout,
	}, metrics.New())
	defer provider.Close()

	getSvc := movieSvc.NewMovieGetter(repo, provider, nil)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeHydrateMovie, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseHydrateMoviePayload(t)
		if err != nil {
			// a malformed payload will never parse, so skip retries
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		return workerHandler.HydrateMovieHandler(ctx, p, getSvc)
	})

	runWorker(ctx, mux, cfg, database)
}

func initDb(cfg *config.Settings) *db.Database {
	ctx := context.Background()
	logger.Info(ctx, "initialising database...")

	database, err := db.NewFromConfig(db.Config{
		Driver: cfg.DBDriver,
		MariaDB: db.MariaDbConfig{
			DSN:             cfg.MariaDBDSN,
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		},
		SQLite: db.SQLiteConfig{Path: cfg.SQLitePath},
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	if database.Driver == db.DriverSQLite {
		if err := migration.MigrateUp(database); err != nil {
			logger.Errorf(ctx, "❌  Migration up failed: %v", err)
			os.Exit(1)
		}
	}
	return database
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings, database *db.Database) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{
		Concurrency:     cfg.WorkerConcurrency,
		ShutdownTimeout: 30 * time.Second,
	})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Infof(ctx, "🚀 Worker started (concurrency %d)", cfg.WorkerConcurrency)

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// stop accepting new tasks and wait for in-flight ones up to ShutdownTimeout
	srv.Shutdown()

	if err := database.Close(); err != nil {
		logger.Warnf(ctx, "DB close error: %v", err)
	}
	logger.Info(ctx, "✅  Worker gracefully stopped")
}
