package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fhuszti/movies-ms-go/internal/cache"
	"github.com/fhuszti/movies-ms-go/internal/config"
	"github.com/fhuszti/movies-ms-go/internal/db"
	"github.com/fhuszti/movies-ms-go/internal/handler/api"
	"github.com/fhuszti/movies-ms-go/internal/logger"
	"github.com/fhuszti/movies-ms-go/internal/metrics"
	cMiddleware "github.com/fhuszti/movies-ms-go/internal/middleware"
	"github.com/fhuszti/movies-ms-go/internal/migration"
	"github.com/fhuszti/movies-ms-go/internal/port"
	"github.com/fhuszti/movies-ms-go/internal/renderer"
	"github.com/fhuszti/movies-ms-go/internal/repository"
	"github.com/fhuszti/movies-ms-go/internal/upstream/omdb"
	"github.com/fhuszti/movies-ms-go/internal/task"
	movieSvc "github.com/fhuszti/movies-ms-go/internal/usecase/movie"
	msuuid "github.com/fhuszti/movies-ms-go/internal/uuid"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)
	repo, err := repository.NewMovieRepository(database)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to build movie repository: %v", err)
		os.Exit(1)
	}

	m := metrics.New()
	provider := omdb.NewClient(omdb.Config{
		BaseURL: cfg.OMDbAPIURL,
		APIKey:  cfg.OMDbAPIKey,
		Timeout: cfg.OMDbTimeout,
	}, m)
	defer provider.Close()

	ca, dispatcher := initCache(ctx, cfg)

	r := initRouter(ctx, m)

	searchSvc := movieSvc.NewMovieSearcher(repo, provider, msuuid.NewUUID, m, dispatcher)
	getSvc := movieSvc.NewMovieGetter(repo, provider, m)
	rendererSvc := renderer.NewHTTPRenderer(ca, cfg.ResponseCacheTTL)

	r.With(cMiddleware.WithSearchQuery()).
		Get("/api/movies/search", api.SearchMoviesHandler(rendererSvc, searchSvc))
	r.With(cMiddleware.WithMovieID()).
		Get("/api/movies/{id}", api.GetMovieHandler(rendererSvc, getSvc))

	r.Get("/healthz", api.HealthHandler(database))
	r.Method(http.MethodGet, "/metrics", m.Handler())

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
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

	// the embedded SQLite store has no separate migrate step
	if database.Driver == db.DriverSQLite {
		if err := migration.MigrateUp(database); err != nil {
			logger.Errorf(ctx, "❌  Migration up failed: %v", err)
			os.Exit(1)
		}
	}

	return database
}

// initCache picks the response cache and, when prefetching is on, the task dispatcher.
// The returned dispatcher is nil when detail prefetch is disabled.
func initCache(ctx context.Context, cfg *config.Settings) (port.Cache, port.TaskDispatcher) {
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		rc := cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		if err := rc.Ping(ctx); err != nil {
			logger.Warnf(ctx, "⚠️  Redis ping failed, cache calls will degrade to misses: %v", err)
		}
		if cfg.PrefetchDetails {
			dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
			logger.Info(ctx, "✅  Detail prefetch enabled")
		}
		logger.Info(ctx, "✅  Redis cache enabled")
		return rc, dispatcher
	}

	if cfg.PrefetchDetails {
		logger.Warn(ctx, "⚠️  PREFETCH_DETAILS needs REDIS_ADDR, prefetch is disabled")
	}
	if cfg.ResponseCacheSize > 0 {
		logger.Infof(ctx, "✅  In-process response cache enabled (%d entries)", cfg.ResponseCacheSize)
		return cache.NewLRU(cfg.ResponseCacheSize, cfg.ResponseCacheTTL), nil
	}

	logger.Warn(ctx, "⚠️  Response cache disabled")
	return cache.NewNoop(), nil
}

func initRouter(ctx context.Context, m *metrics.Metrics) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(m.Middleware)
	r.Use(cMiddleware.WithCORS())

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
