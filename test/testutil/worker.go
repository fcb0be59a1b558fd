package testutil

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	"github.com/fhuszti/movies-ms-go/internal/db"
	workerHandler "github.com/fhuszti/movies-ms-go/internal/handler/worker"
	"github.com/fhuszti/movies-ms-go/internal/logger"
	"github.com/fhuszti/movies-ms-go/internal/repository"
	"github.com/fhuszti/movies-ms-go/internal/task"
	"github.com/fhuszti/movies-ms-go/internal/upstream/omdb"
	movieSvc "github.com/fhuszti/movies-ms-go/internal/usecase/movie"
)

// StartWorker starts an asynq worker processing hydrate tasks against omdbURL.
// It returns a function to gracefully shut down the worker.
func StartWorker(dbConn *db.Database, omdbURL, redisAddr string) (func(), error) {
	repo, err := repository.NewMovieRepository(dbConn)
	if err != nil {
		return nil, err
	}
	provider := omdb.NewClient(omdb.Config{BaseURL: omdbURL, APIKey: "test", Timeout: 5 * time.Second}, nil)
	getSvc := movieSvc.NewMovieGetter(repo, provider, nil)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeHydrateMovie, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseHydrateMoviePayload(t)
		if err != nil {
			return err
		}
		return workerHandler.HydrateMovieHandler(ctx, p, getSvc)
	})

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: redisAddr}, asynq.Config{Concurrency: 2})
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "worker stopped: %v", err)
		}
	}()

	return func() {
		srv.Shutdown()
		provider.Close()
	}, nil
}
