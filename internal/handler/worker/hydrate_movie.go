package worker

import (
	"context"
	"errors"

	"github.com/fhuszti/movies-ms-go/internal/logger"
	"github.com/fhuszti/movies-ms-go/internal/port"
	"github.com/fhuszti/movies-ms-go/internal/task"
	movieSvc "github.com/fhuszti/movies-ms-go/internal/usecase/movie"
)

// HydrateMovieHandler handles a hydrate-movie task by running a detail lookup,
// which stores the full record as a side effect.
// A movie the provider does not know is acknowledged, since retrying cannot help.
func HydrateMovieHandler(ctx context.Context, p task.HydrateMoviePayload, svc port.MovieGetter) error {
	_, err := svc.GetMovie(ctx, port.GetMovieInput{ID: p.IMDbID})
	if errors.Is(err, movieSvc.ErrMovieNotFound) {
		logger.Warnf(ctx, "⚠️  Movie #%s unknown upstream, dropping hydrate task", p.IMDbID)
		return nil
	}
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to hydrate movie #%s: %v", p.IMDbID, err)
		return err
	}

	logger.Infof(ctx, "✅  Successfully hydrated movie #%s", p.IMDbID)
	return nil
}
