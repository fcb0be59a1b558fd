package movie

import (
	"context"

	"github.com/fhuszti/movies-ms-go/internal/logger"
	"github.com/fhuszti/movies-ms-go/internal/port"
)

type backlogHydratorSrv struct {
	repo  port.MovieRepository
	tasks port.TaskDispatcher
}

// compile-time check: *backlogHydratorSrv must satisfy port.BacklogHydrator
var _ port.BacklogHydrator = (*backlogHydratorSrv)(nil)

// NewBacklogHydrator constructs a BacklogHydrator implementation.
func NewBacklogHydrator(repo port.MovieRepository, tasks port.TaskDispatcher) port.BacklogHydrator {
	return &backlogHydratorSrv{repo, tasks}
}

// HydrateBacklog looks for movies only known from searches and enqueues a detail
// lookup for each of them. It returns how many tasks were enqueued.
func (s *backlogHydratorSrv) HydrateBacklog(ctx context.Context, limit int) (int, error) {
	ids, err := s.repo.ListMoviesWithoutDetails(ctx, limit)
	if err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		logger.Info(ctx, "no movies found to hydrate")
	}

	enqueued := 0
	for _, id := range ids {
		logger.Infof(ctx, "starting hydration for movie %q", id)
		if err := s.tasks.EnqueueHydrateMovie(ctx, id); err != nil {
			logger.Warnf(ctx, "failed to enqueue hydrate task for movie %q: %v", id, err)
			continue
		}
		enqueued++
	}
	return enqueued, nil
}
