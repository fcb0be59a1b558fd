package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/fhuszti/movies-ms-go/internal/port"
	"github.com/hibiken/asynq"
)

const hydrateMaxRetry = 5

// enqueuer is the part of *asynq.Client the dispatcher needs.
type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

type Dispatcher struct {
	client enqueuer
}

// compile-time check
var _ port.TaskDispatcher = (*Dispatcher)(nil)

func NewDispatcher(addr, password string) *Dispatcher {
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password})
	return &Dispatcher{client: c}
}

// EnqueueHydrateMovie schedules a detail lookup for imdbID.
// The task ID is derived from imdbID, so a movie already waiting in the queue is not enqueued twice.
func (d *Dispatcher) EnqueueHydrateMovie(ctx context.Context, imdbID string) error {
	t, err := NewHydrateMovieTask(imdbID)
	if err != nil {
		return err
	}
	_, err = d.client.EnqueueContext(ctx, t,
		asynq.TaskID("hydrate:"+imdbID),
		asynq.MaxRetry(hydrateMaxRetry),
	)
	if err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
		return fmt.Errorf("enqueue %s for %q: %w", TypeHydrateMovie, imdbID, err)
	}
	return nil
}

func (d *Dispatcher) Close() error {
	return d.client.Close()
}
