package port

import "context"

// TaskDispatcher enqueues asynchronous tasks related to cached movies.
type TaskDispatcher interface {
	EnqueueHydrateMovie(ctx context.Context, imdbID string) error
}
