package mock

import (
	"context"
	"sync"
)

// Dispatcher implements port.TaskDispatcher for tests.
type Dispatcher struct {
	mu sync.Mutex

	HydrateCalled bool
	HydrateIDs    []string
	HydrateErr    error
}

func (m *Dispatcher) EnqueueHydrateMovie(ctx context.Context, imdbID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HydrateCalled = true
	m.HydrateIDs = append(m.HydrateIDs, imdbID)
	return m.HydrateErr
}
