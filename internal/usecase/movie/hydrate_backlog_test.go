package movie

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/movies-ms-go/internal/mock"
)

func TestBacklogHydrator_RepoError(t *testing.T) {
	repo := newMemRepo()
	repo.listErr = errors.New("db fail")
	dispatcher := &mock.Dispatcher{}
	svc := NewBacklogHydrator(repo, dispatcher)

	_, err := svc.HydrateBacklog(context.Background(), 10)
	if err == nil || err.Error() != "db fail" {
		t.Fatalf("expected db fail, got %v", err)
	}
	if len(dispatcher.HydrateIDs) != 0 {
		t.Error("expected no task to be enqueued")
	}
}

func TestBacklogHydrator_Success(t *testing.T) {
	repo := newMemRepo()
	repo.listOut = []string{"tt1", "tt2"}
	dispatcher := &mock.Dispatcher{}
	svc := NewBacklogHydrator(repo, dispatcher)

	n, err := svc.HydrateBacklog(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 enqueued, got %d", n)
	}
	if len(dispatcher.HydrateIDs) != 2 || dispatcher.HydrateIDs[0] != "tt1" || dispatcher.HydrateIDs[1] != "tt2" {
		t.Errorf("hydrate IDs mismatch: %+v", dispatcher.HydrateIDs)
	}
}

func TestBacklogHydrator_DispatcherError(t *testing.T) {
	repo := newMemRepo()
	repo.listOut = []string{"tt1", "tt2"}
	dispatcher := &mock.Dispatcher{HydrateErr: errors.New("queue fail")}
	svc := NewBacklogHydrator(repo, dispatcher)

	n, err := svc.HydrateBacklog(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 enqueued, got %d", n)
	}
	if len(dispatcher.HydrateIDs) != 2 {
		t.Fatalf("expected 2 hydrate calls, got %d", len(dispatcher.HydrateIDs))
	}
}
