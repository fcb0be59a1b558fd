package worker

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fhuszti/movies-ms-go/internal/mock"
	"github.com/fhuszti/movies-ms-go/internal/port"
	"github.com/fhuszti/movies-ms-go/internal/task"
	movieSvc "github.com/fhuszti/movies-ms-go/internal/usecase/movie"
)

func TestHydrateMovieHandler_Success(t *testing.T) {
	svc := &mock.MovieGetter{Out: &port.MovieDetail{IMDbID: "tt0096895", Success: true}}

	err := HydrateMovieHandler(context.Background(), task.HydrateMoviePayload{IMDbID: "tt0096895"}, svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.Called {
		t.Error("service not called")
	}
	if svc.Got.ID != "tt0096895" {
		t.Errorf("service got id %q; want %q", svc.Got.ID, "tt0096895")
	}
}

func TestHydrateMovieHandler_NotFoundIsAcked(t *testing.T) {
	svc := &mock.MovieGetter{Err: movieSvc.ErrMovieNotFound}

	err := HydrateMovieHandler(context.Background(), task.HydrateMoviePayload{IMDbID: "tt9999999"}, svc)
	if err != nil {
		t.Fatalf("expected nil so the task is not retried, got %v", err)
	}
}

func TestHydrateMovieHandler_ServiceError(t *testing.T) {
	svcErr := fmt.Errorf("%w: timeout", movieSvc.ErrUpstreamUnavailable)
	svc := &mock.MovieGetter{Err: svcErr}

	err := HydrateMovieHandler(context.Background(), task.HydrateMoviePayload{IMDbID: "tt0096895"}, svc)
	if !errors.Is(err, movieSvc.ErrUpstreamUnavailable) {
		t.Fatalf("got error %v; want %v", err, svcErr)
	}
}
