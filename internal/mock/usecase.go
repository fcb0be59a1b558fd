package mock

import (
	"context"
	"time"

	"github.com/fhuszti/movies-ms-go/internal/port"
)

// MovieSearcher implements port.MovieSearcher for tests.
type MovieSearcher struct {
	Out    *port.SearchResult
	Err    error
	Called bool
	Got    port.SearchMoviesInput
}

func (m *MovieSearcher) SearchMovies(ctx context.Context, in port.SearchMoviesInput) (*port.SearchResult, error) {
	m.Called = true
	m.Got = in
	return m.Out, m.Err
}

// MovieGetter implements port.MovieGetter for tests.
type MovieGetter struct {
	Out    *port.MovieDetail
	Err    error
	Called bool
	Got    port.GetMovieInput
}

func (m *MovieGetter) GetMovie(ctx context.Context, in port.GetMovieInput) (*port.MovieDetail, error) {
	m.Called = true
	m.Got = in
	return m.Out, m.Err
}

// BacklogHydrator implements port.BacklogHydrator for tests.
type BacklogHydrator struct {
	Out      int
	Err      error
	Called   bool
	GotLimit int
}

func (m *BacklogHydrator) HydrateBacklog(ctx context.Context, limit int) (int, error) {
	m.Called = true
	m.GotLimit = limit
	return m.Out, m.Err
}

// NegativePurger implements port.NegativePurger for tests.
type NegativePurger struct {
	Out          int
	Err          error
	Called       bool
	GotOlderThan time.Duration
}

func (m *NegativePurger) PurgeNegativeSearches(ctx context.Context, olderThan time.Duration) (int, error) {
	m.Called = true
	m.GotOlderThan = olderThan
	return m.Out, m.Err
}
