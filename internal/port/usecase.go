package port

import (
	"context"
	"time"
)

// MovieSearcher answers free-text searches from the store, falling back to the provider.
type MovieSearcher interface {
	SearchMovies(ctx context.Context, in SearchMoviesInput) (*SearchResult, error)
}
type SearchMoviesInput struct {
	Query string
}

// MovieGetter answers detail lookups from the store, falling back to the provider.
type MovieGetter interface {
	GetMovie(ctx context.Context, in GetMovieInput) (*MovieDetail, error)
}
type GetMovieInput struct {
	ID string
}

// BacklogHydrator enqueues detail lookups for movies only known from searches.
type BacklogHydrator interface {
	HydrateBacklog(ctx context.Context, limit int) (int, error)
}

// NegativePurger removes cached negative searches older than a cutoff.
type NegativePurger interface {
	PurgeNegativeSearches(ctx context.Context, olderThan time.Duration) (int, error)
}
