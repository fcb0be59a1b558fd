package port

import (
	"context"
	"time"

	"github.com/fhuszti/movies-ms-go/internal/model"
)

// MovieRepository defines persistence operations for cached movies and searches.
// Lookups return sql.ErrNoRows when nothing is stored under the given key.
type MovieRepository interface {
	GetSearchQueryByText(ctx context.Context, text string) (*model.SearchQuery, error)
	GetMovieByID(ctx context.Context, imdbID string) (*model.Movie, error)
	UpsertMovie(ctx context.Context, movie *model.Movie) error
	CreateSearchQuery(ctx context.Context, query *model.SearchQuery) error
	ListMoviesWithoutDetails(ctx context.Context, limit int) ([]string, error)
	DeleteNegativeSearchQueriesBefore(ctx context.Context, before time.Time) ([]string, error)

	// WithinTx runs fn against a repository bound to a single transaction.
	// The transaction is rolled back if fn returns an error and committed otherwise.
	WithinTx(ctx context.Context, fn func(repo MovieRepository) error) error
}
