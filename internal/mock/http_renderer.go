package mock

import (
	"context"

	"github.com/fhuszti/movies-ms-go/internal/port"
)

// HTTPRenderer implements port.HTTPRenderer for tests.
type HTTPRenderer struct {
	// stored values
	Body []byte
	Etag string

	// captured inputs
	GotQuery string
	GotID    string

	// errors
	Err error

	// call flags
	SearchCalled bool
	GetCalled    bool
}

func (m *HTTPRenderer) RenderSearchMovies(ctx context.Context, searcher port.MovieSearcher, query string) ([]byte, string, error) {
	m.SearchCalled = true
	m.GotQuery = query
	return m.Body, m.Etag, m.Err
}

func (m *HTTPRenderer) RenderGetMovie(ctx context.Context, getter port.MovieGetter, imdbID string) ([]byte, string, error) {
	m.GetCalled = true
	m.GotID = imdbID
	return m.Body, m.Etag, m.Err
}
