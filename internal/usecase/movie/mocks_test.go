package movie

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/fhuszti/movies-ms-go/internal/model"
	"github.com/fhuszti/movies-ms-go/internal/port"
)

// memRepo is an in-memory port.MovieRepository. WithinTx restores a snapshot on error.
type memRepo struct {
	mu      sync.Mutex
	movies  map[string]model.Movie
	queries map[string]model.SearchQuery
	inTx    bool

	getQueryErr error
	getMovieErr error
	upsertErr   error
	createErr   error
	listErr     error
	deleteErr   error

	listOut   []string
	deleteOut []string

	upsertCalls  int
	createCalls  int
	deleteBefore time.Time
}

func newMemRepo() *memRepo {
	return &memRepo{movies: map[string]model.Movie{}, queries: map[string]model.SearchQuery{}}
}

func (r *memRepo) GetSearchQueryByText(ctx context.Context, text string) (*model.SearchQuery, error) {
	if r.getQueryErr != nil {
		return nil, r.getQueryErr
	}
	q, ok := r.queries[text]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := q
	out.Results = nil
	for _, res := range q.Results {
		res.Movie = r.movies[res.IMDbID]
		out.Results = append(out.Results, res)
	}
	return &out, nil
}

func (r *memRepo) GetMovieByID(ctx context.Context, imdbID string) (*model.Movie, error) {
	if r.getMovieErr != nil {
		return nil, r.getMovieErr
	}
	m, ok := r.movies[imdbID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if m.Details != nil {
		d := *m.Details
		m.Details = &d
	}
	return &m, nil
}

func (r *memRepo) UpsertMovie(ctx context.Context, movie *model.Movie) error {
	r.upsertCalls++
	if r.upsertErr != nil {
		return r.upsertErr
	}
	m := *movie
	if m.Details != nil {
		d := *m.Details
		m.Details = &d
	}
	r.movies[m.IMDbID] = m
	return nil
}

func (r *memRepo) CreateSearchQuery(ctx context.Context, query *model.SearchQuery) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	q := *query
	q.Results = append([]model.SearchResult(nil), query.Results...)
	r.queries[q.SearchText] = q
	return nil
}

func (r *memRepo) ListMoviesWithoutDetails(ctx context.Context, limit int) ([]string, error) {
	return r.listOut, r.listErr
}

func (r *memRepo) DeleteNegativeSearchQueriesBefore(ctx context.Context, before time.Time) ([]string, error) {
	r.deleteBefore = before
	return r.deleteOut, r.deleteErr
}

func (r *memRepo) WithinTx(ctx context.Context, fn func(repo port.MovieRepository) error) error {
	if r.inTx {
		return fn(r)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	movies := make(map[string]model.Movie, len(r.movies))
	for k, v := range r.movies {
		movies[k] = v
	}
	queries := make(map[string]model.SearchQuery, len(r.queries))
	for k, v := range r.queries {
		queries[k] = v
	}

	r.inTx = true
	err := fn(r)
	r.inTx = false
	if err != nil {
		r.movies, r.queries = movies, queries
	}
	return err
}

type mockProvider struct {
	searchOut *port.SearchResult
	searchErr error
	lookupOut *port.MovieDetail
	lookupErr error

	searchCalls int
	lookupCalls int
}

func (p *mockProvider) SearchByText(ctx context.Context, text string) (*port.SearchResult, error) {
	p.searchCalls++
	return p.searchOut, p.searchErr
}

func (p *mockProvider) LookupByID(ctx context.Context, imdbID string) (*port.MovieDetail, error) {
	p.lookupCalls++
	return p.lookupOut, p.lookupErr
}

type mockCache struct {
	deleteErr  error
	deleteKeys []string
}

func (c *mockCache) GetResponse(ctx context.Context, key string) ([]byte, error) { return nil, nil }
func (c *mockCache) GetEtag(ctx context.Context, key string) (string, error) { return "", nil }
func (c *mockCache) SetResponse(ctx context.Context, key string, data []byte, ttl time.Duration) {}
func (c *mockCache) SetEtag(ctx context.Context, key string, etag string, ttl time.Duration) {}
func (c *mockCache) DeleteResponse(ctx context.Context, key string) error {
	c.deleteKeys = append(c.deleteKeys, key)
	return c.deleteErr
}
