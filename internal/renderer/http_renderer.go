package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/fhuszti/movies-ms-go/internal/cache"
	"github.com/fhuszti/movies-ms-go/internal/dto"
	"github.com/fhuszti/movies-ms-go/internal/port"
)

type httpRenderer struct {
	cache port.Cache
	ttl   time.Duration
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a renderer that keeps rendered bodies in c for ttl.
func NewHTTPRenderer(c port.Cache, ttl time.Duration) port.HTTPRenderer {
	return &httpRenderer{cache: c, ttl: ttl}
}

// RenderSearchMovies returns the JSON search response for query and its quoted ETag.
func (r *httpRenderer) RenderSearchMovies(ctx context.Context, searcher port.MovieSearcher, query string) ([]byte, string, error) {
	return r.render(ctx, cache.SearchKey(query), func() (interface{}, error) {
		out, err := searcher.SearchMovies(ctx, port.SearchMoviesInput{Query: query})
		if err != nil {
			return nil, err
		}
		return dto.FromSearchResult(out), nil
	})
}

// RenderGetMovie returns the JSON detail response for imdbID and its quoted ETag.
func (r *httpRenderer) RenderGetMovie(ctx context.Context, getter port.MovieGetter, imdbID string) ([]byte, string, error) {
	return r.render(ctx, cache.MovieKey(imdbID), func() (interface{}, error) {
		out, err := getter.GetMovie(ctx, port.GetMovieInput{ID: imdbID})
		if err != nil {
			return nil, err
		}
		return dto.FromMovieDetail(out), nil
	})
}

// render serves key from the cache, or runs produce and caches its output.
// Only successful results are stored.
func (r *httpRenderer) render(ctx context.Context, key string, produce func() (interface{}, error)) ([]byte, string, error) {
	raw, err := r.cache.GetResponse(ctx, key)
	etag, errEtag := r.cache.GetEtag(ctx, key)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out, err := produce()
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	r.cache.SetResponse(ctx, key, raw, r.ttl)
	r.cache.SetEtag(ctx, key, etag, r.ttl)

	return raw, etag, nil
}
