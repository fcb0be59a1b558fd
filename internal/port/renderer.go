package port

import "context"

// HTTPRenderer mediates between HTTP handlers and the movie use cases.
// It returns the JSON body of a result together with an ETag derived from it,
// serving both from the response cache when possible.
type HTTPRenderer interface {
	RenderSearchMovies(ctx context.Context, searcher MovieSearcher, query string) ([]byte, string, error)
	RenderGetMovie(ctx context.Context, getter MovieGetter, imdbID string) ([]byte, string, error)
}
