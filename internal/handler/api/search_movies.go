package api

import (
	"net/http"

	"github.com/fhuszti/movies-ms-go/internal/api_context"
	"github.com/fhuszti/movies-ms-go/internal/dto"
	"github.com/fhuszti/movies-ms-go/internal/logger"
	"github.com/fhuszti/movies-ms-go/internal/port"
)

// SearchMoviesHandler answers GET /api/movies/search. Engine failures are
// reported as an empty {"Response":"False"} body, never as an error status.
func SearchMoviesHandler(renderer port.HTTPRenderer, svc port.MovieSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, ok := api_context.SearchQueryFromContext(r.Context())
		if !ok {
			WriteError(w, r, http.StatusBadRequest, "Search query is required", nil)
			return
		}

		raw, etag, err := renderer.RenderSearchMovies(r.Context(), svc, q)
		if err != nil {
			logger.Warnf(r.Context(), "❌  Search for %q failed: %v", q, err)
			w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
			RespondJSON(w, http.StatusOK, dto.SearchUnavailable())
			return
		}

		if !RespondCachedJSON(w, r, raw, etag) {
			logger.Infof(r.Context(), "✅  Search %q not modified", q)
			return
		}
		logger.Infof(r.Context(), "✅  Successfully returned search results for %q", q)
	}
}
