package api

import (
	"errors"
	"net/http"

	"github.com/fhuszti/movies-ms-go/internal/api_context"
	"github.com/fhuszti/movies-ms-go/internal/logger"
	"github.com/fhuszti/movies-ms-go/internal/port"
	movieSvc "github.com/fhuszti/movies-ms-go/internal/usecase/movie"
)

// GetMovieHandler answers GET /api/movies/{id}. Every failure maps to 404.
func GetMovieHandler(renderer port.HTTPRenderer, svc port.MovieGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.MovieIDFromContext(r.Context())
		if !ok {
			WriteError(w, r, http.StatusBadRequest, "ID is required", nil)
			return
		}

		raw, etag, err := renderer.RenderGetMovie(r.Context(), svc, id)
		if err != nil {
			if errors.Is(err, movieSvc.ErrMovieNotFound) {
				WriteError(w, r, http.StatusNotFound, "Movie not found", nil)
				return
			}
			WriteError(w, r, http.StatusNotFound, "Movie not found", err)
			return
		}

		if !RespondCachedJSON(w, r, raw, etag) {
			logger.Infof(r.Context(), "✅  Returning cached movie #%s", id)
			return
		}
		logger.Infof(r.Context(), "✅  Successfully returned details for movie #%s", id)
	}
}
