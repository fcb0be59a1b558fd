package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/fhuszti/movies-ms-go/internal/api_context"
	"github.com/fhuszti/movies-ms-go/internal/handler/api"
	"github.com/go-chi/chi/v5"
)

// WithMovieID reads the {id} route parameter into the request context.
func WithMovieID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(chi.URLParam(r, "id"))
			if id == "" {
				api.WriteError(w, r, http.StatusBadRequest, "ID is required", nil)
				return
			}

			ctx := context.WithValue(r.Context(), api_context.MovieIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
