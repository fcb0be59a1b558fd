package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/fhuszti/movies-ms-go/internal/api_context"
	"github.com/fhuszti/movies-ms-go/internal/handler/api"
	"github.com/fhuszti/movies-ms-go/internal/logger"
	"github.com/fhuszti/movies-ms-go/internal/validation"
)

type searchQuery struct {
	Query string `validate:"notblank,max=255" json:"q"`
}

// WithSearchQuery validates the trimmed ?q= parameter and stores it in the request context.
func WithSearchQuery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			in := searchQuery{Query: strings.TrimSpace(r.URL.Query().Get("q"))}

			if errs := validation.ValidateStruct(in); errs != nil {
				errsJSON, err := validation.ErrorsToJson(errs)
				if err != nil {
					api.WriteError(w, r, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
					return
				}

				w.Header().Set("Cache-Control", "no-store")
				api.RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
				logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
				return
			}

			ctx := context.WithValue(r.Context(), api_context.SearchQueryKey, in.Query)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
