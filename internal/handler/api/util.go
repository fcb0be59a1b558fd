package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fhuszti/movies-ms-go/internal/logger"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError logs msg with the request id and writes it as an uncacheable JSON error.
// Client errors are logged at warn level and server errors at error level.
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	logf := logger.Warnf
	if status >= http.StatusInternalServerError {
		logf = logger.Errorf
	}
	if err != nil {
		logf(r.Context(), "❌  %s: %v", msg, err)
	} else {
		logf(r.Context(), "❌  %s", msg)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

func RespondRawJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to write JSON payload: %v", err)
	}
}

// RespondCachedJSON writes raw with its ETag, or 304 when the client already holds it.
func RespondCachedJSON(w http.ResponseWriter, r *http.Request, raw []byte, etag string) bool {
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=300")
	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return false
	}

	RespondRawJSON(w, http.StatusOK, raw)
	return true
}
