package api

import (
	"context"
	"net/http"
	"time"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthResponse struct {
	Status string `json:"status"`
}

func HealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			WriteError(w, r, http.StatusServiceUnavailable, "Database unavailable", err)
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		RespondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
