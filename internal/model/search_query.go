package model

import (
	"time"

	"github.com/fhuszti/movies-ms-go/internal/uuid"
)

// SearchQuery is the cached outcome of one upstream search, unique on SearchText.
// A query with Response=false is a cached negative result and has no Results.
type SearchQuery struct {
	ID           uuid.UUID
	SearchText   string
	TotalResults string
	Response     bool
	ErrorMessage string
	Results      []SearchResult
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SearchResult links a query to one movie of its result list.
// Movie is only populated when the query is read back from the store.
type SearchResult struct {
	IMDbID   string
	Position int
	Movie    Movie
}
