package port

import (
	"context"

	"github.com/fhuszti/movies-ms-go/internal/model"
)

// MetadataProvider is the upstream movie-metadata API.
// An error means the call itself failed; a provider-side "not found" comes
// back as a result with Success=false.
type MetadataProvider interface {
	SearchByText(ctx context.Context, text string) (*SearchResult, error)
	LookupByID(ctx context.Context, imdbID string) (*MovieDetail, error)
}

// SearchItem is one entry of a search result list.
type SearchItem struct {
	Title  string
	Year   string
	IMDbID string
	Type   model.MediaType
	Poster string
}

// SearchResult is a search response, either fetched upstream or rebuilt from the store.
type SearchResult struct {
	Items        []SearchItem
	TotalResults string
	Success      bool
	Error        string
}

// MovieDetail is a detail response, either fetched upstream or rebuilt from the store.
type MovieDetail struct {
	Title      string
	Year       string
	IMDbID     string
	Type       model.MediaType
	Poster     string
	Plot       string
	Director   string
	Actors     string
	Runtime    string
	Genre      string
	IMDbRating string
	Success    bool
	Error      string
}
