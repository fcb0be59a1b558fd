package omdb

import "github.com/fhuszti/movies-ms-go/internal/model"

// Wire shapes of the OMDb API. Field names follow the provider verbatim.

type searchResponse struct {
	Search       []searchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error"`
}

type searchItem struct {
	Title  string          `json:"Title"`
	Year   string          `json:"Year"`
	IMDbID string          `json:"imdbID"`
	Type   model.MediaType `json:"Type"`
	Poster string          `json:"Poster"`
}

type detailResponse struct {
	Title      string          `json:"Title"`
	Year       string          `json:"Year"`
	IMDbID     string          `json:"imdbID"`
	Type       model.MediaType `json:"Type"`
	Poster     string          `json:"Poster"`
	Plot       string          `json:"Plot"`
	Director   string          `json:"Director"`
	Actors     string          `json:"Actors"`
	Runtime    string          `json:"Runtime"`
	Genre      string          `json:"Genre"`
	IMDbRating string          `json:"imdbRating"`
	Response   string          `json:"Response"`
	Error      string          `json:"Error"`
}

func isTrue(s string) bool {
	return s == "True"
}
