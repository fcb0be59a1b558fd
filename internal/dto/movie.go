// Package dto maps use case results to the OMDb-shaped JSON served over HTTP.
package dto

import (
	"github.com/fhuszti/movies-ms-go/internal/model"
	"github.com/fhuszti/movies-ms-go/internal/port"
)

const (
	responseTrue  = "True"
	responseFalse = "False"
)

type SearchItem struct {
	Title  string          `json:"Title"`
	Year   string          `json:"Year"`
	IMDbID string          `json:"imdbID"`
	Type   model.MediaType `json:"Type"`
	Poster string          `json:"Poster"`
}

type SearchResponse struct {
	Search       []SearchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error,omitempty"`
}

type MovieDetailResponse struct {
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
}

// EmptyResponse is what a search collapses to when it could not be answered.
type EmptyResponse struct {
	Response string `json:"Response"`
}

func SearchUnavailable() EmptyResponse {
	return EmptyResponse{Response: responseFalse}
}

func FromSearchResult(res *port.SearchResult) SearchResponse {
	out := SearchResponse{
		Search:       make([]SearchItem, 0, len(res.Items)),
		TotalResults: res.TotalResults,
		Response:     responseFlag(res.Success),
		Error:        res.Error,
	}
	for _, it := range res.Items {
		out.Search = append(out.Search, SearchItem{
			Title:  it.Title,
			Year:   it.Year,
			IMDbID: it.IMDbID,
			Type:   it.Type,
			Poster: it.Poster,
		})
	}
	return out
}

func FromMovieDetail(d *port.MovieDetail) MovieDetailResponse {
	return MovieDetailResponse{
		Title:      d.Title,
		Year:       d.Year,
		IMDbID:     d.IMDbID,
		Type:       d.Type,
		Poster:     d.Poster,
		Plot:       d.Plot,
		Director:   d.Director,
		Actors:     d.Actors,
		Runtime:    d.Runtime,
		Genre:      d.Genre,
		IMDbRating: d.IMDbRating,
		Response:   responseFlag(d.Success),
	}
}

func responseFlag(ok bool) string {
	if ok {
		return responseTrue
	}
	return responseFalse
}
