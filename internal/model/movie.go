package model

import "time"

// YearUnknown is stored when the provider does not report a release year.
const YearUnknown = "N/A"

// Movie is a cached provider record, keyed by its IMDb ID.
// Details stays nil until a detail lookup has been cached for the movie.
type Movie struct {
	IMDbID    string
	Title     string
	Year      string
	Type      MediaType
	Poster    string
	Details   *MovieDetails
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MovieDetails is the bundle only returned by a detail lookup.
type MovieDetails struct {
	Plot       string
	Director   string
	Actors     string
	Runtime    string
	Genre      string
	IMDbRating string
}

// HasDetails reports whether the movie can answer a detail lookup on its own.
func (m *Movie) HasDetails() bool {
	return m != nil && m.Details != nil
}
