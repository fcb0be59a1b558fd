package movie

import (
	"strings"

	"github.com/fhuszti/movies-ms-go/internal/model"
	"github.com/fhuszti/movies-ms-go/internal/port"
)

// persistable is the gate every fetched record goes through before it is stored.
func persistable(imdbID, title string) bool {
	return strings.TrimSpace(imdbID) != "" && strings.TrimSpace(title) != ""
}

func trimOr(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}

// applySummary overwrites the summary fields of m and leaves its details alone.
func applySummary(m *model.Movie, it port.SearchItem) {
	m.IMDbID = strings.TrimSpace(it.IMDbID)
	m.Title = strings.TrimSpace(it.Title)
	m.Year = trimOr(it.Year, model.YearUnknown)
	m.Type = it.Type
	m.Poster = strings.TrimSpace(it.Poster)
}

// movieFromDetail builds a full record out of a detail response.
// Every field is overwritten, so a blank upstream value clears the stored one.
func movieFromDetail(d *port.MovieDetail) *model.Movie {
	return &model.Movie{
		IMDbID: strings.TrimSpace(d.IMDbID),
		Title:  strings.TrimSpace(d.Title),
		Year:   trimOr(d.Year, model.YearUnknown),
		Type:   d.Type,
		Poster: strings.TrimSpace(d.Poster),
		Details: &model.MovieDetails{
			Plot:       strings.TrimSpace(d.Plot),
			Director:   strings.TrimSpace(d.Director),
			Actors:     strings.TrimSpace(d.Actors),
			Runtime:    strings.TrimSpace(d.Runtime),
			Genre:      strings.TrimSpace(d.Genre),
			IMDbRating: strings.TrimSpace(d.IMDbRating),
		},
	}
}

func detailFromMovie(m *model.Movie) *port.MovieDetail {
	out := &port.MovieDetail{
		Title:   m.Title,
		Year:    m.Year,
		IMDbID:  m.IMDbID,
		Type:    m.Type,
		Poster:  m.Poster,
		Success: true,
	}
	if d := m.Details; d != nil {
		out.Plot = d.Plot
		out.Director = d.Director
		out.Actors = d.Actors
		out.Runtime = d.Runtime
		out.Genre = d.Genre
		out.IMDbRating = d.IMDbRating
	}
	return out
}

func searchResultFromQuery(sq *model.SearchQuery) *port.SearchResult {
	out := &port.SearchResult{
		TotalResults: sq.TotalResults,
		Success:      sq.Response,
		Error:        sq.ErrorMessage,
	}
	for _, r := range sq.Results {
		out.Items = append(out.Items, port.SearchItem{
			Title:  r.Movie.Title,
			Year:   r.Movie.Year,
			IMDbID: r.Movie.IMDbID,
			Type:   r.Movie.Type,
			Poster: r.Movie.Poster,
		})
	}
	return out
}
