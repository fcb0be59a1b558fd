package movie

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/fhuszti/movies-ms-go/internal/model"
	"github.com/fhuszti/movies-ms-go/internal/port"
)

func batmanDetail() *port.MovieDetail {
	return &port.MovieDetail{
		Title:      "Batman Begins",
		Year:       "2005",
		IMDbID:     "tt0372784",
		Type:       model.MediaTypeMovie,
		Poster:     "http://a",
		Plot:       " After training with his mentor... ",
		Director:   "Christopher Nolan",
		Actors:     "Christian Bale, Michael Caine",
		Runtime:    "140 min",
		Genre:      "Action",
		IMDbRating: "8.2",
		Success:    true,
	}
}

func TestGetMovie_HitWithDetails(t *testing.T) {
	repo := newMemRepo()
	repo.movies["tt0372784"] = model.Movie{
		IMDbID: "tt0372784", Title: "Batman Begins", Year: "2005", Type: model.MediaTypeMovie,
		Details: &model.MovieDetails{Plot: "p", Director: "d"},
	}
	provider := &mockProvider{}
	svc := NewMovieGetter(repo, provider, nil)

	res, err := svc.GetMovie(context.Background(), port.GetMovieInput{ID: "tt0372784"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.lookupCalls != 0 {
		t.Errorf("expected no upstream call, got %d", provider.lookupCalls)
	}
	if !res.Success || res.Title != "Batman Begins" || res.Plot != "p" || res.Director != "d" {
		t.Errorf("unexpected detail: %+v", res)
	}
}

func TestGetMovie_SummaryOnlyIsPartial(t *testing.T) {
	repo := newMemRepo()
	repo.movies["tt0372784"] = model.Movie{IMDbID: "tt0372784", Title: "Batman Begins", Year: "2005", Type: model.MediaTypeMovie, Poster: "http://a"}
	provider := &mockProvider{lookupOut: batmanDetail()}
	svc := NewMovieGetter(repo, provider, nil)

	res, err := svc.GetMovie(context.Background(), port.GetMovieInput{ID: "tt0372784"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.lookupCalls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", provider.lookupCalls)
	}
	if res != provider.lookupOut {
		t.Error("expected fetched payload to be returned")
	}

	got := repo.movies["tt0372784"]
	if got.Title != "Batman Begins" || got.Year != "2005" || got.Poster != "http://a" {
		t.Errorf("summary fields lost: %+v", got)
	}
	wantDetails := &model.MovieDetails{
		Plot: "After training with his mentor...", Director: "Christopher Nolan",
		Actors: "Christian Bale, Michael Caine", Runtime: "140 min", Genre: "Action", IMDbRating: "8.2",
	}
	if !reflect.DeepEqual(got.Details, wantDetails) {
		t.Errorf("details = %+v; want %+v", got.Details, wantDetails)
	}

	// now a hit
	if _, err := svc.GetMovie(context.Background(), port.GetMovieInput{ID: "tt0372784"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.lookupCalls != 1 {
		t.Errorf("expected the second lookup to be served from the store, got %d calls", provider.lookupCalls)
	}
}

func TestGetMovie_FullOverwrite(t *testing.T) {
	repo := newMemRepo()
	repo.movies["tt1"] = model.Movie{IMDbID: "tt1", Title: "Old", Year: "1999", Poster: "http://old"}
	provider := &mockProvider{lookupOut: &port.MovieDetail{IMDbID: "tt1", Title: "New", Success: true}}
	svc := NewMovieGetter(repo, provider, nil)

	if _, err := svc.GetMovie(context.Background(), port.GetMovieInput{ID: "tt1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.Movie{IMDbID: "tt1", Title: "New", Year: model.YearUnknown, Details: &model.MovieDetails{}}
	if got := repo.movies["tt1"]; !reflect.DeepEqual(got, want) {
		t.Errorf("stored movie = %+v; want %+v", got, want)
	}
}

func TestGetMovie_Errors(t *testing.T) {
	netErr := errors.New("timeout")

	tests := []struct {
		name     string
		provider *mockProvider
		wantErr  error
	}{
		{
			name:     "upstream not found",
			provider: &mockProvider{lookupOut: &port.MovieDetail{Success: false, Error: "Incorrect IMDb ID."}},
			wantErr:  ErrMovieNotFound,
		},
		{
			name:     "transport failure",
			provider: &mockProvider{lookupErr: netErr},
			wantErr:  ErrUpstreamUnavailable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMemRepo()
			svc := NewMovieGetter(repo, tc.provider, nil)

			res, err := svc.GetMovie(context.Background(), port.GetMovieInput{ID: "tt9999999"})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if res != nil {
				t.Errorf("expected nil result, got %+v", res)
			}
			if len(repo.movies) != 0 || repo.upsertCalls != 0 {
				t.Errorf("nothing must be stored, got %+v", repo.movies)
			}
		})
	}
}

func TestGetMovie_GateFailureSkipsPersistence(t *testing.T) {
	repo := newMemRepo()
	fetched := &port.MovieDetail{IMDbID: "tt1", Title: "   ", Plot: "p", Success: true}
	svc := NewMovieGetter(repo, &mockProvider{lookupOut: fetched}, nil)

	res, err := svc.GetMovie(context.Background(), port.GetMovieInput{ID: "tt1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != fetched {
		t.Error("expected fetched payload to be returned")
	}
	if repo.upsertCalls != 0 {
		t.Errorf("expected no upsert, got %d", repo.upsertCalls)
	}
}

func TestGetMovie_WritebackFailureStillReturnsData(t *testing.T) {
	repo := newMemRepo()
	repo.upsertErr = errors.New("disk full")
	provider := &mockProvider{lookupOut: batmanDetail()}
	svc := NewMovieGetter(repo, provider, nil)

	res, err := svc.GetMovie(context.Background(), port.GetMovieInput{ID: "tt0372784"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != provider.lookupOut {
		t.Error("expected fetched payload to be returned")
	}
}

func TestGetMovie_StoreReadError(t *testing.T) {
	repo := newMemRepo()
	readErr := errors.New("db down")
	repo.getMovieErr = readErr
	provider := &mockProvider{lookupOut: batmanDetail()}
	svc := NewMovieGetter(repo, provider, nil)

	_, err := svc.GetMovie(context.Background(), port.GetMovieInput{ID: "tt0372784"})
	if !errors.Is(err, readErr) {
		t.Fatalf("expected %v, got %v", readErr, err)
	}
	if provider.lookupCalls != 0 {
		t.Error("upstream must not be called when the store read fails")
	}
}
