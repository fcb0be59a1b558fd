package renderer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"testing"
	"time"

	"github.com/fhuszti/movies-ms-go/internal/cache"
	"github.com/fhuszti/movies-ms-go/internal/dto"
	"github.com/fhuszti/movies-ms-go/internal/mock"
	"github.com/fhuszti/movies-ms-go/internal/model"
	"github.com/fhuszti/movies-ms-go/internal/port"
)

const ttl = 5 * time.Minute

func TestRenderSearchMovies_Cases(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit", func(t *testing.T) {
		c := &mock.Cache{Response: []byte(`{"Response":"True"}`), Etag: "\"1234\""}
		r := NewHTTPRenderer(c, ttl)
		searcher := &mock.MovieSearcher{}

		out, etag, err := r.RenderSearchMovies(ctx, searcher, "batman")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out) != `{"Response":"True"}` {
			t.Errorf("raw mismatch: got %s", out)
		}
		if etag != "\"1234\"" {
			t.Errorf("etag mismatch: got %s", etag)
		}
		if c.GotKey != cache.SearchKey("batman") {
			t.Errorf("key mismatch: got %q", c.GotKey)
		}
		if searcher.Called {
			t.Error("searcher should not be called on cache hit")
		}
		if c.SetResponseCalled || c.SetEtagCalled {
			t.Error("cache should not be set on hit")
		}
	})

	t.Run("cache miss", func(t *testing.T) {
		c := &mock.Cache{}
		res := &port.SearchResult{
			Items:        []port.SearchItem{{Title: "Batman", Year: "1989", IMDbID: "tt0096895", Type: model.MediaTypeMovie}},
			TotalResults: "1",
			Success:      true,
		}
		searcher := &mock.MovieSearcher{Out: res}
		r := NewHTTPRenderer(c, ttl)

		out, etag, err := r.RenderSearchMovies(ctx, searcher, "batman")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected, _ := json.Marshal(dto.FromSearchResult(res))
		if string(out) != string(expected) {
			t.Errorf("raw mismatch: got %s want %s", out, expected)
		}
		expEtag := fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(expected))
		if etag != expEtag {
			t.Errorf("etag mismatch: got %s want %s", etag, expEtag)
		}
		if searcher.Got.Query != "batman" {
			t.Errorf("query mismatch: got %q", searcher.Got.Query)
		}
		if !c.SetResponseCalled || !c.SetEtagCalled {
			t.Error("cache should be written on miss")
		}
		if string(c.Response) != string(expected) || c.Etag != expEtag {
			t.Errorf("cached values mismatch: %s %s", c.Response, c.Etag)
		}
		if c.GotTTL != ttl {
			t.Errorf("ttl mismatch: got %v want %v", c.GotTTL, ttl)
		}
	})

	t.Run("cached negative is rendered", func(t *testing.T) {
		c := &mock.Cache{}
		searcher := &mock.MovieSearcher{Out: &port.SearchResult{Success: false, Error: "Movie not found!"}}
		r := NewHTTPRenderer(c, ttl)

		out, _, err := r.RenderSearchMovies(ctx, searcher, "zzzz")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"Search":[],"totalResults":"","Response":"False","Error":"Movie not found!"}`
		if string(out) != want {
			t.Errorf("got %s want %s", out, want)
		}
		if !c.SetResponseCalled {
			t.Error("negative result should be cached")
		}
	})

	t.Run("searcher error", func(t *testing.T) {
		c := &mock.Cache{}
		searcher := &mock.MovieSearcher{Err: errors.New("upstream down")}
		r := NewHTTPRenderer(c, ttl)

		if _, _, err := r.RenderSearchMovies(ctx, searcher, "batman"); err == nil {
			t.Fatal("expected error, got nil")
		}
		if c.SetResponseCalled || c.SetEtagCalled {
			t.Error("cache should not be written on error")
		}
	})
}

func TestRenderGetMovie_Cases(t *testing.T) {
	ctx := context.Background()
	id := "tt0096895"

	t.Run("cache hit", func(t *testing.T) {
		c := &mock.Cache{Response: []byte(`{"ok":true}`), Etag: "\"abcd\""}
		r := NewHTTPRenderer(c, ttl)
		getter := &mock.MovieGetter{}

		out, etag, err := r.RenderGetMovie(ctx, getter, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out) != `{"ok":true}` || etag != "\"abcd\"" {
			t.Errorf("unexpected output: %s %s", out, etag)
		}
		if c.GotKey != cache.MovieKey(id) {
			t.Errorf("key mismatch: got %q", c.GotKey)
		}
		if getter.Called {
			t.Error("getter should not be called on cache hit")
		}
	})

	t.Run("cache miss", func(t *testing.T) {
		c := &mock.Cache{}
		detail := &port.MovieDetail{Title: "Batman", IMDbID: id, Plot: "plot", Success: true}
		getter := &mock.MovieGetter{Out: detail}
		r := NewHTTPRenderer(c, ttl)

		out, etag, err := r.RenderGetMovie(ctx, getter, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected, _ := json.Marshal(dto.FromMovieDetail(detail))
		if string(out) != string(expected) {
			t.Errorf("raw mismatch: got %s want %s", out, expected)
		}
		if etag != fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(expected)) {
			t.Errorf("etag mismatch: got %s", etag)
		}
		if getter.Got.ID != id {
			t.Errorf("id mismatch: got %q", getter.Got.ID)
		}
		if !c.SetResponseCalled || !c.SetEtagCalled {
			t.Error("cache should be written on miss")
		}
	})

	t.Run("getter error", func(t *testing.T) {
		c := &mock.Cache{}
		getter := &mock.MovieGetter{Err: errors.New("fail")}
		r := NewHTTPRenderer(c, ttl)

		if _, _, err := r.RenderGetMovie(ctx, getter, id); err == nil {
			t.Fatal("expected error, got nil")
		}
		if !getter.Called {
			t.Error("getter should be called when cache misses")
		}
		if c.SetResponseCalled || c.SetEtagCalled {
			t.Error("cache should not be written on error")
		}
	})

	t.Run("cache error", func(t *testing.T) {
		c := &mock.Cache{GetResponseErr: errors.New("boom")}
		getter := &mock.MovieGetter{Out: &port.MovieDetail{IMDbID: id, Success: true}}
		r := NewHTTPRenderer(c, ttl)

		if _, _, err := r.RenderGetMovie(ctx, getter, id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !getter.Called {
			t.Error("getter should be called when cache returns error")
		}
		if !c.SetResponseCalled || !c.SetEtagCalled {
			t.Error("cache should be written when missing due to error")
		}
	})
}
