package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fhuszti/movies-ms-go/internal/api_context"
	"github.com/fhuszti/movies-ms-go/internal/mock"
	movieSvc "github.com/fhuszti/movies-ms-go/internal/usecase/movie"
)

func TestGetMovieHandler(t *testing.T) {
	body := []byte(`{"Title":"Batman","imdbID":"tt0096895","Response":"True"}`)

	tests := []struct {
		name             string
		ctxID            string
		renderErr        error
		wantStatus       int
		wantCacheControl string
		wantETag         string
		wantBody         string
	}{
		{
			name:             "happy path",
			ctxID:            "tt0096895",
			wantStatus:       http.StatusOK,
			wantCacheControl: "public, max-age=300",
			wantETag:         "\"abcd\"",
			wantBody:         string(body),
		},
		{
			name:             "not found",
			ctxID:            "tt9999999",
			renderErr:        movieSvc.ErrMovieNotFound,
			wantStatus:       http.StatusNotFound,
			wantCacheControl: "no-store, max-age=0, must-revalidate",
			wantBody:         `{"error":"Movie not found"}`,
		},
		{
			name:             "upstream failure also 404",
			ctxID:            "tt0096895",
			renderErr:        fmt.Errorf("%w: timeout", movieSvc.ErrUpstreamUnavailable),
			wantStatus:       http.StatusNotFound,
			wantCacheControl: "no-store, max-age=0, must-revalidate",
			wantBody:         `{"error":"Movie not found"}`,
		},
		{
			name:       "store failure also 404",
			ctxID:      "tt0096895",
			renderErr:  errors.New("db down"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Movie not found"}`,
		},
		{
			name:       "missing ID",
			wantStatus: http.StatusBadRequest,
			wantBody:   "ID is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rdr := &mock.HTTPRenderer{Body: body, Etag: "\"abcd\"", Err: tc.renderErr}
			handlerFn := GetMovieHandler(rdr, &mock.MovieGetter{})

			req := httptest.NewRequest(http.MethodGet, "/api/movies/"+tc.ctxID, nil)
			if tc.ctxID != "" {
				req = req.WithContext(context.WithValue(req.Context(), api_context.MovieIDKey, tc.ctxID))
			}
			rec := httptest.NewRecorder()

			handlerFn(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q; want application/json", ct)
			}
			if tc.wantCacheControl != "" {
				if cc := rec.Header().Get("Cache-Control"); cc != tc.wantCacheControl {
					t.Errorf("Cache-Control = %q; want %q", cc, tc.wantCacheControl)
				}
			}
			if et := rec.Header().Get("ETag"); et != tc.wantETag {
				t.Errorf("ETag = %q; want %q", et, tc.wantETag)
			}
			if !strings.Contains(rec.Body.String(), tc.wantBody) {
				t.Errorf("body = %q; want to contain %q", rec.Body.String(), tc.wantBody)
			}
			if tc.ctxID != "" && rdr.GotID != tc.ctxID {
				t.Errorf("renderer got ID %q; want %q", rdr.GotID, tc.ctxID)
			}
		})
	}
}

func TestGetMovieHandler_IfNoneMatch(t *testing.T) {
	rdr := &mock.HTTPRenderer{Body: []byte(`{"Response":"True"}`), Etag: "\"abcd\""}
	handlerFn := GetMovieHandler(rdr, &mock.MovieGetter{})

	req := httptest.NewRequest(http.MethodGet, "/api/movies/tt0096895", nil)
	req = req.WithContext(context.WithValue(req.Context(), api_context.MovieIDKey, "tt0096895"))
	req.Header.Set("If-None-Match", "\"abcd\"")
	rec := httptest.NewRecorder()

	handlerFn(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusNotModified)
	}
	if et := rec.Header().Get("ETag"); et != "\"abcd\"" {
		t.Errorf("ETag = %q; want %q", et, "\"abcd\"")
	}
}
