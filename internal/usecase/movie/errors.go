package movie

import "errors"

var (
	// ErrUpstreamUnavailable means the provider call failed outright. Nothing is cached.
	ErrUpstreamUnavailable = errors.New("upstream: unavailable")
	// ErrMovieNotFound means the provider reported no movie for the requested ID.
	ErrMovieNotFound = errors.New("upstream: movie not found")
)
