package movie

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fhuszti/movies-ms-go/internal/logger"
	"github.com/fhuszti/movies-ms-go/internal/metrics"
	"github.com/fhuszti/movies-ms-go/internal/model"
	"github.com/fhuszti/movies-ms-go/internal/port"
	"github.com/fhuszti/movies-ms-go/internal/uuid"
)

type movieSearcherSrv struct {
	repo     port.MovieRepository
	provider port.MetadataProvider
	newID    uuid.Gen
	metrics  *metrics.Metrics
	tasks    port.TaskDispatcher
}

// compile-time check: *movieSearcherSrv must satisfy port.MovieSearcher
var _ port.MovieSearcher = (*movieSearcherSrv)(nil)

// NewMovieSearcher builds the cache-aside search use case.
// When tasks is non-nil, every movie first stored without details gets a
// hydrate task once the write-back has committed.
func NewMovieSearcher(
	repo port.MovieRepository,
	provider port.MetadataProvider,
	newID uuid.Gen,
	m *metrics.Metrics,
	tasks port.TaskDispatcher,
) port.MovieSearcher {
	return &movieSearcherSrv{repo, provider, newID, m, tasks}
}

// SearchMovies answers from a stored query when one exists, negative entries included.
// Otherwise it asks the provider, stores what it got back and returns the fetched
// response untouched.
func (s *movieSearcherSrv) SearchMovies(ctx context.Context, in port.SearchMoviesInput) (*port.SearchResult, error) {
	stored, err := s.repo.GetSearchQueryByText(ctx, in.Query)
	switch {
	case err == nil:
		s.metrics.CacheLookup(metrics.KindSearch, metrics.OutcomeHit)
		logger.Debugf(ctx, "search %q served from the store (response=%t)", in.Query, stored.Response)
		return searchResultFromQuery(stored), nil
	case !errors.Is(err, sql.ErrNoRows):
		s.metrics.CacheLookup(metrics.KindSearch, metrics.OutcomeError)
		return nil, fmt.Errorf("look up search %q: %w", in.Query, err)
	}
	s.metrics.CacheLookup(metrics.KindSearch, metrics.OutcomeMiss)

	fetched, err := s.provider.SearchByText(ctx, in.Query)
	if err != nil {
		logger.Warnf(ctx, "upstream search for %q failed: %v", in.Query, err)
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	toHydrate, err := s.writeBack(ctx, in.Query, fetched)
	if err != nil {
		s.metrics.WritebackFailure(metrics.KindSearch)
		logger.Warnf(ctx, "could not store search %q: %v", in.Query, err)
		return fetched, nil
	}
	s.prefetch(ctx, toHydrate)

	return fetched, nil
}

// writeBack stores the query with its valid, distinct results in one transaction.
// It returns the keys of stored movies that still lack a detail bundle.
func (s *movieSearcherSrv) writeBack(ctx context.Context, text string, fetched *port.SearchResult) ([]string, error) {
	sq := &model.SearchQuery{
		ID:           s.newID(),
		SearchText:   text,
		TotalResults: strings.TrimSpace(fetched.TotalResults),
		Response:     fetched.Success,
	}
	if !fetched.Success {
		sq.ErrorMessage = strings.TrimSpace(fetched.Error)
	}

	var toHydrate []string
	err := s.repo.WithinTx(ctx, func(tx port.MovieRepository) error {
		if !fetched.Success {
			return tx.CreateSearchQuery(ctx, sq)
		}

		seen := make(map[string]bool, len(fetched.Items))
		for i, item := range fetched.Items {
			if !persistable(item.IMDbID, item.Title) {
				logger.Debugf(ctx, "skipping search item #%d of %q: missing key or title", i, text)
				continue
			}
			key := strings.TrimSpace(item.IMDbID)
			if seen[key] {
				continue
			}
			seen[key] = true

			movie, err := tx.GetMovieByID(ctx, key)
			if errors.Is(err, sql.ErrNoRows) {
				movie = &model.Movie{}
			} else if err != nil {
				return fmt.Errorf("load movie %q: %w", key, err)
			}
			applySummary(movie, item)
			if err := tx.UpsertMovie(ctx, movie); err != nil {
				return fmt.Errorf("upsert movie %q: %w", key, err)
			}

			sq.Results = append(sq.Results, model.SearchResult{IMDbID: key, Position: i})
			if !movie.HasDetails() {
				toHydrate = append(toHydrate, key)
			}
		}
		return tx.CreateSearchQuery(ctx, sq)
	})
	if err != nil {
		return nil, err
	}

	return toHydrate, nil
}

func (s *movieSearcherSrv) prefetch(ctx context.Context, ids []string) {
	if s.tasks == nil {
		return
	}
	for _, id := range ids {
		if err := s.tasks.EnqueueHydrateMovie(ctx, id); err != nil {
			logger.Warnf(ctx, "failed to enqueue hydrate task for movie %q: %v", id, err)
		}
	}
}
