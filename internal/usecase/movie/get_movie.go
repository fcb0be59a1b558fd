package movie

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fhuszti/movies-ms-go/internal/logger"
	"github.com/fhuszti/movies-ms-go/internal/metrics"
	"github.com/fhuszti/movies-ms-go/internal/port"
)

type movieGetterSrv struct {
	repo     port.MovieRepository
	provider port.MetadataProvider
	metrics  *metrics.Metrics
}

// compile-time check: *movieGetterSrv must satisfy port.MovieGetter
var _ port.MovieGetter = (*movieGetterSrv)(nil)

func NewMovieGetter(repo port.MovieRepository, provider port.MetadataProvider, m *metrics.Metrics) port.MovieGetter {
	return &movieGetterSrv{repo, provider, m}
}

// GetMovie answers from the store only when the stored movie carries its detail
// bundle. A summary-only row, as left by a search, goes to the provider.
func (s *movieGetterSrv) GetMovie(ctx context.Context, in port.GetMovieInput) (*port.MovieDetail, error) {
	stored, err := s.repo.GetMovieByID(ctx, in.ID)
	switch {
	case err == nil && stored.HasDetails():
		s.metrics.CacheLookup(metrics.KindDetail, metrics.OutcomeHit)
		logger.Debugf(ctx, "movie %q served from the store", in.ID)
		return detailFromMovie(stored), nil
	case err == nil:
		s.metrics.CacheLookup(metrics.KindDetail, metrics.OutcomePartial)
	case errors.Is(err, sql.ErrNoRows):
		s.metrics.CacheLookup(metrics.KindDetail, metrics.OutcomeMiss)
	default:
		s.metrics.CacheLookup(metrics.KindDetail, metrics.OutcomeError)
		return nil, fmt.Errorf("look up movie %q: %w", in.ID, err)
	}

	fetched, err := s.provider.LookupByID(ctx, in.ID)
	if err != nil {
		logger.Warnf(ctx, "upstream lookup for %q failed: %v", in.ID, err)
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	if !fetched.Success {
		logger.Debugf(ctx, "upstream has no movie %q: %s", in.ID, fetched.Error)
		return nil, ErrMovieNotFound
	}

	if !persistable(fetched.IMDbID, fetched.Title) {
		logger.Debugf(ctx, "not storing movie %q: missing key or title", in.ID)
		return fetched, nil
	}

	movie := movieFromDetail(fetched)
	err = s.repo.WithinTx(ctx, func(tx port.MovieRepository) error {
		return tx.UpsertMovie(ctx, movie)
	})
	if err != nil {
		s.metrics.WritebackFailure(metrics.KindDetail)
		logger.Warnf(ctx, "could not store movie %q: %v", movie.IMDbID, err)
	}

	return fetched, nil
}
