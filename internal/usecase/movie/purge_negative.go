package movie

import (
	"context"
	"fmt"
	"time"

	"github.com/fhuszti/movies-ms-go/internal/cache"
	"github.com/fhuszti/movies-ms-go/internal/logger"
	"github.com/fhuszti/movies-ms-go/internal/port"
)

type negativePurgerSrv struct {
	repo  port.MovieRepository
	cache port.Cache
	now   func() time.Time
}

// compile-time check: *negativePurgerSrv must satisfy port.NegativePurger
var _ port.NegativePurger = (*negativePurgerSrv)(nil)

func NewNegativePurger(repo port.MovieRepository, c port.Cache) port.NegativePurger {
	return &negativePurgerSrv{repo: repo, cache: c, now: time.Now}
}

// PurgeNegativeSearches deletes negative searches stored more than olderThan ago,
// along with their rendered responses, so the next identical search asks upstream again.
func (s *negativePurgerSrv) PurgeNegativeSearches(ctx context.Context, olderThan time.Duration) (int, error) {
	if olderThan < 0 {
		return 0, fmt.Errorf("olderThan must not be negative, got %s", olderThan)
	}

	texts, err := s.repo.DeleteNegativeSearchQueriesBefore(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("delete negative searches: %w", err)
	}

	for _, text := range texts {
		if err := s.cache.DeleteResponse(ctx, cache.SearchKey(text)); err != nil {
			logger.Warnf(ctx, "failed to evict cached response for search %q: %v", text, err)
		}
	}
	logger.Infof(ctx, "purged %d negative searches", len(texts))

	return len(texts), nil
}
