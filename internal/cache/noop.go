package cache

import (
	"context"
	"time"

	"github.com/fhuszti/movies-ms-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetResponse(ctx context.Context, key string) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtag(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (n *NoopCache) SetResponse(ctx context.Context, key string, data []byte, ttl time.Duration) {
}

func (n *NoopCache) SetEtag(ctx context.Context, key string, etag string, ttl time.Duration) {
}

func (n *NoopCache) DeleteResponse(ctx context.Context, key string) error { return nil }
