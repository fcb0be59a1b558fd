package port

import (
	"context"
	"time"
)

// Cache stores rendered response bodies and their ETags.
// Set operations are best effort: failures are logged, never returned.
type Cache interface {
	GetResponse(ctx context.Context, key string) ([]byte, error)
	GetEtag(ctx context.Context, key string) (string, error)
	SetResponse(ctx context.Context, key string, data []byte, ttl time.Duration)
	SetEtag(ctx context.Context, key string, etag string, ttl time.Duration)
	DeleteResponse(ctx context.Context, key string) error
}
