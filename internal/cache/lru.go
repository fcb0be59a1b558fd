package cache

import (
	"context"
	"time"

	"github.com/fhuszti/movies-ms-go/internal/port"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRUCache is the in-process response cache used when Redis is not configured.
// Entries share the TTL given at construction; the per-call ttl is ignored.
type LRUCache struct {
	entries *expirable.LRU[string, lruEntry]
}

type lruEntry struct {
	body []byte
	etag string
}

// compile-time check: *LRUCache must satisfy port.Cache
var _ port.Cache = (*LRUCache)(nil)

func NewLRU(size int, ttl time.Duration) *LRUCache {
	return &LRUCache{entries: expirable.NewLRU[string, lruEntry](size, nil, ttl)}
}

func (c *LRUCache) GetResponse(ctx context.Context, key string) ([]byte, error) {
	e, ok := c.entries.Get(key)
	if !ok || e.body == nil {
		return nil, nil
	}
	return e.body, nil
}

func (c *LRUCache) GetEtag(ctx context.Context, key string) (string, error) {
	e, ok := c.entries.Peek(key)
	if !ok {
		return "", nil
	}
	return e.etag, nil
}

func (c *LRUCache) SetResponse(ctx context.Context, key string, data []byte, ttl time.Duration) {
	e, _ := c.entries.Peek(key)
	e.body = data
	c.entries.Add(key, e)
}

func (c *LRUCache) SetEtag(ctx context.Context, key string, etag string, ttl time.Duration) {
	e, _ := c.entries.Peek(key)
	e.etag = etag
	c.entries.Add(key, e)
}

func (c *LRUCache) DeleteResponse(ctx context.Context, key string) error {
	c.entries.Remove(key)
	return nil
}
