package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fhuszti/movies-ms-go/internal/port"
	"github.com/redis/go-redis/v9"
)

// Cache keeps rendered responses and their ETags in Redis.
type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

// Ping checks that Redis is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) GetResponse(ctx context.Context, key string) ([]byte, error) {
	log.Printf("getting cached response for %q...", key)

	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtag(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, etagKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetResponse(ctx context.Context, key string, data []byte, ttl time.Duration) {
	log.Printf("caching response for %q for %s...", key, ttl)

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("redis set failed for %q: %v", key, err)
	}
}

func (c *Cache) SetEtag(ctx context.Context, key string, etag string, ttl time.Duration) {
	if err := c.client.Set(ctx, etagKey(key), etag, ttl).Err(); err != nil {
		log.Printf("redis set failed for etag of %q: %v", key, err)
	}
}

// DeleteResponse drops the response and its ETag.
func (c *Cache) DeleteResponse(ctx context.Context, key string) error {
	log.Printf("deleting cached response for %q...", key)

	if err := c.client.Del(ctx, key, etagKey(key)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}
