package mock

import (
	"context"
	"time"
)

// Cache implements port.Cache for tests.
type Cache struct {
	// stored values
	Response []byte
	Etag     string

	// captured inputs
	GotKey      string
	GotTTL      time.Duration
	DeletedKeys []string

	// errors
	GetResponseErr error
	GetEtagErr     error
	DeleteErr      error

	// call flags
	GetResponseCalled bool
	GetEtagCalled     bool
	SetResponseCalled bool
	SetEtagCalled     bool
}

func (c *Cache) GetResponse(ctx context.Context, key string) ([]byte, error) {
	c.GetResponseCalled = true
	c.GotKey = key
	if c.GetResponseErr != nil {
		return nil, c.GetResponseErr
	}
	return c.Response, nil
}

func (c *Cache) GetEtag(ctx context.Context, key string) (string, error) {
	c.GetEtagCalled = true
	if c.GetEtagErr != nil {
		return "", c.GetEtagErr
	}
	return c.Etag, nil
}

func (c *Cache) SetResponse(ctx context.Context, key string, data []byte, ttl time.Duration) {
	c.SetResponseCalled = true
	c.GotKey = key
	c.GotTTL = ttl
	c.Response = data
}

func (c *Cache) SetEtag(ctx context.Context, key string, etag string, ttl time.Duration) {
	c.SetEtagCalled = true
	c.Etag = etag
}

func (c *Cache) DeleteResponse(ctx context.Context, key string) error {
	c.DeletedKeys = append(c.DeletedKeys, key)
	return c.DeleteErr
}
