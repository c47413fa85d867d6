package store

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cached is a read-through decorator over a KV backend. The collections are
// read once at repository construction and rarely after, so the cache mostly
// shields the session bootstrap path from repeated decrypt work.
type Cached struct {
	inner KV
	cache *gocache.Cache
}

func NewCached(inner KV) *Cached {
	return &Cached{inner: inner, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c *Cached) Get(ctx context.Context, key string) ([]byte, error) {
	if value, found := c.cache.Get(key); found {
		return value.([]byte), nil
	}

	value, err := c.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if value != nil {
		c.cache.Set(key, value, gocache.DefaultExpiration)
	}
	return value, nil
}

func (c *Cached) Set(ctx context.Context, key string, value []byte) error {
	if err := c.inner.Set(ctx, key, value); err != nil {
		c.cache.Delete(key)
		return err
	}
	c.cache.Set(key, value, gocache.DefaultExpiration)
	return nil
}

func (c *Cached) Delete(ctx context.Context, key string) error {
	c.cache.Delete(key)
	return c.inner.Delete(ctx, key)
}
