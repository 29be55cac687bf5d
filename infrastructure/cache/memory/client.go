// ABOUTME: In-memory listing cache backed by patrickmn/go-cache
// ABOUTME: Used by a single content service instance when Redis is not configured

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrCacheMiss is returned by Get for missing or expired keys
var ErrCacheMiss = errors.New("cache: key not found")

// MemoryCache implements interfaces.Cache in process memory
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a cache whose expired entries are purged every
// cleanupInterval. A zero interval never purges; expired keys still miss.
func NewMemoryCache(cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

// Get returns a copy of the cached bytes
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, ok := c.cache.Get(key)
	if !ok {
		return nil, ErrCacheMiss
	}
	stored := value.([]byte)
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a copy of value. A zero ttl keeps it until deleted.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return errors.New("key cannot be empty")
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	expiration := ttl
	if ttl <= 0 {
		expiration = gocache.NoExpiration
	}
	c.cache.Set(key, stored, expiration)
	return nil
}

// Delete removes key
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.cache.Delete(key)
	return nil
}

// ItemCount returns the number of entries, expired ones included until purged
func (c *MemoryCache) ItemCount() int {
	return c.cache.ItemCount()
}
