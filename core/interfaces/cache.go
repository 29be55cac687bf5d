// Package interfaces defines the contracts the core packages depend on.
// Infrastructure packages implement them; tests replace them with func-field mocks.
package interfaces

import (
	"context"
	"time"
)

// Cache stores serialized listing payloads (slug lists, category counts).
// Implementations are the in-memory go-cache client and the Redis client.
//
// Example usage:
//
//	data, err := cache.Get(ctx, "paths:news")
//	if err != nil {
//		// miss: rebuild from the store
//	}
//	err = cache.Set(ctx, "paths:news", payload, 5*time.Minute)
//	err = cache.Delete(ctx, "paths:news")
type Cache interface {
	// Get returns the cached bytes, or an error on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A zero ttl keeps the value until deleted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
