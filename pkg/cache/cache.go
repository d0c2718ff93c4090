// Package cache stores rendered exports keyed by their source, so exporting
// an unchanged outline again skips the renderer.
//
// [FileCache] keeps entries as JSON files under a directory (the CLI uses
// $XDG_CACHE_HOME/outloud). [NullCache] disables caching.
//
//	c, err := cache.NewFileCache(dir)
//	key := cache.Key("svg", dot)
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return data, nil
//	}
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the entry for key and whether it was found. Expired and
	// unreadable entries count as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
