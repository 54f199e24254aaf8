package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Cache is a best-effort accelerator. It is never authoritative: every
// operation may report failure and callers must be able to ignore it.
// Backend errors never surface as Go errors here — a broken backend
// behaves like a cache that always misses.
type Cache interface {
	// Get returns the raw value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores a value with a TTL. The returned bool indicates whether
	// the write took effect; callers are free to ignore it.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool
	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) bool
	// DeleteByPattern removes all keys matching a glob pattern (e.g.
	// "posts:feed:*") and returns how many were removed. Implementations
	// must enumerate keys incrementally, not with a blocking full scan.
	DeleteByPattern(ctx context.Context, pattern string) int
}

// GetOrCompute is the cache-aside primitive: check the cache, on miss run
// compute and populate the cache with the result. Compute errors propagate
// to the caller; the subsequent cache write is fire-and-forget.
func GetOrCompute[T any](ctx context.Context, c Cache, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	if raw, ok := c.Get(ctx, key); ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		// Undecodable entry, treat as a miss and recompute.
	}

	value, err := compute(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if raw, err := json.Marshal(value); err == nil {
		c.Set(ctx, key, raw, ttl)
	}
	return value, nil
}
