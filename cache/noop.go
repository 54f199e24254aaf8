package cache

import (
	"context"
	"time"
)

// NoopCache always misses. It is the degraded mode used when no cache
// backend is configured: every read falls through to the store and the
// system behaves exactly as if the cache were unavailable.
type NoopCache struct{}

func NewNoopCache() NoopCache { return NoopCache{} }

func (NoopCache) Get(context.Context, string) ([]byte, bool) { return nil, false }

func (NoopCache) Set(context.Context, string, []byte, time.Duration) bool { return false }

func (NoopCache) Delete(context.Context, ...string) bool { return false }

func (NoopCache) DeleteByPattern(context.Context, string) int { return 0 }
