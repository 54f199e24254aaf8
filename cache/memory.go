package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is an in-process Cache used in tests and as a lightweight
// development backend. Expired entries are dropped lazily on access.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

func (mc *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	mc.mu.RLock()
	entry, ok := mc.entries[key]
	mc.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		mc.mu.Lock()
		delete(mc.entries, key)
		mc.mu.Unlock()
		return nil, false
	}
	return entry.value, true
}

func (mc *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) bool {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.entries[key] = memoryEntry{
		value:     append([]byte(nil), value...),
		expiresAt: time.Now().Add(ttl),
	}
	return true
}

func (mc *MemoryCache) Delete(_ context.Context, keys ...string) bool {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for _, key := range keys {
		delete(mc.entries, key)
	}
	return true
}

// DeleteByPattern supports the trailing-star globs the key builders
// produce ("posts:feed:*", "post:<id>*") plus exact keys.
func (mc *MemoryCache) DeleteByPattern(_ context.Context, pattern string) int {
	prefix, wildcard := strings.CutSuffix(pattern, "*")

	mc.mu.Lock()
	defer mc.mu.Unlock()

	deleted := 0
	for key := range mc.entries {
		if (wildcard && strings.HasPrefix(key, prefix)) || (!wildcard && key == pattern) {
			delete(mc.entries, key)
			deleted++
		}
	}
	return deleted
}

// Len reports the number of live entries, expired or not.
func (mc *MemoryCache) Len() int {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return len(mc.entries)
}
