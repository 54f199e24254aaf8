package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// opTimeout bounds every cache round trip. A slow backend must never hold
// up the request path, so a timeout is reported as a miss.
const opTimeout = 500 * time.Millisecond

// scanBatchSize keeps pattern deletion incremental so SCAN never blocks
// the backend the way KEYS would.
const scanBatchSize = 100

// RedisCache implements Cache on top of a Redis backend.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (rc *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	val, err := rc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("cache GET error for key %q: %v", key, err)
		return nil, false
	}
	return val, true
}

func (rc *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := rc.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("cache SET error for key %q: %v", key, err)
		return false
	}
	return true
}

func (rc *RedisCache) Delete(ctx context.Context, keys ...string) bool {
	if len(keys) == 0 {
		return true
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := rc.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache DEL error for keys %v: %v", keys, err)
		return false
	}
	return true
}

func (rc *RedisCache) DeleteByPattern(ctx context.Context, pattern string) int {
	// SCAN may take several round trips, so give it a little more room
	// than a single operation.
	ctx, cancel := context.WithTimeout(ctx, 4*opTimeout)
	defer cancel()

	deleted := 0
	batch := make([]string, 0, scanBatchSize)

	iter := rc.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatchSize {
			deleted += rc.deleteBatch(ctx, batch)
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("cache SCAN error for pattern %q: %v", pattern, err)
	}
	if len(batch) > 0 {
		deleted += rc.deleteBatch(ctx, batch)
	}
	return deleted
}

func (rc *RedisCache) deleteBatch(ctx context.Context, keys []string) int {
	n, err := rc.client.Del(ctx, keys...).Result()
	if err != nil {
		log.Printf("cache DEL error during pattern deletion: %v", err)
		return 0
	}
	return int(n)
}
