package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache()

	_, ok := mc.Get(ctx, "missing")
	assert.False(t, ok)

	require.True(t, mc.Set(ctx, "k", []byte("v"), time.Minute))
	got, ok := mc.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache()

	mc.Set(ctx, "k", []byte("v"), 20*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	_, ok := mc.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryCacheDeleteByPattern(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache()

	mc.Set(ctx, "posts:feed:u1:start:10", []byte("a"), time.Minute)
	mc.Set(ctx, "posts:feed:u2:start:10", []byte("b"), time.Minute)
	mc.Set(ctx, "post:p1", []byte("c"), time.Minute)
	mc.Set(ctx, "post:p1:likes:count", []byte("d"), time.Minute)

	assert.Equal(t, 2, mc.DeleteByPattern(ctx, "posts:feed:*"))
	assert.Equal(t, 2, mc.DeleteByPattern(ctx, "post:p1*"))
	assert.Equal(t, 0, mc.Len())
}

func TestMemoryCacheDeleteByExactKey(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache()

	mc.Set(ctx, "post:p1", []byte("a"), time.Minute)
	mc.Set(ctx, "post:p10", []byte("b"), time.Minute)

	assert.Equal(t, 1, mc.DeleteByPattern(ctx, "post:p1"))
	_, ok := mc.Get(ctx, "post:p10")
	assert.True(t, ok)
}

func TestGetOrComputePopulatesOnMiss(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache()

	calls := 0
	compute := func(context.Context) (int64, error) {
		calls++
		return 7, nil
	}

	got, err := GetOrCompute(ctx, mc, "n", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)
	assert.Equal(t, 1, calls)

	got, err = GetOrCompute(ctx, mc, "n", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)
	assert.Equal(t, 1, calls, "hit must not recompute")
}

func TestGetOrComputeErrorPropagatesAndIsNotCached(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache()

	boom := errors.New("store down")
	_, err := GetOrCompute(ctx, mc, "n", time.Minute, func(context.Context) (int64, error) {
		return 0, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, mc.Len(), "failed computes must not be cached")

	got, err := GetOrCompute(ctx, mc, "n", time.Minute, func(context.Context) (int64, error) {
		return 3, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)
}

func TestGetOrComputeRecomputesUndecodableEntry(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache()

	type payload struct {
		Name string `json:"name"`
	}

	mc.Set(ctx, "k", []byte("{not json"), time.Minute)

	got, err := GetOrCompute(ctx, mc, "k", time.Minute, func(context.Context) (payload, error) {
		return payload{Name: "fresh"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", got.Name)

	// The bad entry was overwritten with the recomputed value.
	raw, ok := mc.Get(ctx, "k")
	require.True(t, ok)
	assert.JSONEq(t, `{"name":"fresh"}`, string(raw))
}

func TestNoopCacheAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	nc := NewNoopCache()

	assert.False(t, nc.Set(ctx, "k", []byte("v"), time.Minute))
	_, ok := nc.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, nc.DeleteByPattern(ctx, "*"))
}
