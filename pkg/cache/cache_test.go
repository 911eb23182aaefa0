package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyDeterministic(t *testing.T) {
	k1 := Key(`{service="api"}`, "1", "2", map[string]string{"limit": "500", "step": "60s"})
	k2 := Key(`{service="api"}`, "1", "2", map[string]string{"step": "60s", "limit": "500"})
	assert.Equal(t, k1, k2, "extras order must not change the key")

	k3 := Key(`{service="api"}`, "1", "3", nil)
	assert.NotEqual(t, k1, k3)
}

func TestGetSetHitMiss(t *testing.T) {
	c := New(10, time.Minute)
	key := Key("up", "1", "2", nil)

	_, ok := c.Get(BackendCortex, key)
	assert.False(t, ok)

	c.Set(BackendCortex, key, "result", 0)
	v, ok := c.Get(BackendCortex, key)
	require.True(t, ok)
	assert.Equal(t, "result", v)

	stats := c.Stats()[BackendCortex]
	assert.Equal(t, 1, stats.Hits)
	assert.Equal(t, 1, stats.Misses)
	assert.Equal(t, 0.5, stats.HitRate)
	assert.Equal(t, 1, stats.Size)
}

func TestBackendsAreIndependent(t *testing.T) {
	c := New(10, time.Minute)
	key := Key("q", "1", "2", nil)

	c.Set(BackendLoki, key, "logs", 0)
	_, ok := c.Get(BackendCortex, key)
	assert.False(t, ok)

	v, ok := c.Get(BackendLoki, key)
	require.True(t, ok)
	assert.Equal(t, "logs", v)
}

func TestTTLExpiry(t *testing.T) {
	c := New(10, time.Minute)
	now := time.Now()
	c.now = func() time.Time { return now }

	key := Key("q", "1", "2", nil)
	c.Set(BackendLoki, key, "v", 10*time.Second)

	_, ok := c.Get(BackendLoki, key)
	assert.True(t, ok)

	now = now.Add(11 * time.Second)
	_, ok = c.Get(BackendLoki, key)
	assert.False(t, ok)

	stats := c.Stats()[BackendLoki]
	assert.Equal(t, 1, stats.Evictions, "expired entry removed lazily on read")
	assert.Equal(t, 0, stats.Size)
}

func TestEvictionOldestFirst(t *testing.T) {
	c := New(3, time.Minute)
	now := time.Now()
	c.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		c.Set(BackendLoki, fmt.Sprintf("key-%d", i), i, 0)
		now = now.Add(time.Second)
	}

	// Capacity reached; inserting evicts the oldest entry.
	c.Set(BackendLoki, "key-3", 3, 0)

	_, ok := c.Get(BackendLoki, "key-0")
	assert.False(t, ok, "oldest entry should be evicted")
	_, ok = c.Get(BackendLoki, "key-3")
	assert.True(t, ok)

	stats := c.Stats()[BackendLoki]
	assert.Equal(t, 1, stats.Evictions)
	assert.Equal(t, 3, stats.Size)
}

func TestInvalidateAndClear(t *testing.T) {
	c := New(10, time.Minute)
	c.Set(BackendLoki, "a", 1, 0)
	c.Set(BackendLoki, "b", 2, 0)
	c.Set(BackendCortex, "c", 3, 0)

	n := c.Invalidate(BackendLoki)
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, c.Stats()[BackendLoki].Size)
	assert.Equal(t, 1, c.Stats()[BackendCortex].Size)

	c.Clear()
	assert.Equal(t, 0, c.Stats()[BackendCortex].Size)
}
