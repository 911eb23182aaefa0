// Package cache provides an in-memory TTL cache for observability query
// results, keeping repeated agent tool calls from hammering Loki and Cortex.
package cache

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Backend identifies which query backend an entry belongs to.
type Backend string

// Cache backends.
const (
	BackendLoki   Backend = "loki"
	BackendCortex Backend = "cortex"
)

type entry struct {
	value     any
	createdAt time.Time
	ttl       time.Duration
	hitCount  int
}

func (e *entry) expired(now time.Time) bool {
	return now.After(e.createdAt.Add(e.ttl))
}

// Stats holds hit/miss counters for one backend.
type Stats struct {
	Hits      int     `json:"hits"`
	Misses    int     `json:"misses"`
	Evictions int     `json:"evictions"`
	Size      int     `json:"size"`
	HitRate   float64 `json:"hit_rate"`
}

type backendCache struct {
	entries map[string]*entry
	stats   Stats
}

// QueryCache caches query results per backend with TTL expiry and
// oldest-first eviction once a backend reaches capacity.
type QueryCache struct {
	mu         sync.Mutex
	maxEntries int
	defaultTTL time.Duration
	backends   map[Backend]*backendCache
	now        func() time.Time
}

// New creates a QueryCache. maxEntries bounds each backend independently.
func New(maxEntries int, defaultTTL time.Duration) *QueryCache {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	if defaultTTL <= 0 {
		defaultTTL = 5 * time.Minute
	}
	return &QueryCache{
		maxEntries: maxEntries,
		defaultTTL: defaultTTL,
		backends: map[Backend]*backendCache{
			BackendLoki:   {entries: map[string]*entry{}},
			BackendCortex: {entries: map[string]*entry{}},
		},
		now: time.Now,
	}
}

// Key builds a deterministic cache key from query parameters.
func Key(query, start, end string, extras map[string]string) string {
	parts := make([]string, 0, len(extras))
	for k, v := range extras {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	raw := fmt.Sprintf("%s|%s|%s|%s", query, start, end, strings.Join(parts, ","))
	sum := md5.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached value for a key, or false on miss or expiry.
// Expired entries across the backend are removed lazily on each read.
func (c *QueryCache) Get(backend Backend, key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := c.backends[backend]
	if b == nil {
		return nil, false
	}
	c.cleanupExpiredLocked(b)

	e, ok := b.entries[key]
	if !ok || e.expired(c.now()) {
		b.stats.Misses++
		return nil, false
	}
	e.hitCount++
	b.stats.Hits++
	return e.value, true
}

// Set stores a value. A non-positive ttl uses the cache default.
func (c *QueryCache) Set(backend Backend, key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := c.backends[backend]
	if b == nil {
		return
	}
	c.evictIfNeededLocked(b)

	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	b.entries[key] = &entry{
		value:     value,
		createdAt: c.now(),
		ttl:       ttl,
	}
	b.stats.Size = len(b.entries)
}

// Invalidate removes all entries for a backend and returns the count removed.
func (c *QueryCache) Invalidate(backend Backend) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := c.backends[backend]
	if b == nil {
		return 0
	}
	n := len(b.entries)
	b.entries = map[string]*entry{}
	b.stats.Size = 0
	return n
}

// Clear empties every backend.
func (c *QueryCache) Clear() {
	c.Invalidate(BackendLoki)
	c.Invalidate(BackendCortex)
}

// Stats returns a snapshot of per-backend statistics.
func (c *QueryCache) Stats() map[Backend]Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[Backend]Stats, len(c.backends))
	for name, b := range c.backends {
		s := b.stats
		s.Size = len(b.entries)
		total := s.Hits + s.Misses
		if total > 0 {
			s.HitRate = float64(s.Hits) / float64(total)
		}
		out[name] = s
	}
	return out
}

func (c *QueryCache) cleanupExpiredLocked(b *backendCache) {
	now := c.now()
	for k, e := range b.entries {
		if e.expired(now) {
			delete(b.entries, k)
			b.stats.Evictions++
		}
	}
	b.stats.Size = len(b.entries)
}

// evictIfNeededLocked removes the oldest entries to make room for one more.
func (c *QueryCache) evictIfNeededLocked(b *backendCache) {
	if len(b.entries) < c.maxEntries {
		return
	}
	type aged struct {
		key       string
		createdAt time.Time
	}
	all := make([]aged, 0, len(b.entries))
	for k, e := range b.entries {
		all = append(all, aged{k, e.createdAt})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].createdAt.Before(all[j].createdAt) })

	toRemove := len(b.entries) - c.maxEntries + 1
	for _, a := range all[:toRemove] {
		delete(b.entries, a.key)
		b.stats.Evictions++
	}
	b.stats.Size = len(b.entries)
}
