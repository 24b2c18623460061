// Package cache provides the process-local, time-windowed memoization
// layer in front of the aggregation pipeline. Entries live in memory only
// and disappear on process restart; there is deliberately no invalidation
// hook, so a freshly appended comment stays invisible until its subject's
// entry expires (an accepted staleness window, not a bug).
package cache

import (
	"sync"
	"time"
)

// Key prefixes for the three pipeline flows.
const (
	VideoCommentsPrefix = "video-comments-"
	AmazonReviewsPrefix = "amazon-reviews-"
	SearchPrefix        = "search-"
)

type entry[V any] struct {
	value      V
	insertedAt time.Time
}

// Cache is a mutex-protected TTL map, safe for concurrent use by multiple
// in-flight requests. Concurrent misses on the same cold key each run the
// full pipeline; there is no single-flight de-duplication.
type Cache[V any] struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time
	m   map[string]entry[V]
}

// New builds a cache whose entries expire ttl after insertion.
func New[V any](ttl time.Duration) *Cache[V] {
	return NewWithClock[V](ttl, time.Now)
}

// NewWithClock injects the time source, so tests control expiry
// deterministically instead of sleeping.
func NewWithClock[V any](ttl time.Duration, now func() time.Time) *Cache[V] {
	return &Cache[V]{
		ttl: ttl,
		now: now,
		m:   make(map[string]entry[V]),
	}
}

// Get returns the stored value when present and not expired. It never
// errors; an expired or absent key is simply a miss. Expired entries are
// evicted lazily here.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.m[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.now().Sub(e.insertedAt) >= c.ttl {
		delete(c.m, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the default TTL, unconditionally
// overwriting any existing entry (the TTL window restarts).
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = entry[V]{value: value, insertedAt: c.now()}
}

// Len reports the number of entries currently held, including any that
// expired but were not yet read.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}
