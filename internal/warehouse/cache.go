package warehouse

import (
	"sync"
	"time"
)

// resultCache is a TTL cache for materialized panel results, keyed by
// (query name, canonical filter key, extra params). Entries are read-only
// snapshots and expire purely by elapsed time; there is no explicit
// invalidation. Staleness inside the window is acceptable for an
// analytics view.
type resultCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	stop    chan struct{}
}

type cacheEntry struct {
	value   any
	expires time.Time
}

// newResultCache creates a cache with the given TTL and starts its
// background sweep. A non-positive TTL disables caching entirely.
func newResultCache(ttl time.Duration) *resultCache {
	c := &resultCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		stop:    make(chan struct{}),
	}
	if ttl > 0 {
		go c.sweepLoop()
	}
	return c
}

func (c *resultCache) get(key string) (any, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.value, true
}

func (c *resultCache) put(key string, value any) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{value: value, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *resultCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// sweep removes all expired entries.
func (c *resultCache) sweep() {
	now := time.Now()

	c.mu.Lock()
	for key, entry := range c.entries {
		if now.After(entry.expires) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

func (c *resultCache) sweepLoop() {
	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.stop:
			return
		}
	}
}

// close stops the background sweep.
func (c *resultCache) close() {
	if c.ttl > 0 {
		close(c.stop)
	}
}
