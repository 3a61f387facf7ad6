package billingapi

import (
	"sync"
	"time"
)

// responseCache is a small TTL cache keyed by resource path. Entries within
// the staleness window are served as-is; anything older is refetched by the
// caller. Writes to the discount store flush the cache so the next read
// reconciles against server truth.
type responseCache struct {
	ttl time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	payload   []byte
	fetchedAt time.Time
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{ttl: ttl, entries: make(map[string]cacheEntry)}
}

func (c *responseCache) get(key string) ([]byte, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || time.Since(e.fetchedAt) > c.ttl {
		return nil, false
	}
	return e.payload, true
}

func (c *responseCache) set(key string, payload []byte) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = cacheEntry{payload: payload, fetchedAt: time.Now()}
	c.mu.Unlock()
}

// invalidate drops every cached entry. The invoice detail payloads are small
// and cheap to refetch, so a full flush keeps reconciliation simple.
func (c *responseCache) invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
