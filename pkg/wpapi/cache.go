package wpapi

import (
	"sync"
	"time"
)

type termKey struct {
	taxonomy string
	slug     string
}

type termEntry struct {
	id      int64
	expires time.Time
}

// termCache remembers slug lookups so repeated exports with the same tag
// filter do not hit the site again.
type termCache struct {
	mu      sync.RWMutex
	entries map[termKey]termEntry
	ttl     time.Duration
}

func newTermCache(ttl time.Duration) *termCache {
	return &termCache{
		entries: make(map[termKey]termEntry),
		ttl:     ttl,
	}
}

func (c *termCache) get(taxonomy, slug string) (int64, bool) {
	if c.ttl <= 0 {
		return 0, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[termKey{taxonomy, slug}]
	if !ok {
		return 0, false
	}
	if time.Now().After(entry.expires) {
		return 0, false
	}
	return entry.id, true
}

func (c *termCache) set(taxonomy, slug string, id int64) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[termKey{taxonomy, slug}] = termEntry{
		id:      id,
		expires: time.Now().Add(c.ttl),
	}
}
