package services

import (
	"sync"
	"time"
)

// DefaultReferenceTTL is how long statuses and settings stay cached. The data
// is managed out-of-band and changes rarely, so entries are allowed to go this
// stale; there is no invalidation path.
const DefaultReferenceTTL = 24 * time.Hour

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

// ReferenceCache is a process-wide cache for slow-changing lookup tables.
// It is constructed once at startup and shared by reference between the
// services that read statuses and settings.
type ReferenceCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewReferenceCache(ttl time.Duration) *ReferenceCache {
	if ttl <= 0 {
		ttl = DefaultReferenceTTL
	}
	return &ReferenceCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// GetOrLoad returns the cached value for key, invoking loader on a miss or
// after expiry. Misses serialize under the write lock, so concurrent callers
// racing on a cold key load it once. Loader errors are returned as-is and
// nothing is cached.
func (c *ReferenceCache) GetOrLoad(key string, loader func() (interface{}, error)) (interface{}, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && c.now().Before(entry.expiresAt) {
		return entry.value, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have loaded the key while we waited for the lock.
	if entry, ok := c.entries[key]; ok && c.now().Before(entry.expiresAt) {
		return entry.value, nil
	}

	value, err := loader()
	if err != nil {
		return nil, err
	}

	c.entries[key] = cacheEntry{value: value, expiresAt: c.now().Add(c.ttl)}
	return value, nil
}
