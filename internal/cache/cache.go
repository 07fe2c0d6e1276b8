// Package cache provides a typed key-value store with per-entry expiry.
// It wraps patrickmn/go-cache, whose janitor evicts expired entries in the
// background.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL is used by SetDefault.
const DefaultTTL = 60 * time.Second

// DefaultCleanupInterval is how often the janitor sweeps expired entries.
const DefaultCleanupInterval = 5 * time.Minute

// Cache is a thread-safe expiring cache for values of type V.
type Cache[V any] struct {
	store *gocache.Cache
}

// New creates a cache whose expired entries are removed every cleanupInterval.
// A cleanupInterval <= 0 disables the sweep; expired entries then stay hidden
// until they are overwritten or deleted.
func New[V any](cleanupInterval time.Duration) *Cache[V] {
	return &Cache[V]{
		store: gocache.New(DefaultTTL, cleanupInterval),
	}
}

// Get returns the value for key if it exists and now is strictly before its expiry.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	v, expires, found := c.store.GetWithExpiration(key)
	if !found {
		return zero, false
	}
	if !expires.IsZero() && !time.Now().Before(expires) {
		return zero, false
	}
	val, ok := v.(V)
	if !ok {
		return zero, false
	}
	return val, true
}

// Set stores value under key, replacing any previous entry, until now+ttl.
// A ttl <= 0 leaves key absent.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		c.store.Delete(key)
		return
	}
	c.store.Set(key, value, ttl)
}

// SetDefault stores value under key for DefaultTTL.
func (c *Cache[V]) SetDefault(key string, value V) {
	c.Set(key, value, DefaultTTL)
}

// Delete removes key.
func (c *Cache[V]) Delete(key string) {
	c.store.Delete(key)
}

// Flush removes every entry.
func (c *Cache[V]) Flush() {
	c.store.Flush()
}

// Len returns the number of stored entries, including expired ones the
// janitor has not swept yet.
func (c *Cache[V]) Len() int {
	return c.store.ItemCount()
}
