package utils

import (
	"sync"
	"time"
)

type cacheEntry[T any] struct {
	value    T
	cachedAt time.Time
}

// KeyedCache is a process-wide in-memory cache with a fixed time-to-live
// per entry. Entries are never evicted, only overwritten or treated as
// stale once their age exceeds the TTL.
type KeyedCache[T any] struct {
	ttl     time.Duration
	entries map[string]cacheEntry[T]
	mutex   sync.RWMutex
}

// NewKeyedCache initializes an empty cache whose entries stay fresh for ttl.
func NewKeyedCache[T any](ttl time.Duration) *KeyedCache[T] {
	return &KeyedCache[T]{
		ttl:     ttl,
		entries: make(map[string]cacheEntry[T]),
	}
}

// Set stores or overwrites the value for key, stamping it with the current time.
func (c *KeyedCache[T]) Set(key string, value T) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = cacheEntry[T]{value: value, cachedAt: time.Now()}
}

// Get retrieves the cached value for key if it exists and is still fresh.
func (c *KeyedCache[T]) Get(key string) (T, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, ok := c.entries[key]
	if !ok || time.Since(entry.cachedAt) >= c.ttl {
		var zero T
		return zero, false
	}
	return entry.value, true
}

// Len returns the number of entries, fresh or stale.
func (c *KeyedCache[T]) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.entries)
}
