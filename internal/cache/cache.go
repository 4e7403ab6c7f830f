// file: internal/cache/cache.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7a8b-9c0d-1e2f3a4b5c6d

// Package cache provides a generic TTL cache keyed by any comparable
// type; the scanner keys it by path plus file identity so a touched
// file misses.
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Cache is a simple generic TTL cache safe for concurrent use.
type Cache[K comparable, T any] struct {
	mu         sync.RWMutex
	items      map[K]entry[T]
	defaultTTL time.Duration
}

// New creates a cache with the given default TTL.
func New[K comparable, T any](defaultTTL time.Duration) *Cache[K, T] {
	return &Cache[K, T]{
		items:      make(map[K]entry[T]),
		defaultTTL: defaultTTL,
	}
}

// Get retrieves a value if it exists and hasn't expired.
func (c *Cache[K, T]) Get(key K) (T, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Set stores a value with the default TTL.
func (c *Cache[K, T]) Set(key K, value T) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores a value with a specific TTL.
func (c *Cache[K, T]) SetWithTTL(key K, value T, ttl time.Duration) {
	c.mu.Lock()
	c.items[key] = entry[T]{value: value, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

// Invalidate removes a single key.
func (c *Cache[K, T]) Invalidate(key K) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// InvalidateAll removes all entries.
func (c *Cache[K, T]) InvalidateAll() {
	c.mu.Lock()
	c.items = make(map[K]entry[T])
	c.mu.Unlock()
}

// Len reports the number of stored entries, expired or not.
func (c *Cache[K, T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
