package cache

import (
	"fmt"
	"sync"
	"time"
)

// MemoryCache is an in-memory cache with TTL support.
type MemoryCache[V any] struct {
	entries sync.Map
	ttl     time.Duration
	stop    chan struct{}
	once    sync.Once
}

// cacheEntry holds a cached value with expiration metadata.
type cacheEntry[V any] struct {
	value     V
	expiresAt time.Time
	storedAt  time.Time
}

// NewMemoryCache creates a new in-memory cache with the specified TTL.
func NewMemoryCache[V any](ttl time.Duration) *MemoryCache[V] {
	c := &MemoryCache[V]{ttl: ttl, stop: make(chan struct{})}
	go c.cleanup()
	return c
}

// NormalizedKey returns the cache key for a tweet: /status/{id}/{kind}
func NormalizedKey(kind, tweetID string) string {
	return fmt.Sprintf("/status/%s/%s", tweetID, kind)
}

// Get returns the value for key if present and not expired.
func (c *MemoryCache[V]) Get(key string) (V, bool) {
	var zero V
	value, ok := c.entries.Load(key)
	if !ok {
		return zero, false
	}

	entry := value.(*cacheEntry[V])
	if time.Now().After(entry.expiresAt) {
		c.entries.Delete(key)
		return zero, false
	}

	return entry.value, true
}

// Set stores a value with the configured TTL.
func (c *MemoryCache[V]) Set(key string, value V) {
	now := time.Now()
	c.entries.Store(key, &cacheEntry[V]{
		value:     value,
		expiresAt: now.Add(c.ttl),
		storedAt:  now,
	})
}

// Delete removes key.
func (c *MemoryCache[V]) Delete(key string) {
	c.entries.Delete(key)
}

// Close stops the cleanup goroutine.
func (c *MemoryCache[V]) Close() {
	c.once.Do(func() { close(c.stop) })
}

// cleanup periodically removes expired entries from the cache.
func (c *MemoryCache[V]) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			now := time.Now()
			c.entries.Range(func(key, value any) bool {
				if now.After(value.(*cacheEntry[V]).expiresAt) {
					c.entries.Delete(key)
				}
				return true
			})
		}
	}
}

// AuthorCache maps tweet ids to resolved author ids.
type AuthorCache struct {
	*MemoryCache[string]
}

// NewAuthorCache creates an author cache. Author ids never change once
// written on chain, so long TTLs are fine.
func NewAuthorCache(ttl time.Duration) *AuthorCache {
	return &AuthorCache{MemoryCache: NewMemoryCache[string](ttl)}
}

// GetAuthor returns the cached author id of tweetID.
func (c *AuthorCache) GetAuthor(tweetID string) (string, bool) {
	return c.Get(NormalizedKey("author", tweetID))
}

// SetAuthor caches the author id of tweetID.
func (c *AuthorCache) SetAuthor(tweetID, authorID string) {
	c.Set(NormalizedKey("author", tweetID), authorID)
}
