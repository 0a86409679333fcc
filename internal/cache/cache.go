// Package cache holds the two caches the pipeline uses: a byte cache
// for fetched input documents and a capped result cache for finished
// analyses.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is the byte-oriented cache interface used for fetched pages.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key hashes arbitrary input (a URL or raw text) into a stable,
// versioned cache key.
func Key(input string) string {
	hash := sha256.Sum256([]byte(input))
	return "constella:v1:" + hex.EncodeToString(hash[:])
}

// PageCache is an in-memory TTL cache for fetched document bodies.
type PageCache struct {
	cache *gocache.Cache
}

// NewPageCache creates a page cache with the given default TTL and
// cleanup interval.
func NewPageCache(defaultTTL, cleanupInterval time.Duration) *PageCache {
	return &PageCache{cache: gocache.New(defaultTTL, cleanupInterval)}
}

// Get retrieves a cached body.
func (c *PageCache) Get(key string) ([]byte, bool) {
	if val, found := c.cache.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a body with the given TTL.
func (c *PageCache) Set(key string, value []byte, ttl time.Duration) error {
	c.cache.Set(key, value, ttl)
	return nil
}

// Delete removes one entry.
func (c *PageCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes all entries.
func (c *PageCache) Clear() error {
	c.cache.Flush()
	return nil
}
