package cache

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/tkondra/constella/internal/model"
)

// Result cache defaults.
const (
	DefaultResultTTL      = 10 * time.Minute
	DefaultResultCapacity = 100
	DefaultCleanup        = time.Minute
)

// ResultCache caches finished pipeline results keyed by input hash.
// Entries expire after the TTL and the cache is capped: when full, the
// oldest-produced entry is evicted first, so recent results survive.
// Safe for concurrent use.
type ResultCache struct {
	mu       sync.Mutex
	store    *gocache.Cache
	order    []string // insertion order, oldest first; may hold expired keys
	present  map[string]bool
	capacity int
}

// NewResultCache creates a result cache. Non-positive arguments fall
// back to the defaults.
func NewResultCache(ttl, cleanupInterval time.Duration, capacity int) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanup
	}
	if capacity <= 0 {
		capacity = DefaultResultCapacity
	}
	return &ResultCache{
		store:    gocache.New(ttl, cleanupInterval),
		present:  make(map[string]bool, capacity),
		capacity: capacity,
	}
}

// Get returns the cached result for a key, if present and unexpired.
// Lookups do not affect eviction order; age is production time, not
// access time.
func (c *ResultCache) Get(key string) (*model.Result, bool) {
	if val, found := c.store.Get(key); found {
		return val.(*model.Result), true
	}
	return nil, false
}

// Set stores a result under the key, evicting oldest entries when the
// cache is full. Re-setting a key counts as freshly produced.
func (c *ResultCache) Set(key string, result *model.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.present[key] {
		c.removeFromOrder(key)
	}
	for len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.present, oldest)
		c.store.Delete(oldest)
	}
	c.order = append(c.order, key)
	c.present[key] = true
	c.store.SetDefault(key, result)
}

// Len reports how many entries the cache tracks, including entries
// that have expired but not yet been evicted.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

// Clear drops every entry.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Flush()
	c.order = c.order[:0]
	c.present = make(map[string]bool, c.capacity)
}

func (c *ResultCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
