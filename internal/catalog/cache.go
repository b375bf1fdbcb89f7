package catalog

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Cache is a small TTL cache for loaded catalogs, keyed by tenant plus the
// requested category set. It exists so the full-catalog load that feeds the
// prompt does not hit the database on every request; priced lookups used for
// reconciliation bypass it.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	value    any
	loadedAt time.Time
}

// NewCache returns a cache with the given TTL. A non-positive TTL disables
// caching entirely.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// CacheKey builds the lookup key for a tenant and category set. The
// categories are sorted so the key is order-independent.
func CacheKey(tenantEmail string, categories []string) string {
	if len(categories) == 0 {
		return tenantEmail
	}
	sorted := make([]string, len(categories))
	copy(sorted, categories)
	sort.Strings(sorted)
	return tenantEmail + "|" + strings.Join(sorted, ",")
}

// Get returns the cached value for key if it is still fresh.
func (c *Cache) Get(key string) (any, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.loadedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Put stores a value under key.
func (c *Cache) Put(key string, value any) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, loadedAt: c.now()}
}

// Invalidate removes a single key.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
