// Package cache provides an in-memory TTL cache for rendered API responses,
// with weak ETags derived from the cached bytes.
package cache

import (
	"crypto/md5"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// TTLs per response class. The dataset is immutable once loaded, so these
// bound staleness only across process restarts behind a shared proxy.
const (
	TTLAggregate = 1 * time.Hour  // Blowouts, standings, records
	TTLReference = 24 * time.Hour // Facet universe, owner careers
	TTLQuery     = 10 * time.Minute
)

type entry struct {
	data      []byte
	etag      string
	expiresAt time.Time
}

// Cache is a thread-safe in-memory TTL cache.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	enabled bool
	hits    atomic.Int64
	misses  atomic.Int64
	stop    chan struct{}
	once    sync.Once
}

// New creates a new cache. Pass enabled=false to create a no-op cache.
func New(enabled bool) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		enabled: enabled,
		stop:    make(chan struct{}),
	}
	if enabled {
		go c.evictLoop(5 * time.Minute)
	}
	return c
}

// Close stops the eviction loop. Safe to call more than once.
func (c *Cache) Close() {
	c.once.Do(func() { close(c.stop) })
}

// Get retrieves a cached value. Returns data, etag, and whether the entry was found.
func (c *Cache) Get(key string) (data []byte, etag string, ok bool) {
	if !c.enabled {
		return nil, "", false
	}
	c.mu.RLock()
	e, exists := c.entries[key]
	c.mu.RUnlock()
	if !exists || time.Now().After(e.expiresAt) {
		c.misses.Add(1)
		return nil, "", false
	}
	c.hits.Add(1)
	return e.data, e.etag, true
}

// Set stores a value with a TTL and returns its ETag.
func (c *Cache) Set(key string, data []byte, ttl time.Duration) string {
	etag := ComputeETag(data)
	if !c.enabled {
		return etag
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		data:      data,
		etag:      etag,
		expiresAt: time.Now().Add(ttl),
	}
	return etag
}

// Stats is a point-in-time view of the cache.
type Stats struct {
	Enabled     bool  `json:"enabled"`
	TotalKeys   int   `json:"total_keys"`
	ActiveKeys  int   `json:"active_keys"`
	ExpiredKeys int   `json:"expired_keys"`
	Hits        int64 `json:"hits"`
	Misses      int64 `json:"misses"`
}

// Stats counts live and expired entries along with lookup totals.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	st := Stats{
		Enabled:   c.enabled,
		TotalKeys: len(c.entries),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
	}
	now := time.Now()
	for _, e := range c.entries {
		if now.Before(e.expiresAt) {
			st.ActiveKeys++
		}
	}
	st.ExpiredKeys = st.TotalKeys - st.ActiveKeys
	return st
}

// evictLoop periodically removes expired entries until Close.
func (c *Cache) evictLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.evict()
		case <-c.stop:
			return
		}
	}
}

func (c *Cache) evict() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// ComputeETag generates a weak ETag from response data using MD5.
func ComputeETag(data []byte) string {
	hash := md5.Sum(data)
	return fmt.Sprintf(`W/"%x"`, hash[:8])
}

// CheckETagMatch checks if an If-None-Match header matches the current ETag.
// Comma-separated lists are accepted; weak and strong forms compare equal.
func CheckETagMatch(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	if strings.TrimSpace(ifNoneMatch) == "*" {
		return true
	}
	want := strings.TrimPrefix(etag, "W/")
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		if strings.TrimPrefix(strings.TrimSpace(candidate), "W/") == want {
			return true
		}
	}
	return false
}
