package cache

import (
	"context"
	"slices"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Defaults for the in-process cache.
const (
	DefaultMemoryTTL     = 30 * time.Minute
	DefaultMemoryCleanup = time.Hour
)

// MemoryCache keeps entries in process memory. The HTTP server uses it so
// repeated layout requests skip packing and rendering.
type MemoryCache struct {
	c *gocache.Cache
}

// NewMemoryCache returns an in-process cache. Entries stored with a
// non-positive TTL never expire; expired entries are purged every cleanup
// interval.
func NewMemoryCache(defaultTTL, cleanup time.Duration) *MemoryCache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultMemoryTTL
	}
	if cleanup <= 0 {
		cleanup = DefaultMemoryCleanup
	}
	return &MemoryCache{c: gocache.New(defaultTTL, cleanup)}
}

// Get retrieves a copy of a value.
func (m *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	data, ok := v.([]byte)
	if !ok {
		m.c.Delete(key)
		return nil, false, nil
	}
	return slices.Clone(data), true, nil
}

// Set stores a copy of data.
func (m *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	exp := ttl
	if ttl <= 0 {
		exp = gocache.NoExpiration
	}
	m.c.Set(key, slices.Clone(data), exp)
	return nil
}

// Delete removes a value.
func (m *MemoryCache) Delete(ctx context.Context, key string) error {
	m.c.Delete(key)
	return nil
}

// Clear drops every entry.
func (m *MemoryCache) Clear(ctx context.Context) error {
	m.c.Flush()
	return nil
}

// Len returns the number of stored entries, including expired ones not
// yet purged.
func (m *MemoryCache) Len() int { return m.c.ItemCount() }

// Close does nothing; the janitor goroutine stops when the cache is
// garbage collected.
func (m *MemoryCache) Close() error { return nil }

var (
	_ Cache   = (*MemoryCache)(nil)
	_ Clearer = (*MemoryCache)(nil)
)
