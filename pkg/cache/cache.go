// Package cache provides the byte cache behind gamegrid's layout pipeline.
//
// Every backend implements [Cache]: a context-aware key/value store of
// opaque bytes with an optional TTL. Keys are built by a [Keyer] from
// content hashes so identical inputs share entries across runs and hosts.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [MemoryCache]: in-process, for the HTTP server
//   - [RedisCache]: shared across server replicas
//   - [MongoCache]: shared, with a TTL index doing expiry
//   - [NullCache]: caching disabled
//
// Use [Open] to pick a backend from a URL-style spec.
package cache

import (
	"context"
	"time"
)

// Default TTLs for cached pipeline outputs. Layouts are pure functions of
// their key, so these only bound storage growth.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores opaque byte values by key.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Keyer builds cache keys for pipeline stages.
type Keyer interface {
	LayoutKey(itemsHash string, opts LayoutKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the layout options that change a packed layout.
type LayoutKeyOpts struct {
	MaxItems    int    `json:"max_items"`
	Trailing    string `json:"trailing"`
	CatalogHash string `json:"catalog"`
}

// ArtifactKeyOpts are the render options that change an artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// DefaultKeyer produces "layout:<sha256>" and "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey returns the key for a layout of the hashed items.
func (DefaultKeyer) LayoutKey(itemsHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", itemsHash, opts)
}

// ArtifactKey returns the key for a rendering of the hashed layout.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
