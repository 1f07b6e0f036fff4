package thumbnail

import (
	"path"
	"slices"
	"strings"

	"github.com/matzehuels/gamegrid/pkg/errors"
)

// DefaultBasePath is the URL prefix catalog references resolve under.
const DefaultBasePath = "/Thumbnails/"

// Catalog is a read-only table of pre-measured thumbnail images keyed by
// file name. Keys are sorted once at construction so traversal order never
// depends on map iteration. A Catalog is safe for concurrent use.
type Catalog struct {
	entries  map[string]Dimensions
	keys     []string
	basePath string
	portrait int
}

// Option configures a [Catalog].
type Option func(*Catalog)

// WithBasePath sets the prefix prepended to keys by [Catalog.Ref].
func WithBasePath(p string) Option {
	return func(c *Catalog) { c.basePath = p }
}

// NewCatalog builds a catalog from a name → size table. The table is copied.
// An empty table or an entry with a non-positive side is rejected with
// errors.ErrCodeInvalidCatalog.
func NewCatalog(entries map[string]Dimensions, opts ...Option) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "catalog has no entries")
	}
	c := &Catalog{
		entries:  make(map[string]Dimensions, len(entries)),
		keys:     make([]string, 0, len(entries)),
		basePath: DefaultBasePath,
	}
	for _, opt := range opts {
		opt(c)
	}
	for name, d := range entries {
		if name == "" {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "catalog entry with empty name")
		}
		if !d.Valid() {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "catalog entry %q: invalid size %dx%d", name, d.Width, d.Height)
		}
		d = FromSize(d.Width, d.Height)
		c.entries[name] = d
		c.keys = append(c.keys, name)
		if d.IsPortrait() {
			c.portrait++
		}
	}
	slices.Sort(c.keys)
	return c, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.keys) }

// Keys returns the entry names in traversal order.
func (c *Catalog) Keys() []string { return slices.Clone(c.keys) }

// BasePath returns the reference prefix.
func (c *Catalog) BasePath() string { return c.basePath }

// PortraitCount returns the number of portrait entries.
func (c *Catalog) PortraitCount() int { return c.portrait }

// LandscapeCount returns the number of non-portrait entries (landscape or square).
func (c *Catalog) LandscapeCount() int { return len(c.keys) - c.portrait }

// Ref returns the public reference for an entry name.
func (c *Catalog) Ref(name string) string { return c.basePath + name }

// Get returns the dimensions of an entry by exact name.
func (c *Catalog) Get(name string) (Dimensions, bool) {
	d, ok := c.entries[name]
	return d, ok
}

// Lookup returns the dimensions for an image reference, which may be a bare
// name, a path such as "/Thumbnails/ph1.jpg", or a URL. Unknown references
// get [DefaultDimensions]; Lookup never fails.
func (c *Catalog) Lookup(ref string) Dimensions {
	if c == nil || ref == "" {
		return DefaultDimensions
	}
	if d, ok := c.entries[ref]; ok {
		return d
	}
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	if d, ok := c.entries[path.Base(ref)]; ok {
		return d
	}
	return DefaultDimensions
}

// Entry is a named catalog row.
type Entry struct {
	Name string
	Dimensions
}

// Entries returns all entries in traversal order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.keys))
	for i, k := range c.keys {
		out[i] = Entry{Name: k, Dimensions: c.entries[k]}
	}
	return out
}
