package grid

import (
	"github.com/matzehuels/gamegrid/pkg/errors"
	"github.com/matzehuels/gamegrid/pkg/shuffle"
	"github.com/matzehuels/gamegrid/pkg/thumbnail"
)

// Packer lays items out in rows using an injected thumbnail catalog.
// A Packer holds no mutable state and is safe for concurrent use.
type Packer struct {
	cat *thumbnail.Catalog
}

// New returns a packer drawing from cat. A nil or empty catalog is a
// configuration error.
func New(cat *thumbnail.Catalog) (*Packer, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "packer needs a non-empty thumbnail catalog")
	}
	return &Packer{cat: cat}, nil
}

// Catalog returns the packer's catalog.
func (p *Packer) Catalog() *thumbnail.Catalog { return p.cat }

// Pack lays out items with the built-in catalog and the default trailing
// policy. maxItems <= 0 means DefaultMaxItems.
func Pack(items []Item, maxItems int) []Row {
	return defaultPacker().Pack(items, maxItems)
}

func defaultPacker() *Packer {
	return &Packer{cat: thumbnail.Builtin()}
}

// Pack is Layout with the default trailing policy, returning only the rows.
func (p *Packer) Pack(items []Item, maxItems int) []Row {
	return p.Layout(items, Options{MaxItems: maxItems}).Rows
}

// Layout shuffles items with seed len(items)+MaxItems, keeps the first
// MaxItems, and packs them into rows of 3 to 6 items holding at most one
// portrait each. The input slice is not modified.
func (p *Packer) Layout(items []Item, opts Options) Layout {
	opts = opts.withDefaults()
	seed := len(items) + opts.MaxItems

	seq := shuffle.Shuffle(items, seed)
	if len(seq) > opts.MaxItems {
		seq = seq[:opts.MaxItems]
	}

	b := &rowBuilder{cat: p.cat, cur: p.cat.NewCursor()}
	for _, it := range seq {
		b.add(it)
	}
	b.finish(opts.Trailing)

	l := Layout{
		Rows:     b.rows,
		Dropped:  b.dropped,
		Seed:     seed,
		MaxItems: opts.MaxItems,
		Trailing: opts.Trailing,
	}
	if l.Rows == nil {
		l.Rows = []Row{}
	}
	for _, r := range l.Rows {
		l.Placed += len(r.Items)
	}
	return l
}
