package grid

import (
	"fmt"

	"github.com/matzehuels/gamegrid/pkg/thumbnail"
)

// Row sizing and height constants.
const (
	MinRowItems     = 3
	MaxRowItems     = 6
	LandscapeHeight = 200
	PortraitHeight  = 300
	DefaultMaxItems = 24
)

// Item is one entry to lay out. An empty Thumbnail means the item brings no
// artwork and gets one from the catalog.
type Item struct {
	ID        string `json:"id" bson:"id"`
	Title     string `json:"title" bson:"title"`
	Thumbnail string `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
}

// LayoutItem is an Item placed in the grid with its resolved thumbnail.
type LayoutItem struct {
	ID         string               `json:"id" bson:"id"`
	Title      string               `json:"title" bson:"title"`
	Thumbnail  string               `json:"thumbnail" bson:"thumbnail"`
	Dimensions thumbnail.Dimensions `json:"dimensions" bson:"dimensions"`
	Row        int                  `json:"row" bson:"row"`
	Col        int                  `json:"col" bson:"col"`
}

// IsPortrait reports whether the item's thumbnail is portrait.
func (li LayoutItem) IsPortrait() bool { return li.Dimensions.IsPortrait() }

// RowType names a row by its shape.
type RowType string

// Row types.
const (
	RowTriple RowType = "triple"
	RowQuad   RowType = "quad"
	RowQuint  RowType = "quint"
	RowSext   RowType = "sext"
	RowMixed  RowType = "mixed"
)

// TypeFor returns the row type for a full row of n items.
// Sizes outside 3..6 map to RowMixed.
func TypeFor(n int) RowType {
	switch n {
	case 3:
		return RowTriple
	case 4:
		return RowQuad
	case 5:
		return RowQuint
	case 6:
		return RowSext
	default:
		return RowMixed
	}
}

// Row is one line of the grid.
type Row struct {
	Items  []LayoutItem `json:"items" bson:"items"`
	Height int          `json:"height" bson:"height"`
	Type   RowType      `json:"type" bson:"type"`
}

// PortraitCount returns the number of portrait items in the row.
func (r Row) PortraitCount() int {
	n := 0
	for _, it := range r.Items {
		if it.IsPortrait() {
			n++
		}
	}
	return n
}

// HasPortrait reports whether the row holds a portrait item.
func (r Row) HasPortrait() bool { return r.PortraitCount() > 0 }

// TrailingPolicy decides what happens to items left in an undersized last row.
type TrailingPolicy string

// Trailing policies.
const (
	// TrailingDrop discards the 1–2 leftover items.
	TrailingDrop TrailingPolicy = "drop"
	// TrailingMixed keeps a leftover portrait+landscape pair as a mixed row
	// and drops anything else.
	TrailingMixed TrailingPolicy = "mixed"
)

// ParseTrailing parses a policy name. The empty string means TrailingDrop.
func ParseTrailing(s string) (TrailingPolicy, error) {
	switch TrailingPolicy(s) {
	case "", TrailingDrop:
		return TrailingDrop, nil
	case TrailingMixed:
		return TrailingMixed, nil
	default:
		return "", fmt.Errorf("unknown trailing policy %q (want %q or %q)", s, TrailingDrop, TrailingMixed)
	}
}

// Options tunes a layout.
type Options struct {
	// MaxItems bounds the number of items considered after shuffling.
	// Zero or negative means DefaultMaxItems.
	MaxItems int `json:"max_items,omitempty"`
	// Trailing selects the leftover policy. Empty means TrailingDrop.
	Trailing TrailingPolicy `json:"trailing,omitempty"`
}

func (o Options) withDefaults() Options {
	if o.MaxItems <= 0 {
		o.MaxItems = DefaultMaxItems
	}
	if o.Trailing == "" {
		o.Trailing = TrailingDrop
	}
	return o
}

// Layout is the result of packing.
type Layout struct {
	Rows     []Row          `json:"rows" bson:"rows"`
	Dropped  []string       `json:"dropped,omitempty" bson:"dropped,omitempty"` // IDs of considered items that were not placed
	Seed     int            `json:"seed" bson:"seed"`
	MaxItems int            `json:"max_items" bson:"max_items"`
	Trailing TrailingPolicy `json:"trailing" bson:"trailing"`
	Placed   int            `json:"placed" bson:"placed"`
}

// Items returns every placed item in row-major order.
func (l *Layout) Items() []LayoutItem {
	out := make([]LayoutItem, 0, l.Placed)
	for _, r := range l.Rows {
		out = append(out, r.Items...)
	}
	return out
}
