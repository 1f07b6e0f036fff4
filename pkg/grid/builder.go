package grid

import "github.com/matzehuels/gamegrid/pkg/thumbnail"

// rowBuilder is the per-call row state machine.
type rowBuilder struct {
	cat *thumbnail.Catalog
	cur *thumbnail.Cursor

	rows     []Row
	open     []LayoutItem
	height   int
	deferred []LayoutItem
	dropped  []string
}

func (b *rowBuilder) openHasPortrait() bool {
	for _, it := range b.open {
		if it.IsPortrait() {
			return true
		}
	}
	return false
}

// resolve assigns the item's thumbnail. Catalog draws avoid a second
// portrait while the open row is still below minimum size.
func (b *rowBuilder) resolve(it Item) LayoutItem {
	li := LayoutItem{ID: it.ID, Title: it.Title}
	if it.Thumbnail != "" {
		li.Thumbnail = it.Thumbnail
		li.Dimensions = b.cat.Lookup(it.Thumbnail)
		return li
	}

	var name string
	if n := len(b.open); n > 0 && n < MinRowItems && b.openHasPortrait() {
		name, li.Dimensions = b.cur.NextExcluding(thumbnail.Portrait)
	} else {
		name, li.Dimensions = b.cur.Next()
	}
	li.Thumbnail = b.cat.Ref(name)
	return li
}

func (b *rowBuilder) add(it Item) {
	li := b.resolve(it)

	n := len(b.open)
	if n == MaxRowItems || (n >= MinRowItems && li.IsPortrait() && b.openHasPortrait()) {
		b.closeRow()
	}

	// Only items with their own portrait artwork get here; they wait for
	// the next row instead of breaking the one-portrait rule. finish places
	// whatever is still waiting.
	if li.IsPortrait() && b.openHasPortrait() {
		b.deferred = append(b.deferred, li)
		return
	}
	b.place(li)
}

func (b *rowBuilder) place(li LayoutItem) {
	li.Row = len(b.rows)
	li.Col = len(b.open)
	h := LandscapeHeight
	if li.IsPortrait() {
		h = PortraitHeight
	}
	b.height = max(b.height, h)
	b.open = append(b.open, li)
}

func (b *rowBuilder) emit(t RowType) {
	b.rows = append(b.rows, Row{Items: b.open, Height: b.height, Type: t})
	b.open = nil
	b.height = 0
}

func (b *rowBuilder) closeRow() {
	b.emit(TypeFor(len(b.open)))
	if len(b.deferred) > 0 {
		next := b.deferred[0]
		b.deferred = b.deferred[1:]
		b.place(next)
	}
}

func (b *rowBuilder) finish(policy TrailingPolicy) {
	// Portraits still waiting for a row fall back to the plain size rules,
	// so such a row may hold more than one portrait. Only the final 1-2
	// items can be lost.
	for _, li := range b.deferred {
		n := len(b.open)
		if n == MaxRowItems || (n >= MinRowItems && li.IsPortrait() && b.openHasPortrait()) {
			b.emit(TypeFor(n))
		}
		b.place(li)
	}
	b.deferred = nil

	if len(b.open) >= MinRowItems {
		b.emit(TypeFor(len(b.open)))
	}
	if policy == TrailingMixed && len(b.open) == 2 && b.open[0].IsPortrait() != b.open[1].IsPortrait() {
		b.emit(RowMixed)
	}
	for _, li := range b.open {
		b.dropped = append(b.dropped, li.ID)
	}
	b.open = nil
}
