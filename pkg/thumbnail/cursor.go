package thumbnail

// Cursor draws catalog entries in key order without repeating an entry
// within a cycle. A cycle ends, and the used set is cleared, once every
// entry has been drawn. A Cursor is not safe for concurrent use; create one
// per layout.
type Cursor struct {
	cat   *Catalog
	used  []bool
	count int
	next  int
}

// NewCursor returns a cursor positioned at the first key.
func (c *Catalog) NewCursor() *Cursor {
	return &Cursor{cat: c, used: make([]bool, len(c.keys))}
}

// Next draws the next unused entry and returns its name and dimensions.
func (cur *Cursor) Next() (string, Dimensions) {
	return cur.take(cur.find(""))
}

// NextExcluding draws the next unused entry whose orientation is not o.
// Skipped entries stay available for later draws in the same cycle. When no
// such entry is left the cycle restarts early; when the catalog has none at
// all the call behaves like [Cursor.Next].
func (cur *Cursor) NextExcluding(o Orientation) (string, Dimensions) {
	if !cur.hasOther(o) {
		return cur.Next()
	}
	idx := cur.find(o)
	if idx < 0 {
		cur.reset()
		idx = cur.find(o)
	}
	return cur.take(idx)
}

// Used returns the number of entries drawn in the current cycle.
func (cur *Cursor) Used() int { return cur.count }

func (cur *Cursor) find(skip Orientation) int {
	n := len(cur.cat.keys)
	for i := range n {
		idx := (cur.next + i) % n
		if cur.used[idx] {
			continue
		}
		if skip != "" && cur.cat.entries[cur.cat.keys[idx]].Orientation == skip {
			continue
		}
		return idx
	}
	return -1
}

func (cur *Cursor) hasOther(o Orientation) bool {
	switch o {
	case Portrait:
		return cur.cat.portrait < len(cur.cat.keys)
	}
	for _, k := range cur.cat.keys {
		if cur.cat.entries[k].Orientation != o {
			return true
		}
	}
	return false
}

func (cur *Cursor) take(idx int) (string, Dimensions) {
	name := cur.cat.keys[idx]
	cur.used[idx] = true
	cur.count++
	cur.next = idx + 1
	if cur.count == len(cur.used) {
		cur.reset()
	}
	return name, cur.cat.entries[name]
}

func (cur *Cursor) reset() {
	clear(cur.used)
	cur.count = 0
	cur.next = 0
}
