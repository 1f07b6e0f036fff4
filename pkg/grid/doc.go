// Package grid packs games into the thumbnail rows of the portal's
// responsive grid.
//
// Given items and a maximum count, the packer shuffles the items with a
// seed of len(items)+maxItems, keeps the first maxItems, assigns each a
// thumbnail (its own, or the next one from a [thumbnail.Catalog]) and
// groups them into rows:
//
//   - a row holds 3 to 6 items
//   - a row holds at most one portrait thumbnail
//   - a row is 300px tall when it holds a portrait, else 200px
//
// Catalog draws never break the portrait rule. An item that brings its own
// portrait artwork into a short row that already has a portrait waits for
// the next row; items still waiting at the end are placed anyway, so only
// such rows can hold more than one portrait.
//
// The same input size always yields the same layout, so a page rendered
// on the server and again in the browser agrees.
//
// At most two leftover items that cannot fill a final row of three are
// dropped and reported in [Layout.Dropped]. [TrailingMixed] keeps a
// leftover portrait+landscape pair as a two-item [RowMixed] row instead.
//
//	rows := grid.Pack(items, 24)
//
//	p, err := grid.New(cat)
//	l := p.Layout(items, grid.Options{MaxItems: 12, Trailing: grid.TrailingMixed})
package grid
