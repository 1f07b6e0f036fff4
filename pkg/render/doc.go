// Package render turns a packed [grid.Layout] into output artifacts.
//
// # Formats
//
//   - JSON: the layout as consumed by the portal's grid component
//   - DOT: a Graphviz description with one rank per row
//   - SVG and PNG: the DOT graph laid out by Graphviz (WebAssembly build,
//     no system install needed)
//   - Text: a terminal table, one line per row
//
// DOT output is a debugging aid: box widths follow the 16:9 or 9:16 aspect
// of each thumbnail and portrait cells are shaded, so an unbalanced row is
// visible at a glance.
//
//	dot := render.ToDOT(layout)
//	svg, err := render.RenderSVG(ctx, dot)
//
// [grid.Layout]: github.com/matzehuels/gamegrid/pkg/grid.Layout
package render
