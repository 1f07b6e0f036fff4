package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gamegrid/pkg/grid"
)

// Box sizes in inches for DOT output. Landscape cells are 16:9, portrait
// cells 9:16 at the taller row height.
const (
	landscapeW = 1.6
	landscapeH = 0.9
	portraitW  = 0.9
	portraitH  = 1.6
)

// ToDOT converts a layout to Graphviz DOT. Each row becomes a rank of boxes
// chained by invisible edges so Graphviz keeps the packed order.
func ToDOT(l grid.Layout) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=10, fixedsize=true];\n")
	buf.WriteString("  ranksep=0.3;\n")
	buf.WriteString("  nodesep=0.15;\n")

	for r, row := range l.Rows {
		fmt.Fprintf(&buf, "\n  subgraph row%d {\n", r)
		buf.WriteString("    rank=same;\n")
		for c, it := range row.Items {
			fmt.Fprintf(&buf, "    %s [%s];\n", nodeID(r, c), nodeAttrs(row, it))
		}
		for c := 1; c < len(row.Items); c++ {
			fmt.Fprintf(&buf, "    %s -> %s [style=invis];\n", nodeID(r, c-1), nodeID(r, c))
		}
		buf.WriteString("  }\n")
	}

	if len(l.Rows) > 1 {
		buf.WriteString("\n")
		for r := 1; r < len(l.Rows); r++ {
			fmt.Fprintf(&buf, "  %s -> %s [style=invis];\n", nodeID(r-1, 0), nodeID(r, 0))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(row, col int) string {
	return "r" + strconv.Itoa(row) + "c" + strconv.Itoa(col)
}

func nodeAttrs(row grid.Row, it grid.LayoutItem) string {
	label := it.Title
	if label == "" {
		label = it.ID
	}
	label += "\n" + string(row.Type)

	w, h := landscapeW, landscapeH
	fill := "white"
	if it.IsPortrait() {
		w, h = portraitW, portraitH
		fill = "lightgrey"
	}
	return fmt.Sprintf("label=%q, tooltip=%q, width=%.2f, height=%.2f, fillcolor=%s",
		label, it.Thumbnail, w, h, fill)
}

// RenderSVG lays out a DOT graph with Graphviz and returns SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	data, err := renderDOT(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(data), nil
}

// RenderPNG lays out a DOT graph with Graphviz and returns PNG bytes.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one whose
// size matches its viewBox so browsers scale it like an image.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
