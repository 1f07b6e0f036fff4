package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/gamegrid/pkg/grid"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	portraitStyle = cellStyle.Italic(true)
)

// Text renders a layout as a table with one line per row. Portrait items
// are marked with a trailing "▯".
func Text(l grid.Layout) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ROW", "TYPE", "HEIGHT", "ITEMS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 3 && row >= 0 && row < len(l.Rows) && l.Rows[row].HasPortrait() {
				return portraitStyle
			}
			return cellStyle
		})

	for i, row := range l.Rows {
		t.Row(strconv.Itoa(i+1), string(row.Type), strconv.Itoa(row.Height), itemList(row))
	}

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	fmt.Fprintf(&b, "placed %d, dropped %d, seed %d\n", l.Placed, len(l.Dropped), l.Seed)
	if len(l.Dropped) > 0 {
		fmt.Fprintf(&b, "dropped: %s\n", strings.Join(l.Dropped, ", "))
	}
	return b.String()
}

func itemList(row grid.Row) string {
	names := make([]string, len(row.Items))
	for i, it := range row.Items {
		names[i] = it.ID
		if it.IsPortrait() {
			names[i] += " ▯"
		}
	}
	return strings.Join(names, ", ")
}
