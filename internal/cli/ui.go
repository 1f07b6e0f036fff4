package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/gamegrid/pkg/games"
	"github.com/matzehuels/gamegrid/pkg/grid"
	"github.com/matzehuels/gamegrid/pkg/thumbnail"
)

// out is where status output goes; tests swap it for a buffer.
var out io.Writer = os.Stdout

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings, portraits
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StylePortrait marks portrait thumbnails.
	StylePortrait = lipgloss.NewStyle().Foreground(colorYellow)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
	styleCommand  = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	styleCell     = lipgloss.NewStyle().Padding(0, 1)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Fprintln(out, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Fprintln(out, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Fprintln(out, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Fprintln(out, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

func printDetail(format string, args ...any) {
	fmt.Fprintln(out, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Fprintln(out, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(out, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

func printNextStep(description, cmd string) {
	fmt.Fprintln(out, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// printLayoutStats prints a one-line layout summary.
func printLayoutStats(l grid.Layout, cached bool) {
	parts := []string{
		fmt.Sprintf("%d rows", len(l.Rows)),
		fmt.Sprintf("%d placed", l.Placed),
	}
	if len(l.Dropped) > 0 {
		parts = append(parts, fmt.Sprintf("%d dropped", len(l.Dropped)))
	}
	parts = append(parts, fmt.Sprintf("seed %d", l.Seed))

	status, statusStyle := iconFresh, styleComputed
	if cached {
		status, statusStyle = iconCached, styleCached
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Fprintln(out, line+StyleDim.Render(" · ")+statusStyle.Render(status))
}

// =============================================================================
// Tables
// =============================================================================

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		})
}

// layoutTable renders rows with portrait items highlighted.
func layoutTable(l grid.Layout) string {
	t := newTable("#", "Type", "Height", "Items")
	for i, row := range l.Rows {
		names := make([]string, len(row.Items))
		for j, it := range row.Items {
			names[j] = it.Title
			if names[j] == "" {
				names[j] = it.ID
			}
			if it.IsPortrait() {
				names[j] = StylePortrait.Render(names[j] + " ▯")
			}
		}
		t.Row(strconv.Itoa(i+1), string(row.Type), strconv.Itoa(row.Height), strings.Join(names, ", "))
	}
	return t.Render()
}

func gamesTable(list []games.Game) string {
	t := newTable("ID", "Title", "Category", "Difficulty", "Available")
	for _, g := range list {
		avail := "no"
		if g.Available {
			avail = "yes"
		}
		t.Row(g.ID, g.Title, string(g.Category), string(g.Difficulty), avail)
	}
	return t.Render()
}

func catalogTable(c *thumbnail.Catalog) string {
	t := newTable("Name", "Size", "Orientation")
	for _, e := range c.Entries() {
		name := e.Name
		if e.IsPortrait() {
			name = StylePortrait.Render(name)
		}
		t.Row(name, fmt.Sprintf("%dx%d", e.Width, e.Height), string(e.Orientation))
	}
	return t.Render()
}
