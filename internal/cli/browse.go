package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gamegrid/pkg/grid"
	"github.com/matzehuels/gamegrid/pkg/pipeline"
)

// Browser styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// maxStep is how far +/- move the item budget.
const maxStep = 6

// =============================================================================
// BrowseModel - Interactive layout browser
// =============================================================================

// relayoutFunc packs the current selection with the given options.
type relayoutFunc func(opts pipeline.Options) (grid.Layout, error)

// BrowseModel is the bubbletea model for browsing a layout row by row.
// Changing the item budget or the trailing policy repacks immediately.
type BrowseModel struct {
	Layout grid.Layout
	Opts   pipeline.Options
	Err    error
	Cursor int
	Height int
	Offset int

	relayout relayoutFunc
}

// NewBrowseModel packs once with opts and returns the model.
func NewBrowseModel(opts pipeline.Options, relayout relayoutFunc) BrowseModel {
	opts.SetLayoutDefaults()
	m := BrowseModel{Opts: opts, Height: 15, relayout: relayout}
	m.repack()
	return m
}

func (m *BrowseModel) repack() {
	l, err := m.relayout(m.Opts)
	m.Err = err
	if err != nil {
		return
	}
	m.Layout = l
	if m.Cursor >= len(l.Rows) {
		m.Cursor = max(len(l.Rows)-1, 0)
	}
	if m.Offset > m.Cursor {
		m.Offset = m.Cursor
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Layout.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "m", "t":
			if m.Opts.Trailing == string(grid.TrailingMixed) {
				m.Opts.Trailing = string(grid.TrailingDrop)
			} else {
				m.Opts.Trailing = string(grid.TrailingMixed)
			}
			m.repack()
		case "+", "=":
			m.Opts.MaxItems += maxStep
			m.repack()
		case "-", "_":
			if m.Opts.MaxItems > maxStep {
				m.Opts.MaxItems -= maxStep
				m.repack()
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 3 {
			m.Height = 3
		}
	}
	return m, nil
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Game Grid"))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  max %d · trailing %s · seed %d",
		m.Opts.MaxItems, m.Opts.Trailing, m.Layout.Seed)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  +/- max  m trailing  q quit"))
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(StyleWarning.Render(m.Err.Error()))
		b.WriteString("\n")
	}

	rows := m.Layout.Rows
	if len(rows) == 0 {
		b.WriteString(listDimStyle.Render("  no rows"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(rows))
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Type", "Height", "Items").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle.Padding(0, 1)
			}
			return styleCell
		})
	for i := m.Offset; i < end; i++ {
		cursor := " "
		if i == m.Cursor {
			cursor = "▸"
		}
		r := rows[i]
		t.Row(cursor, strconv.Itoa(i+1), string(r.Type), strconv.Itoa(r.Height), rowSummary(r))
	}

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %d placed, %d dropped",
		m.Cursor+1, len(rows), m.Layout.Placed, len(m.Layout.Dropped))))

	return b.String()
}

// rowSummary lists a row's titles, marking the portrait.
func rowSummary(r grid.Row) string {
	names := make([]string, len(r.Items))
	for i, it := range r.Items {
		names[i] = it.Title
		if names[i] == "" {
			names[i] = it.ID
		}
		if it.IsPortrait() {
			names[i] += " ▯"
		}
	}
	return strings.Join(names, ", ")
}

// =============================================================================
// Command
// =============================================================================

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the layout interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd.Context(), c.layoutOptions(cmd, &flags), &flags)
		},
	}
	flags.register(cmd)

	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, opts pipeline.Options, flags *layoutFlags) error {
	items, err := c.selectItems(flags)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	relayout := func(o pipeline.Options) (grid.Layout, error) {
		return runner.Layout(ctx, items, o)
	}
	model := NewBrowseModel(opts, relayout)
	if model.Err != nil {
		return model.Err
	}

	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
