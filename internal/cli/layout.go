package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gamegrid/pkg/games"
	"github.com/matzehuels/gamegrid/pkg/grid"
	"github.com/matzehuels/gamegrid/pkg/pipeline"
	"github.com/matzehuels/gamegrid/pkg/render"
)

// layoutFlags are the packing and filtering flags shared by layout,
// render and browse.
type layoutFlags struct {
	maxItems   int
	trailing   string
	category   string
	difficulty string
	available  bool
	refresh    bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVarP(&f.maxItems, "max", "n", pipeline.DefaultMaxItems, "maximum items considered after shuffling (<= 0 means 24)")
	fs.StringVar(&f.trailing, "trailing", pipeline.DefaultTrailing, "leftover policy: drop, mixed")
	fs.StringVar(&f.category, "category", "", "only games in this category")
	fs.StringVar(&f.difficulty, "difficulty", "", "only games of this difficulty")
	fs.BoolVar(&f.available, "available", false, "only playable games")
	fs.BoolVar(&f.refresh, "refresh", false, "recompute instead of reading the cache")
}

// layoutOptions returns pipeline options from the config, overridden by any
// flag set on the command line.
func (c *CLI) layoutOptions(cmd *cobra.Command, f *layoutFlags) pipeline.Options {
	opts := c.Config.layoutOptions()
	if cmd.Flags().Changed("max") {
		opts.MaxItems = f.maxItems
	}
	if cmd.Flags().Changed("trailing") {
		opts.Trailing = f.trailing
	}
	opts.Refresh = f.refresh
	return opts
}

// selectItems loads the library and converts the filtered games to items.
func (c *CLI) selectItems(f *layoutFlags) ([]grid.Item, error) {
	lib, err := c.loadLibrary()
	if err != nil {
		return nil, err
	}
	q := games.Query{Category: f.category, Difficulty: f.difficulty}
	if f.category != "" && !games.ValidCategory(f.category) {
		return nil, fmt.Errorf("unknown category %q", f.category)
	}
	if f.difficulty != "" && !games.ValidDifficulty(f.difficulty) {
		return nil, fmt.Errorf("unknown difficulty %q", f.difficulty)
	}
	if f.available {
		q.Available = &f.available
	}
	return games.ItemsOf(lib.Find(q)), nil
}

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags  layoutFlags
		output string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Pack the game library into rows",
		Long: `Pack the game library into rows.

The library is shuffled with a seed derived from its size and --max, cut to
--max items, and packed into rows of 3 to 6 thumbnails with at most one
portrait per row. Games without artwork get a thumbnail from the catalog.

The same library and options always give the same rows. Results are cached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), c.layoutOptions(cmd, &flags), &flags, output, asJSON)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write layout JSON to file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print layout JSON instead of a table")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, flags *layoutFlags, output string, asJSON bool) error {
	logger := loggerFromContext(ctx)

	items, err := c.selectItems(flags)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	l, cached, err := runner.LayoutWithCacheInfo(ctx, items, opts)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	prog.done(fmt.Sprintf("Packed %d games", len(items)))

	if asJSON || output != "" {
		data, err := render.MarshalLayout(l)
		if err != nil {
			return err
		}
		if output == "" {
			_, err = out.Write(data)
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printSuccess("Layout written")
		printFile(output)
		return nil
	}

	if len(l.Rows) == 0 {
		printWarning("No rows: %d games are too few to fill a row", len(items))
	} else {
		fmt.Fprintln(out, layoutTable(l))
	}
	printLayoutStats(l, cached)
	if len(l.Dropped) > 0 {
		printDetail("dropped: %v", l.Dropped)
	}
	return nil
}
