package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gamegrid/pkg/grid"
	"github.com/matzehuels/gamegrid/pkg/pipeline"
	"github.com/matzehuels/gamegrid/pkg/render"
)

// defaultOutputBase names output files when -o is not given.
const defaultOutputBase = "gamegrid-layout"

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags      layoutFlags
		output     string
		formatsStr string
	)

	cmd := &cobra.Command{
		Use:   "render [layout.json]",
		Short: "Render a layout to JSON, DOT, SVG, PNG or text",
		Long: `Render a layout to JSON, DOT, SVG, PNG or text files.

Without an argument the game library is packed first (same flags as
'layout'). With a layout.json argument, as written by 'layout -o', that
layout is rendered as is.

SVG and PNG are drawn with Graphviz: one rank per row, portrait cells
shaded. They are meant for checking row balance, not for display.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			opts := c.layoutOptions(cmd, &flags)
			opts.Formats = formats
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runRender(cmd.Context(), input, opts, &flags, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), dot, svg, png, text (comma-separated)")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, flags *layoutFlags, output string) error {
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	var l grid.Layout
	cached := false
	if input != "" {
		data, err := os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("read layout: %w", err)
		}
		if l, err = render.UnmarshalLayout(data); err != nil {
			return err
		}
	} else {
		items, err := c.selectItems(flags)
		if err != nil {
			return err
		}
		if l, cached, err = runner.LayoutWithCacheInfo(ctx, items, opts); err != nil {
			return fmt.Errorf("layout: %w", err)
		}
	}

	spinner := newSpinnerWithContext(ctx, "Rendering "+strings.Join(opts.Formats, ", ")+"...")
	spinner.Start()
	artifacts, renderHit, err := runner.RenderWithCacheInfo(ctx, l, opts)
	spinner.Stop()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("render: %w", err)
	}

	base := outputBase(output, input)
	single := len(opts.Formats) == 1 && output != ""
	printSuccess("Rendered %d file(s)", len(opts.Formats))
	for _, format := range opts.Formats {
		path := base + "." + extension(format)
		if single {
			path = output
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	printLayoutStats(l, cached && renderHit)
	return nil
}

// outputBase derives the base path for output files: the -o value without
// extension, else the input file without extension, else a default name.
func outputBase(output, input string) string {
	switch {
	case output != "":
		return strings.TrimSuffix(output, filepath.Ext(output))
	case input != "":
		base := strings.TrimSuffix(input, filepath.Ext(input))
		return strings.TrimSuffix(base, ".layout")
	default:
		return defaultOutputBase
	}
}

func extension(format string) string {
	if format == pipeline.FormatText {
		return "txt"
	}
	return format
}
