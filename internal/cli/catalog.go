package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gamegrid/pkg/thumbnail"
)

// catalogCommand creates the catalog command group.
func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect or build the thumbnail catalog",
	}
	cmd.AddCommand(c.catalogListCommand())
	cmd.AddCommand(c.catalogScanCommand())
	return cmd
}

func (c *CLI) catalogListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog thumbnails and their orientation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, catalogTable(cat))
			printDetail("%d thumbnails (%d landscape, %d portrait) under %s",
				cat.Len(), cat.LandscapeCount(), cat.PortraitCount(), cat.BasePath())
			if cat.PortraitCount() == cat.Len() {
				printWarning("Catalog has no landscape thumbnails; rows cannot be filled")
			}
			return nil
		},
	}
}

func (c *CLI) catalogScanCommand() *cobra.Command {
	var (
		output   string
		basePath string
	)

	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Measure the images in a directory and write a catalog file",
		Long: `Measure the images in a directory and write a catalog file.

JPEG, PNG, GIF and WebP files are decoded far enough to read their size.
Hidden files are skipped. The catalog is written as TOML or YAML depending
on the --output extension, or printed as TOML when --output is empty.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))
			cat, err := thumbnail.Scan(ctx, args[0], thumbnail.ScanOptions{
				BasePath: basePath,
				Logger:   loggerFromContext(ctx),
			})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Measured %d images", cat.Len()))

			if output == "" {
				return thumbnail.WriteCatalog(out, cat, "toml")
			}
			if err := thumbnail.WriteFile(cat, output); err != nil {
				return err
			}
			printSuccess("Catalog written (%d landscape, %d portrait)", cat.LandscapeCount(), cat.PortraitCount())
			printFile(output)
			printNextStep("Use it", "gamegrid layout --catalog "+output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "catalog file to write (.toml, .yaml)")
	cmd.Flags().StringVar(&basePath, "base-path", thumbnail.DefaultBasePath, "URL prefix for thumbnail references")

	return cmd
}
