package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gamegrid/pkg/games"
	"github.com/matzehuels/gamegrid/pkg/observability"
	"github.com/matzehuels/gamegrid/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr  string
		watch bool
		trace bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game library and layouts over HTTP",
		Long: `Serve the game library and layouts over HTTP.

Routes: /healthz, /api/games, /api/games/{id}, /api/categories and
/api/layout. With --watch and a --games file, edits to the file are picked
up without a restart; a file that fails to parse keeps the previous library.

The cache defaults to the file cache; use --cache memory for a
process-local cache or a redis:// or mongodb:// URL to share it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Addr
			}
			return c.runServe(cmd.Context(), addr, watch, trace)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the --games file when it changes")
	cmd.Flags().BoolVar(&trace, "trace", false, "log pipeline, cache and request events at debug level")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, watch, trace bool) error {
	logger := loggerFromContext(ctx)

	if trace {
		observability.NewLogHooks(logger).Install()
		defer observability.Reset()
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	var provider games.Provider
	if c.Config.Games == "" {
		if watch {
			printWarning("--watch needs --games; serving the embedded library")
		}
		provider = games.Static(games.Default())
	} else {
		src, err := games.NewSource(c.Config.Games, logger)
		if err != nil {
			return err
		}
		provider = src
		if watch {
			go func() {
				err := src.Watch(ctx, func(l *games.Library) {
					logger.Info("library reloaded", "games", l.Len())
				})
				if err != nil && ctx.Err() == nil {
					logger.Error("watch stopped", "error", err)
				}
			}()
		}
	}

	srv := server.New(provider, runner, logger, server.Options{Layout: c.Config.layoutOptions()})
	printInfo("Serving %d games on %s", provider.Library().Len(), addr)
	return srv.ListenAndServe(ctx, addr)
}
