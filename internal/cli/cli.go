// Package cli implements the gamegrid command-line interface.
//
// Commands pack a game library into rows (layout), write rendered layouts
// to files (render), inspect the game library and thumbnail catalog,
// browse layouts interactively, serve them over HTTP and manage the
// layout cache. Configuration merges a TOML file, .env, GAMEGRID_*
// variables and flags; see [Config].
//
// All commands support --verbose (-v) for debug logging. Loggers travel
// through context.Context.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gamegrid/pkg/buildinfo"
	"github.com/matzehuels/gamegrid/pkg/cache"
	"github.com/matzehuels/gamegrid/pkg/games"
	"github.com/matzehuels/gamegrid/pkg/grid"
	"github.com/matzehuels/gamegrid/pkg/pipeline"
	"github.com/matzehuels/gamegrid/pkg/thumbnail"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "gamegrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configFile string
	noCache    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "gamegrid packs game thumbnails into balanced rows",
		Long:         `gamegrid lays out a game library as a responsive thumbnail grid: rows of three to six items, at most one portrait per row, identical for every client that packs the same list.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "config file (default ~/.config/gamegrid/config.toml)")
	pf.StringVar(&c.Config.Games, "games", "", "game library file (.toml, .yaml, .json)")
	pf.StringVar(&c.Config.Catalog, "catalog", "", "thumbnail catalog file or image directory")
	pf.StringVar(&c.Config.Cache, "cache", "", "cache backend: file, memory, none, redis://..., mongodb://...")
	pf.BoolVar(&c.noCache, "no-cache", false, "disable caching")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.gamesCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig merges file and environment config under any flags the user
// set explicitly, and attaches the logger to the command context.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	flags := c.Config

	path := c.configFile
	if path == "" {
		var err error
		if path, err = configPath(); err != nil {
			path = ""
		}
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}

	pf := cmd.Flags()
	if pf.Changed("games") {
		cfg.Games = flags.Games
	}
	if pf.Changed("catalog") {
		cfg.Catalog = flags.Catalog
	}
	if pf.Changed("cache") {
		cfg.Cache = flags.Cache
	}
	if c.noCache {
		cfg.Cache = "none"
	}
	c.Config = cfg

	if cfg.LogLevel != "" && !pf.Changed("verbose") {
		level, err := parseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		c.SetLogLevel(level)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// =============================================================================
// Factories
// =============================================================================

// newRunner creates a pipeline runner over the configured cache and catalog.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	cat, err := c.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	packer, err := grid.New(cat)
	if err != nil {
		return nil, err
	}
	store, err := c.newCache(ctx)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, packer, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	spec := c.Config.Cache
	var dir string
	if spec == "" || spec == "file" {
		d, err := cacheDir()
		if err != nil {
			c.Logger.Warn("no cache directory, caching disabled", "error", err)
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	return cache.Open(ctx, spec, dir)
}

// loadCatalog returns the configured catalog: a catalog file, a scanned
// image directory, or the built-in table.
func (c *CLI) loadCatalog(ctx context.Context) (*thumbnail.Catalog, error) {
	path := c.Config.Catalog
	if path == "" {
		return thumbnail.Builtin(), nil
	}
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		prog := newProgress(c.Logger)
		cat, err := thumbnail.Scan(ctx, path, thumbnail.ScanOptions{
			BasePath: c.Config.BasePath,
			Logger:   c.Logger,
		})
		if err != nil {
			return nil, err
		}
		prog.done("Scanned catalog")
		return cat, nil
	}
	return thumbnail.LoadFile(path)
}

// loadLibrary returns the configured game library.
func (c *CLI) loadLibrary() (*games.Library, error) {
	if c.Config.Games == "" {
		return games.Default(), nil
	}
	return games.LoadFile(c.Config.Games)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/gamegrid/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.DefaultFormat}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
