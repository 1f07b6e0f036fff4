package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/gamegrid/pkg/pipeline"
	"github.com/matzehuels/gamegrid/pkg/server"
)

// Config is the merged CLI configuration. Sources apply in order, later
// ones winning: built-in defaults, the TOML config file, .env, GAMEGRID_*
// environment variables, then command-line flags.
type Config struct {
	Games    string `toml:"games"`     // library file; empty means the embedded library
	Catalog  string `toml:"catalog"`   // catalog file or image directory; empty means built-in
	BasePath string `toml:"base_path"` // URL prefix for scanned catalogs
	MaxItems int    `toml:"max_items"`
	Trailing string `toml:"trailing"`
	Cache    string `toml:"cache"` // file, memory, none, redis://..., mongodb://...
	Addr     string `toml:"addr"`
	LogLevel string `toml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		MaxItems: pipeline.DefaultMaxItems,
		Trailing: pipeline.DefaultTrailing,
		Cache:    "file",
		Addr:     server.DefaultAddr,
	}
}

// envPrefix prefixes every environment override.
const envPrefix = "GAMEGRID_"

// configPath returns $GAMEGRID_CONFIG, else the XDG config location
// (~/.config/gamegrid/config.toml).
func configPath() (string, error) {
	if p := os.Getenv(envPrefix + "CONFIG"); p != "" {
		return p, nil
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads path (a missing file is fine), then .env from the
// working directory, then the environment.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("read .env: %w", err)
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides fields from GAMEGRID_* variables.
func (c *Config) applyEnv(getenv func(string) string) error {
	strs := map[string]*string{
		"GAMES":     &c.Games,
		"CATALOG":   &c.Catalog,
		"BASE_PATH": &c.BasePath,
		"TRAILING":  &c.Trailing,
		"CACHE":     &c.Cache,
		"ADDR":      &c.Addr,
		"LOG_LEVEL": &c.LogLevel,
	}
	for name, dst := range strs {
		if v := getenv(envPrefix + name); v != "" {
			*dst = v
		}
	}
	if v := getenv(envPrefix + "MAX_ITEMS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sMAX_ITEMS: %w", envPrefix, err)
		}
		c.MaxItems = n
	}
	return nil
}

// layoutOptions returns pipeline options seeded from the config.
func (c *Config) layoutOptions() pipeline.Options {
	return pipeline.Options{
		MaxItems: c.MaxItems,
		Trailing: c.Trailing,
	}
}
