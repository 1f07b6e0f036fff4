package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/gamegrid/pkg/pipeline"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.MaxItems != pipeline.DefaultMaxItems {
		t.Errorf("MaxItems = %d, want %d", cfg.MaxItems, pipeline.DefaultMaxItems)
	}
	if cfg.Trailing != pipeline.DefaultTrailing {
		t.Errorf("Trailing = %q, want %q", cfg.Trailing, pipeline.DefaultTrailing)
	}
	if cfg.Cache != "file" {
		t.Errorf("Cache = %q, want %q", cfg.Cache, "file")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"GAMEGRID_GAMES":     "games.yaml",
		"GAMEGRID_MAX_ITEMS": "12",
		"GAMEGRID_TRAILING":  "mixed",
		"GAMEGRID_CACHE":     "memory",
		"GAMEGRID_LOG_LEVEL": "debug",
	}
	getenv := func(k string) string { return env[k] }

	cfg := defaultConfig()
	if err := cfg.applyEnv(getenv); err != nil {
		t.Fatalf("applyEnv() error: %v", err)
	}

	if cfg.Games != "games.yaml" {
		t.Errorf("Games = %q, want %q", cfg.Games, "games.yaml")
	}
	if cfg.MaxItems != 12 {
		t.Errorf("MaxItems = %d, want 12", cfg.MaxItems)
	}
	if cfg.Trailing != "mixed" {
		t.Errorf("Trailing = %q, want %q", cfg.Trailing, "mixed")
	}
	if cfg.Cache != "memory" {
		t.Errorf("Cache = %q, want %q", cfg.Cache, "memory")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.Addr != defaultConfig().Addr {
		t.Errorf("Addr = %q, unset variables should keep the default", cfg.Addr)
	}
}

func TestApplyEnvBadMaxItems(t *testing.T) {
	cfg := defaultConfig()
	err := cfg.applyEnv(func(k string) string {
		if k == "GAMEGRID_MAX_ITEMS" {
			return "lots"
		}
		return ""
	})
	if err == nil {
		t.Error("applyEnv() with non-numeric MAX_ITEMS should fail")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("GAMEGRID_TRAILING", "")
	t.Setenv("GAMEGRID_MAX_ITEMS", "")
	t.Setenv("GAMEGRID_ADDR", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	data := "max_items = 18\ntrailing = \"mixed\"\naddr = \":9090\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.MaxItems != 18 {
		t.Errorf("MaxItems = %d, want 18", cfg.MaxItems)
	}
	if cfg.Trailing != "mixed" {
		t.Errorf("Trailing = %q, want %q", cfg.Trailing, "mixed")
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9090")
	}
	if cfg.Cache != "file" {
		t.Errorf("Cache = %q, keys missing from the file should keep defaults", cfg.Cache)
	}

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("GAMEGRID_MAX_ITEMS", "6")
		cfg, err := loadConfig(path)
		if err != nil {
			t.Fatalf("loadConfig() error: %v", err)
		}
		if cfg.MaxItems != 6 {
			t.Errorf("MaxItems = %d, want 6", cfg.MaxItems)
		}
	})
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err != nil {
		t.Errorf("loadConfig() on a missing file error = %v, want nil", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("max_items = \"many\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig() on a malformed file should fail")
	}
}
