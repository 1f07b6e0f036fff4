package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", customCache)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestConfigPath(t *testing.T) {
	t.Run("explicit", func(t *testing.T) {
		t.Setenv("GAMEGRID_CONFIG", "/etc/gamegrid.toml")
		got, err := configPath()
		if err != nil {
			t.Fatalf("configPath() error: %v", err)
		}
		if got != "/etc/gamegrid.toml" {
			t.Errorf("configPath() = %q, want %q", got, "/etc/gamegrid.toml")
		}
	})

	t.Run("xdg", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("GAMEGRID_CONFIG", "")
		t.Setenv("XDG_CONFIG_HOME", dir)
		got, err := configPath()
		if err != nil {
			t.Fatalf("configPath() error: %v", err)
		}
		want := filepath.Join(dir, appName, "config.toml")
		if got != want {
			t.Errorf("configPath() = %q, want %q", got, want)
		}
	})

	t.Run("home", func(t *testing.T) {
		t.Setenv("GAMEGRID_CONFIG", "")
		t.Setenv("XDG_CONFIG_HOME", "")
		got, err := configPath()
		if err != nil {
			t.Fatalf("configPath() error: %v", err)
		}
		if !strings.HasSuffix(got, filepath.Join(".config", appName, "config.toml")) {
			t.Errorf("configPath() = %q, want it under ~/.config/%s", got, appName)
		}
	})
}
