package cli

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/gamegrid/pkg/errors"
	"github.com/matzehuels/gamegrid/pkg/games"
	"github.com/matzehuels/gamegrid/pkg/grid"
	"github.com/matzehuels/gamegrid/pkg/render"
	"github.com/matzehuels/gamegrid/pkg/thumbnail"
)

// runCLI executes the root command with args and returns what it printed.
// Config and cache directories point at temp dirs.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GAMEGRID_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var buf bytes.Buffer
	prev := out
	out = &buf
	defer func() { out = prev }()

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := []string{"browse", "cache", "catalog", "completion", "games", "layout", "render", "serve"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("root command missing %q", name)
		}
	}
}

func TestLayoutJSON(t *testing.T) {
	got, err := runCLI(t, "layout", "--json")
	if err != nil {
		t.Fatalf("layout --json error: %v", err)
	}

	l, err := render.UnmarshalLayout([]byte(got))
	if err != nil {
		t.Fatalf("UnmarshalLayout() error: %v", err)
	}
	want := grid.Pack(games.Default().Items(), 0)
	if !reflect.DeepEqual(l.Rows, want) {
		t.Errorf("layout rows differ from grid.Pack on the default library")
	}
}

func TestLayoutTable(t *testing.T) {
	got, err := runCLI(t, "layout", "--no-cache", "--trailing", "mixed")
	if err != nil {
		t.Fatalf("layout error: %v", err)
	}
	for _, want := range []string{"Type", "Height", "placed", "seed 36"} {
		if !strings.Contains(got, want) {
			t.Errorf("layout output missing %q:\n%s", want, got)
		}
	}
}

func TestLayoutBadTrailing(t *testing.T) {
	_, err := runCLI(t, "layout", "--trailing", "keep")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("layout --trailing keep error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestLayoutOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "home.layout.json")
	if _, err := runCLI(t, "layout", "-n", "9", "-o", path); err != nil {
		t.Fatalf("layout -o error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	l, err := render.UnmarshalLayout(data)
	if err != nil {
		t.Fatal(err)
	}
	if l.MaxItems != 9 || l.Seed != 21 {
		t.Errorf("MaxItems, Seed = %d, %d, want 9, 21", l.MaxItems, l.Seed)
	}
}

func TestRenderFromFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "home.layout.json")
	if _, err := runCLI(t, "layout", "-o", input); err != nil {
		t.Fatalf("layout -o error: %v", err)
	}

	if _, err := runCLI(t, "render", input, "-f", "dot,text"); err != nil {
		t.Fatalf("render error: %v", err)
	}
	for _, name := range []string{"home.dot", "home.txt"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("render did not write %s: %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestRenderBadFormat(t *testing.T) {
	_, err := runCLI(t, "render", "-f", "pdf")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("render -f pdf error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestGamesList(t *testing.T) {
	got, err := runCLI(t, "games", "list", "--category", "Strategy", "-f", "json")
	if err != nil {
		t.Fatalf("games list error: %v", err)
	}
	lib, err := games.Parse([]byte(got), games.FormatJSON)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if lib.Len() != 2 {
		t.Errorf("Strategy games = %d, want 2", lib.Len())
	}

	got, err = runCLI(t, "games", "list")
	if err != nil {
		t.Fatalf("games list error: %v", err)
	}
	if !strings.Contains(got, "12 of 12 games") {
		t.Errorf("games list table missing count:\n%s", got)
	}
}

func TestGamesShow(t *testing.T) {
	got, err := runCLI(t, "games", "show", "flappy-dwb")
	if err != nil {
		t.Fatalf("games show error: %v", err)
	}
	if !strings.Contains(got, "Available") {
		t.Errorf("games show flappy-dwb should report it available:\n%s", got)
	}

	_, err = runCLI(t, "games", "show", "no-such-game")
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("unknown game error = %v, want %s", err, errors.ErrCodeNotFound)
	}

	_, err = runCLI(t, "games", "show", "Bad_ID")
	if !errors.Is(err, errors.ErrCodeInvalidGameID) {
		t.Errorf("bad id error = %v, want %s", err, errors.ErrCodeInvalidGameID)
	}
}

func TestCatalogList(t *testing.T) {
	got, err := runCLI(t, "catalog", "list")
	if err != nil {
		t.Fatalf("catalog list error: %v", err)
	}
	if !strings.Contains(got, "portrait") {
		t.Errorf("catalog list output missing orientation summary:\n%s", got)
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewGray(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
}

func TestCatalogScan(t *testing.T) {
	images := t.TempDir()
	writePNG(t, filepath.Join(images, "wide.png"), 32, 18)
	writePNG(t, filepath.Join(images, "tall.png"), 18, 32)

	path := filepath.Join(t.TempDir(), "catalog.toml")
	if _, err := runCLI(t, "catalog", "scan", images, "-o", path, "--base-path", "/img/"); err != nil {
		t.Fatalf("catalog scan error: %v", err)
	}

	cat, err := thumbnail.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cat.Len() != 2 || cat.PortraitCount() != 1 {
		t.Errorf("Len, PortraitCount = %d, %d, want 2, 1", cat.Len(), cat.PortraitCount())
	}
	if cat.BasePath() != "/img/" {
		t.Errorf("BasePath() = %q, want %q", cat.BasePath(), "/img/")
	}
}

func TestCachePath(t *testing.T) {
	got, err := runCLI(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	want := filepath.Join(os.Getenv("XDG_CACHE_HOME"), appName)
	if strings.TrimSpace(got) != want {
		t.Errorf("cache path = %q, want %q", strings.TrimSpace(got), want)
	}
}

func TestCacheClear(t *testing.T) {
	if _, err := runCLI(t, "cache", "clear", "--cache", "memory"); err != nil {
		t.Errorf("cache clear error: %v", err)
	}
}

func TestCacheLabel(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"", "file"},
		{"memory", "memory"},
		{"redis://:secret@localhost:6379/0", "redis://:xxxxx@localhost:6379/0"},
	}
	for _, tt := range tests {
		if got := cacheLabel(tt.spec); got != tt.want {
			t.Errorf("cacheLabel(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}

func TestCompletion(t *testing.T) {
	got, err := runCLI(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(got, appName) {
		t.Error("bash completion should mention the command name")
	}
}
