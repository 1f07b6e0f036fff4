package thumbnail

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/gamegrid/pkg/errors"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "wide.png"), 40, 20)
	writePNG(t, filepath.Join(dir, "sub", "tall.png"), 20, 40)
	writePNG(t, filepath.Join(dir, "zz", "wide.png"), 10, 50)
	writePNG(t, filepath.Join(dir, ".hidden", "secret.png"), 20, 40)
	writePNG(t, filepath.Join(dir, ".dot.png"), 20, 40)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.jpg"), []byte("not a jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := Scan(context.Background(), dir, ScanOptions{BasePath: "/t/"})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	want := []string{"tall.png", "wide.png"}
	if got := cat.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if d, _ := cat.Get("tall.png"); d.Width != 20 || d.Height != 40 || !d.IsPortrait() {
		t.Errorf("tall.png = %+v", d)
	}
	if d, _ := cat.Get("wide.png"); d.Width != 40 {
		t.Errorf("wide.png = %+v, want the first file in walk order", d)
	}
	if cat.Ref("tall.png") != "/t/tall.png" {
		t.Errorf("Ref() = %q", cat.Ref("tall.png"))
	}
}

func TestScanErrors(t *testing.T) {
	empty := t.TempDir()
	file := filepath.Join(t.TempDir(), "x.png")
	writePNG(t, file, 2, 2)

	tests := []struct {
		name string
		dir  string
		code errors.Code
	}{
		{"missing", filepath.Join(empty, "nope"), errors.ErrCodeFileNotFound},
		{"not a directory", file, errors.ErrCodeInvalidPath},
		{"no images", empty, errors.ErrCodeInvalidCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Scan(context.Background(), tt.dir, ScanOptions{})
			if !errors.Is(err, tt.code) {
				t.Errorf("Scan() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestScanCanceled(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 2, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Scan(ctx, dir, ScanOptions{}); err == nil {
		t.Error("Scan() with canceled context succeeded")
	}
}
