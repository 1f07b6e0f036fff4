package thumbnail

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/karrick/godirwalk"
	_ "golang.org/x/image/webp"

	"github.com/matzehuels/gamegrid/pkg/errors"
)

// imageExts are the file extensions Scan measures.
var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// ScanOptions configures [Scan].
type ScanOptions struct {
	// BasePath is the reference prefix of the resulting catalog.
	// Defaults to [DefaultBasePath].
	BasePath string
	// Logger receives per-file warnings. Defaults to a discard logger.
	Logger *log.Logger
}

// Scan walks dir and measures every image file it finds, returning a
// catalog keyed by base file name. Hidden files and directories are
// skipped. Files that cannot be decoded are logged and skipped; when two
// files share a base name the first one in walk order wins.
func Scan(ctx context.Context, dir string, opts ScanOptions) (*Catalog, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if fi, err := os.Stat(dir); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scan %s", dir)
	} else if !fi.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "%s is not a directory", dir)
	}

	root := filepath.Clean(dir)
	entries := map[string]Dimensions{}
	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			name := filepath.Base(path)
			if path != root && strings.HasPrefix(name, ".") {
				if de.IsDir() {
					return godirwalk.SkipThis
				}
				return nil
			}
			if de.IsDir() || !imageExts[strings.ToLower(filepath.Ext(name))] {
				return nil
			}
			if _, dup := entries[name]; dup {
				logger.Warn("duplicate image name, keeping first", "path", path)
				return nil
			}
			d, err := measure(path)
			if err != nil {
				logger.Warn("skipping image", "path", path, "err", err)
				return nil
			}
			logger.Debug("measured image", "name", name, "width", d.Width, "height", d.Height)
			entries[name] = d
			return nil
		},
		ErrorCallback: func(path string, err error) godirwalk.ErrorAction {
			if ctx.Err() != nil {
				return godirwalk.Halt
			}
			logger.Warn("walk error", "path", path, "err", err)
			return godirwalk.SkipNode
		},
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	if len(entries) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "no images found in %s", dir)
	}

	var copts []Option
	if opts.BasePath != "" {
		copts = append(copts, WithBasePath(opts.BasePath))
	}
	return NewCatalog(entries, copts...)
}

func measure(path string) (Dimensions, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dimensions{}, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Dimensions{}, fmt.Errorf("unable to decode: %w", err)
	}
	d := FromSize(cfg.Width, cfg.Height)
	if !d.Valid() {
		return Dimensions{}, fmt.Errorf("invalid size %dx%d", cfg.Width, cfg.Height)
	}
	return d, nil
}
