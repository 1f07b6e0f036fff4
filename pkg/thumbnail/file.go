package thumbnail

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/gamegrid/pkg/errors"
)

// catalogFile is the on-disk catalog format:
//
//	base_path = "/Thumbnails/"
//
//	[[image]]
//	name = "ph1.jpg"
//	width = 1920
//	height = 1080
type catalogFile struct {
	BasePath string      `toml:"base_path,omitempty" yaml:"base_path,omitempty"`
	Images   []fileImage `toml:"image" yaml:"images"`
}

type fileImage struct {
	Name   string `toml:"name" yaml:"name"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
}

// LoadFile reads a catalog from a .toml, .yaml or .yml file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog file %s", path)
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	format, err := formatFor(path)
	if err != nil {
		return nil, err
	}
	return ReadCatalog(f, format)
}

// ReadCatalog decodes a catalog in the given format ("toml" or "yaml").
func ReadCatalog(r io.Reader, format string) (*Catalog, error) {
	var cf catalogFile
	switch format {
	case "toml":
		if _, err := toml.NewDecoder(r).Decode(&cf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode catalog")
		}
	case "yaml":
		if err := yaml.NewDecoder(r).Decode(&cf); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode catalog")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "catalog format %q", format)
	}

	entries := make(map[string]Dimensions, len(cf.Images))
	for _, img := range cf.Images {
		if _, dup := entries[img.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "duplicate catalog entry %q", img.Name)
		}
		entries[img.Name] = FromSize(img.Width, img.Height)
	}

	var opts []Option
	if cf.BasePath != "" {
		opts = append(opts, WithBasePath(cf.BasePath))
	}
	return NewCatalog(entries, opts...)
}

// WriteCatalog encodes c in the given format ("toml" or "yaml").
func WriteCatalog(w io.Writer, c *Catalog, format string) error {
	cf := catalogFile{BasePath: c.basePath}
	for _, e := range c.Entries() {
		cf.Images = append(cf.Images, fileImage{Name: e.Name, Width: e.Width, Height: e.Height})
	}
	switch format {
	case "toml":
		return toml.NewEncoder(w).Encode(cf)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cf); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.New(errors.ErrCodeUnsupported, "catalog format %q", format)
	}
}

// WriteFile writes c to path, choosing the format from the extension.
func WriteFile(c *Catalog, path string) error {
	format, err := formatFor(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := WriteCatalog(&buf, c, format); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func formatFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unsupported catalog file %s (want .toml, .yaml or .yml)", path)
	}
}
