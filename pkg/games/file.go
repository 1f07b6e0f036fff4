package games

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/gamegrid/pkg/errors"
)

// Library file formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// libraryFile is the document shape shared by all formats. TOML files use
// [[game]] tables; YAML and JSON use a "games" list. JSON also accepts a
// bare array.
type libraryFile struct {
	Games []Game `toml:"game" yaml:"games" json:"games"`
}

// FormatFor returns the library format for a file name.
func FormatFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unsupported library file %s (want .toml, .yaml, .yml or .json)", path)
	}
}

// LoadFile reads and validates a library file.
func LoadFile(path string) (*Library, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "library file %s", path)
		}
		return nil, fmt.Errorf("read library: %w", err)
	}
	return Parse(data, format)
}

// Read decodes a library from r.
func Read(r io.Reader, format string) (*Library, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read library: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes and validates a library document.
func Parse(data []byte, format string) (*Library, error) {
	var lf libraryFile
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &lf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode library")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &lf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode library")
		}
	case FormatJSON:
		var err error
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
			err = json.Unmarshal(trimmed, &lf.Games)
		} else {
			err = json.Unmarshal(data, &lf)
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode library")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "library format %q", format)
	}
	return New(lf.Games)
}

// Write encodes l in the given format.
func Write(w io.Writer, l *Library, format string) error {
	lf := libraryFile{Games: l.games}
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(lf)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(lf); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(lf)
	default:
		return errors.New(errors.ErrCodeUnsupported, "library format %q", format)
	}
}
