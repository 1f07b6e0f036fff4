// Package pipeline provides the layout → render pipeline shared by the
// gamegrid CLI and HTTP server.
//
// Centralizing the stages here keeps defaults, validation and caching
// identical across entry points: a layout served over HTTP is byte-for-byte
// the layout the CLI prints for the same items.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Layout: shuffle and pack items into rows ([grid.Packer])
//  2. Render: encode the layout (JSON, DOT, SVG, PNG, text)
//
// Both stages are cached by content hash. Packing is deterministic, so a
// cached layout is always identical to a fresh one.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, nil, logger)
//	result, err := runner.Execute(ctx, items, pipeline.Options{
//	    MaxItems: 12,
//	    Formats:  []string{"json", "svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// [grid.Packer]: github.com/matzehuels/gamegrid/pkg/grid.Packer
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gamegrid/pkg/cache"
	"github.com/matzehuels/gamegrid/pkg/errors"
	"github.com/matzehuels/gamegrid/pkg/grid"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultMaxItems is the number of items considered after shuffling.
	DefaultMaxItems = grid.DefaultMaxItems

	// DefaultTrailing drops leftover items instead of emitting short rows.
	DefaultTrailing = string(grid.TrailingDrop)

	// DefaultFormat is the output format when none is requested.
	DefaultFormat = FormatJSON
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatText = "text"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatText: true,
}

// ContentTypes maps output formats to HTTP content types.
var ContentTypes = map[string]string{
	FormatJSON: "application/json",
	FormatDOT:  "text/vnd.graphviz",
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatText: "text/plain; charset=utf-8",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	MaxItems int    `json:"max_items,omitempty"`
	Trailing string `json:"trailing,omitempty"`
	Refresh  bool   `json:"refresh,omitempty"` // Recompute and overwrite cached entries

	// Render options
	Formats []string `json:"formats,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the packed grid.
	Layout grid.Layout

	// ItemsHash is the content hash of the input items.
	ItemsHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount  int
	RowCount   int
	Dropped    int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: json, dot, svg, png, text)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTrailing checks that a trailing policy name is valid.
func ValidateTrailing(trailing string) error {
	if _, err := grid.ParseTrailing(trailing); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid trailing policy")
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and validates the full pipeline.
func (o *Options) ValidateAndSetDefaults() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.MaxItems <= 0 {
		o.MaxItems = DefaultMaxItems
	}
	if o.Trailing == "" {
		o.Trailing = DefaultTrailing
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return ValidateTrailing(o.Trailing)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// GridOptions returns the packer options. Call after SetLayoutDefaults.
func (o *Options) GridOptions() grid.Options {
	return grid.Options{
		MaxItems: o.MaxItems,
		Trailing: grid.TrailingPolicy(o.Trailing),
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts(catalogHash string) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		MaxItems:    o.MaxItems,
		Trailing:    o.Trailing,
		CatalogHash: catalogHash,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format}
}

// String summarizes the options for log lines.
func (o Options) String() string {
	return fmt.Sprintf("max=%d trailing=%s formats=%v", o.MaxItems, o.Trailing, o.Formats)
}
