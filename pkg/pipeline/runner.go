package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gamegrid/pkg/cache"
	"github.com/matzehuels/gamegrid/pkg/grid"
	"github.com/matzehuels/gamegrid/pkg/observability"
	"github.com/matzehuels/gamegrid/pkg/render"
	"github.com/matzehuels/gamegrid/pkg/thumbnail"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use it so cache keys and defaults never drift.
//
// The Runner is stateless except for its collaborators. Multiple goroutines
// can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Packer *grid.Packer
	Logger *log.Logger
}

// NewRunner creates a runner.
// A nil cache disables caching, a nil keyer means the DefaultKeyer and a
// nil packer draws from the built-in thumbnail catalog.
func NewRunner(c cache.Cache, keyer cache.Keyer, packer *grid.Packer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if packer == nil {
		packer, _ = grid.New(thumbnail.Builtin())
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Packer: packer,
		Logger: logger,
	}
}

// Execute runs layout → render with caching.
func (r *Runner) Execute(ctx context.Context, items []grid.Item, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	itemsHash, err := cache.HashJSON(items)
	if err != nil {
		return nil, fmt.Errorf("hash items: %w", err)
	}
	result := &Result{ItemsHash: itemsHash}

	layoutStart := time.Now()
	l, layoutHit, err := r.LayoutWithCacheInfo(ctx, items, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.ItemCount = len(items)
	result.Stats.RowCount = len(l.Rows)
	result.Stats.Dropped = len(l.Dropped)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("packed layout",
		"items", len(items),
		"rows", len(l.Rows),
		"dropped", len(l.Dropped),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LayoutWithCacheInfo packs items with caching and returns cache hit info.
// The key covers the items, the options that change packing and the
// packer's catalog, so swapping catalogs never serves a stale layout.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, items []grid.Item, opts Options) (grid.Layout, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return grid.Layout{}, false, err
	}
	r.applyLogger(&opts)
	if err := ctx.Err(); err != nil {
		return grid.Layout{}, false, err
	}

	itemsHash, err := cache.HashJSON(items)
	if err != nil {
		return grid.Layout{}, false, fmt.Errorf("hash items: %w", err)
	}
	catalogHash, err := r.catalogHash()
	if err != nil {
		return grid.Layout{}, false, err
	}
	cacheKey := r.Keyer.LayoutKey(itemsHash, opts.LayoutKeyOpts(catalogHash))

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(items), opts.MaxItems)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := render.UnmarshalLayout(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				hooks.OnLayoutComplete(ctx, len(cached.Rows), len(cached.Dropped), 0, nil)
				return cached, true, nil
			}
			// Undecodable entries fall through to a recompute.
		} else if err != nil {
			opts.Logger.Warn("cache read failed", "key", cacheKey, "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	start := time.Now()
	l := r.Packer.Layout(items, opts.GridOptions())
	hooks.OnLayoutComplete(ctx, len(l.Rows), len(l.Dropped), time.Since(start), nil)

	opts.Logger.Debug("packed rows",
		"seed", l.Seed,
		"placed", l.Placed,
		"dropped", l.Dropped)

	if data, err := render.MarshalLayout(l); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err != nil {
			opts.Logger.Warn("cache write failed", "key", cacheKey, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return l, false, nil
}

// Layout is a convenience wrapper that calls LayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, items []grid.Item, opts Options) (grid.Layout, error) {
	l, _, err := r.LayoutWithCacheInfo(ctx, items, opts)
	return l, err
}

// RenderWithCacheInfo renders artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l grid.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	layoutData, err := render.MarshalLayout(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}
		missing = append(missing, format)
	}

	if len(missing) == 0 {
		return artifacts, true, nil
	}

	rendered, err := Render(ctx, l, missing)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "key", key, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
		artifacts[format] = data
	}

	return artifacts, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l grid.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Clear drops every cached entry if the backend supports it.
func (r *Runner) Clear(ctx context.Context) error {
	if c, ok := r.Cache.(cache.Clearer); ok {
		return c.Clear(ctx)
	}
	return nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) catalogHash() (string, error) {
	cat := r.Packer.Catalog()
	h, err := cache.HashJSON(struct {
		BasePath string            `json:"base_path"`
		Entries  []thumbnail.Entry `json:"entries"`
	}{cat.BasePath(), cat.Entries()})
	if err != nil {
		return "", fmt.Errorf("hash catalog: %w", err)
	}
	return h, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
