package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/gamegrid/pkg/grid"
	"github.com/matzehuels/gamegrid/pkg/observability"
	"github.com/matzehuels/gamegrid/pkg/render"
)

// Render encodes a layout in each of the requested formats.
func Render(ctx context.Context, l grid.Layout, formats []string) (map[string][]byte, error) {
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	artifacts := make(map[string][]byte, len(formats))
	var dot string

	for _, format := range formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hooks.OnRenderStart(ctx, format)
		start := time.Now()

		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = render.MarshalLayout(l)
		case FormatText:
			data = []byte(render.Text(l))
		case FormatDOT, FormatSVG, FormatPNG:
			if dot == "" {
				dot = render.ToDOT(l)
			}
			switch format {
			case FormatDOT:
				data = []byte(dot)
			case FormatSVG:
				data, err = render.RenderSVG(ctx, dot)
			default:
				data, err = render.RenderPNG(ctx, dot)
			}
		}

		hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
