package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/gfret/fretboard/pkg/config"
	ferrors "github.com/gfret/fretboard/pkg/errors"
	"github.com/gfret/fretboard/pkg/layout"
	"github.com/gfret/fretboard/pkg/observability"
	"github.com/gfret/fretboard/pkg/render/sink"
)

// Render generates output artifacts for the given formats.
func Render(ctx context.Context, b *layout.Board, cfg config.Config, formats []string, pngScale float64) (map[string][]byte, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, formats)
	start := time.Now()

	artifacts, err := renderFormats(ctx, b, cfg, formats, pngScale)
	hooks.OnRenderComplete(ctx, formats, time.Since(start), err)
	return artifacts, err
}

func renderFormats(ctx context.Context, b *layout.Board, cfg config.Config, formats []string, pngScale float64) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))

	for _, format := range formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = sink.RenderSVG(b, sink.WithConfig(cfg))
		case FormatJSON:
			data, err = sink.RenderJSON(b, sink.WithJSONUnits(cfg.Units))
		case FormatPNG:
			data, err = sink.RenderPNG(b, sink.WithPNGConfig(cfg), sink.WithScale(pngScale))
		case FormatDXF:
			var dxfOpts []sink.DXFOption
			if cfg.CenterlineColor == nil {
				dxfOpts = append(dxfOpts, sink.WithoutCenterline())
			}
			data, err = sink.RenderDXF(b, dxfOpts...)
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, b, sink.WithPDFSVGOptions(sink.WithConfig(cfg)))
		default:
			return nil, ferrors.New(ferrors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
