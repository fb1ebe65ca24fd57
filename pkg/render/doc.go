// Package render converts fretboard drawings between output formats.
//
// # Overview
//
// The [sink] subpackage turns a computed [layout.Board] into SVG, JSON, PNG,
// DXF or PDF. This package holds the generic SVG conversion those sinks
// share.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg):
//
//	svg := sink.RenderSVG(board, sink.WithConfig(cfg))
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// The PNG sink rasterises natively and does not need rsvg-convert; ToPNG is
// kept for callers that want the specification text rendered as well.
//
// [layout.Board]: github.com/gfret/fretboard/pkg/layout.Board
package render
