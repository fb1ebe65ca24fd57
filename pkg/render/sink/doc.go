// Package sink renders a computed fretboard to output formats.
//
// # Formats
//
//   - [RenderSVG]: the primary output, a full-size drawing with embedded
//     metadata that [io.OpenSVG] can read back
//   - [RenderJSON]: every computed line plus the specs and factors
//   - [RenderPNG]: a raster preview drawn natively with gogpu/gg
//   - [RenderDXF]: CAD lines on separate layers for CNC templates
//   - [RenderPDF]: the SVG converted through rsvg-convert
//
// # Styling
//
// Colors, line weight, units and the specification font come from a
// [config.Config] passed with the per-format WithConfig option:
//
//	svg, err := sink.RenderSVG(board, sink.WithConfig(cfg))
//
// The drawing itself is measured in the board's units; the SVG root
// carries the unit suffix so that it prints at full size.
//
// [io.OpenSVG]: github.com/gfret/fretboard/pkg/io.OpenSVG
// [config.Config]: github.com/gfret/fretboard/pkg/config.Config
package sink
