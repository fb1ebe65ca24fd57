// Package pkg provides the libraries behind gfret.
//
// # Overview
//
// gfret lays out the frets of monoscale and multiscale guitar necks and
// renders full-size templates. The pkg directory is organized as:
//
//  1. [layout] - Fret geometry (specs, factors, fret lines, boards)
//  2. [config] - Rendering preferences and measurement templates
//  3. [io] - Metadata round trip through SVG and JSON exports
//  4. [render] - Output sinks (SVG, JSON, PNG, DXF, PDF)
//  5. [pipeline] - Orchestration (resolve → layout → render)
//  6. [cache] - Artifact caching on disk or in Redis
//  7. [observability] - Hooks for logging and metrics
//
// # Architecture
//
//	flags, template, SVG or JSON file
//	         ↓
//	    [pipeline] resolve (measurements + units + border)
//	         ↓
//	    [layout] package (factors + fret lines)
//	         ↓
//	    [render] sinks
//	         ↓
//	    SVG/PDF/PNG/DXF/JSON output
//
// # Quick Start
//
//	specs := layout.DefaultSpecs()
//	board, err := layout.Compute(ctx, specs, 10)
//	if err != nil {
//	    return err
//	}
//	svg, err := sink.RenderSVG(board)
//
// [layout]: github.com/gfret/fretboard/pkg/layout
// [config]: github.com/gfret/fretboard/pkg/config
// [io]: github.com/gfret/fretboard/pkg/io
// [render]: github.com/gfret/fretboard/pkg/render
// [pipeline]: github.com/gfret/fretboard/pkg/pipeline
// [cache]: github.com/gfret/fretboard/pkg/cache
// [observability]: github.com/gfret/fretboard/pkg/observability
package pkg
