// Package io reads and writes the persisted forms of a fretboard.
//
// # Overview
//
// Two formats are supported:
//
//   - SVG metadata: rendered documents embed the originating measurements as
//     attributes of a <desc> element, so a drawing can be re-opened and
//     regenerated later.
//   - JSON: a complete export of a computed board (measurements, ratios and
//     every line) for CAM tooling and other external programs.
//
// # SVG Metadata
//
// The description element carries flat scalar attributes:
//
//	<desc Scale="648" BridgeSpacing="56" NutWidth="43" FretCount="24"
//	      ScaleTreble="610" PerpendicularFret="8" Handedness="right"
//	      Units="metric"></desc>
//
// BridgeSpacing is the spacing of the outer strings without the overhang
// that the renderer adds; [ReadSpecs] adds it back. ScaleTreble,
// PerpendicularFret and Handedness are present only for multiscale boards.
//
// [ReadSpecs] discriminates its failures with error codes from
// [github.com/gfret/fretboard/pkg/errors]:
//
//   - NO_METADATA: the document has no description element
//   - MISSING_FIELD: a required attribute is absent
//   - MALFORMED_NUMBER: an attribute is not a number
//   - MALFORMED_HANDEDNESS: Handedness is neither "right" nor "left"
//
// # JSON Format
//
//	{
//	  "units": "metric",
//	  "border": 10,
//	  "specs": {"scale": 655, "count": 24, "nut": 43, "bridge": 56},
//	  "factors": {"x_ratio": 0.99995, "y_ratio": 0.00992, "treble_offset": 0},
//	  "frets": [{"fret": 0, "start": {"x": 665, "y": 16.5}, "end": {...}}, ...],
//	  ...
//	}
//
// [ReadJSON] only needs the "specs" object; every derived value is recomputed.
package io
