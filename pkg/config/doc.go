// Package config holds rendering preferences and measurement templates.
//
// # Preferences
//
// [Config] is persisted as TOML, by default under
// $XDG_CONFIG_HOME/gfret/config.toml:
//
//	units = "metric"
//	border = 10.0
//	line_weight = 1.0
//	fretline_color = "#ffffff"
//	fretboard_color = "#000000"
//	centerline_color = "#0000ff"
//	font = "Sans Regular 12"
//
// A missing file is not an error; [Load] returns [Default] instead. Leaving
// out centerline_color or font disables the centerline or the specification
// text respectively.
//
// # Templates
//
// A [Template] stores the measurements of one instrument so that a board can
// be regenerated later:
//
//	scale = 648.0
//	count = 24
//	scale_treble = 610.0
//	pfret = 8.0
//	handedness = "right"
//	nut = 43.0
//	bridge = 56.0
package config
