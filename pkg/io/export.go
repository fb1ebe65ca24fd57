package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gfret/fretboard/pkg/config"
	"github.com/gfret/fretboard/pkg/layout"
)

type boardFile struct {
	Units      string     `json:"units"`
	Border     float64    `json:"border"`
	Specs      specsJSON  `json:"specs"`
	Factors    *factors   `json:"factors,omitempty"`
	Width      float64    `json:"width,omitempty"`
	Height     float64    `json:"height,omitempty"`
	Frets      []fretJSON `json:"frets,omitempty"`
	Closing    *line      `json:"closing,omitempty"`
	Bridge     *line      `json:"bridge,omitempty"`
	Centerline *line      `json:"centerline,omitempty"`
	Outline    []point    `json:"outline,omitempty"`
}

type specsJSON struct {
	Scale      float64    `json:"scale"`
	Count      uint32     `json:"count"`
	Nut        float64    `json:"nut"`
	Bridge     float64    `json:"bridge"`
	Multiscale *multiJSON `json:"multiscale,omitempty"`
}

type multiJSON struct {
	ScaleTreble float64           `json:"scale_treble"`
	PFret       float64           `json:"pfret"`
	Handedness  layout.Handedness `json:"handedness"`
}

type factors struct {
	XRatio       float64 `json:"x_ratio"`
	YRatio       float64 `json:"y_ratio"`
	TrebleOffset float64 `json:"treble_offset"`
}

type fretJSON struct {
	Fret   uint32  `json:"fret"`
	Bass   float64 `json:"length_bass"`
	Treble float64 `json:"length_treble"`
	line
}

type line struct {
	Start point `json:"start"`
	End   point `json:"end"`
}

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WriteJSON encodes a computed board as JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(b *layout.Board, units config.Units, w io.Writer) error {
	out := boardFile{
		Units:   units.String(),
		Border:  b.Border,
		Specs:   encodeSpecs(b.Specs),
		Factors: &factors{XRatio: b.Factors.XRatio, YRatio: b.Factors.YRatio, TrebleOffset: b.Factors.TrebleOffset},
		Width:   b.Width,
		Height:  b.Height,
		Frets:   make([]fretJSON, len(b.Frets)),
		Outline: make([]point, len(b.Outline)),
	}
	for i, l := range b.Frets {
		lengths := b.Specs.FretLengths(uint32(i))
		out.Frets[i] = fretJSON{Fret: uint32(i), Bass: lengths.Bass, Treble: lengths.Treble, line: encodeLine(l)}
	}
	for i, p := range b.Outline {
		out.Outline[i] = point{X: p.X, Y: p.Y}
	}
	closing, bridge, centerline := encodeLine(b.Closing), encodeLine(b.Bridge), encodeLine(b.Centerline)
	out.Closing, out.Bridge, out.Centerline = &closing, &bridge, &centerline

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a board to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(b *layout.Board, units config.Units, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(b, units, f)
}

func encodeSpecs(s layout.Specs) specsJSON {
	out := specsJSON{Scale: s.Scale, Count: s.Count, Nut: s.Nut, Bridge: s.Bridge}
	if treble, ok := s.Variant.ScaleTreble(); ok {
		pfret, _ := s.Variant.PFret()
		h, _ := s.Variant.Handedness()
		out.Multiscale = &multiJSON{ScaleTreble: treble, PFret: pfret, Handedness: h}
	}
	return out
}

func encodeLine(l layout.Line) line {
	return line{
		Start: point{X: l.Start.X, Y: l.Start.Y},
		End:   point{X: l.End.X, Y: l.End.Y},
	}
}
