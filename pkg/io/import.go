package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gfret/fretboard/pkg/config"
	ferrors "github.com/gfret/fretboard/pkg/errors"
	"github.com/gfret/fretboard/pkg/layout"
)

// Board is the part of a JSON export needed to regenerate a board.
type Board struct {
	Specs  layout.Specs
	Units  config.Units
	Border float64
}

// ReadJSON decodes a board exported by [WriteJSON]. Only the "specs",
// "units" and "border" members are used; derived values are ignored so a
// caller recomputes them with [layout.Compute].
//
// ReadJSON returns an error if the JSON is malformed, if "specs" is absent,
// or if the measurements fail validation. It does not close r.
func ReadJSON(r io.Reader) (Board, error) {
	var data struct {
		Units  *config.Units `json:"units"`
		Border *float64      `json:"border"`
		Specs  *specsJSON    `json:"specs"`
	}
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		if ferrors.GetCode(err) != "" {
			return Board{}, err
		}
		return Board{}, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "decode")
	}
	if data.Specs == nil {
		return Board{}, ferrors.MissingField("specs")
	}

	variant := layout.Monoscale()
	if m := data.Specs.Multiscale; m != nil {
		variant = layout.Multiscale(m.ScaleTreble, m.Handedness, m.PFret)
	}
	specs, err := layout.NewSpecs(data.Specs.Scale, data.Specs.Count, variant, data.Specs.Nut, data.Specs.Bridge)
	if err != nil {
		return Board{}, err
	}

	b := Board{Specs: specs, Units: config.Metric, Border: config.Default().Border}
	if data.Units != nil {
		b.Units = *data.Units
	}
	if data.Border != nil {
		b.Border = *data.Border
	}
	return b, nil
}

// ImportJSON reads a JSON export at path.
func ImportJSON(path string) (Board, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Board{}, ferrors.Wrap(ferrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return Board{}, err
	}
	defer f.Close()
	return ReadJSON(f)
}

// Open recovers a board from either a rendered SVG or a JSON export,
// chosen by the file extension.
func Open(path string) (Board, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ImportJSON(path)
	}
	return OpenSVG(path)
}
