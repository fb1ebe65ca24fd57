package sink

import (
	"bytes"

	"github.com/gfret/fretboard/pkg/config"
	fio "github.com/gfret/fretboard/pkg/io"
	"github.com/gfret/fretboard/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	units config.Units
}

// WithJSONUnits records the units the measurements are expressed in.
func WithJSONUnits(u config.Units) JSONOption { return func(r *jsonRenderer) { r.units = u } }

// RenderJSON encodes every computed line of the board together with its
// specs and factors. The output can be re-imported with [io.ReadJSON].
//
// [io.ReadJSON]: github.com/gfret/fretboard/pkg/io.ReadJSON
func RenderJSON(b *layout.Board, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{units: config.Metric}
	for _, opt := range opts {
		opt(&r)
	}
	var buf bytes.Buffer
	if err := fio.WriteJSON(b, r.units, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
