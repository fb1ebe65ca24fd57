package sink

import (
	"bytes"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	ferrors "github.com/gfret/fretboard/pkg/errors"
	"github.com/gfret/fretboard/pkg/layout"
)

// DXF layer names.
const (
	LayerFretboard  = "Fretboard"
	LayerFrets      = "Frets"
	LayerBridge     = "Bridge"
	LayerCenterline = "Centerline"
)

// DXFOption configures DXF rendering.
type DXFOption func(*dxfRenderer)

type dxfRenderer struct {
	centerline bool
}

// WithoutCenterline omits the Centerline layer.
func WithoutCenterline() DXFOption { return func(r *dxfRenderer) { r.centerline = false } }

type dxfGroup struct {
	layer string
	lines []layout.Line
}

// RenderDXF writes the board as CAD lines. The y axis is flipped so the
// drawing keeps its orientation in CAD tools, whose y grows upward.
func RenderDXF(b *layout.Board, opts ...DXFOption) ([]byte, error) {
	r := dxfRenderer{centerline: true}
	for _, opt := range opts {
		opt(&r)
	}

	d := dxf.NewDrawing()
	layers := []struct {
		name  string
		color color.ColorNumber
		lt    *table.LineType
	}{
		{LayerFretboard, color.White, dxf.DefaultLineType},
		{LayerFrets, color.Yellow, dxf.DefaultLineType},
		{LayerBridge, color.Red, dxf.DefaultLineType},
		{LayerCenterline, color.Blue, table.LT_HIDDEN},
	}
	for _, l := range layers {
		if l.name == LayerCenterline && !r.centerline {
			continue
		}
		if _, err := d.AddLayer(l.name, l.color, l.lt, true); err != nil {
			return nil, ferrors.Wrap(ferrors.ErrCodeInternal, err, "add layer %s", l.name)
		}
	}

	flip := func(l layout.Line) layout.Line {
		return layout.Line{
			Start: layout.Point{X: l.Start.X, Y: b.Height - l.Start.Y},
			End:   layout.Point{X: l.End.X, Y: b.Height - l.End.Y},
		}
	}

	var outline []layout.Line
	for i, p := range b.Outline {
		q := b.Outline[(i+1)%len(b.Outline)]
		outline = append(outline, layout.Line{Start: p, End: q})
	}

	groups := []dxfGroup{
		{LayerFretboard, outline},
		{LayerFrets, b.Frets},
		{LayerBridge, []layout.Line{b.Bridge}},
	}
	if r.centerline {
		groups = append(groups, dxfGroup{LayerCenterline, []layout.Line{b.Centerline}})
	}

	for _, g := range groups {
		if err := d.ChangeLayer(g.layer); err != nil {
			return nil, ferrors.Wrap(ferrors.ErrCodeInternal, err, "select layer %s", g.layer)
		}
		for _, l := range g.lines {
			l = flip(l)
			if _, err := d.Line(l.Start.X, l.Start.Y, 0, l.End.X, l.End.Y, 0); err != nil {
				return nil, ferrors.Wrap(ferrors.ErrCodeInternal, err, "add line")
			}
		}
	}

	return writeDrawing(d)
}

func writeDrawing(d *drawing.Drawing) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInternal, err, "write dxf")
	}
	return buf.Bytes(), nil
}
