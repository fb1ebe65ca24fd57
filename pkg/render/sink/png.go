package sink

import (
	"bytes"

	"github.com/gogpu/gg"

	"github.com/gfret/fretboard/pkg/config"
	ferrors "github.com/gfret/fretboard/pkg/errors"
	"github.com/gfret/fretboard/pkg/layout"
)

// DefaultPixelsPerUnit gives a 4 px per millimetre preview.
const DefaultPixelsPerUnit = 4.0

// maxPixels bounds either side of the raster.
const maxPixels = 16384

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	cfg   config.Config
	scale float64
	bg    *gg.RGBA
}

// WithPNGConfig sets the colors, line weight and units.
func WithPNGConfig(cfg config.Config) PNGOption { return func(r *pngRenderer) { r.cfg = cfg } }

// WithScale sets the number of pixels per drawing unit. Imperial boards
// should use a larger scale than metric ones.
func WithScale(s float64) PNGOption { return func(r *pngRenderer) { r.scale = s } }

// WithBackground fills the page before drawing. The default is transparent.
func WithBackground(c config.Color) PNGOption {
	return func(r *pngRenderer) {
		bg := rgba(c)
		r.bg = &bg
	}
}

// RenderPNG rasterises the board natively. The specification text is not
// drawn; use [render.ToPNG] on the SVG output when it is needed.
//
// [render.ToPNG]: github.com/gfret/fretboard/pkg/render.ToPNG
func RenderPNG(b *layout.Board, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{cfg: config.Default(), scale: DefaultPixelsPerUnit}
	for _, opt := range opts {
		opt(&r)
	}
	if !(r.scale > 0) {
		return nil, ferrors.New(ferrors.ErrCodeInvalidInput, "png scale must be positive, got %g", r.scale)
	}

	w, h := int(b.Width*r.scale+0.5), int(b.Height*r.scale+0.5)
	if w < 1 || h < 1 || w > maxPixels || h > maxPixels {
		return nil, ferrors.New(ferrors.ErrCodeInvalidInput, "png size %dx%d out of range (max %d)", w, h, maxPixels)
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()
	if r.bg != nil {
		dc.ClearWithColor(*r.bg)
	}

	if err := r.fillOutline(dc, b.Outline); err != nil {
		return nil, err
	}

	lw := r.cfg.LineWeight * r.scale
	dc.SetLineWidth(lw)
	dc.SetColor(rgba(config.Black).Color())
	if err := r.stroke(dc, b.Bridge); err != nil {
		return nil, err
	}

	dc.SetColor(rgba(r.cfg.FretlineColor).Color())
	for _, l := range b.Frets {
		if err := r.stroke(dc, l); err != nil {
			return nil, err
		}
	}

	if c := r.cfg.CenterlineColor; c != nil {
		dash := r.cfg.Units.CenterlineDash()
		dc.SetColor(rgba(*c).Color())
		dc.SetDash(dash[0]*r.scale, dash[1]*r.scale)
		if err := r.stroke(dc, b.Centerline); err != nil {
			return nil, err
		}
		dc.ClearDash()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func (r pngRenderer) fillOutline(dc *gg.Context, pts []layout.Point) error {
	if len(pts) == 0 {
		return nil
	}
	dc.SetColor(rgba(r.cfg.FretboardColor).Color())
	dc.MoveTo(pts[0].X*r.scale, pts[0].Y*r.scale)
	for _, p := range pts[1:] {
		dc.LineTo(p.X*r.scale, p.Y*r.scale)
	}
	dc.ClosePath()
	if err := dc.Fill(); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeInternal, err, "fill fretboard")
	}
	return nil
}

func (r pngRenderer) stroke(dc *gg.Context, l layout.Line) error {
	dc.MoveTo(l.Start.X*r.scale, l.Start.Y*r.scale)
	dc.LineTo(l.End.X*r.scale, l.End.Y*r.scale)
	if err := dc.Stroke(); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeInternal, err, "stroke line")
	}
	return nil
}

func rgba(c config.Color) gg.RGBA {
	r, g, b, a := c.Floats()
	return gg.RGBA{R: r, G: g, B: b, A: a}
}
