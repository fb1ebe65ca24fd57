package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/gfret/fretboard/pkg/config"
	fio "github.com/gfret/fretboard/pkg/io"
	"github.com/gfret/fretboard/pkg/layout"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cfg config.Config
}

// WithConfig sets the units, colors, line weight and font.
func WithConfig(cfg config.Config) SVGOption { return func(r *svgRenderer) { r.cfg = cfg } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{cfg: config.Default()}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG renders the board as a full-size SVG document. Element order is
// description, fretboard, bridge, frets, then the optional specification
// text and centerline.
func RenderSVG(b *layout.Board, opts ...SVGOption) ([]byte, error) {
	r := newSVGRenderer(opts...)
	desc, err := fio.EncodeDescription(b.Specs, r.cfg.Units)
	if err != nil {
		return nil, err
	}

	u := r.cfg.Units.Suffix()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s%s" height="%s%s" preserveAspectRatio="xMidYMid meet" viewBox="0 0 %s %s">`+"\n",
		num(b.Width), u, num(b.Height), u, num(b.Width), num(b.Height))
	fmt.Fprintf(&buf, "  %s\n", desc)

	r.renderFretboard(&buf, b)
	r.renderBridge(&buf, b.Bridge)
	r.renderFrets(&buf, b.Frets)
	if r.cfg.Font != nil {
		r.renderSpecifications(&buf, b)
	}
	if r.cfg.CenterlineColor != nil {
		r.renderCenterline(&buf, b.Centerline)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// ============================================================================
// Elements
// ============================================================================

func (r svgRenderer) renderFretboard(buf *bytes.Buffer, b *layout.Board) {
	c := r.cfg.FretboardColor
	fmt.Fprintf(buf, `  <path id="Fretboard" fill="%s" fill-opacity="%s" stroke="none" d="%s"/>`+"\n",
		c.RGBHex(), num(c.Alpha), polygon(b.Outline))
}

func (r svgRenderer) renderBridge(buf *bytes.Buffer, l layout.Line) {
	fmt.Fprintf(buf, `  <path id="Bridge" fill="none" stroke="black" stroke-width="%s" d="%s"/>`+"\n",
		num(r.cfg.LineWeight), segment(l))
}

func (r svgRenderer) renderFrets(buf *bytes.Buffer, frets []layout.Line) {
	c := r.cfg.FretlineColor
	buf.WriteString(`  <g id="Frets">` + "\n")
	for n, l := range frets {
		fmt.Fprintf(buf, `    <path id="%s" fill="none" stroke="%s" stroke-opacity="%s" stroke-width="%s" d="%s"/>`+"\n",
			fretID(n), c.RGBHex(), num(c.Alpha), num(r.cfg.LineWeight), segment(l))
	}
	buf.WriteString("  </g>\n")
}

func (r svgRenderer) renderSpecifications(buf *bytes.Buffer, b *layout.Board) {
	f := r.cfg.Font
	x := b.Border
	y := b.Border*1.7 + b.Specs.Bridge
	fmt.Fprintf(buf, `  <text id="Specifications" x="%s" y="%s" style="font-family: %s; font-weight: %s; font-stretch: %s; font-style: %s; font-size: %spx">%s</text>`+"\n",
		num(x), num(y), EscapeXML(f.Family), f.Weight.CSS(), f.Stretch.CSS(), f.Style.CSS(),
		num(r.cfg.Units.FontSize()), EscapeXML(SpecificationText(b.Specs, r.cfg.Units)))
}

func (r svgRenderer) renderCenterline(buf *bytes.Buffer, l layout.Line) {
	c := r.cfg.CenterlineColor
	dash := r.cfg.Units.CenterlineDash()
	fmt.Fprintf(buf, `  <path id="Centerline" fill="none" stroke="%s" stroke-opacity="%s" stroke-width="%s" stroke-dasharray="%.1f, %.1f" stroke-dashoffset="0" d="%s"/>`+"\n",
		c.RGBHex(), num(c.Alpha), num(r.cfg.LineWeight), dash[0], dash[1], segment(l))
}

// SpecificationText returns the one-line summary printed under the board.
// The bridge spacing excludes the overhang.
func SpecificationText(s layout.Specs, units config.Units) string {
	u := units.Suffix()
	var text string
	if treble, ok := s.Variant.ScaleTreble(); ok {
		pfret, _ := s.Variant.PFret()
		text = fmt.Sprintf("ScaleBass: %.2f%s | ScaleTreble: %.2f%s | PerpendicularFret: %.1f |",
			s.Scale, u, treble, u, pfret)
	} else {
		text = fmt.Sprintf("Scale: %.2f%s |", s.Scale, u)
	}
	return text + fmt.Sprintf(" NutWidth: %.2f%s | BridgeSpacing: %.2f%s",
		s.Nut, u, s.Bridge-units.BridgeOverhang(), u)
}

// ============================================================================
// Formatting
// ============================================================================

func fretID(n int) string {
	if n == 0 {
		return "Nut"
	}
	return "Fret " + strconv.Itoa(n)
}

func segment(l layout.Line) string {
	return fmt.Sprintf("M %s,%s L %s,%s z", num(l.Start.X), num(l.Start.Y), num(l.End.X), num(l.End.Y))
}

func polygon(pts []layout.Point) string {
	var buf bytes.Buffer
	for i, p := range pts {
		if i == 0 {
			buf.WriteString("M ")
		} else {
			buf.WriteString(" L ")
		}
		fmt.Fprintf(&buf, "%s,%s", num(p.X), num(p.Y))
	}
	buf.WriteString(" z")
	return buf.String()
}

// num formats a coordinate with at most four decimals.
func num(v float64) string {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// EscapeXML escapes s for use in XML text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
