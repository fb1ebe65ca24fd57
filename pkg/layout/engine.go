package layout

import (
	ferrors "github.com/gfret/fretboard/pkg/errors"
)

// Engine computes lines for one validated instrument. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	specs   Specs
	factors Factors
	border  float64
}

// NewEngine validates specs and border and derives the Factors once.
func NewEngine(specs Specs, border float64) (*Engine, error) {
	if err := specs.Validate(); err != nil {
		return nil, err
	}
	if err := ferrors.ValidateNonNegative("border", border); err != nil {
		return nil, err
	}
	factors, err := specs.Factors()
	if err != nil {
		return nil, err
	}
	return &Engine{specs: specs, factors: factors, border: border}, nil
}

// Specs returns the instrument measurements.
func (e *Engine) Specs() Specs { return e.specs }

// Factors returns the derived ratios.
func (e *Engine) Factors() Factors { return e.factors }

// Border returns the rendering margin.
func (e *Engine) Border() float64 { return e.border }

// FretLine returns the line of fret n. Fret 0 is the nut; n = Count+1 is the
// virtual closing fret.
func (e *Engine) FretLine(n uint32) Line {
	return FretLine(e.specs.FretLengths(n), e.factors, e.specs, e.border)
}

// Nut returns the line of the nut.
func (e *Engine) Nut() Line {
	return e.FretLine(0)
}

// ClosingLine returns the virtual fret one past the last, which closes the
// board outline.
func (e *Engine) ClosingLine() Line {
	return e.FretLine(e.specs.Count + 1)
}

// Bridge returns the bridge line. On a right-handed board it runs from
// (border, border) to (border + TrebleOffset, border + Bridge).
func (e *Engine) Bridge() Line {
	l := Line{
		Start: Point{X: e.border, Y: e.border},
		End:   Point{X: e.border + e.factors.TrebleOffset, Y: e.border + e.specs.Bridge},
	}
	if e.specs.LeftHanded() {
		l = l.Transform(Mirror(e.specs, e.border))
	}
	return l
}

// Centerline returns the longitudinal axis of the board, from the bridge end
// to the nut end.
func (e *Engine) Centerline() Line {
	y := e.specs.Bridge/2 + e.border
	return Line{
		Start: Point{X: e.border, Y: y},
		End:   Point{X: e.border + e.specs.Scale, Y: y},
	}
}

// Outline returns the board polygon: nut start, nut end, closing end,
// closing start.
func (e *Engine) Outline() []Point {
	nut := e.Nut()
	closing := e.ClosingLine()
	return []Point{nut.Start, nut.End, closing.End, closing.Start}
}

// Width returns the document width, scale plus a border on each side.
func (e *Engine) Width() float64 {
	return e.specs.Scale + 2*e.border
}

// Height returns the document height, bridge spacing plus a border on each
// side.
func (e *Engine) Height() float64 {
	return e.specs.Bridge + 2*e.border
}
