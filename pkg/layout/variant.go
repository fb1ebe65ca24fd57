package layout

import "fmt"

// Defaults for multiscale boards.
const (
	DefaultScaleTreble = 610.0
	DefaultPFret       = 8.0
)

type variantKind uint8

const (
	kindMonoscale variantKind = iota
	kindMultiscale
)

// Variant is either Monoscale or Multiscale. The multiscale payload is only
// reachable through the accessors, which report false for Monoscale.
//
// The zero value is Monoscale. Variants are comparable values.
type Variant struct {
	kind        variantKind
	scaleTreble float64
	handedness  Handedness
	pfret       float64
}

// Monoscale returns the variant for a board with one scale length.
func Monoscale() Variant {
	return Variant{}
}

// Multiscale returns a fan-fret variant. scaleTreble is the treble-side scale
// length and pfret the (possibly fractional) fret index that is drawn
// perpendicular to the centerline. The values are validated by [Specs.Validate].
func Multiscale(scaleTreble float64, handedness Handedness, pfret float64) Variant {
	return Variant{
		kind:        kindMultiscale,
		scaleTreble: scaleTreble,
		handedness:  handedness,
		pfret:       pfret,
	}
}

// DefaultMultiscale returns a right-handed multiscale variant with a 610
// treble scale and the 8th fret perpendicular.
func DefaultMultiscale() Variant {
	return Multiscale(DefaultScaleTreble, Right, DefaultPFret)
}

// IsMultiscale reports whether v is a fan-fret variant.
func (v Variant) IsMultiscale() bool {
	return v.kind == kindMultiscale
}

// ScaleTreble returns the treble-side scale length.
func (v Variant) ScaleTreble() (float64, bool) {
	if v.kind != kindMultiscale {
		return 0, false
	}
	return v.scaleTreble, true
}

// Handedness returns the handedness of a multiscale board.
func (v Variant) Handedness() (Handedness, bool) {
	if v.kind != kindMultiscale {
		return Right, false
	}
	return v.handedness, true
}

// PFret returns the perpendicular fret of a multiscale board.
func (v Variant) PFret() (float64, bool) {
	if v.kind != kindMultiscale {
		return 0, false
	}
	return v.pfret, true
}

// String implements fmt.Stringer.
func (v Variant) String() string {
	if v.kind != kindMultiscale {
		return "monoscale"
	}
	return fmt.Sprintf("multiscale(treble=%g, %s, pfret=%g)", v.scaleTreble, v.handedness, v.pfret)
}

func (v Variant) isLeft() bool {
	return v.kind == kindMultiscale && v.handedness == Left
}
