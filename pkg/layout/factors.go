package layout

import (
	"math"

	ferrors "github.com/gfret/fretboard/pkg/errors"
)

// Factors are the ratios shared by every point of a board.
//
// XRatio and YRatio are the direction cosines of an outer string against the
// centerline. TrebleOffset is the longitudinal shift of the treble side that
// makes the perpendicular fret square to the centerline; it is 0 for
// monoscale boards.
type Factors struct {
	XRatio       float64
	YRatio       float64
	TrebleOffset float64
}

// DeriveFactors computes the Factors for an instrument. A bridge spacing that
// differs from the nut width by more than twice the scale fails with
// INVALID_GEOMETRY instead of producing NaN.
func DeriveFactors(scale float64, variant Variant, nut, bridge float64) (Factors, error) {
	if err := ferrors.ValidatePositive("scale", scale); err != nil {
		return Factors{}, err
	}
	if err := ferrors.ValidateFinite("nut width", nut); err != nil {
		return Factors{}, err
	}
	if err := ferrors.ValidateFinite("bridge spacing", bridge); err != nil {
		return Factors{}, err
	}
	if err := checkGeometry(scale, nut, bridge); err != nil {
		return Factors{}, err
	}

	height := (bridge - nut) / 2
	yRatio := height / scale
	xRatio := math.Sin(math.Acos(yRatio))

	f := Factors{XRatio: xRatio, YRatio: yRatio}

	// Monoscale boards have equal bass and treble lengths, so the offset
	// cancels to exactly zero and pfret is never consulted.
	if treble, ok := variant.ScaleTreble(); ok {
		pfret, _ := variant.PFret()
		factor := math.Pow(2, pfret/12)
		lengthBass := scale / factor
		lengthTreble := treble / factor
		f.TrebleOffset = xRatio*lengthBass - xRatio*lengthTreble
	}

	if math.IsNaN(f.XRatio) || math.IsNaN(f.TrebleOffset) || math.IsInf(f.TrebleOffset, 0) {
		return Factors{}, ferrors.New(ferrors.ErrCodeInvalidGeometry,
			"measurements produce undefined string angles")
	}
	return f, nil
}
