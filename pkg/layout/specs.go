package layout

import (
	ferrors "github.com/gfret/fretboard/pkg/errors"
)

// Default instrument measurements, in millimetres.
const (
	DefaultScale  = 655.0
	DefaultCount  = 24
	DefaultNut    = 43.0
	DefaultBridge = 56.0
)

// MaxCount is the largest accepted fret count.
const MaxCount = 100

// String overhang added by callers to the user's bridge spacing, so that the
// outer strings do not sit on the very edge of the board.
const (
	BridgeOverhangMetric   = 6.0
	BridgeOverhangImperial = 6.0 / 25.4
)

// Specs holds the measurements of one instrument.
//
// Scale is the bass-side scale length. Count is the number of playable frets;
// fret 0 is the nut and fret Count+1 is a virtual line closing the board
// outline. Nut and Bridge are the board widths at each end, where Bridge
// already includes any string overhang. The core is unit-agnostic.
type Specs struct {
	Scale   float64
	Count   uint32
	Variant Variant
	Nut     float64
	Bridge  float64
}

// DefaultSpecs returns a 655 mm, 24 fret monoscale board, 43 mm at the nut
// and 56 mm at the bridge.
func DefaultSpecs() Specs {
	return Specs{
		Scale:   DefaultScale,
		Count:   DefaultCount,
		Variant: Monoscale(),
		Nut:     DefaultNut,
		Bridge:  DefaultBridge,
	}
}

// NewSpecs constructs and validates a Specs.
func NewSpecs(scale float64, count uint32, variant Variant, nut, bridge float64) (Specs, error) {
	s := Specs{
		Scale:   scale,
		Count:   count,
		Variant: variant,
		Nut:     nut,
		Bridge:  bridge,
	}
	if err := s.Validate(); err != nil {
		return Specs{}, err
	}
	return s, nil
}

// Validate reports the first violated constraint. Measurement problems carry
// INVALID_MEASUREMENT, a fret count outside [1, MaxCount] INVALID_COUNT,
// and a bridge spacing too wide for the scale INVALID_GEOMETRY.
func (s Specs) Validate() error {
	if err := ferrors.ValidatePositive("scale", s.Scale); err != nil {
		return err
	}
	if err := ferrors.ValidateNonNegative("nut width", s.Nut); err != nil {
		return err
	}
	if err := ferrors.ValidateFinite("bridge spacing", s.Bridge); err != nil {
		return err
	}
	if s.Bridge <= s.Nut {
		return ferrors.New(ferrors.ErrCodeInvalidMeasurement,
			"bridge spacing %g must be wider than nut width %g", s.Bridge, s.Nut)
	}
	if s.Count == 0 || s.Count > MaxCount {
		return ferrors.New(ferrors.ErrCodeInvalidCount, "fret count %d must be between 1 and %d", s.Count, MaxCount)
	}
	if err := checkGeometry(s.Scale, s.Nut, s.Bridge); err != nil {
		return err
	}

	if treble, ok := s.Variant.ScaleTreble(); ok {
		if err := ferrors.ValidatePositive("treble scale", treble); err != nil {
			return err
		}
		pfret, _ := s.Variant.PFret()
		if err := ferrors.ValidateFinite("perpendicular fret", pfret); err != nil {
			return err
		}
		if pfret < 0 || pfret > float64(s.Count)+1 {
			return ferrors.New(ferrors.ErrCodeInvalidMeasurement,
				"perpendicular fret %g must lie between 0 and %d", pfret, s.Count+1)
		}
	}
	return nil
}

// Factors derives the Factors for s.
func (s Specs) Factors() (Factors, error) {
	return DeriveFactors(s.Scale, s.Variant, s.Nut, s.Bridge)
}

// Multiscale reports whether s describes a fan-fret board.
func (s Specs) Multiscale() bool {
	return s.Variant.IsMultiscale()
}

// LeftHanded reports whether the board is mirrored for a left-handed player.
// Only multiscale boards carry handedness.
func (s Specs) LeftHanded() bool {
	return s.Variant.isLeft()
}

// checkGeometry rejects boards whose outer strings would splay further than
// the scale length allows, which would take acos out of its domain.
func checkGeometry(scale, nut, bridge float64) error {
	if d := bridge - nut; d > 2*scale || d < -2*scale {
		return ferrors.New(ferrors.ErrCodeInvalidGeometry,
			"bridge spacing %g and nut width %g differ by more than twice the scale %g", bridge, nut, scale)
	}
	return nil
}
