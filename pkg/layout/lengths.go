package layout

import "math"

// Lengths are the distances from the bridge to one fret along the bass and
// the treble edge of the board.
type Lengths struct {
	Bass   float64
	Treble float64
}

// FretLengths returns the bridge-to-fret distances for fret. Fret 0 is the
// nut, at full scale length. Monoscale boards always have Bass == Treble.
func (s Specs) FretLengths(fret uint32) Lengths {
	treble, multi := s.Variant.ScaleTreble()
	if fret == 0 {
		if multi {
			return Lengths{Bass: s.Scale, Treble: treble}
		}
		return Lengths{Bass: s.Scale, Treble: s.Scale}
	}

	factor := math.Pow(2, float64(fret)/12)
	bass := s.Scale / factor
	if multi {
		return Lengths{Bass: bass, Treble: treble / factor}
	}
	return Lengths{Bass: bass, Treble: bass}
}

// FretDistance describes where one fret sits, measured from both ends of
// the string.
type FretDistance struct {
	Fret       uint32
	FromBridge Lengths
	FromNut    Lengths
}

// FretTable returns the distances of the nut and every playable fret.
func (s Specs) FretTable() []FretDistance {
	nut := s.FretLengths(0)
	rows := make([]FretDistance, 0, s.Count+1)
	for fret := uint32(0); fret <= s.Count; fret++ {
		l := s.FretLengths(fret)
		rows = append(rows, FretDistance{
			Fret:       fret,
			FromBridge: l,
			FromNut:    Lengths{Bass: nut.Bass - l.Bass, Treble: nut.Treble - l.Treble},
		})
	}
	return rows
}
