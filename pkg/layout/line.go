package layout

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Point is a position on the board.
type Point = vec.Vec2

// Line is a straight segment. For fret lines Start is on the bass edge and
// End on the treble edge.
type Line struct {
	Start Point
	End   Point
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.End.Sub(l.Start).Length()
}

// Transform applies m to both endpoints.
func (l Line) Transform(m matrix.Matrix) Line {
	return Line{Start: apply(m, l.Start), End: apply(m, l.End)}
}

func apply(m matrix.Matrix, p Point) Point {
	x, y := m.Apply(p.X, p.Y)
	return Point{X: x, Y: y}
}

// FretLine projects the bridge-to-fret distances of one fret into a Line.
//
// The bass point is (XRatio*Bass, YRatio*Bass) and the treble point is
// (TrebleOffset + XRatio*Treble, Bridge - YRatio*Treble), both shifted by
// border. Left-handed multiscale boards are mirrored horizontally.
func FretLine(lengths Lengths, factors Factors, specs Specs, border float64) Line {
	l := Line{
		Start: Point{
			X: factors.XRatio*lengths.Bass + border,
			Y: factors.YRatio*lengths.Bass + border,
		},
		End: Point{
			X: factors.TrebleOffset + factors.XRatio*lengths.Treble + border,
			Y: specs.Bridge - factors.YRatio*lengths.Treble + border,
		},
	}
	if specs.LeftHanded() {
		l = l.Transform(Mirror(specs, border))
	}
	return l
}

// Mirror returns the transform taking a right-handed board to its
// left-handed image: x -> scale + 2*border - x, y unchanged.
func Mirror(specs Specs, border float64) matrix.Matrix {
	return matrix.Matrix{-1, 0, 0, 1, specs.Scale + 2*border, 0}
}
