// Package layout computes the two-dimensional geometry of a fretboard.
//
// # Overview
//
// A fretboard is described by a handful of luthier measurements collected in
// [Specs]: the bass-side scale length, the number of playable frets, the
// width at the nut and at the bridge, and a [Variant] that says whether the
// board is monoscale or multiscale (fan-fret). From these the package derives
// a set of [Line] segments for the nut, every fret, the bridge, the
// centerline, and a virtual closing fret used to outline the board.
//
// The computation is a pure pipeline:
//
//	Specs ──> Factors ──> { Lengths ──> Line } per fret
//
// [DeriveFactors] runs once per instrument and yields the direction ratios
// of the outer strings and, for multiscale boards, the longitudinal shift of
// the treble side. [Specs.FretLengths] returns the bridge-to-fret distance on
// each side and [FretLine] projects those distances into coordinates.
//
// # Coordinates
//
// The bridge sits at the left edge (x = border) of a right-handed board and
// the nut near x = border + scale. The y axis runs across the strings with
// the bass edge at y = border. Every coordinate is offset by a caller-chosen
// border, which is a rendering margin and has no geometric meaning.
//
// Left-handed multiscale boards are the exact horizontal mirror of their
// right-handed counterpart: x becomes scale + 2*border - x and y is left
// untouched.
//
// # Computing a Board
//
// Use [Compute] for the whole board at once:
//
//	specs, err := layout.NewSpecs(648, 24, layout.Multiscale(610, layout.Right, 8), 43, 62)
//	if err != nil {
//	    return err
//	}
//	board, err := layout.Compute(ctx, specs, 10)
//
// Or use an [Engine] to compute individual lines on demand:
//
//	e, err := layout.NewEngine(specs, 10)
//	fret12 := e.FretLine(12)
//
// # Validation
//
// Invalid instruments are rejected before any point is computed, so no
// NaN or infinite coordinate ever reaches a caller. Validation errors carry
// the codes from [github.com/gfret/fretboard/pkg/errors].
package layout
