package layout

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Board is the complete geometry of one fretboard.
type Board struct {
	Specs   Specs
	Factors Factors
	Border  float64

	// Frets holds the nut at index 0 followed by every playable fret, so
	// Frets[n] is the line of fret n.
	Frets []Line

	Nut        Line
	Closing    Line
	Bridge     Line
	Centerline Line
	Outline    []Point

	Width  float64
	Height float64
}

// Compute validates specs, derives the Factors and computes every fret line.
// Frets are mapped in parallel; the result holds every line or, on error,
// none at all.
func Compute(ctx context.Context, specs Specs, border float64) (*Board, error) {
	e, err := NewEngine(specs, border)
	if err != nil {
		return nil, err
	}

	frets, err := e.frets(ctx)
	if err != nil {
		return nil, err
	}

	return &Board{
		Specs:      specs,
		Factors:    e.factors,
		Border:     border,
		Frets:      frets,
		Nut:        frets[0],
		Closing:    e.ClosingLine(),
		Bridge:     e.Bridge(),
		Centerline: e.Centerline(),
		Outline:    e.Outline(),
		Width:      e.Width(),
		Height:     e.Height(),
	}, nil
}

// frets computes lines 0..=Count. Each worker writes only its own indices.
func (e *Engine) frets(ctx context.Context) ([]Line, error) {
	n := int(e.specs.Count) + 1
	lines := make([]Line, n)

	workers := min(runtime.GOMAXPROCS(0), n)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			for i := w; i < n; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				lines[i] = e.FretLine(uint32(i))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Lines returns every drawable line in document order: the frets from the
// nut upward, then the bridge.
func (b *Board) Lines() []Line {
	out := make([]Line, 0, len(b.Frets)+1)
	out = append(out, b.Frets...)
	return append(out, b.Bridge)
}
