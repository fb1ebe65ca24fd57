package pipeline

import (
	"context"
	"time"

	"github.com/gfret/fretboard/pkg/layout"
	"github.com/gfret/fretboard/pkg/observability"
)

// ComputeLayout computes the board for an instrument and reports the stage
// to the registered pipeline hooks.
func ComputeLayout(ctx context.Context, inst Instrument) (*layout.Board, error) {
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, inst.Specs.Variant.String(), int(inst.Specs.Count))

	start := time.Now()
	b, err := layout.Compute(ctx, inst.Specs, inst.Border)
	lines := 0
	if b != nil {
		lines = len(b.Frets)
	}
	hooks.OnLayoutComplete(ctx, lines, time.Since(start), err)
	return b, err
}
