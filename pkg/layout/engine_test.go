package layout

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	ferrors "github.com/gfret/fretboard/pkg/errors"
)

const border = 10.0

func mustEngine(t *testing.T, s Specs) *Engine {
	t.Helper()
	e, err := NewEngine(s, border)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func multiSpecs(h Handedness) Specs {
	s := DefaultSpecs()
	s.Variant = Multiscale(610, h, 8)
	return s
}

func TestFretLineDefault(t *testing.T) {
	e := mustEngine(t, DefaultSpecs())
	f := e.Factors()

	nut := e.Nut()
	wantStart := Point{X: f.XRatio*655 + border, Y: f.YRatio*655 + border}
	wantEnd := Point{X: f.XRatio*655 + border, Y: 56 - f.YRatio*655 + border}
	if nut.Start != wantStart || nut.End != wantEnd {
		t.Errorf("Nut() = %+v, want {%v %v}", nut, wantStart, wantEnd)
	}

	// The nut spans the nut width.
	if got := nut.End.Y - nut.Start.Y; !approx(got, 43, 1e-9) {
		t.Errorf("nut width = %v, want 43", got)
	}
}

func TestPerpendicularFret(t *testing.T) {
	for _, h := range []Handedness{Right, Left} {
		e := mustEngine(t, multiSpecs(h))
		l := e.FretLine(8)
		if !approx(l.Start.X, l.End.X, 1e-9) {
			t.Errorf("%v: fret 8 = %+v, want equal x", h, l)
		}
		if l12 := e.FretLine(12); approx(l12.Start.X, l12.End.X, 1e-6) {
			t.Errorf("%v: fret 12 = %+v, want fanned", h, l12)
		}
	}
}

func TestMirrorLaw(t *testing.T) {
	right := mustEngine(t, multiSpecs(Right))
	left := mustEngine(t, multiSpecs(Left))
	sum := right.Specs().Scale + 2*border

	check := func(name string, r, l Line) {
		t.Helper()
		if !approx(r.Start.X+l.Start.X, sum, 1e-9) || !approx(r.End.X+l.End.X, sum, 1e-9) {
			t.Errorf("%s: x_right + x_left = %v, %v, want %v",
				name, r.Start.X+l.Start.X, r.End.X+l.End.X, sum)
		}
		if r.Start.Y != l.Start.Y || r.End.Y != l.End.Y {
			t.Errorf("%s: y mirrored: right %+v, left %+v", name, r, l)
		}
	}

	for n := uint32(0); n <= right.Specs().Count+1; n++ {
		check("fret", right.FretLine(n), left.FretLine(n))
	}
	check("bridge", right.Bridge(), left.Bridge())
}

func TestBridge(t *testing.T) {
	tests := []struct {
		name  string
		specs Specs
		want  Line
	}{
		{
			name:  "monoscale",
			specs: DefaultSpecs(),
			want:  Line{Start: Point{X: 10, Y: 10}, End: Point{X: 10, Y: 66}},
		},
		{
			name:  "multiscale left",
			specs: multiSpecs(Left),
			want: Line{
				Start: Point{X: 665, Y: 10},
				End:   Point{X: 665 - 28.346827734356623, Y: 66},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustEngine(t, tt.specs).Bridge()
			if diff := cmp.Diff(tt.want, got, cmp.Comparer(func(a, b float64) bool {
				return approx(a, b, 1e-9)
			})); diff != "" {
				t.Errorf("Bridge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCenterlineAndSize(t *testing.T) {
	e := mustEngine(t, DefaultSpecs())
	want := Line{Start: Point{X: 10, Y: 38}, End: Point{X: 665, Y: 38}}
	if got := e.Centerline(); got != want {
		t.Errorf("Centerline() = %+v, want %+v", got, want)
	}
	if e.Width() != 675 || e.Height() != 76 {
		t.Errorf("size = %v x %v, want 675 x 76", e.Width(), e.Height())
	}
}

func TestNewEngineInvalid(t *testing.T) {
	if _, err := NewEngine(DefaultSpecs(), -1); !ferrors.Is(err, ferrors.ErrCodeInvalidMeasurement) {
		t.Errorf("NewEngine(border=-1) error = %v, want INVALID_MEASUREMENT", err)
	}
	s := DefaultSpecs()
	s.Scale, s.Nut, s.Bridge = 1, 0, 3
	if _, err := NewEngine(s, border); !ferrors.Is(err, ferrors.ErrCodeInvalidGeometry) {
		t.Errorf("NewEngine() error = %v, want INVALID_GEOMETRY", err)
	}
	s = DefaultSpecs()
	s.Count = math.MaxUint32
	if _, err := NewEngine(s, border); !ferrors.Is(err, ferrors.ErrCodeInvalidCount) {
		t.Errorf("NewEngine(count=MaxUint32) error = %v, want INVALID_COUNT", err)
	}
}

func TestCompute(t *testing.T) {
	b, err := Compute(context.Background(), multiSpecs(Right), border)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if len(b.Frets) != 25 {
		t.Fatalf("len(Frets) = %d, want 25", len(b.Frets))
	}

	e := mustEngine(t, multiSpecs(Right))
	for n, got := range b.Frets {
		if want := e.FretLine(uint32(n)); got != want {
			t.Errorf("Frets[%d] = %+v, want %+v", n, got, want)
		}
	}
	if b.Nut != b.Frets[0] {
		t.Errorf("Nut = %+v, want Frets[0]", b.Nut)
	}
	if b.Closing != e.ClosingLine() {
		t.Errorf("Closing = %+v, want %+v", b.Closing, e.ClosingLine())
	}
	if len(b.Outline) != 4 || b.Outline[0] != b.Nut.Start || b.Outline[3] != b.Closing.Start {
		t.Errorf("Outline = %v", b.Outline)
	}
	if n := len(b.Lines()); n != 26 {
		t.Errorf("len(Lines()) = %d, want 26", n)
	}

	for _, l := range b.Lines() {
		for _, v := range []float64{l.Start.X, l.Start.Y, l.End.X, l.End.Y} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite coordinate in %+v", l)
			}
		}
	}
}

func TestComputeAllOrNothing(t *testing.T) {
	s := DefaultSpecs()
	s.Count = 0
	b, err := Compute(context.Background(), s, border)
	if err == nil || b != nil {
		t.Fatalf("Compute() = %v, %v, want nil, error", b, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b, err = Compute(ctx, DefaultSpecs(), border)
	if !errors.Is(err, context.Canceled) || b != nil {
		t.Errorf("Compute(canceled) = %v, %v, want nil, context.Canceled", b, err)
	}
}

func TestComputeDeterministic(t *testing.T) {
	a, err := Compute(context.Background(), multiSpecs(Left), border)
	if err != nil {
		t.Fatal(err)
	}
	for range 20 {
		b, err := Compute(context.Background(), multiSpecs(Left), border)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(a, b, cmp.AllowUnexported(Variant{})); diff != "" {
			t.Fatalf("Compute() not deterministic (-first +later):\n%s", diff)
		}
	}
}
