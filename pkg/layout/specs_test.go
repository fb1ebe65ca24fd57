package layout

import (
	"math"
	"testing"

	ferrors "github.com/gfret/fretboard/pkg/errors"
)

func TestDefaultSpecs(t *testing.T) {
	s := DefaultSpecs()
	if s.Scale != 655 || s.Count != 24 || s.Nut != 43 || s.Bridge != 56 {
		t.Errorf("DefaultSpecs() = %+v", s)
	}
	if s.Variant.IsMultiscale() {
		t.Error("DefaultSpecs().Variant.IsMultiscale() = true, want false")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestSpecsValidate(t *testing.T) {
	base := DefaultSpecs()

	tests := []struct {
		name   string
		mutate func(*Specs)
		code   ferrors.Code
	}{
		{"valid monoscale", func(s *Specs) {}, ""},
		{"valid multiscale", func(s *Specs) { s.Variant = DefaultMultiscale() }, ""},
		{"zero nut", func(s *Specs) { s.Nut = 0 }, ""},
		{"pfret at nut", func(s *Specs) { s.Variant = Multiscale(610, Left, 0) }, ""},
		{"pfret at closing fret", func(s *Specs) { s.Variant = Multiscale(610, Left, 25) }, ""},
		{"fractional pfret", func(s *Specs) { s.Variant = Multiscale(610, Right, 7.25) }, ""},

		{"zero scale", func(s *Specs) { s.Scale = 0 }, ferrors.ErrCodeInvalidMeasurement},
		{"negative scale", func(s *Specs) { s.Scale = -1 }, ferrors.ErrCodeInvalidMeasurement},
		{"NaN scale", func(s *Specs) { s.Scale = math.NaN() }, ferrors.ErrCodeInvalidMeasurement},
		{"negative nut", func(s *Specs) { s.Nut = -1 }, ferrors.ErrCodeInvalidMeasurement},
		{"bridge equals nut", func(s *Specs) { s.Bridge = s.Nut }, ferrors.ErrCodeInvalidMeasurement},
		{"bridge narrower than nut", func(s *Specs) { s.Bridge = 40 }, ferrors.ErrCodeInvalidMeasurement},
		{"infinite bridge", func(s *Specs) { s.Bridge = math.Inf(1) }, ferrors.ErrCodeInvalidMeasurement},
		{"zero count", func(s *Specs) { s.Count = 0 }, ferrors.ErrCodeInvalidCount},
		{"max count", func(s *Specs) { s.Count = MaxCount }, ""},
		{"count above max", func(s *Specs) { s.Count = MaxCount + 1 }, ferrors.ErrCodeInvalidCount},
		{"count wraps closing fret", func(s *Specs) { s.Count = math.MaxUint32 }, ferrors.ErrCodeInvalidCount},
		{"bridge too wide", func(s *Specs) { s.Scale = 10; s.Bridge = 64 }, ferrors.ErrCodeInvalidGeometry},
		{"zero treble scale", func(s *Specs) { s.Variant = Multiscale(0, Right, 8) }, ferrors.ErrCodeInvalidMeasurement},
		{"negative pfret", func(s *Specs) { s.Variant = Multiscale(610, Right, -1) }, ferrors.ErrCodeInvalidMeasurement},
		{"pfret past closing fret", func(s *Specs) { s.Variant = Multiscale(610, Right, 25.5) }, ferrors.ErrCodeInvalidMeasurement},
		{"NaN pfret", func(s *Specs) { s.Variant = Multiscale(610, Right, math.NaN()) }, ferrors.ErrCodeInvalidMeasurement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			tt.mutate(&s)
			err := s.Validate()
			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !ferrors.Is(err, tt.code) {
				t.Errorf("Validate() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestNewSpecs(t *testing.T) {
	s, err := NewSpecs(648, 22, Multiscale(610, Left, 8), 42, 62)
	if err != nil {
		t.Fatalf("NewSpecs() error = %v", err)
	}
	if !s.Multiscale() || !s.LeftHanded() {
		t.Errorf("NewSpecs() = %+v, want left-handed multiscale", s)
	}

	if _, err := NewSpecs(648, 0, Monoscale(), 42, 62); !ferrors.Is(err, ferrors.ErrCodeInvalidCount) {
		t.Errorf("NewSpecs(count=0) error = %v, want INVALID_COUNT", err)
	}
}
