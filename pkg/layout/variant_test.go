package layout

import (
	"testing"

	ferrors "github.com/gfret/fretboard/pkg/errors"
)

func TestVariantAccessors(t *testing.T) {
	m := Monoscale()
	if _, ok := m.ScaleTreble(); ok {
		t.Error("Monoscale().ScaleTreble() ok = true")
	}
	if _, ok := m.Handedness(); ok {
		t.Error("Monoscale().Handedness() ok = true")
	}
	if _, ok := m.PFret(); ok {
		t.Error("Monoscale().PFret() ok = true")
	}
	if (Variant{}) != m {
		t.Error("zero Variant is not Monoscale")
	}

	v := Multiscale(610, Left, 7.5)
	if got, ok := v.ScaleTreble(); !ok || got != 610 {
		t.Errorf("ScaleTreble() = %v, %v, want 610, true", got, ok)
	}
	if got, ok := v.Handedness(); !ok || got != Left {
		t.Errorf("Handedness() = %v, %v, want left, true", got, ok)
	}
	if got, ok := v.PFret(); !ok || got != 7.5 {
		t.Errorf("PFret() = %v, %v, want 7.5, true", got, ok)
	}
	if !v.IsMultiscale() {
		t.Error("IsMultiscale() = false")
	}
}

func TestVariantString(t *testing.T) {
	tests := []struct {
		v    Variant
		want string
	}{
		{Monoscale(), "monoscale"},
		{DefaultMultiscale(), "multiscale(treble=610, right, pfret=8)"},
		{Multiscale(640.5, Left, 9.5), "multiscale(treble=640.5, left, pfret=9.5)"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseHandedness(t *testing.T) {
	tests := []struct {
		input   string
		want    Handedness
		wantErr bool
	}{
		{"right", Right, false},
		{"Right", Right, false},
		{"left", Left, false},
		{"Left", Left, false},
		{"", Right, true},
		{"LEFT", Right, true},
		{"ambidextrous", Right, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHandedness(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHandedness(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !ferrors.Is(err, ferrors.ErrCodeMalformedHandedness) {
				t.Errorf("code = %v, want %v", ferrors.GetCode(err), ferrors.ErrCodeMalformedHandedness)
			}
			if got != tt.want {
				t.Errorf("ParseHandedness(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHandednessText(t *testing.T) {
	for _, h := range []Handedness{Right, Left} {
		b, err := h.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Handedness
		if err := got.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if got != h {
			t.Errorf("round trip %v = %v", h, got)
		}
	}
}
