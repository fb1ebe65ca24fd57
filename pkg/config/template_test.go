package config

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	ferrors "github.com/gfret/fretboard/pkg/errors"
	"github.com/gfret/fretboard/pkg/layout"
)

func TestTemplateRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		specs layout.Specs
	}{
		{"monoscale", layout.Specs{Scale: 648, Count: 22, Variant: layout.Monoscale(), Nut: 42, Bridge: 62}},
		{"multiscale left", layout.Specs{Scale: 686, Count: 24, Variant: layout.Multiscale(648, layout.Left, 7), Nut: 48, Bridge: 68}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tmpl := NewTemplate(tt.specs, 6, 12)

			path, err := SaveTemplate(filepath.Join(dir, "board"), tmpl)
			if err != nil {
				t.Fatalf("SaveTemplate() error = %v", err)
			}
			if filepath.Ext(path) != ".toml" {
				t.Errorf("SaveTemplate() path = %q, want .toml extension", path)
			}

			loaded, err := LoadTemplate(path)
			if err != nil {
				t.Fatalf("LoadTemplate() error = %v", err)
			}
			if loaded.Bridge != tt.specs.Bridge-6 {
				t.Errorf("Bridge = %v, want %v", loaded.Bridge, tt.specs.Bridge-6)
			}
			if got := loaded.BorderOr(0); got != 12 {
				t.Errorf("BorderOr() = %v, want 12", got)
			}

			specs, err := loaded.Specs(6)
			if err != nil {
				t.Fatalf("Specs() error = %v", err)
			}
			if diff := cmp.Diff(tt.specs, specs, cmp.AllowUnexported(layout.Variant{})); diff != "" {
				t.Errorf("Specs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseTemplateDefaults(t *testing.T) {
	tmpl, err := ParseTemplate([]byte("scale = 648.0\ncount = 24\nnut = 43.0\nbridge = 56.0\nscale_treble = 610.0\n"))
	if err != nil {
		t.Fatalf("ParseTemplate() error = %v", err)
	}
	if got, want := tmpl.Variant(), layout.Multiscale(610, layout.Right, 8); got != want {
		t.Errorf("Variant() = %v, want %v", got, want)
	}
	if got := tmpl.BorderOr(10); got != 10 {
		t.Errorf("BorderOr(10) = %v, want 10", got)
	}
}

func TestParseTemplateErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  ferrors.Code
	}{
		{"missing scale", "count = 24\nnut = 43.0\nbridge = 56.0\n", ferrors.ErrCodeMissingField},
		{"missing bridge", "scale = 648.0\ncount = 24\nnut = 43.0\n", ferrors.ErrCodeMissingField},
		{"syntax", "scale = = 1", ferrors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTemplate([]byte(tt.input))
			if !ferrors.Is(err, tt.code) {
				t.Errorf("ParseTemplate() error = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestLoadTemplateMissing(t *testing.T) {
	_, err := LoadTemplate(filepath.Join(t.TempDir(), "absent.toml"))
	if !ferrors.Is(err, ferrors.ErrCodeFileNotFound) {
		t.Errorf("LoadTemplate() error = %v, want FILE_NOT_FOUND", err)
	}
}
