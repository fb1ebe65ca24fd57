package io

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gfret/fretboard/pkg/config"
	ferrors "github.com/gfret/fretboard/pkg/errors"
	"github.com/gfret/fretboard/pkg/layout"
)

func computeBoard(t *testing.T, specs layout.Specs, border float64) *layout.Board {
	t.Helper()
	b, err := layout.Compute(context.Background(), specs, border)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	return b
}

func TestWriteJSON(t *testing.T) {
	specs := layout.DefaultSpecs()
	specs.Variant = layout.Multiscale(610, layout.Left, 8)
	b := computeBoard(t, specs, 10)

	var buf bytes.Buffer
	if err := WriteJSON(b, config.Metric, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	frets, ok := out["frets"].([]any)
	if !ok || len(frets) != 25 {
		t.Fatalf("frets = %v, want 25 entries", out["frets"])
	}
	first := frets[0].(map[string]any)
	if _, ok := first["start"]; !ok {
		t.Errorf("fret entry missing promoted start: %v", first)
	}
	if first["length_bass"] != 655.0 {
		t.Errorf("length_bass = %v, want 655", first["length_bass"])
	}
	if !strings.Contains(buf.String(), `"handedness": "left"`) {
		t.Errorf("output missing handedness:\n%s", buf.String())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		specs  layout.Specs
		units  config.Units
		border float64
	}{
		{"monoscale", layout.DefaultSpecs(), config.Metric, 10},
		{"multiscale", layout.Specs{Scale: 686, Count: 24, Variant: layout.Multiscale(648, layout.Right, 9), Nut: 48, Bridge: 70}, config.Metric, 5},
		{"imperial", layout.Specs{Scale: 25.5, Count: 22, Nut: 1.65, Bridge: 2.3}, config.Imperial, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "board.json")
			if err := ExportJSON(computeBoard(t, tt.specs, tt.border), tt.units, path); err != nil {
				t.Fatalf("ExportJSON() error = %v", err)
			}
			got, err := Open(path)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			want := Board{Specs: tt.specs, Units: tt.units, Border: tt.border}
			if diff := cmp.Diff(want, got, cmp.AllowUnexported(layout.Variant{})); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  ferrors.Code
	}{
		{"malformed", `{"specs":`, ferrors.ErrCodeInvalidInput},
		{"missing specs", `{"units": "metric"}`, ferrors.ErrCodeMissingField},
		{"zero count", `{"specs": {"scale": 655, "count": 0, "nut": 43, "bridge": 56}}`, ferrors.ErrCodeInvalidCount},
		{"bad handedness", `{"specs": {"scale": 655, "count": 24, "nut": 43, "bridge": 56, "multiscale": {"scale_treble": 610, "pfret": 8, "handedness": "up"}}}`, ferrors.ErrCodeMalformedHandedness},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !ferrors.Is(err, tt.code) {
				t.Errorf("ReadJSON() error = %v, want %v", err, tt.code)
			}
		})
	}
}
