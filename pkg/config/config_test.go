package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	ferrors "github.com/gfret/fretboard/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Units != Metric {
		t.Errorf("Units = %v, want metric", cfg.Units)
	}
	if cfg.Border != 10 || cfg.LineWeight != 1 {
		t.Errorf("Border, LineWeight = %v, %v, want 10, 1", cfg.Border, cfg.LineWeight)
	}
	if got := cfg.FretlineColor.String(); got != "#ffffff" {
		t.Errorf("FretlineColor = %v, want #ffffff", got)
	}
	if got := cfg.FretboardColor.String(); got != "#000000" {
		t.Errorf("FretboardColor = %v, want #000000", got)
	}
	if cfg.CenterlineColor == nil || cfg.CenterlineColor.String() != "#0000ff" {
		t.Errorf("CenterlineColor = %v, want #0000ff", cfg.CenterlineColor)
	}
	if cfg.Font == nil || cfg.Font.String() != "Sans Regular 12" {
		t.Errorf("Font = %v, want Sans Regular 12", cfg.Font)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(*testing.T, Config)
	}{
		{
			name:  "empty keeps defaults",
			input: "",
			check: func(t *testing.T, c Config) {
				if diff := cmp.Diff(Default(), c); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:  "imperial with border",
			input: "units = \"imperial\"\nborder = 0.5\n",
			check: func(t *testing.T, c Config) {
				if c.Units != Imperial || c.Border != 0.5 {
					t.Errorf("Units, Border = %v, %v", c.Units, c.Border)
				}
			},
		},
		{
			name:  "disable centerline and font",
			input: "centerline_color = \"none\"\nfont = \"none\"\n",
			check: func(t *testing.T, c Config) {
				if c.CenterlineColor != nil || c.Font != nil {
					t.Errorf("CenterlineColor, Font = %v, %v, want nil", c.CenterlineColor, c.Font)
				}
			},
		},
		{
			name:  "colors with alpha",
			input: "fretline_color = \"#ff000080\"\ncenterline_color = \"#00ff00\"\n",
			check: func(t *testing.T, c Config) {
				if got := c.FretlineColor.String(); got != "#ff000080" {
					t.Errorf("FretlineColor = %v", got)
				}
				if got := c.CenterlineColor.String(); got != "#00ff00" {
					t.Errorf("CenterlineColor = %v", got)
				}
			},
		},
		{
			name:  "font",
			input: "font = \"DejaVu Serif Bold Italic 9\"\n",
			check: func(t *testing.T, c Config) {
				want := Font{Family: "DejaVu Serif", Weight: WeightBold, Style: StyleItalic, Stretch: StretchNormal, Size: 9}
				if *c.Font != want {
					t.Errorf("Font = %+v, want %+v", *c.Font, want)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad toml", "units = "},
		{"bad units", "units = \"cubits\""},
		{"bad color", "fretline_color = \"white\""},
		{"bad centerline", "centerline_color = \"#12\""},
		{"bad font", "font = \"\""},
		{"negative border", "border = -1.0"},
		{"zero line weight", "line_weight = 0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); err == nil {
				t.Errorf("Parse(%q) error = nil, want error", tt.input)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Units = Imperial
	cfg.Border = 0.4
	cfg.CenterlineColor = nil
	red := MustParseColor("#ff0000")
	cfg.FretlineColor = red

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if want := filepath.Join("/tmp/custom-config", AppName, "config.toml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}

func TestDefaultPathHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".config", AppName, "config.toml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}

func TestUnits(t *testing.T) {
	tests := []struct {
		input    string
		want     Units
		suffix   string
		overhang float64
		wantErr  bool
	}{
		{"metric", Metric, "mm", 6, false},
		{"Imperial", Imperial, "in", 6 / 25.4, false},
		{"furlongs", Metric, "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			u, err := ParseUnits(tt.input)
			if tt.wantErr {
				if !ferrors.Is(err, ferrors.ErrCodeInvalidUnits) {
					t.Errorf("ParseUnits(%q) error = %v, want INVALID_UNITS", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if u != tt.want || u.Suffix() != tt.suffix || u.BridgeOverhang() != tt.overhang {
				t.Errorf("ParseUnits(%q) = %v (%s, %v)", tt.input, u, u.Suffix(), u.BridgeOverhang())
			}
		})
	}
}
