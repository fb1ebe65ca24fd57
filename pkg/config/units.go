package config

import (
	ferrors "github.com/gfret/fretboard/pkg/errors"
	"github.com/gfret/fretboard/pkg/layout"
)

// Units selects millimetres or inches for every length.
type Units uint8

const (
	Metric Units = iota
	Imperial
)

// ParseUnits accepts "metric" or "imperial", optionally capitalised.
func ParseUnits(s string) (Units, error) {
	switch s {
	case "metric", "Metric", "mm":
		return Metric, nil
	case "imperial", "Imperial", "in":
		return Imperial, nil
	}
	return Metric, ferrors.New(ferrors.ErrCodeInvalidUnits, "unknown units %q (must be 'metric' or 'imperial')", s)
}

func (u Units) String() string {
	if u == Imperial {
		return "imperial"
	}
	return "metric"
}

// Suffix returns the SVG length suffix, "mm" or "in".
func (u Units) Suffix() string {
	if u == Imperial {
		return "in"
	}
	return "mm"
}

// BridgeOverhang returns the string overhang added to the bridge spacing.
func (u Units) BridgeOverhang() float64 {
	if u == Imperial {
		return layout.BridgeOverhangImperial
	}
	return layout.BridgeOverhangMetric
}

// FontSize returns the size of the specification text in user units.
func (u Units) FontSize() float64 {
	if u == Imperial {
		return 0.25
	}
	return 5.0
}

// CenterlineDash returns the dash pattern of the centerline.
func (u Units) CenterlineDash() [2]float64 {
	if u == Imperial {
		return [2]float64{0.2, 0.4}
	}
	return [2]float64{4.0, 8.0}
}

// MarshalText implements encoding.TextMarshaler.
func (u Units) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Units) UnmarshalText(text []byte) error {
	v, err := ParseUnits(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
