package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	ferrors "github.com/gfret/fretboard/pkg/errors"
)

// Color is an RGB color with opacity. Its text form is "#rrggbb" or
// "#rrggbbaa".
type Color struct {
	colorful.Color
	Alpha float64
}

var (
	White = Color{Color: colorful.Color{R: 1, G: 1, B: 1}, Alpha: 1}
	Black = Color{Color: colorful.Color{R: 0, G: 0, B: 0}, Alpha: 1}
	Blue  = Color{Color: colorful.Color{R: 0, G: 0, B: 1}, Alpha: 1}
)

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := 1.0
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, ferrors.Wrap(ferrors.ErrCodeInvalidColor, err, "invalid alpha in %q", s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	if len(s) != 7 || s[0] != '#' {
		return Color{}, ferrors.New(ferrors.ErrCodeInvalidColor, "invalid color %q (want #rrggbb or #rrggbbaa)", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, ferrors.Wrap(ferrors.ErrCodeInvalidColor, err, "invalid color %q", s)
	}
	return Color{Color: c, Alpha: alpha}, nil
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBHex returns "#rrggbb" without the alpha channel.
func (c Color) RGBHex() string {
	return c.Color.Clamped().Hex()
}

// String returns "#rrggbb" for opaque colors and "#rrggbbaa" otherwise.
func (c Color) String() string {
	if c.Alpha >= 1 {
		return c.RGBHex()
	}
	return fmt.Sprintf("%s%02x", c.RGBHex(), uint8(math.Round(clamp01(c.Alpha)*255)))
}

// Floats returns the red, green, blue and alpha channels in [0, 1].
func (c Color) Floats() (r, g, b, a float64) {
	cc := c.Color.Clamped()
	return cc.R, cc.G, cc.B, clamp01(c.Alpha)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
