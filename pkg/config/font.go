package config

import (
	"strconv"
	"strings"

	ferrors "github.com/gfret/fretboard/pkg/errors"
)

// Font describes the typeface of the specification text. Its text form is a
// Pango-style description such as "Sans Bold Italic 12".
type Font struct {
	Family  string
	Weight  Weight
	Style   Style
	Stretch Stretch
	Size    float64
}

// DefaultFont returns "Sans Regular 12".
func DefaultFont() Font {
	return Font{Family: "Sans", Weight: WeightNormal, Style: StyleNormal, Stretch: StretchNormal, Size: 12}
}

// Style is the slant of a font.
type Style uint8

const (
	StyleNormal Style = iota
	StyleOblique
	StyleItalic
)

var styleNames = []string{"Normal", "Oblique", "Italic"}

func (s Style) String() string { return styleNames[s] }

// CSS returns the value of the SVG font-style attribute.
func (s Style) CSS() string { return strings.ToLower(styleNames[s]) }

// Weight is the boldness of a font.
type Weight uint8

const (
	WeightThin Weight = iota
	WeightUltralight
	WeightLight
	WeightSemilight
	WeightBook
	WeightNormal
	WeightMedium
	WeightSemibold
	WeightBold
	WeightUltrabold
	WeightHeavy
	WeightUltraheavy
)

var weights = []struct {
	name string
	css  string
}{
	{"Thin", "100"},
	{"Ultralight", "200"},
	{"Light", "300"},
	{"Semilight", "350"},
	{"Book", "400"},
	{"Regular", "400"},
	{"Medium", "500"},
	{"Semibold", "600"},
	{"Bold", "700"},
	{"Ultrabold", "800"},
	{"Heavy", "900"},
	{"Ultraheavy", "950"},
}

func (w Weight) String() string { return weights[w].name }

// CSS returns the value of the SVG font-weight attribute.
func (w Weight) CSS() string { return weights[w].css }

// Stretch is the width of a font.
type Stretch uint8

const (
	StretchUltraCondensed Stretch = iota
	StretchExtraCondensed
	StretchCondensed
	StretchSemiCondensed
	StretchNormal
	StretchSemiExpanded
	StretchExpanded
	StretchExtraExpanded
	StretchUltraExpanded
)

var stretchNames = []string{
	"Ultra-Condensed", "Extra-Condensed", "Condensed", "Semi-Condensed", "Normal",
	"Semi-Expanded", "Expanded", "Extra-Expanded", "Ultra-Expanded",
}

func (s Stretch) String() string { return stretchNames[s] }

// CSS returns the value of the SVG font-stretch attribute.
func (s Stretch) CSS() string { return strings.ToLower(stretchNames[s]) }

// ParseFont parses a description of the form
// "[FAMILY...] [WEIGHT] [STYLE] [STRETCH] [SIZE]". Unrecognised words are
// taken to be part of the family name. Missing parts take the defaults of
// [DefaultFont].
func ParseFont(desc string) (Font, error) {
	words := strings.Fields(desc)
	if len(words) == 0 {
		return Font{}, ferrors.New(ferrors.ErrCodeInvalidFont, "empty font description")
	}

	f := DefaultFont()
	if n := len(words); n > 1 {
		if size, err := strconv.ParseFloat(words[n-1], 64); err == nil {
			if size <= 0 {
				return Font{}, ferrors.New(ferrors.ErrCodeInvalidFont, "font size must be positive in %q", desc)
			}
			f.Size = size
			words = words[:n-1]
		}
	}

	var family []string
	for _, w := range words {
		if len(family) > 0 {
			if v, ok := lookupWeight(w); ok {
				f.Weight = v
				continue
			}
			if v, ok := lookup(w, styleNames); ok {
				f.Style = Style(v)
				continue
			}
			if v, ok := lookup(w, stretchNames); ok {
				f.Stretch = Stretch(v)
				continue
			}
		}
		family = append(family, w)
	}
	f.Family = strings.Join(family, " ")
	if f.Family == "" {
		return Font{}, ferrors.New(ferrors.ErrCodeInvalidFont, "font description %q has no family", desc)
	}
	return f, nil
}

// String returns the description form, e.g. "Sans Bold Italic 12".
func (f Font) String() string {
	var b strings.Builder
	b.WriteString(f.Family)
	b.WriteByte(' ')
	b.WriteString(f.Weight.String())
	if f.Style != StyleNormal {
		b.WriteByte(' ')
		b.WriteString(f.Style.String())
	}
	if f.Stretch != StretchNormal {
		b.WriteByte(' ')
		b.WriteString(f.Stretch.String())
	}
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(f.Size, 'g', -1, 64))
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (f Font) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Font) UnmarshalText(text []byte) error {
	v, err := ParseFont(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func lookupWeight(word string) (Weight, bool) {
	// Pango accepts "Normal" as a synonym for "Regular".
	if strings.EqualFold(word, "Normal") {
		return WeightNormal, true
	}
	for i, w := range weights {
		if strings.EqualFold(word, w.name) {
			return Weight(i), true
		}
	}
	return 0, false
}

func lookup(word string, names []string) (int, bool) {
	for i, n := range names {
		if strings.EqualFold(word, n) {
			return i, true
		}
	}
	return 0, false
}
