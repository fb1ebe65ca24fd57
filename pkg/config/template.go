package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	ferrors "github.com/gfret/fretboard/pkg/errors"
	"github.com/gfret/fretboard/pkg/layout"
)

// Template is a saved set of instrument measurements. Bridge is the spacing
// of the outer strings as entered by the user, without the overhang.
type Template struct {
	Scale       float64            `toml:"scale"`
	Count       uint32             `toml:"count"`
	ScaleTreble *float64           `toml:"scale_treble,omitempty"`
	PFret       *float64           `toml:"pfret,omitempty"`
	Handedness  *layout.Handedness `toml:"handedness,omitempty"`
	Nut         float64            `toml:"nut"`
	Bridge      float64            `toml:"bridge"`
	Border      *float64           `toml:"border,omitempty"`
}

// NewTemplate records specs. overhang is subtracted from the bridge so that
// the template holds the user's bridge spacing.
func NewTemplate(specs layout.Specs, overhang, border float64) Template {
	t := Template{
		Scale:  specs.Scale,
		Count:  specs.Count,
		Nut:    specs.Nut,
		Bridge: specs.Bridge - overhang,
		Border: &border,
	}
	if treble, ok := specs.Variant.ScaleTreble(); ok {
		pfret, _ := specs.Variant.PFret()
		h, _ := specs.Variant.Handedness()
		t.ScaleTreble = &treble
		t.PFret = &pfret
		t.Handedness = &h
	}
	return t
}

// Variant returns Multiscale when a treble scale is present. A missing pfret
// defaults to 8 and a missing handedness to right.
func (t Template) Variant() layout.Variant {
	if t.ScaleTreble == nil {
		return layout.Monoscale()
	}
	pfret := layout.DefaultPFret
	if t.PFret != nil {
		pfret = *t.PFret
	}
	h := layout.Right
	if t.Handedness != nil {
		h = *t.Handedness
	}
	return layout.Multiscale(*t.ScaleTreble, h, pfret)
}

// Specs converts the template into validated Specs, adding overhang to the
// bridge spacing.
func (t Template) Specs(overhang float64) (layout.Specs, error) {
	return layout.NewSpecs(t.Scale, t.Count, t.Variant(), t.Nut, t.Bridge+overhang)
}

// BorderOr returns the stored border or fallback.
func (t Template) BorderOr(fallback float64) float64 {
	if t.Border == nil {
		return fallback
	}
	return *t.Border
}

// ParseTemplate decodes a TOML template.
func ParseTemplate(data []byte) (Template, error) {
	var t Template
	md, err := toml.Decode(string(data), &t)
	if err != nil {
		if ferrors.GetCode(err) != "" {
			return Template{}, err
		}
		return Template{}, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "parse template")
	}
	for _, key := range []string{"scale", "count", "nut", "bridge"} {
		if !md.IsDefined(key) {
			return Template{}, ferrors.MissingField(key)
		}
	}
	return t, nil
}

// LoadTemplate reads a template file.
func LoadTemplate(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Template{}, ferrors.Wrap(ferrors.ErrCodeFileNotFound, err, "template %s", path)
	}
	if err != nil {
		return Template{}, err
	}
	return ParseTemplate(data)
}

// Marshal encodes t as TOML.
func (t Template) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(t); err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInternal, err, "encode template")
	}
	return buf.Bytes(), nil
}

// SaveTemplate writes t to path. A ".toml" extension is added when path has
// none.
func SaveTemplate(path string, t Template) (string, error) {
	if filepath.Ext(path) == "" {
		path += ".toml"
	}
	data, err := t.Marshal()
	if err != nil {
		return "", err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
