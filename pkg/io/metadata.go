package io

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gfret/fretboard/pkg/config"
	ferrors "github.com/gfret/fretboard/pkg/errors"
	"github.com/gfret/fretboard/pkg/layout"
)

// Attribute names of the description element.
const (
	AttrScale       = "Scale"
	AttrBridge      = "BridgeSpacing"
	AttrNut         = "NutWidth"
	AttrCount       = "FretCount"
	AttrScaleTreble = "ScaleTreble"
	AttrPFret       = "PerpendicularFret"
	AttrHandedness  = "Handedness"
	AttrUnits       = "Units"
)

type description struct {
	XMLName     xml.Name `xml:"desc"`
	Scale       string   `xml:"Scale,attr"`
	Bridge      string   `xml:"BridgeSpacing,attr"`
	Nut         string   `xml:"NutWidth,attr"`
	Count       string   `xml:"FretCount,attr"`
	ScaleTreble string   `xml:"ScaleTreble,attr,omitempty"`
	PFret       string   `xml:"PerpendicularFret,attr,omitempty"`
	Handedness  string   `xml:"Handedness,attr,omitempty"`
	Units       string   `xml:"Units,attr,omitempty"`
}

// EncodeDescription returns the <desc> element describing specs. The
// overhang for units is subtracted from the bridge spacing.
func EncodeDescription(specs layout.Specs, units config.Units) ([]byte, error) {
	d := description{
		Scale:  formatFloat(specs.Scale),
		Bridge: formatFloat(specs.Bridge - units.BridgeOverhang()),
		Nut:    formatFloat(specs.Nut),
		Count:  strconv.FormatUint(uint64(specs.Count), 10),
		Units:  units.String(),
	}
	if treble, ok := specs.Variant.ScaleTreble(); ok {
		pfret, _ := specs.Variant.PFret()
		h, _ := specs.Variant.Handedness()
		d.ScaleTreble = formatFloat(treble)
		d.PFret = formatFloat(pfret)
		d.Handedness = h.String()
	}

	out, err := xml.Marshal(d)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInternal, err, "encode description")
	}
	return out, nil
}

// ReadSpecs recovers the measurements embedded in an SVG document. The
// returned Specs are validated and include the bridge overhang.
func ReadSpecs(r io.Reader) (layout.Specs, config.Units, error) {
	b, err := ReadSVG(r)
	return b.Specs, b.Units, err
}

// ReadSVG is like [ReadSpecs] but also recovers the border from the width
// of the view box. When the document has no usable view box the default
// border is returned.
func ReadSVG(r io.Reader) (Board, error) {
	doc, err := scanDocument(r)
	if err != nil {
		return Board{Units: config.Metric}, err
	}
	specs, units, err := specsFromAttrs(doc.attrs)
	if err != nil {
		return Board{Units: units}, err
	}

	border := config.Default().Border
	if doc.viewWidth > specs.Scale {
		border = (doc.viewWidth - specs.Scale) / 2
	}
	return Board{Specs: specs, Units: units, Border: border}, nil
}

// OpenSVG reads the board embedded in the SVG file at path.
func OpenSVG(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Board{}, ferrors.Wrap(ferrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return Board{}, err
	}
	return ReadSVG(bytes.NewReader(data))
}

type scanned struct {
	attrs     map[string]string
	viewWidth float64
}

// scanDocument returns the attributes of the first <desc> element that
// carries fretboard metadata, plus the view box width of the root element.
func scanDocument(r io.Reader) (scanned, error) {
	var doc scanned
	dec := xml.NewDecoder(r)
	dec.Strict = false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return doc, ferrors.NoMetadata()
		}
		if err != nil {
			return doc, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "read document")
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "svg":
			if doc.viewWidth == 0 {
				doc.viewWidth = viewBoxWidth(start.Attr)
			}
		case "desc":
			attrs := make(map[string]string, len(start.Attr))
			for _, a := range start.Attr {
				attrs[a.Name.Local] = a.Value
			}
			if isFretboardDescription(attrs) {
				doc.attrs = attrs
				return doc, nil
			}
		}
	}
}

func viewBoxWidth(attrs []xml.Attr) float64 {
	for _, a := range attrs {
		if a.Name.Local != "viewBox" {
			continue
		}
		fields := strings.FieldsFunc(a.Value, func(r rune) bool { return r == ' ' || r == ',' })
		if len(fields) != 4 {
			return 0
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return 0
		}
		return w
	}
	return 0
}

func isFretboardDescription(attrs map[string]string) bool {
	for _, k := range []string{AttrScale, AttrBridge, AttrNut, AttrCount} {
		if _, ok := attrs[k]; ok {
			return true
		}
	}
	return false
}

func specsFromAttrs(attrs map[string]string) (layout.Specs, config.Units, error) {
	units := config.Metric
	if v, ok := attrs[AttrUnits]; ok {
		u, err := config.ParseUnits(v)
		if err != nil {
			return layout.Specs{}, units, err
		}
		units = u
	}

	scale, err := floatAttr(attrs, AttrScale)
	if err != nil {
		return layout.Specs{}, units, err
	}
	bridge, err := floatAttr(attrs, AttrBridge)
	if err != nil {
		return layout.Specs{}, units, err
	}
	nut, err := floatAttr(attrs, AttrNut)
	if err != nil {
		return layout.Specs{}, units, err
	}
	count, err := countAttr(attrs)
	if err != nil {
		return layout.Specs{}, units, err
	}

	variant := layout.Monoscale()
	if isMultiscale(attrs) {
		treble, err := floatAttr(attrs, AttrScaleTreble)
		if err != nil {
			return layout.Specs{}, units, err
		}
		pfret, err := floatAttr(attrs, AttrPFret)
		if err != nil {
			return layout.Specs{}, units, err
		}
		token, ok := attrs[AttrHandedness]
		if !ok {
			return layout.Specs{}, units, ferrors.MissingField(AttrHandedness)
		}
		h, err := layout.ParseHandedness(token)
		if err != nil {
			return layout.Specs{}, units, err
		}
		variant = layout.Multiscale(treble, h, pfret)
	}

	specs, err := layout.NewSpecs(scale, count, variant, nut, bridge+units.BridgeOverhang())
	if err != nil {
		return layout.Specs{}, units, err
	}
	return specs, units, nil
}

func isMultiscale(attrs map[string]string) bool {
	for _, k := range []string{AttrScaleTreble, AttrPFret, AttrHandedness} {
		if _, ok := attrs[k]; ok {
			return true
		}
	}
	return false
}

func floatAttr(attrs map[string]string, name string) (float64, error) {
	v, ok := attrs[name]
	if !ok {
		return 0, ferrors.MissingField(name)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, ferrors.MalformedNumber(name, err)
	}
	return f, nil
}

func countAttr(attrs map[string]string) (uint32, error) {
	v, ok := attrs[AttrCount]
	if !ok {
		return 0, ferrors.MissingField(AttrCount)
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, ferrors.MalformedNumber(AttrCount, err)
	}
	return uint32(n), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
