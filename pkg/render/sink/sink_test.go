package sink

import (
	"bytes"
	"context"
	"image/png"
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/gfret/fretboard/pkg/config"
	fio "github.com/gfret/fretboard/pkg/io"
	"github.com/gfret/fretboard/pkg/layout"
	"github.com/gfret/fretboard/pkg/render"
)

func computeBoard(t *testing.T, specs layout.Specs) *layout.Board {
	t.Helper()
	b, err := layout.Compute(context.Background(), specs, 10)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	return b
}

func multiscaleSpecs() layout.Specs {
	s := layout.DefaultSpecs()
	s.Variant = layout.Multiscale(610, layout.Left, 8)
	return s
}

var idPattern = regexp.MustCompile(`id="([^"]+)"`)

func TestRenderSVGElementOrder(t *testing.T) {
	svg, err := RenderSVG(computeBoard(t, layout.DefaultSpecs()))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}

	var ids []string
	for _, m := range idPattern.FindAllSubmatch(svg, -1) {
		ids = append(ids, string(m[1]))
	}
	want := []string{"Fretboard", "Bridge", "Frets", "Nut", "Fret 1"}
	for i, id := range want {
		if i >= len(ids) || ids[i] != id {
			t.Fatalf("ids = %v, want prefix %v", ids, want)
		}
	}
	if got := ids[len(ids)-2:]; got[0] != "Specifications" || got[1] != "Centerline" {
		t.Errorf("trailing ids = %v, want [Specifications Centerline]", got)
	}
	if n := strings.Count(string(svg), `id="Fret `); n != 24 {
		t.Errorf("fret paths = %d, want 24", n)
	}
}

func TestRenderSVGFretsUnfilled(t *testing.T) {
	for _, specs := range []layout.Specs{layout.DefaultSpecs(), multiscaleSpecs()} {
		b := computeBoard(t, specs)
		svg, err := RenderSVG(b)
		if err != nil {
			t.Fatalf("RenderSVG() error = %v", err)
		}
		filled := regexp.MustCompile(`<path id="(Nut|Fret \d+)" fill="none" `)
		if got := len(filled.FindAll(svg, -1)); got != len(b.Frets) {
			t.Errorf("%v: unfilled fret paths = %d, want %d", specs.Variant, got, len(b.Frets))
		}
	}
}

func TestRenderSVGRoot(t *testing.T) {
	svg, err := RenderSVG(computeBoard(t, layout.DefaultSpecs()))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	for _, want := range []string{
		`width="675mm"`,
		`height="76mm"`,
		`viewBox="0 0 675 76"`,
		`preserveAspectRatio="xMidYMid meet"`,
		`stroke-dasharray="4.0, 8.0"`,
		`Scale: 655.00mm | NutWidth: 43.00mm | BridgeSpacing: 50.00mm`,
	} {
		if !bytes.Contains(svg, []byte(want)) {
			t.Errorf("svg missing %s", want)
		}
	}
}

func TestRenderSVGOptionalElements(t *testing.T) {
	cfg := config.Default()
	cfg.Font = nil
	cfg.CenterlineColor = nil
	cfg.Units = config.Imperial

	specs := layout.Specs{Scale: 25.5, Count: 22, Variant: layout.Monoscale(), Nut: 1.65, Bridge: 2.2 + config.Imperial.BridgeOverhang()}
	svg, err := RenderSVG(computeBoard(t, specs), WithConfig(cfg))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if bytes.Contains(svg, []byte("Specifications")) {
		t.Error("svg contains specification text without a font")
	}
	if bytes.Contains(svg, []byte("Centerline")) {
		t.Error("svg contains centerline without a color")
	}
	if !bytes.Contains(svg, []byte(`width="45.5in"`)) {
		t.Error("svg width missing inch suffix")
	}
}

func TestRenderSVGRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		specs layout.Specs
	}{
		{"monoscale", layout.DefaultSpecs()},
		{"multiscale left", multiscaleSpecs()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg, err := RenderSVG(computeBoard(t, tt.specs))
			if err != nil {
				t.Fatalf("RenderSVG() error = %v", err)
			}
			got, err := fio.ReadSVG(bytes.NewReader(svg))
			if err != nil {
				t.Fatalf("ReadSVG() error = %v", err)
			}
			if got.Specs.Count != tt.specs.Count || got.Specs.Variant != tt.specs.Variant {
				t.Errorf("ReadSVG() specs = %+v, want %+v", got.Specs, tt.specs)
			}
			if math.Abs(got.Specs.Bridge-tt.specs.Bridge) > 1e-9 {
				t.Errorf("Bridge = %v, want %v", got.Specs.Bridge, tt.specs.Bridge)
			}
			if got.Border != 10 {
				t.Errorf("Border = %v, want 10", got.Border)
			}
		})
	}
}

func TestSpecificationTextMultiscale(t *testing.T) {
	got := SpecificationText(multiscaleSpecs(), config.Metric)
	want := "ScaleBass: 655.00mm | ScaleTreble: 610.00mm | PerpendicularFret: 8.0 | NutWidth: 43.00mm | BridgeSpacing: 50.00mm"
	if got != want {
		t.Errorf("SpecificationText() = %q, want %q", got, want)
	}
}

func TestEscapeXML(t *testing.T) {
	if got := EscapeXML(`Fira & "Mono"`); got != "Fira &amp; &#34;Mono&#34;" {
		t.Errorf("EscapeXML() = %q", got)
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(computeBoard(t, multiscaleSpecs()), WithJSONUnits(config.Metric))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}
	got, err := fio.ReadJSON(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if got.Specs != multiscaleSpecs() {
		t.Errorf("ReadJSON() specs = %+v, want %+v", got.Specs, multiscaleSpecs())
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(computeBoard(t, layout.DefaultSpecs()), WithScale(2), WithBackground(config.White))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	if cfg.Width != 1350 || cfg.Height != 152 {
		t.Errorf("size = %dx%d, want 1350x152", cfg.Width, cfg.Height)
	}
}

func TestRenderPNGInvalidScale(t *testing.T) {
	b := computeBoard(t, layout.DefaultSpecs())
	for _, s := range []float64{0, -1, math.NaN(), 1000} {
		if _, err := RenderPNG(b, WithScale(s)); err == nil {
			t.Errorf("RenderPNG(scale=%v) error = nil, want error", s)
		}
	}
}

func TestRenderDXF(t *testing.T) {
	b := computeBoard(t, layout.DefaultSpecs())
	data, err := RenderDXF(b)
	if err != nil {
		t.Fatalf("RenderDXF() error = %v", err)
	}
	if !bytes.HasSuffix(data, []byte("EOF\n")) {
		t.Errorf("dxf does not end with EOF record")
	}
	want := len(b.Outline) + len(b.Frets) + 2
	if got := bytes.Count(data, []byte("\n0\nLINE\n")); got != want {
		t.Errorf("LINE entities = %d, want %d", got, want)
	}
	for _, layer := range []string{LayerFretboard, LayerFrets, LayerBridge, LayerCenterline} {
		if !bytes.Contains(data, []byte(layer)) {
			t.Errorf("dxf missing layer %s", layer)
		}
	}

	data, err = RenderDXF(computeBoard(t, layout.DefaultSpecs()), WithoutCenterline())
	if err != nil {
		t.Fatalf("RenderDXF() error = %v", err)
	}
	if bytes.Contains(data, []byte(LayerCenterline)) {
		t.Error("dxf contains centerline layer after WithoutCenterline")
	}
}

func TestRenderPDF(t *testing.T) {
	if !render.Available() {
		t.Skip("rsvg-convert not installed")
	}
	data, err := RenderPDF(context.Background(), computeBoard(t, layout.DefaultSpecs()))
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("RenderPDF() output is not a PDF")
	}
}
