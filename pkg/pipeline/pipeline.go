// Package pipeline provides the resolve → layout → render pipeline for gfret.
//
// The CLI and the HTTP server both drive rendering through a [Runner], so
// defaults, validation and caching behave the same on every entry point.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Resolve: Build the instrument measurements from explicit options or
//     from a source file (template, rendered SVG, exported JSON)
//  2. Layout: Compute every fret line with [layout.Compute]
//  3. Render: Generate output in the requested formats (SVG, JSON, PNG, DXF, PDF)
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	scale := 648.0
//	opts := pipeline.Options{
//	    Scale:   &scale,
//	    Formats: []string{"svg", "dxf"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// [layout.Compute]: github.com/gfret/fretboard/pkg/layout.Compute
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gfret/fretboard/pkg/cache"
	"github.com/gfret/fretboard/pkg/config"
	ferrors "github.com/gfret/fretboard/pkg/errors"
	"github.com/gfret/fretboard/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultBridge is the default bridge spacing entered by the user. The
	// overhang of the selected units is added before layout.
	DefaultBridge = layout.DefaultBridge

	// DefaultPNGScale is the PNG resolution in pixels per millimetre.
	DefaultPNGScale = 4.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatDXF  = "dxf"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatPNG:  true,
	FormatDXF:  true,
	FormatPDF:  true,
}

// ContentTypes maps formats to MIME types.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatJSON: "application/json",
	FormatPNG:  "image/png",
	FormatDXF:  "image/vnd.dxf",
	FormatPDF:  "application/pdf",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the render pipeline.
// This struct supports JSON serialization for API requests. Absent (nil)
// measurements take their defaults; explicit values, zero included, are
// validated as given.
type Options struct {
	// Resolve options
	Scale       *float64 `json:"scale,omitempty"`
	Count       *uint32  `json:"count,omitempty"`
	Nut         *float64 `json:"nut,omitempty"`
	Bridge      *float64 `json:"bridge,omitempty"` // spacing without the overhang
	Multiscale  bool     `json:"multiscale,omitempty"`
	ScaleTreble float64  `json:"scale_treble,omitempty"`
	PFret       *float64 `json:"pfret,omitempty"`
	Handedness  string   `json:"handedness,omitempty"`
	Units       string   `json:"units,omitempty"`

	// Source is a template, SVG or JSON file to read the measurements from.
	// When set, the measurement fields above are ignored.
	Source string `json:"-"`

	// Layout options
	Border *float64 `json:"border,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	PNGScale float64  `json:"png_scale,omitempty"`

	// Runtime options (not serialized)
	Config *config.Config `json:"-"`
	Logger *log.Logger    `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Board is the computed fretboard.
	Board *layout.Board

	// Units the board is measured in.
	Units config.Units

	// BoardHash is the content hash of the measurements and border.
	BoardHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which formats came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	FretCount   int
	ResolveTime time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
	Bytes       int
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	Hits      []string // Formats served from the cache
	RenderHit bool     // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return ferrors.New(ferrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// FormatNames returns the supported formats in sorted order.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Config == nil {
		cfg := config.Default()
		o.Config = &cfg
	}
	if o.Units != "" {
		u, err := config.ParseUnits(o.Units)
		if err != nil {
			return err
		}
		cfg := *o.Config
		cfg.Units = u
		o.Config = &cfg
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}

	o.SetMeasurementDefaults()
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Border != nil {
		if err := ferrors.ValidateNonNegative("border", *o.Border); err != nil {
			return err
		}
	}
	if o.PNGScale < 0 {
		return ferrors.New(ferrors.ErrCodeInvalidInput, "png_scale must be positive, got %g", o.PNGScale)
	}
	if o.Handedness != "" {
		if _, err := layout.ParseHandedness(o.Handedness); err != nil {
			return err
		}
	}
	o.validated = true
	return nil
}

// SetMeasurementDefaults fills absent measurements with the default
// instrument. A ScaleTreble enables multiscale.
func (o *Options) SetMeasurementDefaults() {
	setDefault(&o.Scale, layout.DefaultScale)
	setDefault(&o.Count, uint32(layout.DefaultCount))
	setDefault(&o.Nut, layout.DefaultNut)
	setDefault(&o.Bridge, DefaultBridge)
	if o.ScaleTreble != 0 {
		o.Multiscale = true
	}
	if o.Multiscale && o.ScaleTreble == 0 {
		o.ScaleTreble = layout.DefaultScaleTreble
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
		if o.Config != nil && o.Config.Units == config.Imperial {
			o.PNGScale *= 25.4
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Variant returns the scale variant described by the options.
func (o *Options) Variant() layout.Variant {
	if !o.Multiscale {
		return layout.Monoscale()
	}
	pfret := layout.DefaultPFret
	if o.PFret != nil {
		pfret = *o.PFret
	}
	h, err := layout.ParseHandedness(o.Handedness)
	if err != nil {
		h = layout.Right
	}
	return layout.Multiscale(o.ScaleTreble, h, pfret)
}

// Specs returns the measurements passed to the layout engine. The bridge
// overhang of the configured units is added to the bridge spacing.
func (o *Options) Specs() (layout.Specs, error) {
	o.SetMeasurementDefaults()
	overhang := config.Metric.BridgeOverhang()
	if o.Config != nil {
		overhang = o.Config.Units.BridgeOverhang()
	}
	return layout.NewSpecs(*o.Scale, *o.Count, o.Variant(), *o.Nut, *o.Bridge+overhang)
}

func setDefault[T any](p **T, v T) {
	if *p == nil {
		*p = &v
	}
}

// BorderOr returns the explicit border or fallback.
func (o *Options) BorderOr(fallback float64) float64 {
	if o.Border == nil {
		return fallback
	}
	return *o.Border
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:     format,
		ConfigHash: cache.HashValue(o.Config),
	}
	if format == FormatPNG {
		opts.Scale = o.PNGScale
	}
	return opts
}
