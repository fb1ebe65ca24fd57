package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/gfret/fretboard/pkg/config"
	fio "github.com/gfret/fretboard/pkg/io"
	"github.com/gfret/fretboard/pkg/layout"
)

// Instrument is the outcome of the resolve stage.
type Instrument struct {
	Specs  layout.Specs
	Units  config.Units
	Border float64
}

// Resolve builds the instrument from opts. A Source file takes precedence
// over the measurement fields; an explicit Border always wins.
func Resolve(opts *Options) (Instrument, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return Instrument{}, err
	}
	cfg := opts.Config

	if opts.Source == "" {
		specs, err := opts.Specs()
		if err != nil {
			return Instrument{}, err
		}
		return Instrument{Specs: specs, Units: cfg.Units, Border: opts.BorderOr(cfg.Border)}, nil
	}

	if isTemplate(opts.Source) {
		t, err := config.LoadTemplate(opts.Source)
		if err != nil {
			return Instrument{}, err
		}
		specs, err := t.Specs(cfg.Units.BridgeOverhang())
		if err != nil {
			return Instrument{}, err
		}
		return Instrument{Specs: specs, Units: cfg.Units, Border: opts.BorderOr(t.BorderOr(cfg.Border))}, nil
	}

	b, err := fio.Open(opts.Source)
	if err != nil {
		return Instrument{}, err
	}
	return Instrument{Specs: b.Specs, Units: b.Units, Border: opts.BorderOr(b.Border)}, nil
}

func isTemplate(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
