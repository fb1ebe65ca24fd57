package cli

import (
	"github.com/spf13/cobra"

	"github.com/gfret/fretboard/pkg/config"
	"github.com/gfret/fretboard/pkg/layout"
	"github.com/gfret/fretboard/pkg/pipeline"
)

// measureFlags holds the instrument measurements shared by render, info and
// template save.
type measureFlags struct {
	scale    float64 // bass scale length
	count    uint32  // playable frets
	nut      float64 // nut width
	bridge   float64 // bridge spacing, without overhang
	multi    float64 // treble scale length; zero for monoscale
	pfret    float64 // perpendicular fret
	left     bool    // left-handed multiscale
	units    string  // metric or imperial; empty uses the config file
	border   float64
	template string // template file to load instead of the flags
}

func (f *measureFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Float64VarP(&f.scale, "scale", "s", layout.DefaultScale, "scale length (bass side for multiscale)")
	fs.Uint32VarP(&f.count, "count", "c", layout.DefaultCount, "number of frets")
	fs.Float64VarP(&f.nut, "nut", "n", layout.DefaultNut, "nut width")
	fs.Float64VarP(&f.bridge, "bridge", "b", pipeline.DefaultBridge, "bridge spacing of the outer strings")
	fs.Float64VarP(&f.multi, "multi", "m", 0, "multiscale with the given treble scale length")
	fs.Lookup("multi").NoOptDefVal = "610"
	fs.Float64VarP(&f.pfret, "pfret", "p", layout.DefaultPFret, "perpendicular fret (multiscale)")
	fs.BoolVarP(&f.left, "left", "l", false, "left handed (multiscale)")
	fs.StringVarP(&f.units, "units", "u", "", "units: metric (default), imperial")
	fs.Float64Var(&f.border, "border", 10, "border around the board")
	fs.StringVarP(&f.template, "template", "t", "", "load measurements from a template file")
	_ = cmd.RegisterFlagCompletionFunc("units", cobra.FixedCompletions(
		[]string{config.Metric.String(), config.Imperial.String()}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.MarkFlagFilename("template", "toml", "svg", "json")
}

// options converts the flags into pipeline options. Border is only set when
// given explicitly so that templates and the config file can supply it.
func (f *measureFlags) options(cmd *cobra.Command) pipeline.Options {
	scale, count, nut, bridge := f.scale, f.count, f.nut, f.bridge
	opts := pipeline.Options{
		Scale:  &scale,
		Count:  &count,
		Nut:    &nut,
		Bridge: &bridge,
		Units:  f.units,
		Source: f.template,
	}
	if f.multi > 0 {
		pfret := f.pfret
		opts.Multiscale = true
		opts.ScaleTreble = f.multi
		opts.PFret = &pfret
		if f.left {
			opts.Handedness = layout.Left.String()
		}
	} else if f.left {
		printWarning("--left has no effect without --multi")
	}
	if cmd.Flags().Changed("border") {
		border := f.border
		opts.Border = &border
	}
	return opts
}
