package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/gfret/fretboard/pkg/config"
	"github.com/gfret/fretboard/pkg/layout"
	"github.com/gfret/fretboard/pkg/pipeline"
)

// infoCommand prints the derived factors and the fret distance table.
func (c *CLI) infoCommand() *cobra.Command {
	var (
		measure    measureFlags
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print fret distances for an instrument",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			opts := measure.options(cmd)
			opts.Config = &cfg

			inst, err := pipeline.Resolve(&opts)
			if err != nil {
				return err
			}
			b, err := pipeline.ComputeLayout(cmd.Context(), inst)
			if err != nil {
				return err
			}
			printBoard(b, inst.Units)
			return nil
		},
	}

	measure.register(cmd)
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/gfret/config.toml)")
	return cmd
}

// printBoard prints the measurements, factors and fret table of b.
func printBoard(b *layout.Board, units config.Units) {
	printSpecs(b.Specs, units)
	u := units.Suffix()
	printKeyValue("X ratio", fmt.Sprintf("%.7f", b.Factors.XRatio))
	printKeyValue("Y ratio", fmt.Sprintf("%.7f", b.Factors.YRatio))
	printKeyValue("Treble offset", fmt.Sprintf("%.4f%s", b.Factors.TrebleOffset, u))
	printKeyValue("Document", fmt.Sprintf("%s x %s%s", strconv.FormatFloat(b.Width, 'f', -1, 64), strconv.FormatFloat(b.Height, 'f', -1, 64), u))
	printNewline()
	fmt.Fprintln(out, fretTable(b.Specs, units))
}

// printSpecs prints the instrument measurements. The bridge spacing is
// shown without the overhang.
func printSpecs(s layout.Specs, units config.Units) {
	u := units.Suffix()
	fmt.Fprintln(out, StyleTitle.Render(s.Variant.String()))
	if treble, ok := s.Variant.ScaleTreble(); ok {
		pfret, _ := s.Variant.PFret()
		h, _ := s.Variant.Handedness()
		printKeyValue("Scale (bass)", fmt.Sprintf("%.2f%s", s.Scale, u))
		printKeyValue("Scale (treble)", fmt.Sprintf("%.2f%s", treble, u))
		printKeyValue("Perpendicular", fmt.Sprintf("fret %g", pfret))
		printKeyValue("Handedness", h.String())
	} else {
		printKeyValue("Scale", fmt.Sprintf("%.2f%s", s.Scale, u))
	}
	printKeyValue("Frets", strconv.FormatUint(uint64(s.Count), 10))
	printKeyValue("Nut width", fmt.Sprintf("%.2f%s", s.Nut, u))
	printKeyValue("Bridge spacing", fmt.Sprintf("%.2f%s", s.Bridge-units.BridgeOverhang(), u))
}

// fretTable renders the bridge and nut distance of every fret. Multiscale
// boards get separate bass and treble columns.
func fretTable(s layout.Specs, units config.Units) string {
	multi := s.Multiscale()
	headers := []string{"Fret", "Bridge", "Nut"}
	if multi {
		headers = []string{"Fret", "Bridge (bass)", "Bridge (treble)", "Nut (bass)", "Nut (treble)"}
	}

	prec := 2
	if units == config.Imperial {
		prec = 3
	}
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', prec, 64) }

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader
			}
			return styleTableCell
		})

	for _, d := range s.FretTable() {
		name := strconv.FormatUint(uint64(d.Fret), 10)
		if d.Fret == 0 {
			name = "nut"
		}
		if multi {
			t.Row(name, num(d.FromBridge.Bass), num(d.FromBridge.Treble), num(d.FromNut.Bass), num(d.FromNut.Treble))
		} else {
			t.Row(name, num(d.FromBridge.Bass), num(d.FromNut.Bass))
		}
	}
	return t.Render()
}
