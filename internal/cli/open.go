package cli

import (
	"github.com/spf13/cobra"

	fio "github.com/gfret/fretboard/pkg/io"
	"github.com/gfret/fretboard/pkg/pipeline"
)

// openCommand reads the measurements back from a rendered SVG or exported
// JSON file.
func (c *CLI) openCommand() *cobra.Command {
	var opts renderOpts
	var rerender bool

	cmd := &cobra.Command{
		Use:   "open <file>",
		Short: "Recover the measurements from a rendered SVG or JSON file",
		Example: `  gfret open fretboard.svg
  gfret open fretboard.svg --render -f dxf -o fretboard.dxf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := fio.Open(args[0])
			if err != nil {
				return err
			}
			printSpecs(b.Specs, b.Units)
			if !rerender {
				return nil
			}

			printNewline()
			opts.measure.template = args[0]
			return c.runRender(cmd, &opts)
		},
	}

	cmd.Flags().BoolVar(&rerender, "render", false, "render the recovered board again")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, base path for several formats, or - for stdout")
	cmd.Flags().StringVarP(&opts.format, "format", "f", pipeline.FormatSVG, "output format(s) for --render")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/gfret/config.toml)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&opts.viewer, "open", "", "open the output with this program")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	return cmd
}
