package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gfret/fretboard/pkg/config"
	ferrors "github.com/gfret/fretboard/pkg/errors"
	"github.com/gfret/fretboard/pkg/pipeline"
)

// defaultOutput is the base name of rendered files.
const defaultOutput = "fretboard"

// stdoutPath selects standard output for -o.
const stdoutPath = "-"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	measure      measureFlags
	output       string  // output file, base path for multiple formats, or "-"
	format       string  // comma-separated output formats
	configPath   string  // config file, default ~/.config/gfret/config.toml
	noCache      bool    // bypass the artifact cache
	viewer       string  // program to open the first output with
	saveTemplate string  // save the measurements as a template
	pngScale     float64 // pixels per unit
}

// renderCommand creates the render command for generating fretboard templates.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a fretboard template",
		Long: `Render a full-size fretboard template.

Measurements are given in the selected units. The bridge spacing is the
distance between the outer strings; a small overhang is added on each side.`,
		Example: `  gfret render -s 648 -o strat.svg
  gfret render --multi 610 --pfret 8 --format svg,dxf
  gfret render -t seven-string.toml -o - | inkscape --pipe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, &opts)
		},
	}

	opts.measure.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, base path for several formats, or - for stdout")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format(s): svg (default), json, png, dxf, pdf (comma-separated)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/gfret/config.toml)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&opts.viewer, "open", "", "open the output with this program")
	cmd.Flags().StringVar(&opts.saveTemplate, "save-template", "", "also save the measurements as a template")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", 0, "PNG pixels per unit (default 4 per mm)")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

// completeFormats offers the output formats for --format.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return pipeline.FormatNames(), cobra.ShellCompDirectiveNoFileComp
}

func (c *CLI) runRender(cmd *cobra.Command, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	popts := opts.measure.options(cmd)
	popts.Config = &cfg
	popts.Formats = parseFormats(opts.format)
	popts.PNGScale = opts.pngScale

	toStdout := opts.output == stdoutPath
	if toStdout && len(popts.Formats) != 1 {
		return ferrors.New(ferrors.ErrCodeInvalidInput, "writing to stdout needs exactly one format, got %d", len(popts.Formats))
	}
	if toStdout && opts.viewer != "" {
		return ferrors.New(ferrors.ErrCodeInvalidInput, "--open needs an output file")
	}
	if opts.viewer != "" {
		if err := ferrors.ValidateProgram(opts.viewer); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	var spin *Spinner
	if slices.Contains(popts.Formats, pipeline.FormatPDF) && !toStdout {
		spin = newSpinnerWithContext(ctx, "Converting to PDF...")
		spin.Start()
	}
	result, err := runner.Execute(ctx, popts)
	if spin != nil {
		if err != nil && ferrors.Is(err, ferrors.ErrCodeUnsupported) {
			spin.StopWithError("PDF output needs rsvg-convert")
		} else {
			spin.Stop()
		}
	}
	if err != nil {
		return err
	}
	prog.done("Rendered fretboard", "formats", strings.Join(popts.Formats, ","))

	if toStdout {
		_, err := cmd.OutOrStdout().Write(result.Artifacts[popts.Formats[0]])
		return err
	}

	paths := outputPaths(opts.output, popts.Formats)
	for i, format := range popts.Formats {
		if err := writeFile(paths[i], result.Artifacts[format]); err != nil {
			return err
		}
	}

	printSuccess("Rendered %s", result.Board.Specs.Variant)
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.FretCount, result.Stats.Bytes, result.CacheInfo.RenderHit)

	if opts.saveTemplate != "" {
		if err := saveTemplate(opts.saveTemplate, result); err != nil {
			return err
		}
	}

	if opts.viewer != "" {
		return openViewer(ctx, opts.viewer, paths[0])
	}
	if slices.Contains(popts.Formats, pipeline.FormatSVG) {
		printNextStep("Read the measurements back", "gfret open "+paths[slices.Index(popts.Formats, pipeline.FormatSVG)])
	}
	return nil
}

// outputPaths derives one file name per format. A single format uses output
// as given when it already carries that extension; otherwise the format is
// appended to the base path.
func outputPaths(output string, formats []string) []string {
	if output == "" {
		output = defaultOutput
	}
	base := output
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if pipeline.ValidFormats[strings.ToLower(ext)] {
		base = strings.TrimSuffix(output, filepath.Ext(output))
	}

	paths := make([]string, len(formats))
	for i, f := range formats {
		if len(formats) == 1 && strings.EqualFold(ext, f) {
			paths[i] = output
			continue
		}
		paths[i] = base + "." + f
	}
	return paths
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func saveTemplate(path string, result *pipeline.Result) error {
	b := result.Board
	t := config.NewTemplate(b.Specs, result.Units.BridgeOverhang(), b.Border)
	saved, err := config.SaveTemplate(path, t)
	if err != nil {
		return err
	}
	printInfo("Saved template")
	printFile(saved)
	return nil
}

// openViewer starts program on path and does not wait for it to exit.
func openViewer(ctx context.Context, program, path string) error {
	if err := ferrors.ValidateProgram(program); err != nil {
		return err
	}
	proc, err := startDetached(program, path)
	if err != nil {
		return ferrors.Wrap(ferrors.ErrCodeInternal, err, "start %s", program)
	}
	loggerFromContext(ctx).Debug("started viewer", "program", program, "pid", proc)
	return nil
}
