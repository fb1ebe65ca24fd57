package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gfret/fretboard/pkg/config"
	"github.com/gfret/fretboard/pkg/pipeline"
)

// templateCommand manages measurement templates.
func (c *CLI) templateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Save and show measurement templates",
	}

	cmd.AddCommand(c.templateSaveCommand())
	cmd.AddCommand(c.templateShowCommand())

	return cmd
}

// templateSaveCommand creates the "template save" subcommand.
func (c *CLI) templateSaveCommand() *cobra.Command {
	var measure measureFlags

	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Save measurements as a TOML template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := measure.options(cmd)
			inst, err := pipeline.Resolve(&opts)
			if err != nil {
				return err
			}
			t := config.NewTemplate(inst.Specs, inst.Units.BridgeOverhang(), inst.Border)
			path, err := config.SaveTemplate(args[0], t)
			if err != nil {
				return err
			}
			printSuccess("Saved template")
			printFile(path)
			return nil
		},
	}

	measure.register(cmd)
	return cmd
}

// templateShowCommand creates the "template show" subcommand.
func (c *CLI) templateShowCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the measurements stored in a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := config.LoadTemplate(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			specs, err := t.Specs(cfg.Units.BridgeOverhang())
			if err != nil {
				return err
			}
			printSpecs(specs, cfg.Units)
			printKeyValue("Border", fmt.Sprintf("%g%s", t.BorderOr(cfg.Border), cfg.Units.Suffix()))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file supplying units and border")
	return cmd
}
