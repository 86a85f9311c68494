package cmd

import (
	"fmt"
	"io"

	"github.com/grovetools/p4mux/cli"
	"github.com/grovetools/p4mux/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and validate the p4mux configuration",
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigDefaultCmd())
	cmd.AddCommand(newConfigSchemaCmd())
	cmd.AddCommand(newConfigValidateCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cli.GetOptions(cmd).ConfigPath())
			if err != nil {
				return err
			}
			return writeConfig(cmd.OutOrStdout(), cfg, outputFormat(cmd, format))
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "Output format: toml, yaml or json")
	return cmd
}

func newConfigDefaultCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "default",
		Short: "Print the built-in default configuration",
		Long: `Prints the defaults in a form that can be saved as a starting config.

Examples:
  p4mux config default > ~/.config/p4mux/config.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeConfig(cmd.OutOrStdout(), config.Default(), outputFormat(cmd, format))
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "Output format: toml, yaml or json")
	return cmd
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a config file for unknown keys and wrong types",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cli.GetOptions(cmd).ConfigPath()
			if len(args) == 1 {
				path = args[0]
			}
			validator, err := config.NewSchemaValidator()
			if err != nil {
				return err
			}
			if err := validator.ValidateFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
			return nil
		},
	}
}

// outputFormat lets --json stand in for --format json.
func outputFormat(cmd *cobra.Command, format string) config.Format {
	if cli.GetOptions(cmd).JSONOutput && !cmd.Flags().Changed("format") {
		return config.FormatJSON
	}
	return config.Format(format)
}

func writeConfig(w io.Writer, cfg *config.Config, format config.Format) error {
	data, err := config.Marshal(cfg, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
