package cli

import (
	"github.com/grovetools/p4mux/pkg/paths"
	"github.com/spf13/cobra"
)

// CommandOptions holds the options shared by every p4mux command.
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with the standard p4mux flags.
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Print diagnostics and enable debug logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to the p4mux config file")

	SetStyledHelp(cmd)

	return cmd
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// ConfigPath returns the config file named by --config, or the per-user
// default location.
func (o CommandOptions) ConfigPath() string {
	if o.ConfigFile != "" {
		if path, err := paths.Expand(o.ConfigFile); err == nil {
			return path
		}
		return o.ConfigFile
	}
	return paths.ConfigFile()
}
