package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/p4mux/cli"
	"github.com/grovetools/p4mux/config"
	"github.com/grovetools/p4mux/p4"
	"github.com/grovetools/p4mux/pkg/profiling"
	"github.com/grovetools/p4mux/pkg/workspace"
	"github.com/grovetools/p4mux/statusline"
	"github.com/grovetools/p4mux/tmuxconf"
	"github.com/grovetools/p4mux/version"
	"github.com/spf13/cobra"
)

const binaryName = "p4mux"

// NewRootCmd builds the p4mux command tree.
func NewRootCmd() *cobra.Command {
	profiler := profiling.NewCobraProfiler()
	var printConfig, defaultConfig bool

	rootCmd := cli.NewStandardCommand(
		binaryName+" [path]",
		"Render Perforce workspace state for the tmux status line",
	)
	rootCmd.Long = `Prints one line of tmux markup describing the Perforce workspace that
contains path (default: the current directory): the client name, login state
and counts of opened and reconcilable files.

Examples:
  # In ~/.tmux.conf
  set -g status-right "#(p4mux #{pane_current_path})"

  # Explain why nothing is printed
  p4mux -v ~/src/project`
	rootCmd.Args = cobra.MaximumNArgs(1)

	rootCmd.Flags().BoolVar(&printConfig, "print-config", false, "Print the resolved configuration and exit")
	rootCmd.Flags().BoolVar(&defaultConfig, "default-config", false, "Print the default configuration and exit")
	profiler.AddFlags(rootCmd)
	rootCmd.PersistentPostRun = profiler.PostRun

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := cli.GetOptions(cmd)
		out := cmd.OutOrStdout()

		if defaultConfig {
			return writeConfig(out, config.Default(), config.FormatTOML)
		}

		cfg, err := config.Load(opts.ConfigPath())
		if err != nil {
			return err
		}
		if printConfig {
			return writeConfig(out, cfg, config.FormatTOML)
		}

		dir, err := targetDir(args)
		if err != nil {
			return err
		}

		logger := cli.NewLogger(binaryName, cfg.Logging, opts)
		handler := cli.NewErrorHandler(opts.Verbose)

		settings, err := workspace.Resolve(dir, cfg.Perforce.P4Conf)
		if err != nil {
			logger.WithError(err).Debug("No workspace for target")
			_ = handler.Handle(out, err)
			return nil
		}
		logger.WithField("client", settings.Client).WithField("config", settings.Path).Debug("Resolved workspace")

		timeout, err := cfg.Perforce.TimeoutDuration()
		if err != nil {
			return err
		}

		client := p4.NewClient(
			p4.WithBinary(cfg.Perforce.Bin),
			p4.WithTimeout(timeout),
			p4.WithTimer(profiler.Timer()),
			p4.WithLogger(logger),
		)

		line := statusline.NewRenderer(cfg, client, logger).Render(cmd.Context(), settings.Client, dir)
		fmt.Fprintln(out, line)
		return nil
	}

	info := version.GetInfo()
	cli.SetVersionTemplate(rootCmd, info)

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(tmuxconf.NewTmuxCmd(binaryName))
	rootCmd.AddCommand(cli.NewVersionCommand(binaryName, info))

	return rootCmd
}

// targetDir returns the absolute directory to evaluate.
func targetDir(args []string) (string, error) {
	if len(args) == 0 {
		return os.Getwd()
	}
	dir, err := filepath.Abs(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", args[0], err)
	}
	return dir, nil
}
