package tmuxconf

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/p4mux/pkg/paths"
	"github.com/grovetools/p4mux/pkg/tmux"
	"github.com/spf13/cobra"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// NewTmuxCmd creates the tmux command and its subcommands. binaryName is the
// command written into tmux.conf.
func NewTmuxCmd(binaryName string) *cobra.Command {
	tmuxCmd := &cobra.Command{
		Use:   "tmux",
		Short: "Manage tmux status line integration",
	}

	opts := Options{Binary: binaryName}
	var file string
	var reload bool

	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Add p4mux to your tmux status line",
		Long: `Writes a marked block to your tmux configuration that runs p4mux for the
current pane's directory. Running it again updates the block in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := paths.Expand(file)
			if err != nil {
				return err
			}
			if path == "" {
				if path, err = DefaultPath(); err != nil {
					return err
				}
			}

			result, err := Install(path, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch result {
			case Unchanged:
				fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("p4mux block in %s is already up to date.", path)))
			default:
				fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✓ p4mux block %s in %s.", result, path)))
			}

			if !reload {
				if result != Unchanged {
					fmt.Fprintf(out, "Reload with: tmux source-file %s\n", path)
				}
				return nil
			}
			if err := tmux.NewClient().SourceFile(cmd.Context(), path); err != nil {
				return fmt.Errorf("failed to reload tmux: %w", err)
			}
			fmt.Fprintln(out, successStyle.Render("✓ Reloaded tmux configuration."))
			return nil
		},
	}

	installCmd.Flags().StringVar(&file, "file", "", "tmux config file (default ~/.tmux.conf)")
	installCmd.Flags().StringVar(&opts.Option, "option", "status-right", "tmux option to set")
	installCmd.Flags().IntVar(&opts.Interval, "interval", 5, "status-interval in seconds (0 leaves it unchanged)")
	installCmd.Flags().StringVar(&opts.Binary, "binary", binaryName, "command tmux should run")
	installCmd.Flags().BoolVar(&reload, "reload", tmux.InSession(), "run tmux source-file afterwards (default when inside tmux)")

	tmuxCmd.AddCommand(installCmd)
	return tmuxCmd
}
