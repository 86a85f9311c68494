package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/grovetools/p4mux/logging"
)

// Config is the complete p4mux configuration. Every field has a default, so
// a partial or empty file is valid.
type Config struct {
	Perforce PerforceConfig `toml:"perforce" yaml:"perforce" json:"perforce" jsonschema:"description=How p4 is located and queried"`
	Tmux     TmuxConfig     `toml:"tmux" yaml:"tmux" json:"tmux" jsonschema:"description=What the status line shows and how it is styled"`
	Logging  logging.Config `toml:"logging" yaml:"logging" json:"logging" jsonschema:"description=Diagnostic logging (never written to stdout)"`
}

// PerforceConfig holds the [perforce] table.
type PerforceConfig struct {
	// P4Conf is the workspace config file name searched for upward from the
	// target directory. The P4CONFIG environment variable takes precedence.
	P4Conf string `toml:"p4conf" yaml:"p4conf" json:"p4conf" jsonschema:"description=Workspace config file name searched for in parent directories"`

	// StatusFlags are appended to 'p4 status'. Whitespace separates flags.
	StatusFlags string `toml:"status_flags" yaml:"status_flags" json:"status_flags" jsonschema:"description=Flags passed to p4 status"`

	// Bin is the p4 executable name or path.
	Bin string `toml:"bin" yaml:"bin" json:"bin" jsonschema:"description=p4 executable name or path"`

	// Timeout bounds each p4 invocation, as a Go duration string. "0" disables it.
	Timeout string `toml:"timeout" yaml:"timeout" json:"timeout" jsonschema:"description=Per-command timeout such as 5s; 0 disables the bound"`
}

// StatusFlagList splits StatusFlags into individual arguments.
func (p PerforceConfig) StatusFlagList() []string {
	return strings.Fields(p.StatusFlags)
}

// TimeoutDuration parses Timeout. An empty value means no bound.
func (p PerforceConfig) TimeoutDuration() (time.Duration, error) {
	if strings.TrimSpace(p.Timeout) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil {
		return 0, fmt.Errorf("perforce.timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("perforce.timeout: must not be negative, got %s", p.Timeout)
	}
	return d, nil
}

// TmuxConfig holds the [tmux] table.
type TmuxConfig struct {
	// Format is the ordered list of directive keywords and literal text.
	Format []string `toml:"format" yaml:"format" json:"format" jsonschema:"description=Ordered directives (client login add edit delete reconcile_add reconcile_edit status) and literal text"`

	// StatusSep joins the badges produced by the status directive.
	StatusSep string `toml:"status_sep" yaml:"status_sep" json:"status_sep" jsonschema:"description=Separator between badges of the status directive"`

	Icons  TmuxIcons  `toml:"icons" yaml:"icons" json:"icons"`
	Styles TmuxStyles `toml:"styles" yaml:"styles" json:"styles"`
}

// TmuxIcons are the glyphs appended to each badge.
type TmuxIcons struct {
	Login  string `toml:"login" yaml:"login" json:"login"`
	Logout string `toml:"logout" yaml:"logout" json:"logout"`
	Add    string `toml:"add" yaml:"add" json:"add"`
	Edit   string `toml:"edit" yaml:"edit" json:"edit"`
	Delete string `toml:"delete" yaml:"delete" json:"delete"`
}

// TmuxStyles are tmux markup prefixes such as "#[fg=green]".
type TmuxStyles struct {
	Clear         string `toml:"clear" yaml:"clear" json:"clear"`
	Login         string `toml:"login" yaml:"login" json:"login"`
	Logout        string `toml:"logout" yaml:"logout" json:"logout"`
	Client        string `toml:"client" yaml:"client" json:"client"`
	Add           string `toml:"add" yaml:"add" json:"add"`
	Edit          string `toml:"edit" yaml:"edit" json:"edit"`
	Delete        string `toml:"delete" yaml:"delete" json:"delete"`
	ReconcileAdd  string `toml:"reconcile_add" yaml:"reconcile_add" json:"reconcile_add"`
	ReconcileEdit string `toml:"reconcile_edit" yaml:"reconcile_edit" json:"reconcile_edit"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Perforce: PerforceConfig{
			P4Conf:      ".p4.conf",
			StatusFlags: "-m",
			Bin:         "p4",
			Timeout:     "5s",
		},
		Tmux: TmuxConfig{
			Format:    []string{"client", " ", "login", " ", "status"},
			StatusSep: " ",
			Icons: TmuxIcons{
				Login:  "󱘖",
				Logout: "",
				Add:    "",
				Edit:   "",
				Delete: "󰆴",
			},
			Styles: TmuxStyles{
				Clear:         "#[fg=default]",
				Login:         "#[fg=green]",
				Logout:        "#[fg=red]",
				Client:        "#[fg=white,bold]",
				Add:           "#[fg=yellow,bold]",
				Edit:          "#[fg=yellow,bold]",
				Delete:        "#[fg=yellow,bold]",
				ReconcileAdd:  "#[fg=red,bold]",
				ReconcileEdit: "#[fg=red,bold]",
			},
		},
		Logging: logging.DefaultConfig(),
	}
}
