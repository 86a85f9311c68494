package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/p4mux/errors"
	"github.com/grovetools/p4mux/version"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnose(t *testing.T) {
	h := NewErrorHandler(true)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "workspace not found",
			err:  errors.WorkspaceConfigNotFound(".p4.conf", "/src/app"),
			want: "p4mux: unable to find .p4.conf in /src/app or any parent directory",
		},
		{
			name: "client not set",
			err:  errors.ClientNotSet("/src/.p4.conf"),
			want: "p4mux: P4CLIENT not set in /src/.p4.conf",
		},
		{
			name: "invalid config",
			err:  errors.ConfigInvalid("/cfg.toml", fmt.Errorf("parse toml: line 1\nexpected ]")),
			want: "p4mux: invalid config /cfg.toml: parse toml: line 1 expected ]",
		},
		{
			name: "command not found",
			err:  errors.CommandFailed("p4 login -s", exec.ErrNotFound),
			want: "p4mux: p4 login -s not found in PATH",
		},
		{
			name: "timeout",
			err:  errors.CommandFailed("p4 opened", context.DeadlineExceeded),
			want: "p4mux: p4 opened timed out",
		},
		{
			name: "wrapped coded error",
			err:  fmt.Errorf("resolve: %w", errors.ClientNotSet("/x")),
			want: "p4mux: P4CLIENT not set in /x",
		},
		{
			name: "plain error",
			err:  stderrors.New("boom"),
			want: "p4mux: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Diagnose(tt.err))
		})
	}

	assert.Empty(t, h.Diagnose(nil))
}

func TestHandle(t *testing.T) {
	err := errors.ClientNotSet("/x")

	var quiet bytes.Buffer
	assert.Same(t, err, NewErrorHandler(false).Handle(&quiet, err))
	assert.Empty(t, quiet.String())

	var verbose bytes.Buffer
	assert.Same(t, err, NewErrorHandler(true).Handle(&verbose, err))
	assert.Equal(t, "p4mux: P4CLIENT not set in /x\n", verbose.String())
}

func TestStandardCommandOptions(t *testing.T) {
	var got CommandOptions
	cmd := NewStandardCommand("p4mux", "test")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		got = GetOptions(cmd)
		return nil
	}
	cmd.SetArgs([]string{"-v", "--json", "-c", "/etc/p4mux.toml"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, CommandOptions{ConfigFile: "/etc/p4mux.toml", Verbose: true, JSONOutput: true}, got)
	assert.Equal(t, "/etc/p4mux.toml", got.ConfigPath())
}

func TestConfigPathDefault(t *testing.T) {
	explicit := filepath.Join(t.TempDir(), "p4mux.toml")
	t.Setenv("P4MUX_CONFIG", explicit)
	assert.Equal(t, explicit, CommandOptions{}.ConfigPath())
}

func TestStyledHelp(t *testing.T) {
	root := NewStandardCommand("p4mux [path]", "Render Perforce state")
	root.Long = "Prints one line.\n\nExamples:\n  # render\n  p4mux ~/src"
	root.Run = func(cmd *cobra.Command, args []string) {}
	root.Flags().Bool("print-config", false, "Print the resolved configuration")
	root.AddCommand(&cobra.Command{Use: "version", Short: "Print the version", Run: func(*cobra.Command, []string) {}})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--help"})
	require.NoError(t, root.Execute())

	help := out.String()
	for _, want := range []string{"P4MUX", "USAGE", "COMMANDS", "version", "FLAGS", "--print-config", "EXAMPLES", "p4mux ~/src"} {
		assert.Contains(t, help, want)
	}
	assert.False(t, strings.Contains(help, "Examples:"), "examples are rendered in their own section")
}

func TestVersionCommand(t *testing.T) {
	info := version.Info{Version: "1.2.3", Commit: "abc123", BuildDate: "2026-10-01", GoVersion: "go1.24", Platform: "linux/amd64"}

	root := NewStandardCommand("p4mux", "test")
	root.AddCommand(NewVersionCommand("p4mux", info))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "p4mux 1.2.3\n"))
	assert.Contains(t, out.String(), "abc123")

	out.Reset()
	root.SetArgs([]string{"version", "--json"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), `"commit": "abc123"`)
}
