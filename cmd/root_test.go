package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/p4mux/errors"
	"github.com/grovetools/p4mux/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[perforce]
p4conf = ".p4mux-test.conf"
bin = %q

[tmux]
format = ["client", " ", "login", " ", "status"]
status_sep = " "

[tmux.icons]
login = "in"
logout = "out"
add = ""
edit = ""
delete = ""

[tmux.styles]
clear = ""
login = ""
logout = ""
client = ""
add = "A"
edit = "E"
delete = "D"
reconcile_add = "a"
reconcile_edit = "e"
`

// writeFakeP4 installs a shell script that answers the three p4 queries.
func writeFakeP4(t *testing.T, loggedIn bool, opened, status string) string {
	t.Helper()

	loginExit := "0"
	if !loggedIn {
		loginExit = "1"
	}

	return testutil.WriteScript(t, "p4", "case \"$*\" in\n"+
		"  *' login -s') exit "+loginExit+" ;;\n"+
		"  *' opened') printf '%s' '"+opened+"' ;;\n"+
		"  *' status -m') printf '%s' '"+status+"' ;;\n"+
		"  *) exit 3 ;;\n"+
		"esac\n")
}

type fixture struct {
	configPath string
	workspace  string
}

func newFixture(t *testing.T, bin string, withWorkspace bool) fixture {
	t.Helper()
	t.Setenv("P4CONFIG", "")

	root := t.TempDir()
	configPath := testutil.WriteFile(t, filepath.Join(root, "config.toml"), fmtConfig(bin))

	ws := filepath.Join(root, "depot", "project")
	require.NoError(t, os.MkdirAll(filepath.Join(ws, "src"), 0o755))
	if withWorkspace {
		testutil.Workspace(t, ws, ".p4mux-test.conf", map[string]string{
			"P4CLIENT": "ws1",
			"P4PORT":   "ssl:perforce:1666",
		})
	}

	return fixture{configPath: configPath, workspace: ws}
}

func fmtConfig(bin string) string {
	return strings.Replace(testConfig, "%q", `"`+bin+`"`, 1)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_RendersStatusLine(t *testing.T) {
	opened := `{"action":"add","change":"12"}` + "\n"
	status := opened + `{"action":"edit"}` + "\n"
	bin := writeFakeP4(t, true, opened, status)
	f := newFixture(t, bin, true)

	out, err := execute(t, "-c", f.configPath, filepath.Join(f.workspace, "src"))
	require.NoError(t, err)
	assert.Equal(t, "ws1 in A1 e1\n", out)
}

func TestRoot_LoggedOutHidesCounts(t *testing.T) {
	bin := writeFakeP4(t, false, `{"action":"add","change":"12"}`, "")
	f := newFixture(t, bin, true)

	out, err := execute(t, "-c", f.configPath, f.workspace)
	require.NoError(t, err)
	assert.Equal(t, "ws1 out \n", out)
}

func TestRoot_MissingP4Degrades(t *testing.T) {
	f := newFixture(t, filepath.Join(t.TempDir(), "no-such-p4"), true)

	out, err := execute(t, "-c", f.configPath, f.workspace)
	require.NoError(t, err)
	assert.Equal(t, "ws1 out \n", out)
}

func TestRoot_NoWorkspace(t *testing.T) {
	bin := writeFakeP4(t, true, "", "")
	f := newFixture(t, bin, false)

	out, err := execute(t, "-c", f.configPath, f.workspace)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = execute(t, "-v", "-c", f.configPath, f.workspace)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "p4mux: unable to find .p4mux-test.conf"), out)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestRoot_InvalidConfigIsFatal(t *testing.T) {
	path := testutil.WriteFile(t, filepath.Join(t.TempDir(), "config.toml"), "[perforce\n")

	_, err := execute(t, "-c", path, t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid))
}

func TestRoot_ConfigFlags(t *testing.T) {
	out, err := execute(t, "--default-config")
	require.NoError(t, err)
	assert.Contains(t, out, "[perforce]")
	assert.Contains(t, out, "p4conf = '.p4.conf'")

	f := newFixture(t, "/opt/p4", true)
	out, err = execute(t, "-c", f.configPath, "--print-config")
	require.NoError(t, err)
	assert.Contains(t, out, "p4conf = '.p4mux-test.conf'")
	assert.Contains(t, out, "bin = '/opt/p4'")
}

func TestRoot_TooManyArgs(t *testing.T) {
	_, err := execute(t, "a", "b")
	assert.Error(t, err)
}

func TestConfigCommands(t *testing.T) {
	f := newFixture(t, "p4", true)

	t.Run("show as json", func(t *testing.T) {
		out, err := execute(t, "config", "show", "-c", f.configPath, "--format", "json")
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		perforce := decoded["perforce"].(map[string]interface{})
		assert.Equal(t, ".p4mux-test.conf", perforce["p4conf"])
	})

	t.Run("default as yaml", func(t *testing.T) {
		out, err := execute(t, "config", "default", "--format", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "perforce:")
		assert.Contains(t, out, "status_flags:")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "config", "default", "--format", "ini")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	})

	t.Run("schema", func(t *testing.T) {
		out, err := execute(t, "config", "schema")
		require.NoError(t, err)
		assert.True(t, json.Valid([]byte(out)))
	})

	t.Run("validate ok", func(t *testing.T) {
		out, err := execute(t, "config", "validate", f.configPath)
		require.NoError(t, err)
		assert.Contains(t, out, "is valid")
	})

	t.Run("validate unknown key", func(t *testing.T) {
		path := testutil.WriteFile(t, filepath.Join(t.TempDir(), "bad.toml"), "[perforce]\nclient = 'x'\n")

		_, err := execute(t, "config", "validate", path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation))
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version", "--json")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "dev", info["version"])
}
