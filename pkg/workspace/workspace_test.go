package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/p4mux/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	confPath := filepath.Join(root, "ws", ".p4.conf")
	writeFile(t, confPath, "P4CLIENT=ws1\n")
	deep := filepath.Join(root, "ws", "src", "lib", "pkg")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	t.Run("in same directory", func(t *testing.T) {
		got, err := FindConfigFile(filepath.Join(root, "ws"), ".p4.conf")
		require.NoError(t, err)
		assert.Equal(t, confPath, got)
	})

	t.Run("walks up from a nested directory", func(t *testing.T) {
		got, err := FindConfigFile(deep, ".p4.conf")
		require.NoError(t, err)
		assert.Equal(t, confPath, got)
	})

	t.Run("directory with the same name is skipped", func(t *testing.T) {
		require.NoError(t, os.MkdirAll(filepath.Join(deep, ".p4.conf"), 0o755))
		got, err := FindConfigFile(deep, ".p4.conf")
		require.NoError(t, err)
		assert.Equal(t, confPath, got)
	})

	t.Run("not found reaches the root", func(t *testing.T) {
		_, err := FindConfigFile(deep, ".does-not-exist.conf")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeWorkspaceConfigNotFound))
	})

	t.Run("absolute name", func(t *testing.T) {
		got, err := FindConfigFile("/", confPath)
		require.NoError(t, err)
		assert.Equal(t, confPath, got)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := FindConfigFile(deep, "")
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	})
}

func TestConfigName(t *testing.T) {
	t.Setenv("P4CONFIG", "")
	assert.Equal(t, ".p4.conf", ConfigName(".p4.conf"))

	t.Setenv("P4CONFIG", ".p4config")
	assert.Equal(t, ".p4config", ConfigName(".p4.conf"))
}

func TestReadSettings(t *testing.T) {
	dir := t.TempDir()

	t.Run("parses known and unknown keys", func(t *testing.T) {
		path := filepath.Join(dir, "full.conf")
		writeFile(t, path, "# workspace\nP4PORT=ssl:perforce:1666\r\nP4USER = alice\nP4CLIENT=alice_main\nP4IGNORE=.p4ignore\nnot a pair\n")

		settings, err := ReadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, "alice_main", settings.Client)
		assert.Equal(t, "ssl:perforce:1666", settings.Port)
		assert.Equal(t, "alice", settings.User)
		assert.Equal(t, path, settings.Path)
		assert.Equal(t, ".p4ignore", settings.Other["P4IGNORE"])
	})

	t.Run("first occurrence wins", func(t *testing.T) {
		path := filepath.Join(dir, "dup.conf")
		writeFile(t, path, "P4CLIENT=first\nP4CLIENT=second\n")

		settings, err := ReadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, "first", settings.Client)
	})

	t.Run("value keeps embedded equals signs", func(t *testing.T) {
		path := filepath.Join(dir, "eq.conf")
		writeFile(t, path, "P4CLIENT=a=b\n")

		settings, err := ReadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, "a=b", settings.Client)
	})

	t.Run("missing client", func(t *testing.T) {
		path := filepath.Join(dir, "noclient.conf")
		writeFile(t, path, "P4PORT=1666\n")

		_, err := ReadSettings(path)
		assert.True(t, errors.Is(err, errors.ErrCodeClientNotSet))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadSettings(filepath.Join(dir, "absent.conf"))
		assert.Error(t, err)
	})
}

func TestResolve(t *testing.T) {
	t.Setenv("P4CONFIG", "")
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".p4.conf"), "P4CLIENT=ws1\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	settings, err := Resolve(nested, ".p4.conf")
	require.NoError(t, err)
	assert.Equal(t, "ws1", settings.Client)

	t.Setenv("P4CONFIG", ".other")
	_, err = Resolve(nested, ".p4.conf")
	assert.True(t, errors.Is(err, errors.ErrCodeWorkspaceConfigNotFound))
}
