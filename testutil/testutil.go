// Package testutil holds fixtures shared by p4mux tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// WriteScript installs an executable shell script called name in a fresh
// temp dir and returns its path. The test is skipped where sh is unavailable.
func WriteScript(t *testing.T, name, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

// Workspace creates dir/name as a workspace config holding settings, written
// as KEY=VALUE lines in key order.
func Workspace(t *testing.T, dir, name string, settings map[string]string) string {
	t.Helper()

	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k + "=" + settings[k] + "\n")
	}
	return WriteFile(t, filepath.Join(dir, name), b.String())
}
