package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/p4mux/errors"
)

// ConfigName returns the workspace config file name to search for. The
// P4CONFIG environment variable overrides the configured name, matching the
// way p4 itself locates the file.
func ConfigName(configured string) string {
	if env := os.Getenv("P4CONFIG"); env != "" {
		return env
	}
	return configured
}

// FindConfigFile walks from startDir up to the filesystem root and returns
// the first regular file called name. An absolute name is checked as-is.
func FindConfigFile(startDir, name string) (string, error) {
	if name == "" {
		return "", errors.InvalidInput("workspace config file name cannot be empty")
	}

	if filepath.IsAbs(name) {
		if isFile(name) {
			return name, nil
		}
		return "", errors.WorkspaceConfigNotFound(name, startDir)
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		path := filepath.Join(dir, name)
		if isFile(path) {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.WorkspaceConfigNotFound(name, startDir)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
