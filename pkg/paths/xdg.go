// Package paths resolves the per-user locations p4mux reads and writes.
//
// Config file resolution order:
// 1. P4MUX_CONFIG (explicit file path)
// 2. ~/.p4mux.conf
// 3. $XDG_CONFIG_HOME/p4mux/config.toml (or ~/.config/p4mux/config.toml)
//
// The first existing file wins. When none exists, ~/.p4mux.conf is returned
// so that callers can report or create it.
package paths

import (
	"os"
	"path/filepath"
)

const (
	appName        = "p4mux"
	legacyFileName = ".p4mux.conf"
	xdgFileName    = "config.toml"
)

// getConfigHome returns the base config home directory.
func getConfigHome() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// getStateHome returns the base state home directory.
func getStateHome() string {
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigFile returns the path of the user's config file.
func ConfigFile() string {
	if explicit := os.Getenv("P4MUX_CONFIG"); explicit != "" {
		return explicit
	}

	var legacy string
	if homeDir, err := os.UserHomeDir(); err == nil {
		legacy = filepath.Join(homeDir, legacyFileName)
		if isFile(legacy) {
			return legacy
		}
	}

	if base := getConfigHome(); base != "" {
		xdg := filepath.Join(base, appName, xdgFileName)
		if isFile(xdg) {
			return xdg
		}
	}

	return legacy
}

// StateDir returns the p4mux state directory, used for log files.
func StateDir() string {
	base := getStateHome()
	if base == "" {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(base, appName)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
