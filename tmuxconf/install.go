// Package tmuxconf installs p4mux into the user's tmux configuration.
package tmuxconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	markerBegin = "# >>> p4mux >>>"
	markerEnd   = "# <<< p4mux <<<"
)

// Result describes what Install did to the file.
type Result int

const (
	Unchanged Result = iota
	Added
	Updated
)

func (r Result) String() string {
	switch r {
	case Added:
		return "added"
	case Updated:
		return "updated"
	default:
		return "unchanged"
	}
}

// Options controls the generated block.
type Options struct {
	// Binary is the command tmux runs, e.g. "p4mux" or an absolute path.
	Binary string
	// Option is the tmux option that receives the output, usually status-right.
	Option string
	// Interval sets status-interval in seconds; zero leaves it alone.
	Interval int
}

// Block returns the marked snippet for opts.
func Block(opts Options) string {
	var b strings.Builder
	b.WriteString(markerBegin + "\n")
	if opts.Interval > 0 {
		fmt.Fprintf(&b, "set -g status-interval %d\n", opts.Interval)
	}
	fmt.Fprintf(&b, "set -g %s \"#(%s #{pane_current_path})\"\n", opts.Option, opts.Binary)
	b.WriteString(markerEnd + "\n")
	return b.String()
}

// DefaultPath returns ~/.tmux.conf, or the XDG location when only that exists.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get home directory: %w", err)
	}

	legacy := filepath.Join(home, ".tmux.conf")
	if _, err := os.Stat(legacy); err == nil {
		return legacy, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	xdg := filepath.Join(configHome, "tmux", "tmux.conf")
	if _, err := os.Stat(xdg); err == nil {
		return xdg, nil
	}

	return legacy, nil
}

// Install writes the p4mux block into the tmux config at path. An existing
// block is replaced in place; otherwise the block is appended. The file is
// created when missing.
func Install(path string, opts Options) (Result, error) {
	if opts.Binary == "" || opts.Option == "" {
		return Unchanged, fmt.Errorf("binary and option must be set")
	}

	contentBytes, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return Unchanged, fmt.Errorf("could not read tmux config: %w", err)
	}
	content := string(contentBytes)
	block := Block(opts)

	var result Result
	startIdx := strings.Index(content, markerBegin)
	if startIdx == -1 {
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		content += block
		result = Added
	} else {
		endIdx := strings.Index(content[startIdx:], markerEnd)
		if endIdx == -1 {
			return Unchanged, fmt.Errorf("found %q without %q in %s", markerBegin, markerEnd, path)
		}
		endIdx = startIdx + endIdx + len(markerEnd)
		if endIdx < len(content) && content[endIdx] == '\n' {
			endIdx++
		}

		if content[startIdx:endIdx] == block {
			return Unchanged, nil
		}
		content = content[:startIdx] + block + content[endIdx:]
		result = Updated
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Unchanged, fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return Unchanged, fmt.Errorf("failed to write updated tmux config: %w", err)
	}
	return result, nil
}
