package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *MuxError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(path string, err error) *MuxError {
	return Wrap(err, ErrCodeConfigInvalid, "invalid configuration").
		WithDetail("path", path)
}

// ConfigValidation creates a schema validation failure error
func ConfigValidation(path string, err error) *MuxError {
	return Wrap(err, ErrCodeConfigValidation, "configuration does not match schema").
		WithDetail("path", path)
}

// WorkspaceConfigNotFound is returned when the directory walk reaches the
// filesystem root without finding the workspace config file.
func WorkspaceConfigNotFound(name, startDir string) *MuxError {
	return New(ErrCodeWorkspaceConfigNotFound,
		fmt.Sprintf("unable to find %s in %s or any parent directory", name, startDir)).
		WithDetail("name", name).
		WithDetail("searchPath", startDir)
}

// ClientNotSet is returned when the workspace config has no P4CLIENT entry.
func ClientNotSet(path string) *MuxError {
	return New(ErrCodeClientNotSet, fmt.Sprintf("P4CLIENT not set in %s", path)).
		WithDetail("path", path)
}

// CommandFailed creates a command execution failure error. Timeouts and
// missing binaries get their own codes.
func CommandFailed(cmd string, err error) *MuxError {
	code := ErrCodeCommandFailed
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		code = ErrCodeCommandTimeout
	case stderrors.Is(err, exec.ErrNotFound):
		code = ErrCodeCommandNotFound
	}

	muxErr := Wrap(err, code, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		muxErr = muxErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return muxErr
}

// MalformedOutput reports a line of p4 output that is not a valid JSON record.
func MalformedOutput(cmd string, line int, err error) *MuxError {
	return Wrap(err, ErrCodeMalformedOutput, fmt.Sprintf("malformed output from %s at line %d", cmd, line)).
		WithDetail("command", cmd).
		WithDetail("line", line)
}

// InvalidInput creates an invalid argument error
func InvalidInput(reason string) *MuxError {
	return New(ErrCodeInvalidInput, reason)
}
