package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/grovetools/p4mux/errors"
)

// ErrorHandler turns errors into the one-line diagnostics shown in verbose mode.
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Diagnose returns a single line describing err.
func (h *ErrorHandler) Diagnose(err error) string {
	if err == nil {
		return ""
	}

	muxErr, ok := errors.As(err)
	if !ok {
		return "p4mux: " + strings.Join(strings.Fields(err.Error()), " ")
	}

	var line string
	switch muxErr.Code {
	case errors.ErrCodeWorkspaceConfigNotFound, errors.ErrCodeClientNotSet, errors.ErrCodeInvalidInput:
		line = muxErr.Message
	case errors.ErrCodeConfigInvalid:
		line = fmt.Sprintf("invalid config %v: %v", muxErr.Details["path"], rootCause(muxErr))
	case errors.ErrCodeCommandNotFound:
		line = fmt.Sprintf("%v not found in PATH", muxErr.Details["command"])
	case errors.ErrCodeCommandTimeout:
		line = fmt.Sprintf("%v timed out", muxErr.Details["command"])
	default:
		line = fmt.Sprintf("%s: %v", muxErr.Message, rootCause(muxErr))
	}
	return "p4mux: " + strings.Join(strings.Fields(line), " ")
}

// Handle writes the diagnostic for err to w when verbose and returns err.
func (h *ErrorHandler) Handle(w io.Writer, err error) error {
	if err != nil && h.Verbose {
		fmt.Fprintln(w, h.Diagnose(err))
	}
	return err
}

func rootCause(err *errors.MuxError) error {
	if err.Cause != nil {
		return err.Cause
	}
	return fmt.Errorf("%s", err.Message)
}
