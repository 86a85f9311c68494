// Package p4 queries a Perforce workspace through the p4 command-line tool.
package p4

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/grovetools/p4mux/command"
	"github.com/grovetools/p4mux/errors"
	"github.com/grovetools/p4mux/pkg/profiling"
	"github.com/sirupsen/logrus"
)

// DefaultBinary is the p4 executable looked up on PATH.
const DefaultBinary = "p4"

// Client runs p4 with JSON output. Every query takes the directory to scope
// it to; an empty path means the process working directory.
type Client struct {
	builder *command.Builder
	bin     string
	timer   *profiling.Timer
	logger  *logrus.Entry
}

// Option configures a Client.
type Option func(*Client)

// WithExecutor replaces the process executor, used by tests to run a fake p4.
func WithExecutor(exec command.Executor) Option {
	return func(c *Client) {
		timeout := c.builder.Timeout()
		c.builder = command.NewBuilderWithExecutor(exec).WithTimeout(timeout)
	}
}

// WithBinary sets the p4 executable name or path.
func WithBinary(bin string) Option {
	return func(c *Client) {
		if bin != "" {
			c.bin = bin
		}
	}
}

// WithTimeout bounds each p4 invocation. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.builder.WithTimeout(timeout)
	}
}

// WithTimer records the duration of every invocation.
func WithTimer(timer *profiling.Timer) Option {
	return func(c *Client) {
		c.timer = timer
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *logrus.Entry) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a Client that runs the real p4 binary.
func NewClient(opts ...Option) *Client {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		builder: command.NewBuilder(),
		bin:     DefaultBinary,
		logger:  discard.WithField("component", "p4"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Opened counts the files opened in the workspace ('p4 opened').
func (c *Client) Opened(ctx context.Context, path string) (OpenCounts, error) {
	output, cmdline, err := c.run(ctx, path, "opened")
	if err != nil {
		return OpenCounts{}, err
	}

	records, err := ParseRecords(cmdline, output)
	if err != nil {
		return OpenCounts{}, err
	}

	counts := TallyOpened(records)
	c.logger.WithFields(logrus.Fields{"records": len(records), "counted": counts.Total()}).Debug("Counted opened files")
	return counts, nil
}

// Status counts opened and reconcilable files ('p4 status'). flags are passed
// through after validation.
func (c *Client) Status(ctx context.Context, flags []string, path string) (StatusCounts, error) {
	args := []string{"status"}
	for _, flag := range flags {
		if err := c.builder.Validate("flag", flag); err != nil {
			return StatusCounts{}, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid status flag").
				WithDetail("flag", flag)
		}
		args = append(args, flag)
	}

	output, cmdline, err := c.run(ctx, path, args...)
	if err != nil {
		return StatusCounts{}, err
	}

	records, err := ParseRecords(cmdline, output)
	if err != nil {
		return StatusCounts{}, err
	}

	counts := TallyStatus(records)
	c.logger.WithFields(logrus.Fields{"records": len(records), "counted": counts.Total()}).Debug("Counted status records")
	return counts, nil
}

// LoggedIn reports whether 'p4 login -s' succeeds. Any failure, including p4
// not being installed, counts as logged out.
func (c *Client) LoggedIn(ctx context.Context, path string) bool {
	_, _, err := c.run(ctx, path, "login", "-s")
	if err != nil {
		c.logger.WithError(err).Debug("Not logged in")
		return false
	}
	return true
}

// run executes p4 with the global JSON flags. It returns stdout and the
// command line used, for error messages.
func (c *Client) run(ctx context.Context, path string, args ...string) ([]byte, string, error) {
	fullArgs := []string{"-Mj", "-ztag"}
	if path != "" {
		if err := c.builder.Validate("path", path); err != nil {
			return nil, "", errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid workspace path").
				WithDetail("path", path)
		}
		fullArgs = append(fullArgs, "-d", path)
	}
	fullArgs = append(fullArgs, args...)

	cmd, err := c.builder.Build(ctx, c.bin, fullArgs...)
	if err != nil {
		return nil, "", errors.Wrap(err, errors.ErrCodeInternal, "failed to build command")
	}
	if path != "" {
		cmd.Exec().Dir = path
	}
	cmdline := cmd.String()

	span := c.timer.Start(c.bin + " " + strings.Join(args, " "))
	stdout, stderr, err := cmd.Output()
	span.Stop()

	if err != nil {
		muxErr := errors.CommandFailed(cmdline, err)
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			muxErr = muxErr.WithDetail("stderr", msg)
		}
		return nil, cmdline, muxErr
	}

	c.logger.WithField("command", cmdline).Debug("p4 command succeeded")
	return stdout, cmdline, nil
}
