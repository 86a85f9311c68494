package command

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds a single external command. A status line that
	// hangs is worse than one that renders late, so this stays short.
	DefaultTimeout = 5 * time.Second

	// MaxTimeout is the maximum allowed timeout
	MaxTimeout = 2 * time.Minute
)

var validFlag = regexp.MustCompile(`^-{1,2}[A-Za-z0-9][A-Za-z0-9=_.-]*$`)

// Builder creates bounded commands and validates the user-supplied pieces of
// their argument lists.
type Builder struct {
	timeout    time.Duration
	validators map[string]func(string) error
	executor   Executor
}

// NewBuilder creates a Builder backed by a RealExecutor.
func NewBuilder() *Builder {
	return NewBuilderWithExecutor(&RealExecutor{})
}

// NewBuilderWithExecutor creates a Builder with a custom Executor.
func NewBuilderWithExecutor(exec Executor) *Builder {
	return &Builder{
		timeout: DefaultTimeout,
		validators: map[string]func(string) error{
			"flag": validateFlag,
			"path": validatePath,
		},
		executor: exec,
	}
}

// WithTimeout sets the timeout applied to every built command. Zero disables
// the bound; values above MaxTimeout are capped.
func (b *Builder) WithTimeout(timeout time.Duration) *Builder {
	if timeout > MaxTimeout {
		timeout = MaxTimeout
	}
	if timeout < 0 {
		timeout = 0
	}
	b.timeout = timeout
	return b
}

// Timeout returns the timeout applied to built commands.
func (b *Builder) Timeout() time.Duration {
	return b.timeout
}

// Validate validates a value against the named validator.
func (b *Builder) Validate(argType string, value string) error {
	validator, exists := b.validators[argType]
	if !exists {
		return fmt.Errorf("no validator for argument type: %s", argType)
	}

	return validator(value)
}

// validateFlag accepts a single dash-prefixed option such as -m or --max=3.
func validateFlag(flag string) error {
	if flag == "" {
		return fmt.Errorf("flag cannot be empty")
	}
	if !validFlag.MatchString(flag) {
		return fmt.Errorf("invalid flag: %q", flag)
	}
	return nil
}

// validatePath rejects paths that could be read as an option by the callee.
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if strings.HasPrefix(path, "-") {
		return fmt.Errorf("path cannot start with '-': %q", path)
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("path contains a NUL byte")
	}
	return nil
}

// Command is a single bounded invocation.
type Command struct {
	ctx    context.Context
	cancel context.CancelFunc
	name   string
	args   []string
	cmd    *exec.Cmd
}

// Build creates a new command. The returned command owns a derived context;
// Output releases it.
func (b *Builder) Build(ctx context.Context, name string, args ...string) (*Command, error) {
	if name == "" {
		return nil, fmt.Errorf("command name cannot be empty")
	}

	cmdCtx, cancel := ctx, context.CancelFunc(func() {})
	if b.timeout > 0 {
		cmdCtx, cancel = context.WithTimeout(ctx, b.timeout)
	}

	return &Command{
		ctx:    cmdCtx,
		cancel: cancel,
		name:   name,
		args:   args,
		cmd:    b.executor.CommandContext(cmdCtx, name, args...),
	}, nil
}

// String returns the command line for logs and error messages.
func (c *Command) String() string {
	return strings.TrimSpace(c.name + " " + strings.Join(c.args, " "))
}

// Exec returns the underlying exec.Cmd so callers can set Dir or Env.
func (c *Command) Exec() *exec.Cmd {
	return c.cmd
}

// Output runs the command and returns its stdout. Stderr is captured and
// returned alongside so callers can include it in diagnostics. If the
// timeout fired, the returned error wraps context.DeadlineExceeded.
func (c *Command) Output() (stdout []byte, stderr []byte, err error) {
	defer c.cancel()

	var outBuf, errBuf bytes.Buffer
	c.cmd.Stdout = &outBuf
	c.cmd.Stderr = &errBuf

	err = c.cmd.Run()
	if err != nil && c.ctx.Err() != nil {
		err = fmt.Errorf("%w: %v", c.ctx.Err(), err)
	}
	return outBuf.Bytes(), errBuf.Bytes(), err
}
