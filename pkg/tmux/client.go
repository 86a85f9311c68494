// Package tmux runs the few tmux commands p4mux needs.
package tmux

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/grovetools/p4mux/command"
)

type Client struct {
	builder *command.Builder
	socket  string // Socket name for a dedicated tmux server (uses -L flag)
}

// NewClient creates a client for the default tmux server, or the one named by
// P4MUX_TMUX_SOCKET.
func NewClient() *Client {
	return NewClientWithExecutor(&command.RealExecutor{}, os.Getenv("P4MUX_TMUX_SOCKET"))
}

// NewClientWithExecutor creates a client that runs tmux through exec.
func NewClientWithExecutor(exec command.Executor, socket string) *Client {
	return &Client{
		builder: command.NewBuilderWithExecutor(exec),
		socket:  socket,
	}
}

// Socket returns the socket name this client uses, or empty string for default.
func (c *Client) Socket() string {
	return c.socket
}

// InSession reports whether the current process runs inside tmux.
func InSession() bool {
	return os.Getenv("TMUX") != ""
}

// SourceFile makes the running server reload path.
func (c *Client) SourceFile(ctx context.Context, path string) error {
	if err := c.builder.Validate("path", path); err != nil {
		return err
	}
	_, err := c.run(ctx, "source-file", path)
	return err
}

// ShowOption returns the global value of a tmux option.
func (c *Client) ShowOption(ctx context.Context, option string) (string, error) {
	out, err := c.run(ctx, "show-options", "-gqv", option)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	if c.socket != "" {
		args = append([]string{"-L", c.socket}, args...)
	}

	cmd, err := c.builder.Build(ctx, "tmux", args...)
	if err != nil {
		return "", fmt.Errorf("failed to build command: %w", err)
	}

	stdout, stderr, err := cmd.Output()
	if err != nil {
		return string(stdout), fmt.Errorf("tmux command failed: `%s`: %w, output: %s", cmd.String(), err, strings.TrimSpace(string(stderr)))
	}
	return string(stdout), nil
}
