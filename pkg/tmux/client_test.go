package tmux

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptExecutor runs script with sh instead of tmux, passing tmux's args.
type scriptExecutor struct {
	script string
	calls  [][]string
}

func (e *scriptExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	e.calls = append(e.calls, append([]string{name}, args...))
	return exec.CommandContext(ctx, "sh", append([]string{"-c", e.script, name}, args...)...)
}

func TestSourceFile(t *testing.T) {
	fake := &scriptExecutor{script: "exit 0"}
	client := NewClientWithExecutor(fake, "")

	require.NoError(t, client.SourceFile(context.Background(), "/home/me/.tmux.conf"))
	assert.Equal(t, [][]string{{"tmux", "source-file", "/home/me/.tmux.conf"}}, fake.calls)
}

func TestSourceFile_InvalidPath(t *testing.T) {
	fake := &scriptExecutor{script: "exit 0"}
	client := NewClientWithExecutor(fake, "")

	assert.Error(t, client.SourceFile(context.Background(), "-h"))
	assert.Empty(t, fake.calls)
}

func TestSocketFlag(t *testing.T) {
	fake := &scriptExecutor{script: `echo "$5"`}
	client := NewClientWithExecutor(fake, "p4mux-test")
	assert.Equal(t, "p4mux-test", client.Socket())

	value, err := client.ShowOption(context.Background(), "status-right")
	require.NoError(t, err)
	assert.Equal(t, "status-right", value)
	assert.Equal(t, []string{"tmux", "-L", "p4mux-test", "show-options", "-gqv", "status-right"}, fake.calls[0])
}

func TestRunFailure(t *testing.T) {
	client := NewClientWithExecutor(&scriptExecutor{script: "echo 'no server running' >&2; exit 1"}, "")

	_, err := client.ShowOption(context.Background(), "status-right")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no server running")
}
