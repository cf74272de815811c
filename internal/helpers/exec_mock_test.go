package helpers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockCommandRunner_Defaults(t *testing.T) {
	t.Parallel()

	mock := &MockCommandRunner{}
	ctx := context.Background()

	assert.False(t, mock.CommandExists("fish"))

	out, err := mock.RunCommand(ctx, "python3", "--version")
	assert.NoError(t, err)
	assert.Empty(t, out)

	stdout, stderr, err := mock.RunCommandWithOutput(ctx, "python3", "--version")
	assert.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)

	assert.NoError(t, mock.RunCommandInteractive(ctx, "chsh", "-s", "/usr/bin/fish"))
	assert.Equal(t, 0, mock.GetExitCode(errors.New("x")))
}

func TestMockCommandRunner_Funcs(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("exit status 100")
	mock := &MockCommandRunner{
		CommandExistsFunc: func(name string) bool { return name == "apt" },
		RunCommandWithOutputFunc: func(_ context.Context, _ string, _ ...string) (string, string, error) {
			return "", "Python 3.12.1\n", nil
		},
		RunCommandInteractiveFunc: func(_ context.Context, _ string, _ ...string) error {
			return expectedErr
		},
		GetExitCodeFunc: func(_ error) int { return 100 },
	}
	ctx := context.Background()

	assert.True(t, mock.CommandExists("apt"))
	assert.False(t, mock.CommandExists("dnf"))

	_, stderr, err := mock.RunCommandWithOutput(ctx, "python3", "--version")
	assert.NoError(t, err)
	assert.Equal(t, "Python 3.12.1\n", stderr)

	err = mock.RunCommandInteractive(ctx, "sudo", "apt", "update")
	assert.Equal(t, expectedErr, err)
	assert.Equal(t, 100, mock.GetExitCode(err))
}

func TestMockCommandRunner_Recorded(t *testing.T) {
	t.Parallel()

	mock := &MockCommandRunner{}
	ctx := context.Background()

	_, _ = mock.RunCommand(ctx, "python3", "--version")
	_ = mock.RunCommandInteractive(ctx, "sudo", "apt", "update")
	_ = mock.RunCommandInteractive(ctx, "sudo", "apt", "install", "fish")

	assert.Equal(t, [][]string{
		{"python3", "--version"},
		{"sudo", "apt", "update"},
		{"sudo", "apt", "install", "fish"},
	}, mock.Recorded())
}
