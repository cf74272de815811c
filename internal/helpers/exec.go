package helpers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// CommandRunner defines an interface for executing system commands
// This allows for mocking in tests and dependency injection
type CommandRunner interface {
	// CommandExists checks if a command is available in PATH
	CommandExists(name string) bool

	// RunCommand executes a command and returns stdout
	RunCommand(ctx context.Context, name string, args ...string) (string, error)

	// RunCommandWithOutput runs a command and returns both stdout and stderr
	RunCommandWithOutput(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)

	// RunCommandInteractive runs a command attached to the terminal so that
	// password and confirmation prompts reach the user
	RunCommandInteractive(ctx context.Context, name string, args ...string) error

	// GetExitCode extracts the exit code from a command error
	GetExitCode(err error) int
}

// OSCommandRunner is the default implementation using os/exec
type OSCommandRunner struct {
	commandCache sync.Map // map[string]bool
	log          *zerolog.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSCommandRunner creates a new OSCommandRunner bound to the process terminal
func NewOSCommandRunner(log *zerolog.Logger) *OSCommandRunner {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &OSCommandRunner{
		log:    log,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// CommandExists checks if a command is available in PATH
func (r *OSCommandRunner) CommandExists(name string) bool {
	if cached, ok := r.commandCache.Load(name); ok {
		if exists, ok := cached.(bool); ok {
			return exists
		}
		r.commandCache.Delete(name)
	}

	_, err := exec.LookPath(name)
	exists := err == nil
	r.commandCache.Store(name, exists)
	return exists
}

// RunCommand executes a command and returns stdout
// SECURITY: Uses exec.CommandContext with separate arguments to prevent command injection
func (r *OSCommandRunner) RunCommand(ctx context.Context, name string, args ...string) (string, error) {
	stdout, stderr, err := r.RunCommandWithOutput(ctx, name, args...)
	if err != nil {
		return "", fmt.Errorf("%w\nstderr: %s", err, stderr)
	}
	return stdout, nil
}

// RunCommandWithOutput runs a command and returns both stdout and stderr
func (r *OSCommandRunner) RunCommandWithOutput(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	r.log.Debug().Str("cmd", FormatCommand(name, args...)).Msg("running command")

	cmd := exec.CommandContext(ctx, name, args...)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = cmd.Run()
	stdout = outBuf.String()
	stderr = errBuf.String()

	if err != nil {
		err = &CommandError{Command: FormatCommand(name, args...), Err: err}
	}

	return stdout, stderr, err
}

// RunCommandInteractive runs a command with the runner's stdin, stdout and stderr
// SECURITY: Uses exec.CommandContext with separate arguments to prevent command injection
func (r *OSCommandRunner) RunCommandInteractive(ctx context.Context, name string, args ...string) error {
	r.log.Debug().Str("cmd", FormatCommand(name, args...)).Msg("running interactive command")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return &CommandError{Command: FormatCommand(name, args...), Err: err}
	}

	return nil
}

// GetExitCode extracts the exit code from a command error
func (r *OSCommandRunner) GetExitCode(err error) int {
	return ExitCode(err)
}

// CommandError records which command failed
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns 0 for nil, the process exit code for *exec.ExitError, and -1 otherwise
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}

// FormatCommand renders an argument vector for logs and messages
func FormatCommand(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
