package helpers

import (
	"context"
	"sync"
)

// MockCommandRunner is a mock implementation of CommandRunner for testing
type MockCommandRunner struct {
	CommandExistsFunc         func(name string) bool
	RunCommandFunc            func(ctx context.Context, name string, args ...string) (string, error)
	RunCommandWithOutputFunc  func(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
	RunCommandInteractiveFunc func(ctx context.Context, name string, args ...string) error
	GetExitCodeFunc           func(err error) int

	mu    sync.Mutex
	Calls [][]string
}

func (m *MockCommandRunner) record(name string, args []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, append([]string{name}, args...))
}

// Recorded returns a copy of every argv the mock received, in order
func (m *MockCommandRunner) Recorded() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]string, len(m.Calls))
	copy(out, m.Calls)
	return out
}

// CommandExists implements CommandRunner.CommandExists
func (m *MockCommandRunner) CommandExists(name string) bool {
	if m.CommandExistsFunc != nil {
		return m.CommandExistsFunc(name)
	}
	return false
}

// RunCommand implements CommandRunner.RunCommand
func (m *MockCommandRunner) RunCommand(ctx context.Context, name string, args ...string) (string, error) {
	m.record(name, args)
	if m.RunCommandFunc != nil {
		return m.RunCommandFunc(ctx, name, args...)
	}
	return "", nil
}

// RunCommandWithOutput implements CommandRunner.RunCommandWithOutput
func (m *MockCommandRunner) RunCommandWithOutput(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	m.record(name, args)
	if m.RunCommandWithOutputFunc != nil {
		return m.RunCommandWithOutputFunc(ctx, name, args...)
	}
	return "", "", nil
}

// RunCommandInteractive implements CommandRunner.RunCommandInteractive
func (m *MockCommandRunner) RunCommandInteractive(ctx context.Context, name string, args ...string) error {
	m.record(name, args)
	if m.RunCommandInteractiveFunc != nil {
		return m.RunCommandInteractiveFunc(ctx, name, args...)
	}
	return nil
}

// GetExitCode implements CommandRunner.GetExitCode
func (m *MockCommandRunner) GetExitCode(err error) int {
	if m.GetExitCodeFunc != nil {
		return m.GetExitCodeFunc(err)
	}
	return 0
}
