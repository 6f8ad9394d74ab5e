// Package pyexec runs short Python interpreter invocations for the
// probe packages that need them (pycheck, torchcheck, depcheck).
package pyexec

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// DefaultTimeout bounds a single interpreter invocation.
const DefaultTimeout = 30 * time.Second

// Runner abstracts interpreter execution for testability.
type Runner interface {
	LookPath(file string) (string, error)
	RunContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct{}

// LookPath searches for an executable in PATH.
func (r *RealRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// RunContext executes a command and returns its output.
func (r *RealRunner) RunContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	LookPathFunc   func(file string) (string, error)
	RunContextFunc func(ctx context.Context, name string, args ...string) (string, string, error)
}

// LookPath calls the mock function.
func (m *MockRunner) LookPath(file string) (string, error) {
	return m.LookPathFunc(file)
}

// RunContext calls the mock function.
func (m *MockRunner) RunContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	return m.RunContextFunc(ctx, name, args...)
}
