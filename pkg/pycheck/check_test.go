package pycheck

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m101tools/setupcheck/pkg/check"
	"github.com/m101tools/setupcheck/pkg/pyexec"
)

func mockRunner(version string, runErr error) *pyexec.MockRunner {
	return &pyexec.MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "/usr/bin/" + file, nil
		},
		RunContextFunc: func(_ context.Context, _ string, _ ...string) (string, string, error) {
			return version, "", runErr
		},
	}
}

func TestPythonCheck_NotFound(t *testing.T) {
	runner := &pyexec.MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "", errors.New("executable file not found in $PATH")
		},
	}

	c := &Check{Runner: runner}
	result := c.Run()

	if result.Status != check.StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusFail)
	}
	if result.Name != "python" {
		t.Errorf("Name = %q, want %q", result.Name, "python")
	}
	if result.Detail() == "" {
		t.Error("failing result should carry a detail message")
	}
}

func TestPythonCheck_Found(t *testing.T) {
	c := &Check{Runner: mockRunner("Python 3.11.4", nil)}
	result := c.Run()

	if result.Status != check.StatusOK {
		t.Errorf("Status = %v, want OK (details: %v)", result.Status, result.Details)
	}

	foundVersion := false
	for _, d := range result.Details {
		if d == "version: 3.11.4" {
			foundVersion = true
		}
	}
	if !foundVersion {
		t.Errorf("Details = %v, want a 'version: 3.11.4' line", result.Details)
	}
}

func TestPythonCheck_VersionOnStderr(t *testing.T) {
	// Python 2 printed its banner to stderr.
	runner := &pyexec.MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "/usr/bin/" + file, nil
		},
		RunContextFunc: func(_ context.Context, _ string, _ ...string) (string, string, error) {
			return "", "Python 2.7.18\n", nil
		},
	}

	c := &Check{Runner: runner}
	result := c.Run()

	if result.Status != check.StatusOK {
		t.Errorf("Status = %v, want OK (details: %v)", result.Status, result.Details)
	}
}

func TestPythonCheck_ConstraintSatisfied(t *testing.T) {
	c := &Check{
		Constraint: ">=3.10, <3.14",
		Runner:     mockRunner("Python 3.11.4", nil),
	}
	result := c.Run()

	if result.Status != check.StatusOK {
		t.Errorf("Status = %v, want OK (details: %v)", result.Status, result.Details)
	}
}

func TestPythonCheck_ConstraintViolated(t *testing.T) {
	c := &Check{
		Constraint: ">=3.12",
		Runner:     mockRunner("Python 3.9.18", nil),
	}
	result := c.Run()

	if result.Status != check.StatusFail {
		t.Errorf("Status = %v, want FAIL", result.Status)
	}
	if result.Err == nil {
		t.Error("failing result should carry an error")
	}
}

func TestPythonCheck_InvalidConstraint(t *testing.T) {
	c := &Check{
		Constraint: "not a constraint",
		Runner:     mockRunner("Python 3.11.4", nil),
	}
	result := c.Run()

	if result.Status != check.StatusFail {
		t.Errorf("Status = %v, want FAIL for invalid constraint", result.Status)
	}
}

func TestPythonCheck_VersionCommandFails(t *testing.T) {
	c := &Check{Runner: mockRunner("", errors.New("exit status 1"))}
	result := c.Run()

	if result.Status != check.StatusFail {
		t.Errorf("Status = %v, want FAIL", result.Status)
	}
	if !strings.Contains(result.Details[len(result.Details)-1], "version command failed") {
		t.Errorf("Details = %v, want a 'version command failed' line", result.Details)
	}
}

func TestPythonCheck_UnparsableOutput(t *testing.T) {
	c := &Check{Runner: mockRunner("no version here", nil)}
	result := c.Run()

	if result.Status != check.StatusFail {
		t.Errorf("Status = %v, want FAIL for unparsable version output", result.Status)
	}
}
