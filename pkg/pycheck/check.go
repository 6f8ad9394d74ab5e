// Package pycheck probes the Python interpreter itself: that one is
// present on PATH and that its version satisfies an optional constraint.
package pycheck

import (
	"context"
	"strings"
	"time"

	"github.com/m101tools/setupcheck/pkg/check"
	"github.com/m101tools/setupcheck/pkg/pyexec"
)

// Check verifies the Python interpreter and its version.
type Check struct {
	Interpreter string        // interpreter binary (default: python3, then python)
	Constraint  string        // semver constraint, e.g. ">=3.10, <3.14"
	Timeout     time.Duration // timeout for the version command (default 30s)
	Runner      pyexec.Runner // injected for testing
}

// Run executes the interpreter check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "python",
	}

	runner := c.Runner
	if runner == nil {
		runner = &pyexec.RealRunner{}
	}

	interpreter, path, err := pyexec.Resolve(runner, c.Interpreter)
	if err != nil {
		return result.Fail(err.Error(), err)
	}

	result.AddDetailf("path: %s", path)

	timeout := c.Timeout
	if timeout == 0 {
		timeout = pyexec.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := runner.RunContext(ctx, interpreter, "--version")
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return result.Failf("version command timed out after %s", timeout)
		}
		return result.Failf("version command failed: %v", err)
	}

	// Python 2 printed its version banner to stderr.
	output := strings.TrimSpace(stdout)
	if output == "" {
		output = strings.TrimSpace(stderr)
	}

	parsed, err := check.ExtractVersion(output)
	if err != nil {
		return result.Failf("could not parse version from %q: %v", output, err)
	}

	result.AddDetailf("version: %s", parsed)

	if c.Constraint != "" {
		reasons, err := check.CheckConstraint(parsed, c.Constraint)
		if err != nil {
			return result.Failf("%v", err)
		}
		if len(reasons) > 0 {
			return result.Failf("version %s does not satisfy %q: %v", parsed, c.Constraint, reasons[0])
		}
		result.AddDetailf("constraint: %s", c.Constraint)
	}

	result.Status = check.StatusOK
	return result
}
