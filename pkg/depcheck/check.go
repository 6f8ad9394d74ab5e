// Package depcheck probes declared Python dependencies: each configured
// module name must be importable by the target interpreter.
package depcheck

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m101tools/setupcheck/pkg/check"
	"github.com/m101tools/setupcheck/pkg/pyexec"
)

// moduleNameRegex accepts dotted Python module paths. Anything else is
// rejected before it reaches the interpreter.
var moduleNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Check verifies that a single Python module is importable.
type Check struct {
	Module      string        // module name, e.g. "numpy" or "torch.cuda"
	Interpreter string        // interpreter binary (default: python3, then python)
	Timeout     time.Duration // timeout for the import (default 30s)
	Runner      pyexec.Runner // injected for testing
}

// Run executes the dependency check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("dep: %s", c.Module),
	}

	if !moduleNameRegex.MatchString(c.Module) {
		return result.Failf("invalid module name %q", c.Module)
	}

	runner := c.Runner
	if runner == nil {
		runner = &pyexec.RealRunner{}
	}

	interpreter, _, err := pyexec.Resolve(runner, c.Interpreter)
	if err != nil {
		return result.Fail(err.Error(), err)
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = pyexec.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, stderr, err := runner.RunContext(ctx, interpreter, "-c", "import "+c.Module)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return result.Failf("import timed out after %s", timeout)
		}
		return result.Fail(importError(stderr, err), fmt.Errorf("module %s is not importable", c.Module))
	}

	result.Status = check.StatusOK
	result.AddDetail("importable")
	return result
}

// importError condenses interpreter stderr to its last meaningful line,
// typically "ModuleNotFoundError: No module named 'x'".
func importError(stderr string, err error) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return err.Error()
}
