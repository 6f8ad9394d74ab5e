// Package torchcheck probes the PyTorch installation: importability,
// version, and CUDA availability as PyTorch itself sees it.
package torchcheck

import (
	"context"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/m101tools/setupcheck/pkg/check"
	"github.com/m101tools/setupcheck/pkg/pyexec"
)

// probeScript runs inside the target interpreter and reports what torch
// sees as a single JSON object on stdout. Import errors surface on stderr.
const probeScript = `import json, torch
info = {
    "version": torch.__version__,
    "cuda_available": torch.cuda.is_available(),
    "cuda_version": torch.version.cuda,
    "device_name": torch.cuda.get_device_name(0) if torch.cuda.is_available() else None,
}
print(json.dumps(info))`

// Check verifies the PyTorch installation.
type Check struct {
	Interpreter string        // interpreter binary (default: python3, then python)
	Constraint  string        // semver constraint on torch.__version__
	RequireCUDA bool          // fail unless torch reports CUDA available
	Timeout     time.Duration // timeout for the probe (default 30s)
	Runner      pyexec.Runner // injected for testing
}

// Run executes the PyTorch check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "torch",
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

	stdout, stderr, err := runner.RunContext(ctx, interpreter, "-c", probeScript)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return result.Failf("probe timed out after %s", timeout)
		}
		return result.Failf("torch not importable: %s", importError(stderr, err))
	}

	payload := strings.TrimSpace(stdout)
	if !gjson.Valid(payload) {
		return result.Failf("unexpected probe output: %q", payload)
	}

	torchVersion := gjson.Get(payload, "version").String()
	if torchVersion == "" {
		return result.Failf("probe reported no version")
	}
	result.AddDetailf("version: %s", torchVersion)

	cudaAvailable := gjson.Get(payload, "cuda_available").Bool()
	result.AddDetailf("cuda available: %t", cudaAvailable)

	if cudaAvailable {
		if cudaVersion := gjson.Get(payload, "cuda_version"); cudaVersion.Type != gjson.Null {
			result.AddDetailf("cuda version: %s", cudaVersion.String())
		}
		if deviceName := gjson.Get(payload, "device_name"); deviceName.Type != gjson.Null {
			result.AddDetailf("device: %s", deviceName.String())
		}
	}

	if c.Constraint != "" {
		parsed, err := check.ExtractVersion(torchVersion)
		if err != nil {
			return result.Failf("could not parse torch version %q: %v", torchVersion, err)
		}
		reasons, err := check.CheckConstraint(parsed, c.Constraint)
		if err != nil {
			return result.Failf("%v", err)
		}
		if len(reasons) > 0 {
			return result.Failf("version %s does not satisfy %q: %v", parsed, c.Constraint, reasons[0])
		}
		result.AddDetailf("constraint: %s", c.Constraint)
	}

	if c.RequireCUDA && !cudaAvailable {
		return result.Failf("CUDA required but torch reports it unavailable")
	}

	result.Status = check.StatusOK
	return result
}

// importError condenses interpreter stderr into the line worth showing,
// typically "ModuleNotFoundError: No module named 'torch'".
func importError(stderr string, err error) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return err.Error()
}
