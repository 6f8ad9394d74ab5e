package setup

import (
	"fmt"
	"regexp"
	"time"

	"github.com/Masterminds/semver/v3"
)

// Config declares which aspects of the environment to verify. It is
// read-only for the lifetime of a Checker.
type Config struct {
	Interpreter      string        // Python binary (default: python3, then python)
	PythonConstraint string        // semver constraint on the interpreter version
	TorchConstraint  string        // semver constraint on torch.__version__
	RequireCUDA      bool          // fail the torch check unless CUDA is available
	MinGPUFreeMemory uint64        // minimum free GPU memory in bytes (0 = no threshold)
	EnvVars          []string      // environment variables that must be set and non-empty
	EnvFile          string        // .env file to inspect ("" = skip)
	ModelPath        string        // model artifact path ("" = consult ModelEnvVar)
	ModelEnvVar      string        // env var naming the model path ("" = skip the model check)
	ModelSHA256      string        // expected sha256 of a model file artifact
	ModelBLAKE3      string        // expected blake3 of a model file artifact
	Dependencies     []string      // Python modules that must be importable
	Timeout          time.Duration // per-probe timeout (default 30s)
}

var moduleNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Validate reports every problem with the configuration.
func (c Config) Validate() []error {
	var errs []error

	for _, constraint := range []struct{ name, value string }{
		{"python", c.PythonConstraint},
		{"torch", c.TorchConstraint},
	} {
		if constraint.value == "" {
			continue
		}
		if _, err := semver.NewConstraint(constraint.value); err != nil {
			errs = append(errs, fmt.Errorf("invalid %s constraint %q: %w", constraint.name, constraint.value, err))
		}
	}

	for _, dep := range c.Dependencies {
		if !moduleNameRegex.MatchString(dep) {
			errs = append(errs, fmt.Errorf("invalid dependency name %q", dep))
		}
	}

	for _, v := range c.EnvVars {
		if v == "" {
			errs = append(errs, fmt.Errorf("empty environment variable name"))
		}
	}

	return errs
}

// modelConfigured reports whether the model check should run.
func (c Config) modelConfigured() bool {
	return c.ModelPath != "" || c.ModelEnvVar != ""
}
