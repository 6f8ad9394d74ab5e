// Package setup is the façade over the probe packages: a Checker runs
// every configured check in a fixed order and aggregates the outcomes
// into a report.
package setup

import (
	"github.com/m101tools/setupcheck/pkg/check"
	"github.com/m101tools/setupcheck/pkg/depcheck"
	"github.com/m101tools/setupcheck/pkg/envcheck"
	"github.com/m101tools/setupcheck/pkg/gpucheck"
	"github.com/m101tools/setupcheck/pkg/modelcheck"
	"github.com/m101tools/setupcheck/pkg/pycheck"
	"github.com/m101tools/setupcheck/pkg/pyexec"
	"github.com/m101tools/setupcheck/pkg/report"
	"github.com/m101tools/setupcheck/pkg/torchcheck"
)

// Report categories, in execution order.
const (
	CategoryVersion     = "version"
	CategoryGPU         = "gpu"
	CategoryEnvironment = "environment"
	CategoryModel       = "model"
	CategoryDependency  = "dependency"
)

// Checker runs all configured probes. Collaborator fields are filled
// with real implementations by New and can be replaced in tests.
type Checker struct {
	Config  Config
	Runner  pyexec.Runner
	NVML    gpucheck.NVML
	Env     envcheck.EnvGetter
	EnvFS   envcheck.FileReader
	ModelFS modelcheck.FileSystem

	last *report.Report
}

// New returns a Checker wired to the real environment.
func New(cfg Config) *Checker {
	return &Checker{
		Config:  cfg,
		Runner:  &pyexec.RealRunner{},
		NVML:    &gpucheck.RealNVML{},
		Env:     &envcheck.RealEnvGetter{},
		EnvFS:   &envcheck.RealFileReader{},
		ModelFS: &modelcheck.RealFileSystem{},
	}
}

// RunAll executes every configured probe in a fixed order: interpreter
// and framework versions, GPU, environment, model artifact, then
// declared dependencies. It never fails itself: every probe fault is
// recorded as a failing entry and the remaining probes still run. Each
// call produces a fresh report.
func (c *Checker) RunAll() *report.Report {
	rep := report.New()

	for _, probe := range c.probes() {
		rep.Add(probe.category, probe.checker.Run())
	}

	c.last = rep
	return rep
}

// LastReport returns the report from the most recent RunAll, or nil if
// RunAll has not been called.
func (c *Checker) LastReport() *report.Report {
	return c.last
}

type probe struct {
	category string
	checker  check.Checker
}

// probes assembles the configured checks in their fixed execution order.
func (c *Checker) probes() []probe {
	cfg := c.Config
	probes := []probe{
		{CategoryVersion, &pycheck.Check{
			Interpreter: cfg.Interpreter,
			Constraint:  cfg.PythonConstraint,
			Timeout:     cfg.Timeout,
			Runner:      c.Runner,
		}},
		{CategoryVersion, &torchcheck.Check{
			Interpreter: cfg.Interpreter,
			Constraint:  cfg.TorchConstraint,
			RequireCUDA: cfg.RequireCUDA,
			Timeout:     cfg.Timeout,
			Runner:      c.Runner,
		}},
		{CategoryGPU, &gpucheck.Check{
			MinFreeMemory: cfg.MinGPUFreeMemory,
			NVML:          c.NVML,
		}},
	}

	for _, name := range cfg.EnvVars {
		probes = append(probes, probe{CategoryEnvironment, &envcheck.Check{
			Name:   name,
			Getter: c.Env,
		}})
	}

	if cfg.EnvFile != "" {
		probes = append(probes, probe{CategoryEnvironment, &envcheck.FileCheck{
			Path:   cfg.EnvFile,
			Reader: c.EnvFS,
		}})
	}

	if cfg.modelConfigured() {
		probes = append(probes, probe{CategoryModel, &modelcheck.Check{
			Path:   cfg.ModelPath,
			EnvVar: cfg.ModelEnvVar,
			SHA256: cfg.ModelSHA256,
			BLAKE3: cfg.ModelBLAKE3,
			Getter: c.Env,
			FS:     c.ModelFS,
		}})
	}

	for _, dep := range cfg.Dependencies {
		probes = append(probes, probe{CategoryDependency, &depcheck.Check{
			Module:      dep,
			Interpreter: cfg.Interpreter,
			Timeout:     cfg.Timeout,
			Runner:      c.Runner,
		}})
	}

	return probes
}
