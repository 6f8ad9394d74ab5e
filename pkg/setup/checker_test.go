package setup

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"github.com/m101tools/setupcheck/pkg/envcheck"
	"github.com/m101tools/setupcheck/pkg/gpucheck"
	"github.com/m101tools/setupcheck/pkg/pyexec"
)

// fakeEnv is a Checker wired entirely to in-memory collaborators
// resembling a healthy CUDA workstation.
type fakeEnv struct {
	vars    map[string]string
	modules map[string]bool // importable modules
}

type fakeEnvGetter struct{ vars map[string]string }

func (f *fakeEnvGetter) LookupEnv(key string) (string, bool) {
	v, ok := f.vars[key]
	return v, ok
}

type fakeFileReader struct{ files map[string][]byte }

func (f *fakeFileReader) ReadFile(path string) ([]byte, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

type fakeFS struct{ dirs map[string]bool }

func (f *fakeFS) Stat(path string) (os.FileInfo, error) {
	if f.dirs[path] {
		return os.Stat(".") // any real directory FileInfo will do
	}
	return nil, os.ErrNotExist
}

func (f *fakeFS) Open(path string) (io.ReadCloser, error) {
	return nil, os.ErrNotExist
}

const torchProbeOutput = `{"version": "2.5.1+cu121", "cuda_available": true, "cuda_version": "12.1", "device_name": "NVIDIA RTX 6000"}`

func (e *fakeEnv) runner() pyexec.Runner {
	return &pyexec.MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "/usr/bin/" + file, nil
		},
		RunContextFunc: func(_ context.Context, _ string, args ...string) (string, string, error) {
			if len(args) == 1 && args[0] == "--version" {
				return "Python 3.11.4", "", nil
			}
			if len(args) == 2 && args[0] == "-c" {
				if strings.Contains(args[1], "import json, torch") {
					if !e.modules["torch"] {
						return "", "ModuleNotFoundError: No module named 'torch'", errors.New("exit status 1")
					}
					return torchProbeOutput, "", nil
				}
				module := strings.TrimPrefix(args[1], "import ")
				root := strings.SplitN(module, ".", 2)[0]
				if !e.modules[root] {
					return "", "ModuleNotFoundError: No module named '" + root + "'", errors.New("exit status 1")
				}
				return "", "", nil
			}
			return "", "", errors.New("unexpected invocation")
		},
	}
}

func newFakeChecker(cfg Config, env *fakeEnv) *Checker {
	c := New(cfg)
	c.Runner = env.runner()
	c.NVML = &gpucheck.MockNVML{
		InitReturn:    nvml.SUCCESS,
		DriverVersion: "550.54.14",
		Devices: []gpucheck.Device{
			&gpucheck.MockDevice{
				Name:   "NVIDIA RTX 6000",
				Memory: nvml.Memory{Total: 48 * gpucheck.GB, Free: 40 * gpucheck.GB},
			},
		},
	}
	c.Env = &fakeEnvGetter{vars: env.vars}
	c.EnvFS = &fakeFileReader{files: map[string][]byte{".env": []byte("A=1\nB=2\n")}}
	c.ModelFS = &fakeFS{dirs: map[string]bool{"/models/whisper": true}}
	return c
}

func healthyEnv() *fakeEnv {
	return &fakeEnv{
		vars:    map[string]string{"HF_HOME": "/data/hf", "MODEL_PATH": "/models/whisper"},
		modules: map[string]bool{"torch": true, "numpy": true, "fastapi": true},
	}
}

func TestRunAll_ReportLength(t *testing.T) {
	cfg := Config{
		EnvVars:      []string{"HF_HOME"},
		EnvFile:      ".env",
		ModelEnvVar:  "MODEL_PATH",
		Dependencies: []string{"numpy", "fastapi"},
	}
	c := newFakeChecker(cfg, healthyEnv())

	rep := c.RunAll()

	// python + torch + gpu + 1 env var + env file + model + 2 deps
	if rep.Len() != 8 {
		t.Fatalf("Len = %d, want 8", rep.Len())
	}
	if !rep.OK() {
		t.Errorf("report not OK; entries: %+v", rep.Entries())
	}
}

func TestRunAll_FixedCategoryOrder(t *testing.T) {
	cfg := Config{
		EnvVars:      []string{"HF_HOME"},
		ModelEnvVar:  "MODEL_PATH",
		Dependencies: []string{"numpy"},
	}
	c := newFakeChecker(cfg, healthyEnv())

	rep := c.RunAll()

	want := []string{CategoryVersion, CategoryGPU, CategoryEnvironment, CategoryModel, CategoryDependency}
	got := rep.Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRunAll_Deterministic(t *testing.T) {
	cfg := Config{
		EnvVars:      []string{"HF_HOME", "UNSET_VAR"},
		Dependencies: []string{"numpy", "nonexistent_pkg_xyz"},
	}
	c := newFakeChecker(cfg, healthyEnv())

	first := c.RunAll()
	second := c.RunAll()

	if first == second {
		t.Fatal("each RunAll call should produce a fresh report")
	}
	if first.Len() != second.Len() {
		t.Fatalf("lengths differ: %d vs %d", first.Len(), second.Len())
	}
	for i := range first.Entries() {
		a, b := first.Entries()[i], second.Entries()[i]
		if a.Result.OK() != b.Result.OK() {
			t.Errorf("entry %d (%s): passed %t vs %t", i, a.Result.Name, a.Result.OK(), b.Result.OK())
		}
	}
}

func TestRunAll_MissingDependency(t *testing.T) {
	cfg := Config{Dependencies: []string{"nonexistent_pkg_xyz"}}
	c := newFakeChecker(cfg, healthyEnv())

	rep := c.RunAll()

	var found bool
	for _, e := range rep.Entries() {
		if e.Result.Name == "dep: nonexistent_pkg_xyz" {
			found = true
			if e.Result.OK() {
				t.Error("missing dependency should fail")
			}
			if e.Result.Detail() == "" {
				t.Error("missing dependency should carry a non-empty detail")
			}
			if !strings.Contains(e.Result.Detail(), "No module named") {
				t.Errorf("Detail = %q, want the import error text", e.Result.Detail())
			}
		}
	}
	if !found {
		t.Fatal("report has no entry for the configured dependency")
	}
}

func TestRunAll_GPUFailureDoesNotBlockOthers(t *testing.T) {
	cfg := Config{Dependencies: []string{"numpy"}}
	c := newFakeChecker(cfg, healthyEnv())
	c.NVML = &gpucheck.MockNVML{InitReturn: nvml.ERROR_LIBRARY_NOT_FOUND}

	rep := c.RunAll()

	if rep.Summary(CategoryGPU).Failed != 1 {
		t.Error("GPU check should fail without NVML")
	}
	if rep.Summary(CategoryDependency).Passed != 1 {
		t.Error("dependency check should still run and pass")
	}
	if rep.Summary(CategoryVersion).Passed != 2 {
		t.Error("version checks should still run and pass")
	}
}

func TestRunAll_EnvVarFlip(t *testing.T) {
	env := healthyEnv()
	cfg := Config{EnvVars: []string{"EXTRA_FLAG"}}
	c := newFakeChecker(cfg, env)

	rep := c.RunAll()
	if rep.Summary(CategoryEnvironment).Failed != 1 {
		t.Fatal("unset variable should fail")
	}

	env.vars["EXTRA_FLAG"] = "1"
	rep = c.RunAll()
	if rep.Summary(CategoryEnvironment).Passed != 1 {
		t.Fatal("variable set to \"1\" should pass on re-run")
	}
	for _, e := range rep.Entries() {
		if e.Result.Name == "env: EXTRA_FLAG" && e.Result.Detail() != "1" {
			t.Errorf("Detail = %q, want the value %q", e.Result.Detail(), "1")
		}
	}
}

func TestRunAll_EverythingFails(t *testing.T) {
	env := &fakeEnv{vars: map[string]string{}, modules: map[string]bool{}}
	cfg := Config{
		EnvVars:      []string{"UNSET"},
		ModelEnvVar:  "MODEL_PATH",
		Dependencies: []string{"nonexistent_pkg_xyz"},
	}
	c := newFakeChecker(cfg, env)
	c.NVML = &gpucheck.MockNVML{InitReturn: nvml.ERROR_DRIVER_NOT_LOADED}
	c.EnvFS = &fakeFileReader{files: map[string][]byte{}}

	rep := c.RunAll()

	if rep == nil {
		t.Fatal("RunAll must always return a report")
	}
	// python still passes (interpreter is present); torch, gpu, env, model, dep fail
	if rep.Overall().Failed != 5 {
		t.Errorf("Failed = %d, want 5; entries: %+v", rep.Overall().Failed, rep.Entries())
	}
}

func TestLastReport(t *testing.T) {
	c := newFakeChecker(Config{}, healthyEnv())

	if c.LastReport() != nil {
		t.Error("LastReport should be nil before RunAll")
	}

	rep := c.RunAll()
	if c.LastReport() != rep {
		t.Error("LastReport should return the report from the most recent run")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config", Config{}, false},
		{"valid", Config{
			PythonConstraint: ">=3.10, <3.14",
			TorchConstraint:  ">=2.0",
			Dependencies:     []string{"numpy", "torch.cuda"},
			EnvVars:          []string{"HF_HOME"},
		}, false},
		{"bad python constraint", Config{PythonConstraint: "whatever"}, true},
		{"bad torch constraint", Config{TorchConstraint: ">>=1"}, true},
		{"bad dependency name", Config{Dependencies: []string{"os; import sys"}}, true},
		{"empty env var name", Config{EnvVars: []string{""}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.cfg.Validate()
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

var _ envcheck.EnvGetter = (*fakeEnvGetter)(nil)
