// Package setupfile loads checker configuration from a .setupcheck.yaml
// file.
package setupfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/m101tools/setupcheck/pkg/gpucheck"
	"github.com/m101tools/setupcheck/pkg/setup"
)

// DefaultName is the file searched for when no explicit path is given.
const DefaultName = ".setupcheck.yaml"

// File mirrors the YAML layout of a .setupcheck.yaml file.
type File struct {
	Interpreter string `yaml:"interpreter"`
	Python      struct {
		Constraint string `yaml:"constraint"`
	} `yaml:"python"`
	Torch struct {
		Constraint  string `yaml:"constraint"`
		RequireCUDA bool   `yaml:"require_cuda"`
	} `yaml:"torch"`
	GPU struct {
		MinFree string `yaml:"min_free"` // e.g. "4GB"
	} `yaml:"gpu"`
	Env     []string `yaml:"env"`
	EnvFile string   `yaml:"env_file"`
	Model   struct {
		Path   string `yaml:"path"`
		EnvVar string `yaml:"env_var"`
		SHA256 string `yaml:"sha256"`
		BLAKE3 string `yaml:"blake3"`
	} `yaml:"model"`
	Dependencies []string `yaml:"dependencies"`
	Timeout      string   `yaml:"timeout"` // e.g. "30s"
}

// Find locates the config file. An explicit path wins; otherwise the
// directory tree is searched upward from startDir, stopping at the home
// directory or a repository root.
func Find(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(currentDir, DefaultName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		if currentDir == homeDir {
			break
		}

		gitPath := filepath.Join(currentDir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", errors.New(DefaultName + " not found")
}

// Load reads and validates a config file, returning the checker
// configuration it describes.
func Load(path string) (setup.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading the user's config file
	if err != nil {
		return setup.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse converts raw YAML into a validated checker configuration.
func Parse(data []byte) (setup.Config, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return setup.Config{}, fmt.Errorf("invalid YAML: %w", err)
	}

	cfg := setup.Config{
		Interpreter:      f.Interpreter,
		PythonConstraint: f.Python.Constraint,
		TorchConstraint:  f.Torch.Constraint,
		RequireCUDA:      f.Torch.RequireCUDA,
		EnvVars:          f.Env,
		EnvFile:          f.EnvFile,
		ModelPath:        f.Model.Path,
		ModelEnvVar:      f.Model.EnvVar,
		ModelSHA256:      f.Model.SHA256,
		ModelBLAKE3:      f.Model.BLAKE3,
		Dependencies:     f.Dependencies,
	}

	if f.GPU.MinFree != "" {
		minFree, err := gpucheck.ParseSize(f.GPU.MinFree)
		if err != nil {
			return setup.Config{}, fmt.Errorf("invalid gpu.min_free: %w", err)
		}
		cfg.MinGPUFreeMemory = minFree
	}

	if f.Timeout != "" {
		timeout, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return setup.Config{}, fmt.Errorf("invalid timeout: %w", err)
		}
		cfg.Timeout = timeout
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return setup.Config{}, fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}

	return cfg, nil
}
