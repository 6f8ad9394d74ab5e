// Package modelcheck probes a model artifact on disk: the configured
// path (or the MODEL_PATH environment variable) must exist, and a file
// artifact can additionally be verified against a checksum.
package modelcheck

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/m101tools/setupcheck/pkg/check"
	"github.com/m101tools/setupcheck/pkg/envcheck"
)

// DefaultEnvVar is consulted when no explicit path is configured.
const DefaultEnvVar = "MODEL_PATH"

// Check verifies a model artifact.
type Check struct {
	Path      string            // explicit path; falls back to the env var when empty
	EnvVar    string            // env var consulted when Path is empty (default MODEL_PATH)
	ExpectDir bool              // expect a directory (e.g. a HuggingFace model dir)
	SHA256    string            // expected sha256 hex digest of a file artifact
	BLAKE3    string            // expected blake3 hex digest of a file artifact
	Getter    envcheck.EnvGetter // injected for testing
	FS        FileSystem         // injected for testing
}

// Run executes the model artifact check.
func (c *Check) Run() check.Result {
	path, result := c.resolvePath()
	if result != nil {
		return *result
	}

	res := check.Result{
		Name: fmt.Sprintf("model: %s", path),
	}

	fsys := c.FS
	if fsys == nil {
		fsys = &RealFileSystem{}
	}

	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return res.Fail("not found", err)
		}
		return res.Failf("stat failed: %v", err)
	}

	if c.ExpectDir && !info.IsDir() {
		return res.Failf("expected a directory")
	}

	if info.IsDir() {
		res.AddDetail("directory")
		if c.SHA256 != "" || c.BLAKE3 != "" {
			return res.Failf("checksum verification requires a file, got a directory")
		}
	} else {
		res.AddDetailf("size: %d bytes", info.Size())
	}

	if c.SHA256 != "" {
		if err := c.verifyChecksum(fsys, path, "sha256", sha256.New(), c.SHA256, &res); err != nil {
			return res
		}
	}
	if c.BLAKE3 != "" {
		if err := c.verifyChecksum(fsys, path, "blake3", blake3.New(), c.BLAKE3, &res); err != nil {
			return res
		}
	}

	res.Status = check.StatusOK
	return res
}

// resolvePath picks the artifact path from config or environment. A nil
// result means a path was found.
func (c *Check) resolvePath() (string, *check.Result) {
	if c.Path != "" {
		return c.Path, nil
	}

	envVar := c.EnvVar
	if envVar == "" {
		envVar = DefaultEnvVar
	}

	getter := c.Getter
	if getter == nil {
		getter = &envcheck.RealEnvGetter{}
	}

	if path, ok := getter.LookupEnv(envVar); ok && path != "" {
		return path, nil
	}

	res := check.Result{Name: "model"}
	res.Failf("no model path configured (%s is not set)", envVar)
	return "", &res
}

func (c *Check) verifyChecksum(fsys FileSystem, path, algorithm string, h hash.Hash, expected string, res *check.Result) error {
	expected = strings.ToLower(expected)
	if _, err := hex.DecodeString(expected); err != nil || len(expected) != hex.EncodedLen(h.Size()) {
		res.Failf("invalid %s digest %q", algorithm, expected)
		return fmt.Errorf("invalid digest")
	}

	f, err := fsys.Open(path)
	if err != nil {
		res.Failf("failed to open file: %v", err)
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(h, f); err != nil {
		res.Failf("failed to hash file: %v", err)
		return err
	}

	actual := hex.EncodeToString(h.Sum(nil))
	if actual != expected {
		res.Failf("%s mismatch\n       expected: %s\n       actual:   %s", algorithm, expected, actual)
		return fmt.Errorf("%s mismatch", algorithm)
	}

	res.AddDetailf("%s: %s", algorithm, actual)
	return nil
}
