package envcheck

import (
	"fmt"
	"os"
	"strings"

	"github.com/m101tools/setupcheck/pkg/check"
)

// FileCheck verifies that a .env file exists and counts its entries.
type FileCheck struct {
	Path   string     // path to the .env file (default: .env)
	Reader FileReader // injected for testing
}

// Run executes the .env file check.
func (c *FileCheck) Run() check.Result {
	path := c.Path
	if path == "" {
		path = ".env"
	}

	result := check.Result{
		Name: fmt.Sprintf("envfile: %s", path),
	}

	reader := c.Reader
	if reader == nil {
		reader = &RealFileReader{}
	}

	data, err := reader.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result.Fail("not found", err)
		}
		return result.Failf("read failed: %v", err)
	}

	entries := 0
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		entries++
	}

	result.Status = check.StatusOK
	result.AddDetailf("entries: %d", entries)
	return result
}
