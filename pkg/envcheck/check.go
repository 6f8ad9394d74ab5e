// Package envcheck probes the process environment: individual variables
// and .env files.
package envcheck

import (
	"fmt"

	"github.com/m101tools/setupcheck/pkg/check"
)

// Check verifies that an environment variable meets requirements.
type Check struct {
	Name       string    // env var name
	AllowEmpty bool      // pass if defined but empty
	Match      string    // regex pattern the value must match
	Exact      string    // exact value required
	OneOf      []string  // value must be one of these
	HideValue  bool      // don't show value in output
	MaskValue  bool      // show first/last 3 chars only
	Getter     EnvGetter // injected for testing
}

// Run executes the environment variable check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("env: %s", c.Name),
	}

	getter := c.Getter
	if getter == nil {
		getter = &RealEnvGetter{}
	}

	value, exists := getter.LookupEnv(c.Name)

	if !exists {
		return result.Fail("not set", fmt.Errorf("environment variable %s is not set", c.Name))
	}

	if !c.AllowEmpty && value == "" {
		return result.Fail("empty value", fmt.Errorf("environment variable %s is empty", c.Name))
	}

	if c.Match != "" {
		re, err := check.CompileRegex(c.Match)
		if err != nil {
			return result.Failf("invalid regex pattern: %v", err)
		}
		if !re.MatchString(value) {
			return result.Failf("value does not match pattern %q", c.Match)
		}
	}

	if c.Exact != "" && value != c.Exact {
		return result.Failf("value does not equal %q", c.Exact)
	}

	if len(c.OneOf) > 0 {
		found := false
		for _, allowed := range c.OneOf {
			if value == allowed {
				found = true
				break
			}
		}
		if !found {
			return result.Failf("value %q not in allowed list %v", c.formatValue(value), c.OneOf)
		}
	}

	result.Status = check.StatusOK
	result.AddDetail(c.formatValue(value))
	return result
}

func (c *Check) formatValue(value string) string {
	if c.HideValue {
		return "[hidden]"
	}
	if c.MaskValue {
		return maskValue(value)
	}
	return value
}

func maskValue(value string) string {
	if len(value) <= 6 {
		return "•••"
	}
	return value[:3] + "•••" + value[len(value)-3:]
}
