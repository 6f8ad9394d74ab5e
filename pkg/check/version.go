package check

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// versionRegex matches the first version-looking token in tool output,
// e.g. "Python 3.11.4" or "2.5.1+cu121".
var versionRegex = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// ExtractVersion finds and parses the first version number in a string.
func ExtractVersion(s string) (*semver.Version, error) {
	m := versionRegex.FindString(s)
	if m == "" {
		return nil, fmt.Errorf("no version found in %q", s)
	}
	v, err := semver.NewVersion(m)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", m, err)
	}
	return v, nil
}

// CheckConstraint validates a version against a semver constraint
// expression like ">=3.10, <3.14". It returns the reasons the version
// does not satisfy the constraint, or nil when it does.
func CheckConstraint(v *semver.Version, constraint string) ([]error, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fmt.Errorf("invalid constraint %q: %w", constraint, err)
	}
	if ok, reasons := c.Validate(v); !ok {
		return reasons, nil
	}
	return nil, nil
}
