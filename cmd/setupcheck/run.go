package main

import (
	"errors"

	"github.com/m101tools/setupcheck/pkg/check"
	"github.com/m101tools/setupcheck/pkg/output"
)

// ErrCheckFailed is returned when a check fails.
var ErrCheckFailed = errors.New("check failed")

// runCheck executes a check, prints the result, and returns an error if failed.
// The returned error causes Cobra to exit with code 1.
func runCheck(c check.Checker) error {
	result := c.Run()
	output.PrintResult(result)

	if !result.OK() {
		return ErrCheckFailed
	}
	return nil
}

// runChecks executes several checks, printing each result. All checks run
// even when an early one fails.
func runChecks(checks ...check.Checker) error {
	failed := false
	for _, c := range checks {
		result := c.Run()
		output.PrintResult(result)
		if !result.OK() {
			failed = true
		}
	}
	if failed {
		return ErrCheckFailed
	}
	return nil
}
