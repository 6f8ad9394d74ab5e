package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "python", "env: MODEL_PATH", "dep: numpy"
	Status  Status   // OK or FAIL
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Detail returns the first detail line, or "" if there are none.
// Failing results always carry at least one detail line.
func (r Result) Detail() string {
	if len(r.Details) == 0 {
		return ""
	}
	return r.Details[0]
}
