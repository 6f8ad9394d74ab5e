package pyexec

import "fmt"

// interpreterCandidates are tried in order when no interpreter is configured.
var interpreterCandidates = []string{"python3", "python"}

// Resolve locates the Python interpreter to use. When name is empty the
// usual binary names are tried in order; otherwise only name is looked up.
// It returns the interpreter name and its absolute path.
func Resolve(r Runner, name string) (interpreter, path string, err error) {
	if name != "" {
		path, err := r.LookPath(name)
		if err != nil {
			return "", "", fmt.Errorf("interpreter %q not found in PATH: %w", name, err)
		}
		return name, path, nil
	}

	for _, candidate := range interpreterCandidates {
		if path, err := r.LookPath(candidate); err == nil {
			return candidate, path, nil
		}
	}
	return "", "", fmt.Errorf("no Python interpreter found in PATH (tried %v)", interpreterCandidates)
}
