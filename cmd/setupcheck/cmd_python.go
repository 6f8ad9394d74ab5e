package main

import (
	"github.com/spf13/cobra"

	"github.com/m101tools/setupcheck/pkg/pycheck"
)

var (
	pythonInterpreter string
	pythonConstraint  string
)

var pythonCmd = &cobra.Command{
	Use:   "python",
	Short: "Check the Python interpreter and its version",
	Args:  cobra.NoArgs,
	RunE:  runPythonCheck,
}

func init() {
	pythonCmd.Flags().StringVar(&pythonInterpreter, "interpreter", "", "interpreter binary (default: python3, then python)")
	pythonCmd.Flags().StringVar(&pythonConstraint, "constraint", "", "semver constraint, e.g. \">=3.10, <3.14\"")
	rootCmd.AddCommand(pythonCmd)
}

func runPythonCheck(_ *cobra.Command, _ []string) error {
	return runCheck(&pycheck.Check{
		Interpreter: pythonInterpreter,
		Constraint:  pythonConstraint,
	})
}
