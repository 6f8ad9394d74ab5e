package main

import (
	"github.com/spf13/cobra"

	"github.com/m101tools/setupcheck/pkg/check"
	"github.com/m101tools/setupcheck/pkg/depcheck"
)

var depInterpreter string

var depCmd = &cobra.Command{
	Use:   "dep <module>...",
	Short: "Check that Python modules are importable",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDepCheck,
}

func init() {
	depCmd.Flags().StringVar(&depInterpreter, "interpreter", "", "interpreter binary (default: python3, then python)")
	rootCmd.AddCommand(depCmd)
}

func runDepCheck(_ *cobra.Command, args []string) error {
	checks := make([]check.Checker, 0, len(args))
	for _, module := range args {
		checks = append(checks, &depcheck.Check{
			Module:      module,
			Interpreter: depInterpreter,
		})
	}
	return runChecks(checks...)
}
