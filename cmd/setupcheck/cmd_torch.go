package main

import (
	"github.com/spf13/cobra"

	"github.com/m101tools/setupcheck/pkg/torchcheck"
)

var (
	torchInterpreter string
	torchConstraint  string
	torchRequireCUDA bool
)

var torchCmd = &cobra.Command{
	Use:   "torch",
	Short: "Check the PyTorch installation and CUDA availability",
	Args:  cobra.NoArgs,
	RunE:  runTorchCheck,
}

func init() {
	torchCmd.Flags().StringVar(&torchInterpreter, "interpreter", "", "interpreter binary (default: python3, then python)")
	torchCmd.Flags().StringVar(&torchConstraint, "constraint", "", "semver constraint on torch.__version__")
	torchCmd.Flags().BoolVar(&torchRequireCUDA, "require-cuda", false, "fail unless torch reports CUDA available")
	rootCmd.AddCommand(torchCmd)
}

func runTorchCheck(_ *cobra.Command, _ []string) error {
	return runCheck(&torchcheck.Check{
		Interpreter: torchInterpreter,
		Constraint:  torchConstraint,
		RequireCUDA: torchRequireCUDA,
	})
}
