package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m101tools/setupcheck/pkg/gpucheck"
)

var gpuMinFree string

var gpuCmd = &cobra.Command{
	Use:   "gpu",
	Short: "Check GPU presence and memory via NVML",
	Args:  cobra.NoArgs,
	RunE:  runGPUCheck,
}

func init() {
	gpuCmd.Flags().StringVar(&gpuMinFree, "min-free", "", "minimum free GPU memory on some device, e.g. 4GB")
	rootCmd.AddCommand(gpuCmd)
}

func runGPUCheck(_ *cobra.Command, _ []string) error {
	c := &gpucheck.Check{}

	if gpuMinFree != "" {
		minFree, err := gpucheck.ParseSize(gpuMinFree)
		if err != nil {
			return fmt.Errorf("invalid --min-free: %w", err)
		}
		c.MinFreeMemory = minFree
	}

	return runCheck(c)
}
