package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "setupcheck",
	Short:   "Sanity checks for Python/ML runtime environments",
	Long:    "Setupcheck verifies a Python ML environment: interpreter and PyTorch versions, GPU presence and memory, environment variables, model artifacts, and declared dependencies.",
	Version: Version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
