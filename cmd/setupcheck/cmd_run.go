package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/m101tools/setupcheck/pkg/output"
	"github.com/m101tools/setupcheck/pkg/setup"
	"github.com/m101tools/setupcheck/pkg/setupfile"
)

var (
	runConfigFile string
	runJSON       bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run all checks from a .setupcheck.yaml file",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runConfigFile, "file", "", "path to .setupcheck.yaml (default: search up from current directory)")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "write the report as JSON to stdout")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	configPath, err := setupfile.Find(wd, runConfigFile)
	if err != nil {
		return err
	}

	cfg, err := setupfile.Load(configPath)
	if err != nil {
		return err
	}

	checker := setup.New(cfg)
	rep := checker.RunAll()

	if runJSON {
		if err := rep.WriteJSON(cmd.OutOrStdout()); err != nil {
			return err
		}
	} else {
		output.PrintReport(rep)
	}

	if !rep.OK() {
		return ErrCheckFailed
	}
	return nil
}
