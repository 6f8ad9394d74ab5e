package main

import (
	"github.com/spf13/cobra"

	"github.com/m101tools/setupcheck/pkg/check"
	"github.com/m101tools/setupcheck/pkg/envcheck"
)

var (
	envAllowEmpty bool
	envMatch      string
	envExact      string
	envOneOf      []string
	envHideValue  bool
	envMaskValue  bool
)

var envCmd = &cobra.Command{
	Use:   "env <variable>...",
	Short: "Check that environment variables are set",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEnvCheck,
}

var envfileCmd = &cobra.Command{
	Use:   "envfile [path]",
	Short: "Check that a .env file exists and count its entries",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEnvFileCheck,
}

func init() {
	envCmd.Flags().BoolVar(&envAllowEmpty, "allow-empty", false, "pass if defined but empty")
	envCmd.Flags().StringVar(&envMatch, "match", "", "regex pattern to match value")
	envCmd.Flags().StringVar(&envExact, "exact", "", "exact value required")
	envCmd.Flags().StringSliceVar(&envOneOf, "one-of", nil, "value must be one of these (comma-separated)")
	envCmd.Flags().BoolVar(&envHideValue, "hide-value", false, "don't show value in output")
	envCmd.Flags().BoolVar(&envMaskValue, "mask-value", false, "show masked value (first/last 3 chars)")
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(envfileCmd)
}

func runEnvCheck(_ *cobra.Command, args []string) error {
	checks := make([]check.Checker, 0, len(args))
	for _, varName := range args {
		checks = append(checks, &envcheck.Check{
			Name:       varName,
			AllowEmpty: envAllowEmpty,
			Match:      envMatch,
			Exact:      envExact,
			OneOf:      envOneOf,
			HideValue:  envHideValue,
			MaskValue:  envMaskValue,
		})
	}
	return runChecks(checks...)
}

func runEnvFileCheck(_ *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	return runCheck(&envcheck.FileCheck{Path: path})
}
