package main

import (
	"github.com/spf13/cobra"

	"github.com/m101tools/setupcheck/pkg/modelcheck"
)

var (
	modelEnvVar string
	modelDir    bool
	modelSHA256 string
	modelBLAKE3 string
)

var modelCmd = &cobra.Command{
	Use:   "model [path]",
	Short: "Check that a model artifact exists on disk",
	Long:  "Checks a model artifact. Without a path argument the MODEL_PATH environment variable (or --env-var) names the artifact.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runModelCheck,
}

func init() {
	modelCmd.Flags().StringVar(&modelEnvVar, "env-var", "", "environment variable naming the artifact (default MODEL_PATH)")
	modelCmd.Flags().BoolVar(&modelDir, "dir", false, "expect a directory")
	modelCmd.Flags().StringVar(&modelSHA256, "sha256", "", "expected sha256 hex digest of a file artifact")
	modelCmd.Flags().StringVar(&modelBLAKE3, "blake3", "", "expected blake3 hex digest of a file artifact")
	rootCmd.AddCommand(modelCmd)
}

func runModelCheck(_ *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	return runCheck(&modelcheck.Check{
		Path:      path,
		EnvVar:    modelEnvVar,
		ExpectDir: modelDir,
		SHA256:    modelSHA256,
		BLAKE3:    modelBLAKE3,
	})
}
