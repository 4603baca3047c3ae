package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/augur-dev/augur/internal/output"
	"github.com/augur-dev/augur/pkg/analyzer/review"
)

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Analyze a single file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func init() {
	fileCmd.Flags().Bool("tools", false, "Enable external analyzer enrichment")

	rootCmd.AddCommand(fileCmd)
}

func runFile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if tools, _ := cmd.Flags().GetBool("tools"); tools {
		cfg.Tools.Enabled = true
	}

	a := review.New(review.WithConfig(cfg))
	result, err := a.AnalyzeFile(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	formatter, err := newFormatter(cmd, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	return formatter.Output(&output.FileReport{Result: result})
}
