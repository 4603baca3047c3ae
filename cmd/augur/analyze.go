package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/augur-dev/augur/internal/cache"
	"github.com/augur-dev/augur/internal/output"
	"github.com/augur-dev/augur/internal/progress"
	"github.com/augur-dev/augur/pkg/analyzer/review"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze a repository directory",
	Long: `Analyzes every supported source file under a directory and reports
issues, metrics, scores and suggestions. Defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("name", "", "Repository name for the report (default: directory basename)")
	analyzeCmd.Flags().Int("max-files", 0, "Override the analyzed file cap")
	analyzeCmd.Flags().Bool("tools", false, "Enable external analyzer enrichment")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if maxFiles, _ := cmd.Flags().GetInt("max-files"); maxFiles > 0 {
		cfg.Analysis.MaxFiles = maxFiles
	}
	if tools, _ := cmd.Flags().GetBool("tools"); tools {
		cfg.Tools.Enabled = true
	}

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return err
		}
		name = filepath.Base(abs)
	}

	resultCache, err := cache.New(cfg.Cache.Dir, cfg.Cache.TTL, cfg.Cache.Enabled)
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}

	tracker := progress.NewTracker("Analyzing...", -1)
	opts := []review.Option{
		review.WithConfig(cfg),
		review.WithCache(resultCache),
		review.WithProgress(tracker.Tick),
	}
	if cfg.Output.Verbose {
		opts = append(opts, review.WithOnFileError(func(path string, err error) {
			fmt.Fprintf(os.Stderr, "  skipped %s: %v\n", path, err)
		}))
	}

	a := review.New(opts...)
	analysis, err := a.Analyze(cmd.Context(), root, name)
	if err != nil {
		tracker.FinishError(err)
		return fmt.Errorf("analysis failed: %w", err)
	}
	tracker.FinishSuccess()

	if analysis.TotalFiles == 0 {
		color.Yellow("No files found under %s", root)
	}

	formatter, err := newFormatter(cmd, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	return formatter.Output(&output.RepositoryReport{Analysis: analysis})
}
