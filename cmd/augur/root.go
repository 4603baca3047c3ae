package main

import (
	"github.com/spf13/cobra"

	"github.com/augur-dev/augur/internal/output"
	"github.com/augur-dev/augur/pkg/config"
)

var rootCmd = &cobra.Command{
	Use:   "augur",
	Short: "Multi-language static analysis CLI",
	Long: `Augur scans codebases for security, quality and performance issues,
computes per-file metrics and scores, and suggests remediations.

Supports: Go, Rust, Python, TypeScript, JavaScript, Java, C, C++, C#, Ruby,
PHP, YAML/Ansible and more.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (TOML, YAML, or JSON)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Output format: text, json, markdown")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Write output to file")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Disable result caching")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose output")
}

// loadConfig resolves configuration from the --config flag or standard
// locations, then applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.LoadOrDefault()
	}

	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.Output.Format = format
	}
	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
		cfg.Cache.Enabled = false
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Output.Verbose = true
	}
	return cfg, nil
}

// newFormatter builds the output formatter from config and flags.
func newFormatter(cmd *cobra.Command, cfg *config.Config) (*output.Formatter, error) {
	outFile, _ := cmd.Flags().GetString("output")
	return output.NewFormatter(output.ParseFormat(cfg.Output.Format), outFile, cfg.Output.Color)
}
