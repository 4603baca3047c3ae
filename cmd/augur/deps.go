package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/augur-dev/augur/internal/output"
	"github.com/augur-dev/augur/pkg/deps"
)

var depsCmd = &cobra.Command{
	Use:   "deps [path]",
	Short: "List declared dependencies from manifest files",
	Long: `Scans well-known dependency manifests at the repository root
(requirements.txt, package.json, Pipfile, pyproject.toml, go.mod,
Cargo.toml) and lists the declared dependency names.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDeps,
}

func init() {
	rootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	found := deps.Scan(root)

	formatter, err := newFormatter(cmd, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	table := &output.Table{
		Title:   "Dependencies",
		Headers: []string{"Role", "Count", "Packages"},
		Rows: [][]string{
			{"direct", strconv.Itoa(len(found.Direct)), strings.Join(found.Direct, ", ")},
			{"dev", strconv.Itoa(len(found.Dev)), strings.Join(found.Dev, ", ")},
			{"optional", strconv.Itoa(len(found.Optional)), strings.Join(found.Optional, ", ")},
		},
		Data: found,
	}
	return formatter.Output(table)
}
