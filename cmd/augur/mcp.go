package main

import (
	"github.com/spf13/cobra"

	"github.com/augur-dev/augur/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as an MCP server over stdio",
	Long: `Starts a Model Context Protocol server exposing the analyzer as
tools (analyze_repository, analyze_file, security_scan, list_languages)
for use by MCP clients.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	return mcpserver.NewServer(version).Run(cmd.Context())
}
