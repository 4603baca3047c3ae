// Package mcpserver exposes the analysis engine as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server and registers all augur analysis tools.
type Server struct {
	server *mcp.Server
}

// NewServer creates a new MCP server with all augur tools registered.
func NewServer(version string) *Server {
	if version == "" {
		version = "dev"
	}
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "augur",
			Version: version,
		},
		nil,
	)

	s := &Server{server: server}
	s.registerTools()
	return s
}

// Run starts the MCP server over stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// registerTools adds all augur analyzer tools to the server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "analyze_repository",
		Description: "Analyze every source file under a directory for security, " +
			"quality and performance issues, with per-language metrics, " +
			"aggregate scores and remediation suggestions.",
	}, handleAnalyzeRepository)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "analyze_file",
		Description: "Analyze a single source file: metrics, issues, scores " +
			"and suggestions.",
	}, handleAnalyzeFile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "security_scan",
		Description: "Scan a directory for security findings only, reporting " +
			"issues and the aggregate security score.",
	}, handleSecurityScan)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_languages",
		Description: "List the languages the analyzer recognizes.",
	}, handleListLanguages)
}
