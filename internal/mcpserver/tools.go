package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/augur-dev/augur/internal/output"
	"github.com/augur-dev/augur/pkg/analyzer/review"
	"github.com/augur-dev/augur/pkg/config"
	"github.com/augur-dev/augur/pkg/lang"
	"github.com/augur-dev/augur/pkg/models"
)

// RepositoryInput selects a directory to analyze.
type RepositoryInput struct {
	Path   string `json:"path" jsonschema:"Directory to analyze."`
	Format string `json:"format,omitempty" jsonschema:"Output format: json (default) or markdown."`
}

// FileInput selects a single file to analyze.
type FileInput struct {
	Path   string `json:"path" jsonschema:"File to analyze."`
	Format string `json:"format,omitempty" jsonschema:"Output format: json (default) or markdown."`
}

// ListLanguagesInput takes no arguments.
type ListLanguagesInput struct{}

func toolResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, nil, nil
}

func toolError(msg string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + msg},
		},
		IsError: true,
	}, nil, nil
}

// renderJSON serializes data as indented JSON.
func renderJSON(data any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// render produces the tool output in the requested format.
func render(r output.Renderable, format string) (string, error) {
	if output.ParseFormat(format) == output.FormatMarkdown {
		var buf bytes.Buffer
		if err := r.RenderMarkdown(&buf); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	return renderJSON(r.RenderData())
}

func handleAnalyzeRepository(ctx context.Context, req *mcp.CallToolRequest, input RepositoryInput) (*mcp.CallToolResult, any, error) {
	if input.Path == "" {
		return toolError("path is required")
	}

	a := review.New(review.WithConfig(config.LoadOrDefault()))
	analysis, err := a.Analyze(ctx, input.Path, filepath.Base(input.Path))
	if err != nil {
		return toolError(err.Error())
	}

	text, err := render(&output.RepositoryReport{Analysis: analysis}, input.Format)
	if err != nil {
		return nil, nil, err
	}
	return toolResult(text)
}

func handleAnalyzeFile(ctx context.Context, req *mcp.CallToolRequest, input FileInput) (*mcp.CallToolResult, any, error) {
	if input.Path == "" {
		return toolError("path is required")
	}

	a := review.New(review.WithConfig(config.LoadOrDefault()))
	result, err := a.AnalyzeFile(ctx, input.Path)
	if err != nil {
		return toolError(err.Error())
	}

	text, err := render(&output.FileReport{Result: result}, input.Format)
	if err != nil {
		return nil, nil, err
	}
	return toolResult(text)
}

func handleSecurityScan(ctx context.Context, req *mcp.CallToolRequest, input RepositoryInput) (*mcp.CallToolResult, any, error) {
	if input.Path == "" {
		return toolError("path is required")
	}

	cfg := config.LoadOrDefault()
	cfg.Analysis.Security = true
	cfg.Analysis.Quality = false
	cfg.Analysis.Performance = false

	a := review.New(review.WithConfig(cfg))
	analysis, err := a.Analyze(ctx, input.Path, filepath.Base(input.Path))
	if err != nil {
		return toolError(err.Error())
	}

	type finding struct {
		Path string `json:"path"`
		models.Issue
	}
	var findings []finding
	for _, f := range analysis.Files {
		for _, issue := range f.Issues {
			if issue.Category == models.CategorySecurity {
				findings = append(findings, finding{Path: f.Path, Issue: issue})
			}
		}
	}

	text, err := renderJSON(struct {
		Repository    string    `json:"repository"`
		SecurityScore float64   `json:"security_score"`
		Findings      []finding `json:"findings"`
	}{analysis.Repository, analysis.Scores.Security, findings})
	if err != nil {
		return nil, nil, err
	}
	return toolResult(text)
}

func handleListLanguages(ctx context.Context, req *mcp.CallToolRequest, input ListLanguagesInput) (*mcp.CallToolResult, any, error) {
	langs := lang.All()
	names := make([]string, 0, len(langs))
	for _, l := range langs {
		names = append(names, string(l))
	}
	sort.Strings(names)

	text, err := renderJSON(struct {
		Languages []string `json:"languages"`
	}{names})
	if err != nil {
		return nil, nil, err
	}
	return toolResult(text)
}
