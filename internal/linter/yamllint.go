package linter

import (
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/augur-dev/augur/pkg/lang"
	"github.com/augur-dev/augur/pkg/models"
)

// Yamllint runs the yamllint checker on YAML files.
type Yamllint struct{}

// NewYamllint creates the yamllint linter.
func NewYamllint() *Yamllint {
	return &Yamllint{}
}

func (y *Yamllint) Name() string { return "yamllint" }

func (y *Yamllint) Supports(l lang.Language) bool { return l == lang.YAML }

// yamllintFinding mirrors one line of yamllint's parsable JSON output.
type yamllintFinding struct {
	Type  string `json:"type"`
	Level string `json:"level"`
	Desc  string `json:"desc"`
	Line  int    `json:"line"`
	Rule  string `json:"rule"`
}

// Run invokes yamllint with JSON output, one finding per line. Yamllint
// exits nonzero on findings, so stdout is parsed regardless; lines that are
// not JSON are skipped.
func (y *Yamllint) Run(ctx context.Context, path string) ([]models.Issue, error) {
	cmd := exec.CommandContext(ctx, "yamllint", "-f", "json", path)
	out, _ := cmd.Output()
	if len(out) == 0 {
		return nil, nil
	}

	var issues []models.Issue
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line == "" {
			continue
		}
		var finding yamllintFinding
		if err := json.Unmarshal([]byte(line), &finding); err != nil {
			continue
		}
		issues = append(issues, models.Issue{
			Category:    models.CategoryQuality,
			Type:        "yaml_lint_" + orDefault(finding.Type, "unknown"),
			Severity:    yamllintSeverity(finding.Level),
			Description: orDefault(finding.Desc, "YAML lint issue"),
			Line:        finding.Line,
			Origin:      "yamllint",
		})
	}
	return issues, nil
}

// yamllintSeverity maps yamllint levels onto the standard scale.
func yamllintSeverity(level string) models.Severity {
	switch strings.ToLower(level) {
	case "error":
		return models.SeverityHigh
	case "info":
		return models.SeverityLow
	default:
		return models.SeverityMedium
	}
}
