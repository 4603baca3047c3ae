package linter

import (
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/augur-dev/augur/pkg/lang"
	"github.com/augur-dev/augur/pkg/models"
)

// Bandit runs the bandit security scanner on Python files.
type Bandit struct{}

// NewBandit creates the bandit linter.
func NewBandit() *Bandit {
	return &Bandit{}
}

func (b *Bandit) Name() string { return "bandit" }

func (b *Bandit) Supports(l lang.Language) bool { return l == lang.Python }

// banditReport mirrors bandit's JSON output shape.
type banditReport struct {
	Results []struct {
		TestID     string `json:"test_id"`
		Severity   string `json:"issue_severity"`
		Confidence string `json:"issue_confidence"`
		Text       string `json:"issue_text"`
		LineNumber int    `json:"line_number"`
		Code       string `json:"code"`
	} `json:"results"`
}

// Run invokes bandit with JSON output. Bandit exits nonzero when findings
// exist, so the exit code is ignored as long as output parses.
func (b *Bandit) Run(ctx context.Context, path string) ([]models.Issue, error) {
	cmd := exec.CommandContext(ctx, "bandit", "-f", "json", path)
	out, err := cmd.Output()
	if len(out) == 0 && err != nil {
		return nil, err
	}

	var report banditReport
	if err := json.Unmarshal(out, &report); err != nil {
		return nil, err
	}

	issues := make([]models.Issue, 0, len(report.Results))
	for _, r := range report.Results {
		issues = append(issues, models.Issue{
			Category:    models.CategorySecurity,
			Type:        orDefault(r.TestID, "unknown"),
			Severity:    banditSeverity(r.Severity),
			Description: r.Text,
			Line:        r.LineNumber,
			Snippet:     models.TruncateSnippet(strings.TrimSpace(r.Code)),
			Origin:      "bandit",
			Confidence:  strings.ToLower(orDefault(r.Confidence, "medium")),
		})
	}
	return issues, nil
}

// banditSeverity maps bandit levels onto the standard scale.
func banditSeverity(level string) models.Severity {
	switch strings.ToLower(level) {
	case "high":
		return models.SeverityHigh
	case "low":
		return models.SeverityLow
	default:
		return models.SeverityMedium
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
