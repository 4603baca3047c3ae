// Package suggest derives remediation suggestions from issue-type
// frequencies and metric thresholds.
package suggest

import (
	"github.com/augur-dev/augur/pkg/lang"
	"github.com/augur-dev/augur/pkg/metrics"
	"github.com/augur-dev/augur/pkg/models"
)

const complexityRefactorThreshold = 15

// Repository-level thresholds.
const (
	securityProcessThreshold = 70
	qualityGateThreshold     = 60
	modularizationThreshold  = 200
)

// ForFile returns deduplicated suggestions for one file's findings.
func ForFile(issues []models.Issue, set metrics.Set, l lang.Language) []models.Suggestion {
	types := make(map[string]bool, len(issues))
	for _, issue := range issues {
		types[issue.Type] = true
	}

	var suggestions []models.Suggestion
	seen := make(map[string]bool)
	add := func(s models.Suggestion) {
		key := s.Type + "|" + s.Description
		if !seen[key] {
			seen[key] = true
			suggestions = append(suggestions, s)
		}
	}

	if types["hardcoded_password"] || types["hardcoded_api_key"] ||
		types["hardcoded_secret"] || types["hardcoded_token"] ||
		types["ansible_hardcoded_secret"] {
		add(models.Suggestion{
			Type:        "security",
			Priority:    models.PriorityHigh,
			Description: "Use environment variables or secure configuration files for secrets",
			Category:    "best_practices",
		})
	}

	if set.CyclomaticComplexity > complexityRefactorThreshold {
		add(models.Suggestion{
			Type:        "refactoring",
			Priority:    models.PriorityMedium,
			Description: "Consider breaking down complex functions into smaller, more manageable pieces",
			Category:    "maintainability",
		})
	}

	switch l {
	case lang.Python:
		if types["console_statement"] {
			add(models.Suggestion{
				Type:        "quality",
				Priority:    models.PriorityLow,
				Description: "Replace print statements with proper logging",
				Category:    "best_practices",
			})
		}
	case lang.JavaScript, lang.TypeScript, lang.TSX:
		if types["var_usage"] {
			add(models.Suggestion{
				Type:        "modernization",
				Priority:    models.PriorityMedium,
				Description: "Replace var with let/const for better scoping and immutability",
				Category:    "modern_syntax",
			})
		}
	}

	return suggestions
}

// ForRepository returns repository-level suggestions driven by aggregate
// scores and scale.
func ForRepository(scores models.Scores, analyzedFiles int) []models.Suggestion {
	var suggestions []models.Suggestion

	if scores.Security < securityProcessThreshold {
		suggestions = append(suggestions, models.Suggestion{
			Type:        "process",
			Priority:    models.PriorityHigh,
			Description: "Establish a security review process and address high-severity findings first",
			Category:    "best_practices",
		})
	}
	if scores.Quality < qualityGateThreshold {
		suggestions = append(suggestions, models.Suggestion{
			Type:        "process",
			Priority:    models.PriorityMedium,
			Description: "Add automated quality gates to continuous integration",
			Category:    "maintainability",
		})
	}
	if analyzedFiles > modularizationThreshold {
		suggestions = append(suggestions, models.Suggestion{
			Type:        "architecture",
			Priority:    models.PriorityMedium,
			Description: "Large codebase, consider splitting into smaller modules",
			Category:    "maintainability",
		})
	}

	return suggestions
}
