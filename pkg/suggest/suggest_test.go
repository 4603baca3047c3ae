package suggest

import (
	"testing"

	"github.com/augur-dev/augur/pkg/lang"
	"github.com/augur-dev/augur/pkg/metrics"
	"github.com/augur-dev/augur/pkg/models"
)

func issueOfType(t string) models.Issue {
	return models.Issue{Category: models.CategorySecurity, Type: t, Severity: models.SeverityHigh, Line: 1}
}

func TestForFileSecrets(t *testing.T) {
	issues := []models.Issue{issueOfType("hardcoded_password")}
	got := ForFile(issues, metrics.Set{}, lang.Python)

	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1: %+v", len(got), got)
	}
	if got[0].Type != "security" || got[0].Priority != models.PriorityHigh {
		t.Errorf("unexpected suggestion: %+v", got[0])
	}
}

func TestForFileSecretsDeduplicated(t *testing.T) {
	issues := []models.Issue{
		issueOfType("hardcoded_password"),
		issueOfType("hardcoded_api_key"),
		issueOfType("hardcoded_secret"),
	}
	got := ForFile(issues, metrics.Set{}, lang.Python)
	if len(got) != 1 {
		t.Errorf("secret findings should collapse into one suggestion, got %d", len(got))
	}
}

func TestForFileComplexity(t *testing.T) {
	got := ForFile(nil, metrics.Set{CyclomaticComplexity: 16}, lang.Go)
	if len(got) != 1 || got[0].Type != "refactoring" {
		t.Fatalf("got %+v, want one refactoring suggestion", got)
	}
	if got[0].Priority != models.PriorityMedium {
		t.Errorf("Priority = %q, want medium", got[0].Priority)
	}

	// At the threshold exactly, no suggestion.
	if got := ForFile(nil, metrics.Set{CyclomaticComplexity: 15}, lang.Go); len(got) != 0 {
		t.Errorf("complexity 15 should not suggest, got %+v", got)
	}
}

func TestForFileVarUsage(t *testing.T) {
	issues := []models.Issue{{Category: models.CategoryQuality, Type: "var_usage", Severity: models.SeverityMedium, Line: 1}}

	got := ForFile(issues, metrics.Set{}, lang.JavaScript)
	if len(got) != 1 || got[0].Type != "modernization" {
		t.Fatalf("got %+v, want modernization suggestion", got)
	}
	if got[0].Category != "modern_syntax" {
		t.Errorf("Category = %q, want modern_syntax", got[0].Category)
	}

	// Same issue type under a non-JS language does not apply.
	if got := ForFile(issues, metrics.Set{}, lang.Python); len(got) != 0 {
		t.Errorf("var_usage for python should not suggest, got %+v", got)
	}
}

func TestForRepository(t *testing.T) {
	got := ForRepository(models.Scores{Security: 65, Quality: 55, Performance: 90}, 250)
	if len(got) != 3 {
		t.Fatalf("got %d suggestions, want 3: %+v", len(got), got)
	}

	types := make(map[string]bool)
	for _, s := range got {
		types[s.Type] = true
	}
	if !types["process"] || !types["architecture"] {
		t.Errorf("missing expected suggestion types: %v", types)
	}
}

func TestForRepositoryHealthy(t *testing.T) {
	got := ForRepository(models.Scores{Security: 95, Quality: 90, Performance: 100}, 50)
	if len(got) != 0 {
		t.Errorf("healthy repository should have no suggestions, got %+v", got)
	}
}
