package scoring

import (
	"testing"

	"github.com/augur-dev/augur/pkg/metrics"
	"github.com/augur-dev/augur/pkg/models"
)

func issue(cat models.Category, sev models.Severity) models.Issue {
	return models.Issue{Category: cat, Type: "x", Severity: sev, Line: 1}
}

func TestSecurityScore(t *testing.T) {
	issues := []models.Issue{issue(models.CategorySecurity, models.SeverityHigh)}
	if got := Security(issues); got != 80 {
		t.Errorf("Security = %v, want 80", got)
	}
}

func TestSecurityIgnoresOtherCategories(t *testing.T) {
	issues := []models.Issue{
		issue(models.CategoryQuality, models.SeverityHigh),
		issue(models.CategoryPerformance, models.SeverityHigh),
	}
	if got := Security(issues); got != 100 {
		t.Errorf("Security = %v, want 100", got)
	}
}

func TestQualityScore(t *testing.T) {
	var issues []models.Issue
	for range 9 {
		issues = append(issues, issue(models.CategoryQuality, models.SeverityMedium))
	}
	set := metrics.Set{LinesOfCode: 10, CyclomaticComplexity: 2}
	if got := Quality(issues, set); got != 28 {
		t.Errorf("Quality = %v, want 28", got)
	}
}

func TestQualityComplexityPenalty(t *testing.T) {
	// No issues: only the complexity charge applies.
	set := metrics.Set{LinesOfCode: 10, CyclomaticComplexity: 15}
	if got := Quality(nil, set); got != 95 {
		t.Errorf("Quality = %v, want 95", got)
	}

	// Charge caps at 20 no matter how high complexity goes.
	set.CyclomaticComplexity = 200
	if got := Quality(nil, set); got != 80 {
		t.Errorf("Quality = %v, want 80", got)
	}
}

func TestQualitySizePenalty(t *testing.T) {
	set := metrics.Set{LinesOfCode: 800, CyclomaticComplexity: 1}
	// (800-500)/100 = 3 points.
	if got := Quality(nil, set); got != 97 {
		t.Errorf("Quality = %v, want 97", got)
	}

	set.LinesOfCode = 5000
	if got := Quality(nil, set); got != 90 {
		t.Errorf("size charge should cap at 10, got %v", got)
	}
}

func TestPerformanceScore(t *testing.T) {
	issues := []models.Issue{
		issue(models.CategoryPerformance, models.SeverityMedium),
		issue(models.CategoryPerformance, models.SeverityLow),
	}
	if got := Performance(issues); got != 83 {
		t.Errorf("Performance = %v, want 83", got)
	}
}

func TestNoIssuesScoresExactly100(t *testing.T) {
	set := metrics.Set{LinesOfCode: 100, CyclomaticComplexity: 5}
	scores := ForFile(nil, set)
	if scores.Security != 100 || scores.Quality != 100 || scores.Performance != 100 {
		t.Errorf("scores = %+v, want all 100", scores)
	}
}

func TestScoreClampsAtZero(t *testing.T) {
	var issues []models.Issue
	for range 20 {
		issues = append(issues, issue(models.CategorySecurity, models.SeverityHigh))
	}
	if got := Security(issues); got != 0 {
		t.Errorf("Security = %v, want 0", got)
	}
}

func TestOverall(t *testing.T) {
	scores := models.Scores{Security: 80, Quality: 60, Performance: 100}
	if got := scores.Overall(); got != 80 {
		t.Errorf("Overall = %v, want 80", got)
	}
}
