package models

import (
	"strings"
	"testing"
)

func TestSeverityWeight(t *testing.T) {
	if SeverityHigh.Weight() <= SeverityMedium.Weight() || SeverityMedium.Weight() <= SeverityLow.Weight() {
		t.Error("severity weights should be strictly ordered")
	}
}

func TestTruncateSnippet(t *testing.T) {
	short := "x = 1"
	if got := TruncateSnippet(short); got != short {
		t.Errorf("short snippet changed: %q", got)
	}

	long := strings.Repeat("a", MaxSnippetLen+50)
	got := TruncateSnippet(long)
	if len(got) > MaxSnippetLen {
		t.Errorf("snippet length %d exceeds %d", len(got), MaxSnippetLen)
	}
}

func TestScoresOverall(t *testing.T) {
	s := Scores{Security: 90, Quality: 60, Performance: 75}
	if got := s.Overall(); got != 75 {
		t.Errorf("Overall = %v, want 75", got)
	}
}

func TestIssuesByCategory(t *testing.T) {
	r := FileResult{Issues: []Issue{
		{Category: CategorySecurity, Type: "a", Severity: SeverityHigh},
		{Category: CategoryQuality, Type: "b", Severity: SeverityLow},
		{Category: CategorySecurity, Type: "c", Severity: SeverityMedium},
	}}

	if got := r.IssuesByCategory(CategorySecurity); len(got) != 2 {
		t.Errorf("security issues = %d, want 2", len(got))
	}
	if got := r.IssuesByCategory(CategoryQuality); len(got) != 1 {
		t.Errorf("quality issues = %d, want 1", len(got))
	}
	if got := r.IssuesByCategory(CategoryPerformance); len(got) != 0 {
		t.Errorf("performance issues = %d, want 0", len(got))
	}
}
