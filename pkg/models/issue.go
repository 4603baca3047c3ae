// Package models defines the data types shared across the analysis engine.
package models

// Category classifies an issue by the concern it affects.
type Category string

const (
	CategorySecurity    Category = "security"
	CategoryQuality     Category = "quality"
	CategoryPerformance Category = "performance"
)

// Categories returns every issue category in report order.
func Categories() []Category {
	return []Category{CategorySecurity, CategoryQuality, CategoryPerformance}
}

// Severity ranks how urgent an issue is.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Weight returns the sort weight for a severity, higher first.
func (s Severity) Weight() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// MaxSnippetLen bounds the code excerpt carried on an issue.
const MaxSnippetLen = 200

// Issue is a single finding in a file. Line is 1-based; 0 means the issue
// applies to the file as a whole.
type Issue struct {
	Category    Category `json:"category"`
	Type        string   `json:"type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Line        int      `json:"line"`
	Snippet     string   `json:"code,omitempty"`
	Origin      string   `json:"tool"`
	Confidence  string   `json:"confidence,omitempty"`
}

// TruncateSnippet bounds a source excerpt to MaxSnippetLen bytes.
func TruncateSnippet(s string) string {
	if len(s) > MaxSnippetLen {
		return s[:MaxSnippetLen]
	}
	return s
}

// Priority ranks a suggestion.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Suggestion is an actionable improvement derived from findings. Category
// here is a free-form grouping (best_practices, maintainability,
// modern_syntax), not an issue Category.
type Suggestion struct {
	Type        string   `json:"type"`
	Priority    Priority `json:"priority"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
}
