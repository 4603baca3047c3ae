// Package rules implements the line-oriented pattern rule engine. Rules are
// organized as language-agnostic credential checks plus per-language tables
// for security, quality and performance. Evaluation is side-effect free and
// tolerates any input without raising.
package rules

import (
	"regexp"
	"strings"

	"github.com/augur-dev/augur/pkg/lang"
	"github.com/augur-dev/augur/pkg/models"
)

// originPattern marks issues produced by the built-in pattern tables.
const originPattern = "pattern_analysis"

// Rule matches one line against one pattern.
type Rule struct {
	Pattern     *regexp.Regexp
	Type        string
	Category    models.Category
	Severity    models.Severity
	Description string

	// Describe, when set, overrides Description with a per-match message.
	Describe func(line string) string
}

// Engine evaluates rule tables over file content.
type Engine struct {
	categories map[models.Category]bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithCategories restricts the engine to the given issue categories.
// Default is all categories.
func WithCategories(cats ...models.Category) Option {
	return func(e *Engine) {
		e.categories = make(map[models.Category]bool, len(cats))
		for _, c := range cats {
			e.categories[c] = true
		}
	}
}

// New creates a rule engine.
func New(opts ...Option) *Engine {
	e := &Engine{categories: map[models.Category]bool{
		models.CategorySecurity:    true,
		models.CategoryQuality:     true,
		models.CategoryPerformance: true,
	}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enabled reports whether a category is being scanned.
func (e *Engine) Enabled(c models.Category) bool {
	return e.categories[c]
}

// Analyze returns all issues found in content. Each enabled rule is checked
// against every line independently; multiple rules may fire on one line.
// Markup languages use their own rule set.
func (e *Engine) Analyze(path string, content []byte, l lang.Language) []models.Issue {
	if lang.TierOf(l) == lang.TierMarkup {
		return e.analyzeMarkup(path, content, l)
	}

	lines := strings.Split(string(content), "\n")

	rules := credentialRules
	rules = append(rules, securityRules(l)...)
	rules = append(rules, qualityRules(l)...)
	rules = append(rules, performanceRules(l)...)

	var issues []models.Issue
	for i, line := range lines {
		for _, r := range rules {
			if !e.categories[r.Category] {
				continue
			}
			if !r.Pattern.MatchString(line) {
				continue
			}
			issues = append(issues, newIssue(r, i+1, line))
		}
	}
	return issues
}

// newIssue builds an issue from a fired rule. Line numbers are 1-based.
func newIssue(r Rule, line int, text string) models.Issue {
	desc := r.Description
	if r.Describe != nil {
		desc = r.Describe(text)
	}
	return models.Issue{
		Category:    r.Category,
		Type:        r.Type,
		Severity:    r.Severity,
		Description: desc,
		Line:        line,
		Snippet:     models.TruncateSnippet(strings.TrimSpace(text)),
		Origin:      originPattern,
	}
}
