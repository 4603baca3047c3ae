package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/augur-dev/augur/pkg/lang"
	"github.com/augur-dev/augur/pkg/models"
)

const maxLineLength = 120

var pythonQualityRules = []Rule{
	{
		Pattern:  regexp.MustCompile(`^.{121,}$`),
		Type:     "long_line",
		Category: models.CategoryQuality,
		Severity: models.SeverityLow,
		Describe: func(line string) string {
			return fmt.Sprintf("Line length %d exceeds %d characters", len(line), maxLineLength)
		},
	},
	{
		// A def whose parameter list holds eight or more comma-separated entries.
		Pattern:  regexp.MustCompile(`^\s*(?:async\s+)?def\s+\w+\s*\((?:[^()]*,){7,}[^()]*\)`),
		Type:     "too_many_arguments",
		Category: models.CategoryQuality,
		Severity: models.SeverityMedium,
		Describe: func(line string) string {
			return fmt.Sprintf("Function has %d arguments (max recommended: 7)", countArguments(line))
		},
	},
}

var jsQualityRules = []Rule{
	{
		Pattern:     regexp.MustCompile(`console\.(log|debug|info|warn|error)`),
		Type:        "console_statement",
		Category:    models.CategoryQuality,
		Severity:    models.SeverityLow,
		Description: "Console statement found (should be removed in production)",
	},
	{
		Pattern:     regexp.MustCompile(`\bvar\s+\w+`),
		Type:        "var_usage",
		Category:    models.CategoryQuality,
		Severity:    models.SeverityMedium,
		Description: "Use of var (prefer let/const)",
	},
	{
		Pattern:     regexp.MustCompile(`[^=!]==[^=]`),
		Type:        "loose_equality",
		Category:    models.CategoryQuality,
		Severity:    models.SeverityMedium,
		Description: "Use of == (prefer === for strict equality)",
	},
}

var javaQualityRules = []Rule{
	{
		Pattern:     regexp.MustCompile(`System\.out\.println`),
		Type:        "system_out_println",
		Category:    models.CategoryQuality,
		Severity:    models.SeverityLow,
		Description: "System.out.println found (use logging instead)",
	},
	{
		Pattern:     regexp.MustCompile(`catch\s*\([^)]+\)\s*\{\s*\}`),
		Type:        "empty_catch",
		Category:    models.CategoryQuality,
		Severity:    models.SeverityHigh,
		Description: "Empty catch block (should handle or log exception)",
	},
}

// qualityRules returns the quality table for a language.
func qualityRules(l lang.Language) []Rule {
	switch l {
	case lang.Python:
		return pythonQualityRules
	case lang.JavaScript, lang.TypeScript, lang.TSX:
		return jsQualityRules
	case lang.Java:
		return javaQualityRules
	default:
		return nil
	}
}

// countArguments counts parameters in a single-line def signature.
func countArguments(line string) int {
	open := strings.IndexByte(line, '(')
	close := strings.LastIndexByte(line, ')')
	if open < 0 || close <= open {
		return 0
	}
	inner := strings.TrimSpace(line[open+1 : close])
	if inner == "" {
		return 0
	}
	return strings.Count(inner, ",") + 1
}
