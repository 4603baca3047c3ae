package rules

import (
	"regexp"

	"github.com/augur-dev/augur/pkg/lang"
	"github.com/augur-dev/augur/pkg/models"
)

var pythonPerformanceRules = []Rule{
	{
		Pattern:     regexp.MustCompile(`(for |while ).*\+=|\+=.*(for |while )`),
		Type:        "string_concatenation_in_loop",
		Category:    models.CategoryPerformance,
		Severity:    models.SeverityMedium,
		Description: "String concatenation in loop (consider using join() or list)",
	},
	{
		Pattern:     regexp.MustCompile(`for\s+\w+\s+in\s+.*:\s*\w+\.append\(`),
		Type:        "list_comprehension_opportunity",
		Category:    models.CategoryPerformance,
		Severity:    models.SeverityLow,
		Description: "Consider using list comprehension for better performance",
	},
}

var jsPerformanceRules = []Rule{
	{
		Pattern:     regexp.MustCompile(`(?:for|while).*(?:document\.getElementById|document\.querySelector)|(?:document\.getElementById|document\.querySelector).*(?:for|while)`),
		Type:        "dom_query_in_loop",
		Category:    models.CategoryPerformance,
		Severity:    models.SeverityMedium,
		Description: "DOM query in loop (cache the result outside loop)",
	},
	{
		Pattern:     regexp.MustCompile(`\.indexOf\(.*\)\s*[><!]=?\s*-?1`),
		Type:        "inefficient_array_search",
		Category:    models.CategoryPerformance,
		Severity:    models.SeverityLow,
		Description: "Consider using .includes() instead of .indexOf() for existence check",
	},
}

// performanceRules returns the performance table for a language.
func performanceRules(l lang.Language) []Rule {
	switch l {
	case lang.Python:
		return pythonPerformanceRules
	case lang.JavaScript, lang.TypeScript, lang.TSX:
		return jsPerformanceRules
	default:
		return nil
	}
}
