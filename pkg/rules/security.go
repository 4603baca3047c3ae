package rules

import (
	"regexp"

	"github.com/augur-dev/augur/pkg/lang"
	"github.com/augur-dev/augur/pkg/models"
)

var pythonSecurityRules = []Rule{
	{
		Pattern:     regexp.MustCompile(`\beval\s*\(`),
		Type:        "dangerous_eval",
		Category:    models.CategorySecurity,
		Severity:    models.SeverityHigh,
		Description: "Use of eval() can lead to code injection",
	},
	{
		Pattern:     regexp.MustCompile(`\bexec\s*\(`),
		Type:        "dangerous_exec",
		Category:    models.CategorySecurity,
		Severity:    models.SeverityHigh,
		Description: "Use of exec() can lead to code injection",
	},
	{
		Pattern:     regexp.MustCompile(`os\.system\s*\(`),
		Type:        "command_injection",
		Category:    models.CategorySecurity,
		Severity:    models.SeverityHigh,
		Description: "Use of os.system() can lead to command injection",
	},
	{
		Pattern:     regexp.MustCompile(`subprocess\.call\s*\([^)]*shell\s*=\s*True`),
		Type:        "shell_injection",
		Category:    models.CategorySecurity,
		Severity:    models.SeverityHigh,
		Description: "subprocess with shell=True can lead to shell injection",
	},
	{
		Pattern:     regexp.MustCompile(`pickle\.loads?\s*\(`),
		Type:        "unsafe_deserialization",
		Category:    models.CategorySecurity,
		Severity:    models.SeverityHigh,
		Description: "Pickle deserialization can execute arbitrary code",
	},
}

var jsSecurityRules = []Rule{
	{
		Pattern:     regexp.MustCompile(`\beval\s*\(`),
		Type:        "dangerous_eval",
		Category:    models.CategorySecurity,
		Severity:    models.SeverityHigh,
		Description: "Use of eval() can lead to code injection",
	},
	{
		Pattern:     regexp.MustCompile(`innerHTML\s*=`),
		Type:        "xss_risk",
		Category:    models.CategorySecurity,
		Severity:    models.SeverityMedium,
		Description: "innerHTML assignment can lead to XSS",
	},
	{
		Pattern:     regexp.MustCompile(`document\.write\s*\(`),
		Type:        "xss_risk",
		Category:    models.CategorySecurity,
		Severity:    models.SeverityMedium,
		Description: "document.write() can lead to XSS",
	},
	{
		Pattern:     regexp.MustCompile(`new\s+Function\s*\(`),
		Type:        "dynamic_function",
		Category:    models.CategorySecurity,
		Severity:    models.SeverityMedium,
		Description: "Dynamic function creation can be dangerous",
	},
}

var sqlSecurityRules = []Rule{
	{
		Pattern:     regexp.MustCompile(`['"].*\+.*['"]`),
		Type:        "sql_injection",
		Category:    models.CategorySecurity,
		Severity:    models.SeverityHigh,
		Description: "Potential SQL injection via string concatenation",
	},
	{
		Pattern:     regexp.MustCompile(`execute\s*\(\s*['"][^'"]*%[^'"]*['"]`),
		Type:        "sql_injection",
		Category:    models.CategorySecurity,
		Severity:    models.SeverityHigh,
		Description: "Potential SQL injection via string formatting",
	},
}

// securityRules returns the security table for a language.
func securityRules(l lang.Language) []Rule {
	switch l {
	case lang.Python:
		return pythonSecurityRules
	case lang.JavaScript, lang.TypeScript, lang.TSX:
		return jsSecurityRules
	case lang.SQL:
		return sqlSecurityRules
	default:
		return nil
	}
}
