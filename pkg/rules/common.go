package rules

import (
	"regexp"

	"github.com/augur-dev/augur/pkg/models"
)

// credentialRules fire on any language. A credential assignment is a known
// key name followed by = and a quoted literal of at least 8 characters.
var credentialRules = []Rule{
	{
		Pattern:     regexp.MustCompile(`(?i)password\s*=\s*['"][^'"]{8,}['"]`),
		Type:        "hardcoded_password",
		Category:    models.CategorySecurity,
		Severity:    models.SeverityHigh,
		Description: "Hardcoded password found",
	},
	{
		Pattern:     regexp.MustCompile(`(?i)api[_-]?key\s*=\s*['"][^'"]{8,}['"]`),
		Type:        "hardcoded_api_key",
		Category:    models.CategorySecurity,
		Severity:    models.SeverityHigh,
		Description: "Hardcoded API key found",
	},
	{
		Pattern:     regexp.MustCompile(`(?i)secret\s*=\s*['"][^'"]{8,}['"]`),
		Type:        "hardcoded_secret",
		Category:    models.CategorySecurity,
		Severity:    models.SeverityHigh,
		Description: "Hardcoded secret found",
	},
	{
		Pattern:     regexp.MustCompile(`(?i)token\s*=\s*['"][^'"]{8,}['"]`),
		Type:        "hardcoded_token",
		Category:    models.CategorySecurity,
		Severity:    models.SeverityMedium,
		Description: "Hardcoded token found",
	},
}
