package rules

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/augur-dev/augur/pkg/lang"
	"github.com/augur-dev/augur/pkg/models"
)

// Origins for markup findings.
const (
	originYAML            = "yaml_analysis"
	originYAMLSecurity    = "yaml_security_analysis"
	originAnsible         = "ansible_analysis"
	originAnsibleSecurity = "ansible_security_analysis"
)

var (
	markupSecretPattern  = regexp.MustCompile(`(?i)(password|secret|key|token|api_key):\s*["']?[a-zA-Z0-9_\-+=/]{8,}["']?`)
	urlCredentialPattern = regexp.MustCompile(`https?://[^:]+:[^@]+@`)

	ansibleShellPattern    = regexp.MustCompile(`(shell|command):`)
	ansibleSudoPattern     = regexp.MustCompile(`(shell|command):.*sudo`)
	ansibleModePattern     = regexp.MustCompile(`mode:\s*["']?(\d+)["']?`)
	ansibleQuotedVar       = regexp.MustCompile(`:\s*["']\{\{.*\}\}["']`)
	ansibleBareVar         = regexp.MustCompile(`:\s*\{\{.*\}\}`)
	ansibleSecretPattern   = regexp.MustCompile(`(?i)(password|secret|key|token):\s*["']?[a-zA-Z0-9]+["']?`)
	ansibleQuoteFilter     = regexp.MustCompile(`\|\s*quote`)
	yamlErrorLinePattern   = regexp.MustCompile(`line (\d+)`)
	ansibleDeprecatedTable = []struct {
		pattern *regexp.Regexp
		message string
	}{
		{regexp.MustCompile(`\binclude:`), "Use include_tasks or import_tasks instead of include"},
		{regexp.MustCompile(`\bsudo:`), "Use become instead of sudo"},
		{regexp.MustCompile(`\bsudo_user:`), "Use become_user instead of sudo_user"},
		{regexp.MustCompile(`\balways_run:`), "Use check_mode instead of always_run"},
	}
)

// ansibleFilenames are well-known playbook names that mark a file as the
// Ansible sub-dialect regardless of content.
var ansibleFilenames = map[string]bool{
	"playbook.yml": true, "playbook.yaml": true,
	"site.yml": true, "site.yaml": true,
	"main.yml": true, "main.yaml": true,
}

var ansibleKeywords = []string{
	"hosts:", "tasks:", "handlers:", "vars:", "roles:",
	"playbook:", "become:", "gather_facts:", "ansible_",
	"with_items:", "when:", "notify:", "register:",
}

// IsAnsible reports whether a YAML file belongs to the Ansible sub-dialect:
// a well-known filename, or at least three dialect keywords in the content.
func IsAnsible(path string, content string) bool {
	if ansibleFilenames[strings.ToLower(filepath.Base(path))] {
		return true
	}
	hits := 0
	for _, kw := range ansibleKeywords {
		if strings.Contains(content, kw) {
			hits++
		}
	}
	return hits >= 3
}

// analyzeMarkup runs the markup rule set: indentation and whitespace
// hygiene, embedded credentials, and the Ansible checks when the dialect is
// recognized.
func (e *Engine) analyzeMarkup(path string, content []byte, l lang.Language) []models.Issue {
	text := string(content)
	lines := strings.Split(text, "\n")

	var issues []models.Issue
	add := func(issue models.Issue) {
		if e.categories[issue.Category] {
			issues = append(issues, issue)
		}
	}

	isYAML := l == lang.YAML
	isAnsible := isYAML && IsAnsible(path, text)

	for i, line := range lines {
		n := i + 1
		trimmed := strings.TrimSpace(line)

		if markupSecretPattern.MatchString(line) {
			add(markupIssue(models.CategorySecurity, "hardcoded_secret", models.SeverityHigh,
				"Hardcoded secret or credential detected", n, trimmed, originYAMLSecurity))
		}
		if urlCredentialPattern.MatchString(line) {
			add(markupIssue(models.CategorySecurity, "url_with_credentials", models.SeverityHigh,
				"URL contains embedded credentials", n, trimmed, originYAMLSecurity))
		}

		if isYAML {
			issues = e.appendYAMLHygiene(issues, line, n)
		}
		if isAnsible {
			issues = e.appendAnsibleLine(issues, lines, line, text, i)
		}
	}

	if isYAML {
		if issue, bad := yamlStructureIssue(path, content); bad {
			add(issue)
		}
	}
	if isAnsible {
		issues = e.appendAnsibleStructure(issues, text)
	}

	return issues
}

// appendYAMLHygiene checks one line for indentation and whitespace problems.
func (e *Engine) appendYAMLHygiene(issues []models.Issue, line string, n int) []models.Issue {
	add := func(issue models.Issue) []models.Issue {
		if e.categories[issue.Category] {
			return append(issues, issue)
		}
		return issues
	}

	if strings.ContainsRune(line, '\t') {
		issues = add(markupIssue(models.CategoryQuality, "yaml_tabs", models.SeverityMedium,
			"YAML files should use spaces, not tabs for indentation", n, strings.TrimRight(line, " \t"), originYAML))
	}
	if strings.TrimRight(line, " \t") != line && strings.TrimSpace(line) != "" {
		issues = add(markupIssue(models.CategoryQuality, "trailing_whitespace", models.SeverityLow,
			"Remove trailing whitespace", n, strings.TrimRight(line, " \t"), originYAML))
	}
	if strings.TrimSpace(line) != "" && strings.HasPrefix(line, " ") {
		indent := len(line) - len(strings.TrimLeft(line, " "))
		if indent%2 != 0 {
			issues = add(markupIssue(models.CategoryQuality, "inconsistent_indentation", models.SeverityMedium,
				"YAML indentation should be consistent (multiples of 2 spaces)", n, strings.TrimRight(line, " \t"), originYAML))
		}
	}
	return issues
}

// appendAnsibleLine runs the Ansible per-line checks. The index i is 0-based.
func (e *Engine) appendAnsibleLine(issues []models.Issue, lines []string, line, content string, i int) []models.Issue {
	n := i + 1
	trimmed := strings.TrimSpace(line)
	lower := strings.ToLower(line)

	add := func(issue models.Issue) {
		if e.categories[issue.Category] {
			issues = append(issues, issue)
		}
	}

	// Security checks.
	if ansibleShellPattern.MatchString(line) && strings.Contains(line, "{{") {
		for _, unsafe := range []string{"user_input", "ansible_user", "item"} {
			if strings.Contains(lower, unsafe) {
				add(markupIssue(models.CategorySecurity, "ansible_shell_injection", models.SeverityHigh,
					"Potential shell injection via unescaped user input", n, trimmed, originAnsibleSecurity))
				break
			}
		}
	}
	if ansibleSudoPattern.MatchString(line) && !strings.Contains(content, "become:") {
		add(markupIssue(models.CategorySecurity, "ansible_unsafe_sudo", models.SeverityMedium,
			"Use become instead of sudo in shell commands", n, trimmed, originAnsibleSecurity))
	}
	if m := ansibleModePattern.FindStringSubmatch(line); m != nil {
		if mode := m[1]; len(mode) == 3 && strings.HasSuffix(mode, "7") {
			add(markupIssue(models.CategorySecurity, "ansible_world_writable", models.SeverityMedium,
				"File/directory is world-writable, consider restricting permissions", n, trimmed, originAnsibleSecurity))
		}
	}
	if strings.Contains(line, "src:") && strings.Contains(line, "{{") && !ansibleQuoteFilter.MatchString(line) {
		add(markupIssue(models.CategorySecurity, "ansible_unquoted_src", models.SeverityMedium,
			"Use quote filter for dynamic file paths to prevent injection", n, trimmed, originAnsibleSecurity))
	}
	if strings.Contains(line, "debug:") && (strings.Contains(line, "var:") || strings.Contains(line, "msg:")) {
		for _, sensitive := range []string{"password", "secret", "key", "token"} {
			if strings.Contains(lower, sensitive) {
				add(markupIssue(models.CategorySecurity, "ansible_debug_sensitive", models.SeverityMedium,
					"Debug statement might expose sensitive information", n, trimmed, originAnsibleSecurity))
				break
			}
		}
	}
	if hasUserModule(line) && strings.Contains(lower, "password") && !hasNoLogNearby(lines, i) {
		add(markupIssue(models.CategorySecurity, "ansible_missing_no_log", models.SeverityHigh,
			"Tasks with passwords should use no_log: true", n, trimmed, originAnsibleSecurity))
	}

	// Quality checks.
	for _, dep := range ansibleDeprecatedTable {
		if dep.pattern.MatchString(line) {
			add(markupIssue(models.CategoryQuality, "ansible_deprecated_syntax", models.SeverityMedium,
				dep.message, n, trimmed, originAnsible))
		}
	}
	if strings.Contains(line, "{{") && strings.Contains(line, "}}") {
		if ansibleBareVar.MatchString(line) && !ansibleQuotedVar.MatchString(line) {
			add(markupIssue(models.CategoryQuality, "ansible_unquoted_variables", models.SeverityMedium,
				"Variables should be quoted to prevent YAML parsing issues", n, trimmed, originAnsible))
		}
	}
	if ansibleSecretPattern.MatchString(line) {
		add(markupIssue(models.CategorySecurity, "ansible_hardcoded_secret", models.SeverityHigh,
			"Avoid hardcoding secrets, use vault or variables", n, trimmed, originAnsible))
	}

	// Performance checks.
	if ansibleShellPattern.MatchString(line) {
		for _, cmd := range []string{"apt ", "yum ", "pip ", "git clone", "systemctl"} {
			if strings.Contains(lower, cmd) {
				add(markupIssue(models.CategoryPerformance, "ansible_inefficient_module", models.SeverityMedium,
					"Consider using specific Ansible modules instead of shell/command", n, trimmed, originAnsible))
				break
			}
		}
	}
	if strings.Contains(line, "register:") && i < len(lines)-5 && !hasWhenNearby(lines, i) {
		add(markupIssue(models.CategoryPerformance, "ansible_missing_when", models.SeverityLow,
			"Consider adding when conditions to skip unnecessary tasks", n, trimmed, originAnsible))
	}
	if strings.Contains(line, "with_items:") {
		add(markupIssue(models.CategoryPerformance, "ansible_deprecated_loop", models.SeverityMedium,
			"with_items is deprecated, use loop instead", n, trimmed, originAnsible))
	}

	return issues
}

// appendAnsibleStructure runs whole-file checks for the Ansible dialect.
// Structure findings carry line 0 since they apply to the file as a whole.
func (e *Engine) appendAnsibleStructure(issues []models.Issue, content string) []models.Issue {
	if !e.categories[models.CategoryQuality] {
		return issues
	}

	if strings.Contains(content, "hosts:") &&
		!strings.Contains(content, "tasks:") && !strings.Contains(content, "roles:") {
		issues = append(issues, markupIssue(models.CategoryQuality, "ansible_missing_tasks", models.SeverityHigh,
			"Playbook should have either tasks or roles section", 0, "", originAnsible))
	}

	if taskCount := strings.Count(content, "- name:"); taskCount > 50 {
		issues = append(issues, markupIssue(models.CategoryQuality, "ansible_complex_playbook", models.SeverityMedium,
			"Playbook has too many tasks, consider breaking into roles", 0, "", originAnsible))
	}

	if strings.Contains(content, "- name:") &&
		!strings.Contains(content, "description:") && !strings.Contains(content, "# ") {
		issues = append(issues, markupIssue(models.CategoryQuality, "ansible_missing_documentation", models.SeverityLow,
			"Consider adding comments or description for better maintainability", 0, "", originAnsible))
	}

	return issues
}

// yamlStructureIssue validates that the document parses as YAML.
func yamlStructureIssue(path string, content []byte) (models.Issue, bool) {
	var doc any
	err := yaml.Unmarshal(content, &doc)
	if err == nil {
		return models.Issue{}, false
	}

	line := 0
	if m := yamlErrorLinePattern.FindStringSubmatch(err.Error()); m != nil {
		line, _ = strconv.Atoi(m[1])
	}
	return models.Issue{
		Category:    models.CategoryQuality,
		Type:        "yaml_syntax_error",
		Severity:    models.SeverityHigh,
		Description: "File is not valid YAML: " + err.Error(),
		Line:        line,
		Origin:      originYAML,
	}, true
}

func markupIssue(cat models.Category, issueType string, sev models.Severity, desc string, line int, snippet, origin string) models.Issue {
	return models.Issue{
		Category:    cat,
		Type:        issueType,
		Severity:    sev,
		Description: desc,
		Line:        line,
		Snippet:     models.TruncateSnippet(snippet),
		Origin:      origin,
	}
}

func hasUserModule(line string) bool {
	for _, module := range []string{"user:", "mysql_user:", "postgresql_user:"} {
		if strings.Contains(line, module) {
			return true
		}
	}
	return false
}

// hasNoLogNearby looks for no_log in the lines following a task entry.
func hasNoLogNearby(lines []string, i int) bool {
	end := min(i+6, len(lines))
	for _, line := range lines[i:end] {
		if strings.Contains(line, "no_log:") {
			return true
		}
	}
	return false
}

func hasWhenNearby(lines []string, i int) bool {
	end := min(i+6, len(lines))
	for _, line := range lines[i+1 : end] {
		if strings.Contains(line, "when:") {
			return true
		}
	}
	return false
}
