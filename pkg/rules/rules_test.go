package rules

import (
	"reflect"
	"testing"

	"github.com/augur-dev/augur/pkg/lang"
	"github.com/augur-dev/augur/pkg/models"
)

func TestCredentialAssignment(t *testing.T) {
	engine := New()
	issues := engine.Analyze("config.py", []byte(`password = "secret123"`), lang.Python)

	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %+v", len(issues), issues)
	}
	issue := issues[0]
	if issue.Type != "hardcoded_password" {
		t.Errorf("Type = %q, want hardcoded_password", issue.Type)
	}
	if issue.Category != models.CategorySecurity {
		t.Errorf("Category = %q", issue.Category)
	}
	if issue.Severity != models.SeverityHigh {
		t.Errorf("Severity = %q, want high", issue.Severity)
	}
	if issue.Line != 1 {
		t.Errorf("Line = %d, want 1", issue.Line)
	}
}

func TestCredentialTooShort(t *testing.T) {
	engine := New()
	issues := engine.Analyze("config.py", []byte(`password = "short"`), lang.Python)
	if len(issues) != 0 {
		t.Errorf("a literal under 8 chars should not fire: %+v", issues)
	}
}

func TestMultipleRulesSameLine(t *testing.T) {
	engine := New()
	// var usage and console statement on one line.
	src := []byte(`var logger = console.log;`)
	issues := engine.Analyze("app.js", src, lang.JavaScript)

	types := make(map[string]bool)
	for _, issue := range issues {
		types[issue.Type] = true
	}
	if !types["var_usage"] || !types["console_statement"] {
		t.Errorf("expected both rules to fire, got %v", types)
	}
}

func TestPythonSecurityRules(t *testing.T) {
	engine := New()
	src := []byte("import os\nos.system(cmd)\nresult = eval(expr)\n")
	issues := engine.Analyze("run.py", src, lang.Python)

	types := make(map[string]int)
	for _, issue := range issues {
		types[issue.Type] = issue.Line
	}
	if types["command_injection"] != 2 {
		t.Errorf("command_injection at line %d, want 2", types["command_injection"])
	}
	if types["dangerous_eval"] != 3 {
		t.Errorf("dangerous_eval at line %d, want 3", types["dangerous_eval"])
	}
}

func TestJavaEmptyCatch(t *testing.T) {
	engine := New()
	src := []byte("try { run(); } catch (Exception e) {}\n")
	issues := engine.Analyze("Main.java", src, lang.Java)

	found := false
	for _, issue := range issues {
		if issue.Type == "empty_catch" && issue.Severity == models.SeverityHigh {
			found = true
		}
	}
	if !found {
		t.Errorf("empty_catch not reported: %+v", issues)
	}
}

func TestCategoryToggle(t *testing.T) {
	engine := New(WithCategories(models.CategoryQuality))
	src := []byte(`password = "secret123"` + "\n" + `var x = 1;`)
	issues := engine.Analyze("app.js", src, lang.JavaScript)

	for _, issue := range issues {
		if issue.Category != models.CategoryQuality {
			t.Errorf("disabled category leaked: %+v", issue)
		}
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	engine := New()
	src := []byte("var a = 1;\nconsole.log(a);\nif (a == 1) {}\n")

	first := engine.Analyze("app.js", src, lang.JavaScript)
	for range 5 {
		next := engine.Analyze("app.js", src, lang.JavaScript)
		if !reflect.DeepEqual(first, next) {
			t.Fatal("issue lists differ between identical runs")
		}
	}
}

func TestSnippetTruncated(t *testing.T) {
	engine := New()
	long := make([]byte, 0, 600)
	long = append(long, []byte(`password = "`)...)
	for range 500 {
		long = append(long, 'x')
	}
	long = append(long, '"')

	issues := engine.Analyze("cfg.py", long, lang.Python)
	if len(issues) == 0 {
		t.Fatal("expected an issue")
	}
	if len(issues[0].Snippet) > models.MaxSnippetLen {
		t.Errorf("snippet length %d exceeds cap", len(issues[0].Snippet))
	}
}

func TestPerformanceRules(t *testing.T) {
	engine := New()
	src := []byte("for item in items: result += str(item)\n")
	issues := engine.Analyze("slow.py", src, lang.Python)

	found := false
	for _, issue := range issues {
		if issue.Type == "string_concatenation_in_loop" {
			found = true
		}
	}
	if !found {
		t.Errorf("string_concatenation_in_loop not reported: %+v", issues)
	}
}
