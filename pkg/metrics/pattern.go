package metrics

import (
	"regexp"

	"github.com/augur-dev/augur/pkg/lang"
)

// Pattern-tier approximation. Languages without a grammar, and structured
// files that fail to parse, get keyword-counted metrics from line regexes.

var decisionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bif\b`),
	regexp.MustCompile(`\belse\s+if\b`),
	regexp.MustCompile(`\belif\b`),
	regexp.MustCompile(`\bwhile\b`),
	regexp.MustCompile(`\bfor\b`),
	regexp.MustCompile(`\bswitch\b`),
	regexp.MustCompile(`\bcase\b`),
	regexp.MustCompile(`\bcatch\b`),
	regexp.MustCompile(`\bexcept\b`),
	regexp.MustCompile(`\?.+:`),
	regexp.MustCompile(`&&|\|\|`),
}

// functionPatterns match function declarations per language family.
var functionPatterns = map[lang.Language][]*regexp.Regexp{
	lang.Python: {regexp.MustCompile(`^\s*(?:async\s+)?def\s+\w+`)},
	lang.JavaScript: {
		regexp.MustCompile(`\bfunction\s+\w+`),
		regexp.MustCompile(`\b(?:const|let|var)\s+\w+\s*=\s*(?:async\s*)?\(`),
		regexp.MustCompile(`=>`),
	},
	lang.Go:         {regexp.MustCompile(`^\s*func\s+`)},
	lang.Rust:       {regexp.MustCompile(`^\s*(?:pub\s+)?(?:async\s+)?fn\s+\w+`)},
	lang.Ruby:       {regexp.MustCompile(`^\s*def\s+\w+`)},
	lang.Swift:      {regexp.MustCompile(`\bfunc\s+\w+`)},
	lang.Kotlin:     {regexp.MustCompile(`\bfun\s+\w+`)},
	lang.Scala:      {regexp.MustCompile(`\bdef\s+\w+`)},
	lang.R:          {regexp.MustCompile(`\w+\s*(?:<-|=)\s*function\s*\(`)},
	lang.PowerShell: {regexp.MustCompile(`(?i)^\s*function\s+[\w-]+`)},
	lang.Bash:       {regexp.MustCompile(`^\s*(?:function\s+)?\w+\s*\(\)\s*\{?`)},
	lang.PHP:        {regexp.MustCompile(`\bfunction\s+\w+`)},
}

var classPatterns = map[lang.Language][]*regexp.Regexp{
	lang.Python:     {regexp.MustCompile(`^\s*class\s+\w+`)},
	lang.JavaScript: {regexp.MustCompile(`\bclass\s+\w+`)},
	lang.Ruby:       {regexp.MustCompile(`^\s*(?:class|module)\s+\w+`)},
	lang.Swift:      {regexp.MustCompile(`\b(?:class|struct|enum)\s+\w+`)},
	lang.Kotlin:     {regexp.MustCompile(`\b(?:class|object|interface)\s+\w+`)},
	lang.Scala:      {regexp.MustCompile(`\b(?:class|object|trait)\s+\w+`)},
	lang.PHP:        {regexp.MustCompile(`\b(?:class|interface|trait)\s+\w+`)},
}

// approximate fills function, class and complexity metrics from line regexes.
// Comment-only lines are skipped so commented-out branches do not count.
func approximate(set *Set, lines []string, l lang.Language) {
	family := patternFamily(l)
	fnPats := functionPatterns[family]
	clsPats := classPatterns[family]
	prefixes := lang.CommentPrefixes(l)

	for _, line := range lines {
		if isCommentLine(line, prefixes) {
			continue
		}
		for _, p := range decisionPatterns {
			if p.MatchString(line) {
				set.CyclomaticComplexity++
			}
		}
		for _, p := range fnPats {
			if p.MatchString(line) {
				set.Functions++
				break
			}
		}
		for _, p := range clsPats {
			if p.MatchString(line) {
				set.Classes++
				break
			}
		}
	}
}

// patternFamily folds dialects onto the language whose declaration patterns
// they share.
func patternFamily(l lang.Language) lang.Language {
	switch l {
	case lang.TypeScript, lang.TSX:
		return lang.JavaScript
	default:
		return l
	}
}

func isCommentLine(line string, prefixes []string) bool {
	trimmed := trimLeading(line)
	for _, prefix := range prefixes {
		if len(trimmed) >= len(prefix) && trimmed[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

func trimLeading(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[i:]
}
