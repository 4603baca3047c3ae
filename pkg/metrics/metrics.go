// Package metrics computes per-file size, structure and complexity metrics.
// A Metric Set is a pure function of (content, language); the calculator
// holds only a reusable parser and never touches external state.
package metrics

import (
	"encoding/hex"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/augur-dev/augur/pkg/lang"
	"github.com/augur-dev/augur/pkg/parser"
)

// Set holds the metrics computed for a single file.
type Set struct {
	LinesOfCode          int    `json:"lines_of_code"`
	BlankLines           int    `json:"blank_lines"`
	CommentLines         int    `json:"comment_lines"`
	Functions            int    `json:"functions"`
	Classes              int    `json:"classes"`
	CyclomaticComplexity int    `json:"cyclomatic_complexity"`
	FileSize             int64  `json:"file_size"`
	FileHash             string `json:"file_hash"`
}

// SyntaxError reports that structured parsing failed and the complexity
// metrics were approximated instead.
type SyntaxError struct {
	Line int
}

// Calculator computes Metric Sets, reusing one parser across files.
type Calculator struct {
	parser *parser.Parser
}

// NewCalculator creates a metric calculator.
func NewCalculator() *Calculator {
	return &Calculator{parser: parser.New()}
}

// Close releases parser resources.
func (c *Calculator) Close() {
	c.parser.Close()
}

// Compute returns the Metric Set for content in the given language. The
// returned SyntaxError is non-nil when a structured-tier language failed to
// parse; metrics are still complete via the pattern approximation.
func (c *Calculator) Compute(content []byte, l lang.Language) (Set, *SyntaxError) {
	set := Set{
		FileSize: int64(len(content)),
		FileHash: HashBytes(content),
	}

	lines := strings.Split(string(content), "\n")
	set.LinesOfCode = len(lines)

	prefixes := lang.CommentPrefixes(l)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			set.BlankLines++
			continue
		}
		for _, prefix := range prefixes {
			if strings.HasPrefix(trimmed, prefix) {
				set.CommentLines++
				break
			}
		}
	}

	if lang.TierOf(l) != lang.TierStructured {
		approximate(&set, lines, l)
		return set, nil
	}

	result, err := c.parser.Parse(content, l, "")
	if err != nil {
		approximate(&set, lines, l)
		return set, &SyntaxError{Line: 0}
	}

	if result.HasErrors() {
		approximate(&set, lines, l)
		return set, &SyntaxError{Line: result.FirstErrorLine()}
	}

	structured(&set, result)
	return set, nil
}

// HashBytes computes a BLAKE3 content digest as a hex string.
func HashBytes(data []byte) string {
	hash := blake3.Sum256(data)
	return hex.EncodeToString(hash[:])
}
