package models

import (
	"time"

	"github.com/augur-dev/augur/pkg/lang"
	"github.com/augur-dev/augur/pkg/metrics"
)

// Scores holds the three category scores for a file or repository,
// each in [0,100].
type Scores struct {
	Security    float64 `json:"security"`
	Quality     float64 `json:"quality"`
	Performance float64 `json:"performance"`
}

// Overall returns the mean of the three category scores.
func (s Scores) Overall() float64 {
	return (s.Security + s.Quality + s.Performance) / 3
}

// FileResult is the complete analysis of one file. Constructed once,
// never mutated; re-analysis produces a new instance.
type FileResult struct {
	Path        string        `json:"path"`
	Language    lang.Language `json:"language"`
	Metrics     metrics.Set   `json:"metrics"`
	Issues      []Issue       `json:"issues"`
	Suggestions []Suggestion  `json:"suggestions"`
	Scores      Scores        `json:"scores"`
	AnalyzedAt  time.Time     `json:"analyzed_at"`
}

// IssuesByCategory returns the file's issues in the given category.
func (r *FileResult) IssuesByCategory(c Category) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Category == c {
			out = append(out, issue)
		}
	}
	return out
}

// Dependencies groups declared dependency names by role, deduplicated
// across manifests.
type Dependencies struct {
	Direct   []string `json:"direct"`
	Dev      []string `json:"dev"`
	Optional []string `json:"optional"`
}

// Summary holds repository-wide issue statistics.
type Summary struct {
	TotalIssues        int              `json:"total_issues"`
	ByCategory         map[Category]int `json:"by_category"`
	BySeverity         map[Severity]int `json:"by_severity"`
	MostCommonLanguage lang.Language    `json:"most_common_language"`
	RequiresAttention  bool             `json:"requires_attention"`
}

// RepositoryAnalysis is the aggregate result for a whole repository tree.
// AnalyzedFiles never exceeds TotalFiles; scores are 0 when no files were
// analyzed.
type RepositoryAnalysis struct {
	Repository    string                `json:"repository"`
	TotalFiles    int                   `json:"total_files"`
	AnalyzedFiles int                   `json:"analyzed_files"`
	CapReached    bool                  `json:"cap_reached,omitempty"`
	Languages     map[lang.Language]int `json:"languages"`
	Scores        Scores                `json:"scores"`
	Dependencies  Dependencies          `json:"dependencies"`
	Files         []FileResult          `json:"files"`
	Suggestions   []Suggestion          `json:"suggestions"`
	Summary       Summary               `json:"summary"`
	AnalyzedAt    time.Time             `json:"analyzed_at"`
}
