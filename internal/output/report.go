package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"

	"github.com/augur-dev/augur/pkg/models"
)

// RepositoryReport renders a repository analysis.
type RepositoryReport struct {
	Analysis *models.RepositoryAnalysis
}

func (r *RepositoryReport) RenderData() any {
	return r.Analysis
}

func (r *RepositoryReport) RenderText(w io.Writer, colored bool) error {
	a := r.Analysis

	title := fmt.Sprintf("Analysis: %s", a.Repository)
	if colored {
		color.New(color.Bold).Fprintln(w, title)
	} else {
		fmt.Fprintln(w, title)
	}
	fmt.Fprintf(w, "Files: %d analyzed of %d discovered", a.AnalyzedFiles, a.TotalFiles)
	if a.CapReached {
		fmt.Fprint(w, " (file cap reached)")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	scores := &Table{
		Headers: []string{"Category", "Score"},
		Rows: [][]string{
			{"Security", formatScore(a.Scores.Security)},
			{"Quality", formatScore(a.Scores.Quality)},
			{"Performance", formatScore(a.Scores.Performance)},
			{"Overall", formatScore(a.Scores.Overall())},
		},
	}
	if err := scores.RenderText(w, colored); err != nil {
		return err
	}

	if len(a.Languages) > 0 {
		langs := &Table{
			Title:   "Languages",
			Headers: []string{"Language", "Files"},
			Rows:    languageRows(a),
		}
		if err := langs.RenderText(w, colored); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "Issues: %d total (high: %d, medium: %d, low: %d)\n",
		a.Summary.TotalIssues,
		a.Summary.BySeverity[models.SeverityHigh],
		a.Summary.BySeverity[models.SeverityMedium],
		a.Summary.BySeverity[models.SeverityLow])

	if a.Summary.RequiresAttention {
		msg := "This repository requires attention."
		if colored {
			color.New(color.FgRed, color.Bold).Fprintln(w, msg)
		} else {
			fmt.Fprintln(w, msg)
		}
	}

	if len(a.Suggestions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Suggestions:")
		for _, s := range a.Suggestions {
			fmt.Fprintf(w, "  [%s] %s\n", s.Priority, s.Description)
		}
	}

	return nil
}

func (r *RepositoryReport) RenderMarkdown(w io.Writer) error {
	a := r.Analysis

	fmt.Fprintf(w, "# Analysis Report: %s\n\n", a.Repository)
	fmt.Fprintf(w, "Analyzed %d of %d files", a.AnalyzedFiles, a.TotalFiles)
	if a.CapReached {
		fmt.Fprint(w, " (file cap reached)")
	}
	fmt.Fprintf(w, " at %s.\n\n", a.AnalyzedAt.Format("2006-01-02 15:04 MST"))

	scores := &Table{
		Title:   "Scores",
		Headers: []string{"Category", "Score"},
		Rows: [][]string{
			{"Security", formatScore(a.Scores.Security)},
			{"Quality", formatScore(a.Scores.Quality)},
			{"Performance", formatScore(a.Scores.Performance)},
			{"Overall", formatScore(a.Scores.Overall())},
		},
	}
	if err := scores.RenderMarkdown(w); err != nil {
		return err
	}

	if len(a.Languages) > 0 {
		langs := &Table{
			Title:   "Languages",
			Headers: []string{"Language", "Files"},
			Rows:    languageRows(a),
		}
		if err := langs.RenderMarkdown(w); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "## Issues\n\n")
	fmt.Fprintf(w, "- Total: %d\n", a.Summary.TotalIssues)
	fmt.Fprintf(w, "- Security: %d, Quality: %d, Performance: %d\n",
		a.Summary.ByCategory[models.CategorySecurity],
		a.Summary.ByCategory[models.CategoryQuality],
		a.Summary.ByCategory[models.CategoryPerformance])
	fmt.Fprintf(w, "- High: %d, Medium: %d, Low: %d\n\n",
		a.Summary.BySeverity[models.SeverityHigh],
		a.Summary.BySeverity[models.SeverityMedium],
		a.Summary.BySeverity[models.SeverityLow])

	if a.Summary.RequiresAttention {
		fmt.Fprintln(w, "**This repository requires attention.**")
		fmt.Fprintln(w)
	}

	if len(a.Suggestions) > 0 {
		fmt.Fprintf(w, "## Suggestions\n\n")
		for _, s := range a.Suggestions {
			fmt.Fprintf(w, "- **%s**: %s\n", s.Priority, s.Description)
		}
		fmt.Fprintln(w)
	}

	return nil
}

// FileReport renders a single file's analysis.
type FileReport struct {
	Result *models.FileResult
}

func (r *FileReport) RenderData() any {
	return r.Result
}

func (r *FileReport) RenderText(w io.Writer, colored bool) error {
	res := r.Result

	title := fmt.Sprintf("%s (%s)", res.Path, res.Language)
	if colored {
		color.New(color.Bold).Fprintln(w, title)
	} else {
		fmt.Fprintln(w, title)
	}
	fmt.Fprintf(w, "Lines: %d  Functions: %d  Classes: %d  Complexity: %d\n",
		res.Metrics.LinesOfCode, res.Metrics.Functions, res.Metrics.Classes,
		res.Metrics.CyclomaticComplexity)
	fmt.Fprintf(w, "Scores: security %s, quality %s, performance %s\n\n",
		formatScore(res.Scores.Security), formatScore(res.Scores.Quality),
		formatScore(res.Scores.Performance))

	if len(res.Issues) > 0 {
		rows := make([][]string, 0, len(res.Issues))
		for _, issue := range res.Issues {
			rows = append(rows, []string{
				strconv.Itoa(issue.Line),
				string(issue.Category),
				string(issue.Severity),
				issue.Type,
				issue.Description,
			})
		}
		issues := &Table{
			Title:   "Issues",
			Headers: []string{"Line", "Category", "Severity", "Type", "Description"},
			Rows:    rows,
		}
		if err := issues.RenderText(w, colored); err != nil {
			return err
		}
	}

	for _, s := range res.Suggestions {
		fmt.Fprintf(w, "  [%s] %s\n", s.Priority, s.Description)
	}

	return nil
}

func (r *FileReport) RenderMarkdown(w io.Writer) error {
	res := r.Result

	fmt.Fprintf(w, "# %s\n\n", res.Path)
	fmt.Fprintf(w, "Language: %s, lines: %d, complexity: %d.\n\n",
		res.Language, res.Metrics.LinesOfCode, res.Metrics.CyclomaticComplexity)
	fmt.Fprintf(w, "Scores: security %s, quality %s, performance %s.\n\n",
		formatScore(res.Scores.Security), formatScore(res.Scores.Quality),
		formatScore(res.Scores.Performance))

	if len(res.Issues) > 0 {
		rows := make([][]string, 0, len(res.Issues))
		for _, issue := range res.Issues {
			rows = append(rows, []string{
				strconv.Itoa(issue.Line),
				string(issue.Category),
				string(issue.Severity),
				issue.Type,
				issue.Description,
			})
		}
		issues := &Table{
			Title:   "Issues",
			Headers: []string{"Line", "Category", "Severity", "Type", "Description"},
			Rows:    rows,
		}
		if err := issues.RenderMarkdown(w); err != nil {
			return err
		}
	}

	return nil
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 1, 64)
}

// languageRows returns the histogram sorted by count descending, name
// ascending on ties.
func languageRows(a *models.RepositoryAnalysis) [][]string {
	type pair struct {
		lang  string
		count int
	}
	pairs := make([]pair, 0, len(a.Languages))
	for l, c := range a.Languages {
		pairs = append(pairs, pair{string(l), c})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		return pairs[i].lang < pairs[j].lang
	})

	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{p.lang, strconv.Itoa(p.count)})
	}
	return rows
}
