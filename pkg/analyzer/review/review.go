// Package review orchestrates the full analysis pipeline: discovery,
// classification, metrics, rule matching, scoring, suggestions and the
// repository-level fold.
package review

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/augur-dev/augur/internal/cache"
	"github.com/augur-dev/augur/internal/fileproc"
	"github.com/augur-dev/augur/internal/linter"
	"github.com/augur-dev/augur/internal/scanner"
	"github.com/augur-dev/augur/pkg/config"
	"github.com/augur-dev/augur/pkg/deps"
	"github.com/augur-dev/augur/pkg/lang"
	"github.com/augur-dev/augur/pkg/metrics"
	"github.com/augur-dev/augur/pkg/models"
	"github.com/augur-dev/augur/pkg/rules"
	"github.com/augur-dev/augur/pkg/scoring"
	"github.com/augur-dev/augur/pkg/suggest"
)

// attentionSecurityIssues is the security issue count above which a
// repository is flagged for attention.
const attentionSecurityIssues = 5

// Analyzer runs file and repository analyses.
type Analyzer struct {
	cfg     *config.Config
	engine  *rules.Engine
	linters *linter.Runner
	cache   *cache.Cache
	scope   string

	onProgress fileproc.ProgressFunc
	onError    fileproc.ErrorFunc
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithConfig sets the configuration. Default is config.DefaultConfig.
func WithConfig(cfg *config.Config) Option {
	return func(a *Analyzer) {
		a.cfg = cfg
	}
}

// WithProgress sets a callback invoked after each file completes.
func WithProgress(fn fileproc.ProgressFunc) Option {
	return func(a *Analyzer) {
		a.onProgress = fn
	}
}

// WithOnFileError sets a callback for per-file faults. Faulted files are
// omitted from results; the repository scan continues.
func WithOnFileError(fn fileproc.ErrorFunc) Option {
	return func(a *Analyzer) {
		a.onError = fn
	}
}

// WithLinterRunner injects the external tool runner. Default follows the
// config tools.enabled flag.
func WithLinterRunner(r *linter.Runner) Option {
	return func(a *Analyzer) {
		a.linters = r
	}
}

// WithCache injects a result cache.
func WithCache(c *cache.Cache) Option {
	return func(a *Analyzer) {
		a.cache = c
	}
}

// New creates an analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	if a.cfg == nil {
		a.cfg = config.DefaultConfig()
	}

	var cats []models.Category
	if a.cfg.Analysis.Security {
		cats = append(cats, models.CategorySecurity)
	}
	if a.cfg.Analysis.Quality {
		cats = append(cats, models.CategoryQuality)
	}
	if a.cfg.Analysis.Performance {
		cats = append(cats, models.CategoryPerformance)
	}
	a.engine = rules.New(rules.WithCategories(cats...))
	a.scope = cacheScope(cats)

	if a.linters == nil && a.cfg.Tools.Enabled {
		a.linters = linter.NewRunner(
			linter.WithTimeout(time.Duration(a.cfg.Tools.TimeoutSeconds) * time.Second),
		)
	}
	return a
}

// AnalyzeFile analyzes a single file on disk.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*models.FileResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	calc := metrics.NewCalculator()
	defer calc.Close()

	return a.analyzeContent(ctx, calc, path, content)
}

// analyzeContent runs the per-file pipeline on already loaded content.
func (a *Analyzer) analyzeContent(ctx context.Context, calc *metrics.Calculator, path string, content []byte) (*models.FileResult, error) {
	l := lang.Detect(path)
	if l == lang.Unsupported {
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}
	if lang.IsBinary(path, content) {
		return nil, fmt.Errorf("binary file: %s", path)
	}

	if a.cache != nil {
		if cached, ok := a.cache.GetResult(path, metrics.HashBytes(content), a.scope); ok {
			return cached, nil
		}
	}

	set, syntaxErr := calc.Compute(content, l)

	issues := a.engine.Analyze(path, content, l)
	if syntaxErr != nil && a.engine.Enabled(models.CategoryQuality) {
		issues = append(issues, models.Issue{
			Category:    models.CategoryQuality,
			Type:        "syntax_error",
			Severity:    models.SeverityHigh,
			Description: "File could not be parsed; metrics are approximate",
			Line:        syntaxErr.Line,
			Origin:      "structured_analysis",
		})
	}

	if a.linters != nil {
		issues = append(issues, a.linters.Enrich(ctx, path, l)...)
	}

	result := &models.FileResult{
		Path:        path,
		Language:    l,
		Metrics:     set,
		Issues:      issues,
		Suggestions: suggest.ForFile(issues, set, l),
		Scores:      scoring.ForFile(issues, set),
		AnalyzedAt:  time.Now().UTC(),
	}

	if a.cache != nil {
		_ = a.cache.SetResult(path, set.FileHash, a.scope, result)
	}
	return result, nil
}

// cacheScope encodes the enabled categories so a result cached under one
// configuration is never served under another.
func cacheScope(cats []models.Category) string {
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, "+")
}

// Analyze runs the repository-level analysis rooted at root. Per-file
// faults are reported via the error callback and never abort the scan; only
// a nonexistent root is fatal.
func (a *Analyzer) Analyze(ctx context.Context, root, repoName string) (*models.RepositoryAnalysis, error) {
	discovered, err := scanner.New(a.cfg).Scan(root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	analysis := &models.RepositoryAnalysis{
		Repository: repoName,
		TotalFiles: len(discovered),
		Languages:  make(map[lang.Language]int),
		AnalyzedAt: time.Now().UTC(),
	}

	candidates, _ := scanner.FilterBySize(discovered, a.cfg.Analysis.MaxFileSize)
	analyzable := a.filterAnalyzable(candidates)

	capLimit := a.cfg.Analysis.MaxFiles
	if capLimit > 0 && len(analyzable) > capLimit {
		analyzable = analyzable[:capLimit]
		analysis.CapReached = true
	}

	results := fileproc.MapFiles(ctx, analyzable, func(calc *metrics.Calculator, path string) (models.FileResult, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			return models.FileResult{}, err
		}
		r, err := a.analyzeContent(ctx, calc, path, content)
		if err != nil {
			return models.FileResult{}, err
		}
		return *r, nil
	}, a.onProgress, a.onError)

	a.fold(analysis, results)
	analysis.Dependencies = deps.Scan(root)
	return analysis, nil
}

// filterAnalyzable keeps files that map to a known language and are not
// binary. The binary sniff reads only the head of each file.
func (a *Analyzer) filterAnalyzable(files []string) []string {
	out := make([]string, 0, len(files))
	for _, path := range files {
		if lang.Detect(path) == lang.Unsupported {
			continue
		}
		head, err := readHead(path, 1024)
		if err != nil {
			continue
		}
		if lang.IsBinary(path, head) {
			continue
		}
		out = append(out, path)
	}
	return out
}

// readHead reads up to n bytes from the start of a file.
func readHead(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := f.Read(buf)
	if read == 0 && err != nil {
		// An empty file reads zero bytes with io.EOF and is not binary.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return buf[:read], nil
}

// fold merges per-file results into the repository analysis. All operations
// are commutative and associative, so fold order does not affect output.
func (a *Analyzer) fold(analysis *models.RepositoryAnalysis, results []models.FileResult) {
	analysis.Files = results
	analysis.AnalyzedFiles = len(results)
	analysis.Summary.ByCategory = make(map[models.Category]int)
	analysis.Summary.BySeverity = make(map[models.Severity]int)
	analysis.Summary.MostCommonLanguage = lang.Unsupported

	if len(results) == 0 {
		return
	}

	var sums models.Scores
	for _, r := range results {
		analysis.Languages[r.Language]++
		sums.Security += r.Scores.Security
		sums.Quality += r.Scores.Quality
		sums.Performance += r.Scores.Performance

		for _, issue := range r.Issues {
			analysis.Summary.TotalIssues++
			analysis.Summary.ByCategory[issue.Category]++
			analysis.Summary.BySeverity[issue.Severity]++
		}
	}

	n := float64(len(results))
	analysis.Scores = models.Scores{
		Security:    sums.Security / n,
		Quality:     sums.Quality / n,
		Performance: sums.Performance / n,
	}

	best := 0
	for l, count := range analysis.Languages {
		if count > best || (count == best && l < analysis.Summary.MostCommonLanguage) {
			best = count
			analysis.Summary.MostCommonLanguage = l
		}
	}

	analysis.Summary.RequiresAttention = analysis.Summary.BySeverity[models.SeverityHigh] > 0 ||
		analysis.Summary.ByCategory[models.CategorySecurity] > attentionSecurityIssues

	analysis.Suggestions = suggest.ForRepository(analysis.Scores, analysis.AnalyzedFiles)
}
