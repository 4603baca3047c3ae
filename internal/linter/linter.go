// Package linter shells out to optional external analyzers and maps their
// structured output into issues. Every failure mode (missing binary,
// timeout, malformed output) degrades silently to zero issues; enrichment
// never blocks or fails the pattern-based scan.
package linter

import (
	"context"
	"os/exec"
	"time"

	"github.com/augur-dev/augur/pkg/lang"
	"github.com/augur-dev/augur/pkg/models"
)

// DefaultTimeout bounds one external tool invocation.
const DefaultTimeout = 30 * time.Second

// ExternalLinter wraps one external analysis tool.
type ExternalLinter interface {
	// Name is the tool binary name.
	Name() string
	// Supports reports whether the tool applies to a language.
	Supports(l lang.Language) bool
	// Run invokes the tool on one file and parses its output.
	Run(ctx context.Context, path string) ([]models.Issue, error)
}

// Runner executes a set of external linters against files.
type Runner struct {
	linters []ExternalLinter
	timeout time.Duration

	// available caches the probe result per tool name.
	available map[string]bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout sets the per-invocation timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithLinters sets the tools to run. Default is Bandit and Yamllint.
func WithLinters(linters ...ExternalLinter) Option {
	return func(r *Runner) {
		r.linters = linters
	}
}

// NewRunner creates a linter runner and probes tool availability once.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		linters: []ExternalLinter{NewBandit(), NewYamllint()},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.available = make(map[string]bool, len(r.linters))
	for _, l := range r.linters {
		_, err := exec.LookPath(l.Name())
		r.available[l.Name()] = err == nil
	}
	return r
}

// Enrich runs every available tool that supports the file's language and
// merges the findings. Tool faults contribute nothing.
func (r *Runner) Enrich(ctx context.Context, path string, l lang.Language) []models.Issue {
	var issues []models.Issue
	for _, linter := range r.linters {
		if !r.available[linter.Name()] || !linter.Supports(l) {
			continue
		}

		runCtx, cancel := context.WithTimeout(ctx, r.timeout)
		found, err := linter.Run(runCtx, path)
		cancel()
		if err != nil {
			continue
		}
		issues = append(issues, found...)
	}
	return issues
}
