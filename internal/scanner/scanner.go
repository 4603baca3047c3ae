// Package scanner discovers candidate files under a repository root.
// Exclusions apply during traversal, so the contents of a blocklisted
// directory are never enumerated at all.
package scanner

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/augur-dev/augur/pkg/config"
)

// Scanner finds files in a directory tree.
type Scanner struct {
	config  *config.Config
	matcher gitignore.Matcher
}

// New creates a file scanner.
func New(cfg *config.Config) *Scanner {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Scanner{config: cfg}
}

// loadExcludePatterns combines config exclude patterns with the root
// .gitignore when enabled. Config patterns use gitignore syntax.
func (s *Scanner) loadExcludePatterns(root string) {
	var patterns []gitignore.Pattern

	for _, pattern := range s.config.Exclude.Patterns {
		patterns = append(patterns, gitignore.ParsePattern(pattern, nil))
	}

	if s.config.Exclude.Gitignore {
		patterns = append(patterns, readGitignore(filepath.Join(root, ".gitignore"))...)
	}

	if len(patterns) > 0 {
		s.matcher = gitignore.NewMatcher(patterns)
	}
}

// readGitignore parses one .gitignore file into patterns. A missing or
// unreadable file contributes nothing.
func readGitignore(path string) []gitignore.Pattern {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var patterns []gitignore.Pattern
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return patterns
}

// isExcluded checks if a relative path matches any exclusion pattern.
func (s *Scanner) isExcluded(relPath string, isDir bool) bool {
	if s.matcher == nil {
		return false
	}
	return s.matcher.Match(strings.Split(relPath, string(filepath.Separator)), isDir)
}

// Scan recursively enumerates files under root in deterministic traversal
// order. Blocklisted directory names are pruned so their contents never
// appear in the result.
func (s *Scanner) Scan(root string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	s.loadExcludePatterns(root)

	files := make([]string, 0, 256)
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		relPath, _ := filepath.Rel(root, path)

		if d.IsDir() {
			if path == root {
				return nil
			}
			if s.config.ExcludedDir(d.Name()) || s.isExcluded(relPath, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if s.config.ShouldExclude(relPath) || s.isExcluded(relPath, false) {
			return nil
		}

		files = append(files, path)
		return nil
	})

	return files, walkErr
}

// FilterBySize drops files that exceed maxSize bytes. Returns the filtered
// list and the count skipped. A maxSize of 0 means no limit.
func FilterBySize(files []string, maxSize int64) ([]string, int) {
	if maxSize <= 0 {
		return files, 0
	}

	filtered := make([]string, 0, len(files))
	skipped := 0
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			skipped++
			continue
		}
		if info.Size() > maxSize {
			skipped++
			continue
		}
		filtered = append(filtered, f)
	}
	return filtered, skipped
}
