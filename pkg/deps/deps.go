// Package deps extracts declared dependency names from well-known manifest
// files. A manifest that cannot be read or parsed simply contributes
// nothing; other manifests are unaffected.
package deps

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml"

	"github.com/augur-dev/augur/pkg/models"
)

// manifestNames are the files Scan looks for at the repository root.
var manifestNames = []string{
	"requirements.txt",
	"requirements-dev.txt",
	"requirements.in",
	"package.json",
	"Pipfile",
	"pyproject.toml",
	"go.mod",
	"Cargo.toml",
}

// Scan parses every known manifest present at root and merges the results,
// deduplicated and sorted for stable output.
func Scan(root string) models.Dependencies {
	var merged models.Dependencies
	for _, name := range manifestNames {
		content, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			continue
		}
		d := Parse(name, content)
		merged.Direct = append(merged.Direct, d.Direct...)
		merged.Dev = append(merged.Dev, d.Dev...)
		merged.Optional = append(merged.Optional, d.Optional...)
	}
	merged.Direct = dedupe(merged.Direct)
	merged.Dev = dedupe(merged.Dev)
	merged.Optional = dedupe(merged.Optional)
	return merged
}

// Parse extracts dependencies from one manifest identified by filename.
func Parse(filename string, content []byte) models.Dependencies {
	switch filepath.Base(filename) {
	case "requirements.txt", "requirements.in":
		return parseRequirements(content, false)
	case "requirements-dev.txt":
		return parseRequirements(content, true)
	case "package.json":
		return parsePackageJSON(content)
	case "Pipfile":
		return parsePipfile(content)
	case "pyproject.toml":
		return parsePyproject(content)
	case "go.mod":
		return parseGoMod(content)
	case "Cargo.toml":
		return parseCargoTOML(content)
	default:
		return models.Dependencies{}
	}
}

var versionSpecSplit = regexp.MustCompile(`[><=!~\[;]`)

func parseRequirements(content []byte, dev bool) models.Dependencies {
	var d models.Dependencies
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		name := strings.TrimSpace(versionSpecSplit.Split(line, 2)[0])
		if name == "" {
			continue
		}
		if dev {
			d.Dev = append(d.Dev, name)
		} else {
			d.Direct = append(d.Direct, name)
		}
	}
	return d
}

func parsePackageJSON(content []byte) models.Dependencies {
	var pkg struct {
		Dependencies         map[string]string `json:"dependencies"`
		DevDependencies      map[string]string `json:"devDependencies"`
		OptionalDependencies map[string]string `json:"optionalDependencies"`
	}
	if err := json.Unmarshal(content, &pkg); err != nil {
		return models.Dependencies{}
	}
	return models.Dependencies{
		Direct:   keys(pkg.Dependencies),
		Dev:      keys(pkg.DevDependencies),
		Optional: keys(pkg.OptionalDependencies),
	}
}

// parsePipfile walks [packages] and [dev-packages] sections line by line.
// Pipfiles are TOML but the section-scan keeps malformed files harmless.
func parsePipfile(content []byte) models.Dependencies {
	var d models.Dependencies
	section := ""
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "[packages]":
			section = "packages"
			continue
		case line == "[dev-packages]":
			section = "dev-packages"
			continue
		case strings.HasPrefix(line, "["):
			section = ""
			continue
		}
		if line == "" || strings.HasPrefix(line, "#") || !strings.Contains(line, "=") {
			continue
		}
		name := strings.Trim(strings.TrimSpace(strings.SplitN(line, "=", 2)[0]), `"'`)
		switch section {
		case "packages":
			d.Direct = append(d.Direct, name)
		case "dev-packages":
			d.Dev = append(d.Dev, name)
		}
	}
	return d
}

func parsePyproject(content []byte) models.Dependencies {
	tree, err := toml.LoadBytes(content)
	if err != nil {
		return models.Dependencies{}
	}

	var d models.Dependencies
	if deps, ok := tree.GetPath([]string{"tool", "poetry", "dependencies"}).(*toml.Tree); ok {
		for _, name := range deps.Keys() {
			if name != "python" {
				d.Direct = append(d.Direct, name)
			}
		}
	}
	if deps, ok := tree.GetPath([]string{"tool", "poetry", "group", "dev", "dependencies"}).(*toml.Tree); ok {
		d.Dev = append(d.Dev, deps.Keys()...)
	}
	return d
}

var goModRequireLine = regexp.MustCompile(`(?m)^\s*(?:require\s+)?([\w.\-/]+\.[\w.\-/]+)\s+v[\w.\-+]+`)

func parseGoMod(content []byte) models.Dependencies {
	var d models.Dependencies
	inBlock := false
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "require ("):
			inBlock = true
			continue
		case inBlock && trimmed == ")":
			inBlock = false
			continue
		}
		if !inBlock && !strings.HasPrefix(trimmed, "require ") {
			continue
		}
		if m := goModRequireLine.FindStringSubmatch(line); m != nil {
			d.Direct = append(d.Direct, m[1])
		}
	}
	return d
}

func parseCargoTOML(content []byte) models.Dependencies {
	tree, err := toml.LoadBytes(content)
	if err != nil {
		return models.Dependencies{}
	}

	var d models.Dependencies
	if deps, ok := tree.Get("dependencies").(*toml.Tree); ok {
		d.Direct = deps.Keys()
	}
	if deps, ok := tree.Get("dev-dependencies").(*toml.Tree); ok {
		d.Dev = deps.Keys()
	}
	return d
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func dedupe(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	sort.Strings(out)
	return out
}
