package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Analysis.Security || !cfg.Analysis.Quality || !cfg.Analysis.Performance {
		t.Error("all categories should default to enabled")
	}
	if cfg.Analysis.MaxFiles != 100 {
		t.Errorf("MaxFiles = %d, want 100", cfg.Analysis.MaxFiles)
	}
	if cfg.Analysis.MaxFileSize != 1024*1024 {
		t.Errorf("MaxFileSize = %d, want 1MiB", cfg.Analysis.MaxFileSize)
	}
	if cfg.Tools.Enabled {
		t.Error("external tools should default to disabled")
	}
	if !cfg.Cache.Enabled || cfg.Cache.TTL != 24 {
		t.Errorf("cache defaults wrong: %+v", cfg.Cache)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Format = %q, want text", cfg.Output.Format)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "augur.toml")
	content := `[analysis]
max_files = 500
security = false

[output]
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Analysis.MaxFiles != 500 {
		t.Errorf("MaxFiles = %d, want 500", cfg.Analysis.MaxFiles)
	}
	if cfg.Analysis.Security {
		t.Error("security should be overridden to false")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Output.Format)
	}
	// Untouched fields keep their defaults.
	if !cfg.Analysis.Quality {
		t.Error("quality should keep its default")
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "augur.yaml")
	content := "analysis:\n  max_files: 50\ncache:\n  enabled: false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Analysis.MaxFiles != 50 {
		t.Errorf("MaxFiles = %d, want 50", cfg.Analysis.MaxFiles)
	}
	if cfg.Cache.Enabled {
		t.Error("cache should be disabled")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestShouldExclude(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		path string
		want bool
	}{
		{"src/main.go", false},
		{"node_modules/pkg/index.js", true},
		{"src/vendor/lib.go", true},
		{"go.sum", true},
		{"app.min.js", true},
		{"app.js", false},
	}
	for _, tt := range tests {
		if got := cfg.ShouldExclude(tt.path); got != tt.want {
			t.Errorf("ShouldExclude(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestExcludedDir(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.ExcludedDir("node_modules") {
		t.Error("node_modules should be excluded")
	}
	if cfg.ExcludedDir("src") {
		t.Error("src should not be excluded")
	}
}
