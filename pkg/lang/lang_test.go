package lang

import (
	"bytes"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want Language
	}{
		{"main.go", Go},
		{"script.py", Python},
		{"app.ts", TypeScript},
		{"component.tsx", TSX},
		{"Main.java", Java},
		{"lib.rs", Rust},
		{"style.CSS", CSS},
		{"playbook.yml", YAML},
		{"data.JSON", JSON},
		{"query.sql", SQL},
		{"no_extension", Unsupported},
		{"archive.tar.gz", Unsupported},
		{"README.md", Unsupported},
	}

	for _, tt := range tests {
		if got := Detect(tt.path); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestDetectIsDeterministic(t *testing.T) {
	for range 10 {
		if got := Detect("server.go"); got != Go {
			t.Fatalf("Detect flapped: %v", got)
		}
	}
}

func TestTierOf(t *testing.T) {
	if TierOf(Go) != TierStructured {
		t.Error("go should be structured tier")
	}
	if TierOf(Swift) != TierPattern {
		t.Error("swift should be pattern tier")
	}
	if TierOf(YAML) != TierMarkup {
		t.Error("yaml should be markup tier")
	}
}

func TestRegistrySize(t *testing.T) {
	if n := len(All()); n < 20 {
		t.Errorf("registry has %d languages, want at least 20", n)
	}
}

func TestIsBinary(t *testing.T) {
	if !IsBinary("data.py", append([]byte("abc"), 0)) {
		t.Error("null byte in head should mark binary")
	}
	if IsBinary("main.py", []byte("print('hi')\n")) {
		t.Error("plain text should not be binary")
	}
	if !IsBinary("photo.png", []byte("not really an image")) {
		t.Error("non-text MIME extension should mark binary")
	}

	// Registry extensions override the host MIME table, which may map
	// .ts to video/mp2t.
	if IsBinary("app.ts", []byte("const x = 1;\n")) {
		t.Error("typescript source should never be classified binary")
	}

	// Null byte beyond the sniff window is not seen.
	content := append(bytes.Repeat([]byte("a"), 2048), 0)
	if IsBinary("big.py", content) {
		t.Error("null byte past first KiB should not mark binary")
	}
}

func TestAnalyzable(t *testing.T) {
	if !Analyzable("main.go", []byte("package main\n")) {
		t.Error("go source should be analyzable")
	}
	if Analyzable("main.unknown", []byte("text")) {
		t.Error("unknown extension should not be analyzable")
	}
	if Analyzable("main.go", []byte{0, 1, 2}) {
		t.Error("binary content should not be analyzable")
	}
}

func TestCommentPrefixes(t *testing.T) {
	goPrefixes := CommentPrefixes(Go)
	if len(goPrefixes) == 0 || goPrefixes[0] != "//" {
		t.Errorf("go comment prefixes = %v", goPrefixes)
	}
	pyPrefixes := CommentPrefixes(Python)
	if len(pyPrefixes) != 1 || pyPrefixes[0] != "#" {
		t.Errorf("python comment prefixes = %v", pyPrefixes)
	}
}
