package lang

import (
	"bytes"
	"mime"
	"path/filepath"
	"strings"
)

// sniffLen is how much of the content is inspected for null bytes.
const sniffLen = 1024

// IsBinary reports whether content should be treated as binary and excluded
// from analysis. A null byte in the first KiB, or a non-text MIME guess for
// the extension, marks the file binary. Registry extensions are always
// source text; host MIME tables map some of them to media types (.ts to
// video/mp2t), so the MIME guess applies only outside the registry.
func IsBinary(path string, content []byte) bool {
	if Detect(path) == Unsupported {
		if mt := mime.TypeByExtension(filepath.Ext(path)); mt != "" && !isTextMIME(mt) {
			return true
		}
	}

	chunk := content
	if len(chunk) > sniffLen {
		chunk = chunk[:sniffLen]
	}
	return bytes.IndexByte(chunk, 0) >= 0
}

// isTextMIME reports whether a MIME type describes textual content.
func isTextMIME(mt string) bool {
	if strings.HasPrefix(mt, "text/") {
		return true
	}
	// Structured text formats register under application/.
	switch {
	case strings.Contains(mt, "json"),
		strings.Contains(mt, "xml"),
		strings.Contains(mt, "yaml"),
		strings.Contains(mt, "javascript"),
		strings.Contains(mt, "ecmascript"):
		return true
	}
	return false
}

// Analyzable reports whether a file qualifies for analysis: not binary and
// mapped to a known language.
func Analyzable(path string, content []byte) bool {
	if Detect(path) == Unsupported {
		return false
	}
	return !IsBinary(path, content)
}
