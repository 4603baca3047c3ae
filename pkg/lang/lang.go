package lang

import (
	"path/filepath"
	"strings"
)

// Language identifies a language in the classifier registry.
type Language string

// String implements fmt.Stringer.
func (l Language) String() string {
	return string(l)
}

const (
	Go          Language = "go"
	Rust        Language = "rust"
	Python      Language = "python"
	JavaScript  Language = "javascript"
	TypeScript  Language = "typescript"
	TSX         Language = "tsx"
	Java        Language = "java"
	C           Language = "c"
	CPP         Language = "cpp"
	CSharp      Language = "csharp"
	Ruby        Language = "ruby"
	PHP         Language = "php"
	Swift       Language = "swift"
	Kotlin      Language = "kotlin"
	Scala       Language = "scala"
	R           Language = "r"
	SQL         Language = "sql"
	Bash        Language = "bash"
	PowerShell  Language = "powershell"
	YAML        Language = "yaml"
	JSON        Language = "json"
	XML         Language = "xml"
	HTML        Language = "html"
	CSS         Language = "css"
	SCSS        Language = "scss"
	Less        Language = "less"
	Unsupported Language = "unsupported"
)

// Tier describes the analysis capability a language supports.
type Tier int

const (
	// TierPattern languages are analyzed with line-level regular expressions only.
	TierPattern Tier = iota
	// TierStructured languages have a parse-tree facility for precise metrics.
	TierStructured
	// TierMarkup languages use the markup/configuration rule set.
	TierMarkup
)

// entry describes one registry language.
type entry struct {
	lang           Language
	tier           Tier
	commentPrefix  []string
	blockCloseOnly string // continuation prefix inside block comments, if any
}

// extensions maps a lowercase file extension to its registry entry.
var extensions = map[string]entry{
	".go":    {Go, TierStructured, []string{"//", "/*"}, "*"},
	".rs":    {Rust, TierStructured, []string{"//", "/*"}, "*"},
	".py":    {Python, TierStructured, []string{"#"}, ""},
	".pyw":   {Python, TierStructured, []string{"#"}, ""},
	".pyi":   {Python, TierStructured, []string{"#"}, ""},
	".js":    {JavaScript, TierStructured, []string{"//", "/*"}, "*"},
	".mjs":   {JavaScript, TierStructured, []string{"//", "/*"}, "*"},
	".cjs":   {JavaScript, TierStructured, []string{"//", "/*"}, "*"},
	".jsx":   {TSX, TierStructured, []string{"//", "/*"}, "*"},
	".ts":    {TypeScript, TierStructured, []string{"//", "/*"}, "*"},
	".tsx":   {TSX, TierStructured, []string{"//", "/*"}, "*"},
	".java":  {Java, TierStructured, []string{"//", "/*"}, "*"},
	".c":     {C, TierStructured, []string{"//", "/*"}, "*"},
	".h":     {C, TierStructured, []string{"//", "/*"}, "*"},
	".cpp":   {CPP, TierStructured, []string{"//", "/*"}, "*"},
	".cc":    {CPP, TierStructured, []string{"//", "/*"}, "*"},
	".cxx":   {CPP, TierStructured, []string{"//", "/*"}, "*"},
	".hpp":   {CPP, TierStructured, []string{"//", "/*"}, "*"},
	".hxx":   {CPP, TierStructured, []string{"//", "/*"}, "*"},
	".cs":    {CSharp, TierStructured, []string{"//", "/*"}, "*"},
	".rb":    {Ruby, TierStructured, []string{"#"}, ""},
	".php":   {PHP, TierStructured, []string{"//", "/*", "#"}, "*"},
	".swift": {Swift, TierPattern, []string{"//", "/*"}, "*"},
	".kt":    {Kotlin, TierPattern, []string{"//", "/*"}, "*"},
	".scala": {Scala, TierPattern, []string{"//", "/*"}, "*"},
	".r":     {R, TierPattern, []string{"#"}, ""},
	".sql":   {SQL, TierPattern, []string{"--", "/*"}, "*"},
	".sh":    {Bash, TierStructured, []string{"#"}, ""},
	".bash":  {Bash, TierStructured, []string{"#"}, ""},
	".ps1":   {PowerShell, TierPattern, []string{"#"}, ""},
	".yml":   {YAML, TierMarkup, []string{"#"}, ""},
	".yaml":  {YAML, TierMarkup, []string{"#"}, ""},
	".json":  {JSON, TierMarkup, nil, ""},
	".xml":   {XML, TierMarkup, []string{"<!--"}, ""},
	".html":  {HTML, TierMarkup, []string{"<!--"}, ""},
	".htm":   {HTML, TierMarkup, []string{"<!--"}, ""},
	".css":   {CSS, TierMarkup, []string{"/*"}, "*"},
	".scss":  {SCSS, TierMarkup, []string{"//", "/*"}, "*"},
	".less":  {Less, TierMarkup, []string{"//", "/*"}, "*"},
}

// Detect maps a file path to a registry language by its extension.
// It is a total function: unknown extensions return Unsupported.
func Detect(path string) Language {
	ext := strings.ToLower(filepath.Ext(path))
	if e, ok := extensions[ext]; ok {
		return e.lang
	}
	return Unsupported
}

// TierOf returns the analysis tier for a language.
func TierOf(l Language) Tier {
	for _, e := range extensions {
		if e.lang == l {
			return e.tier
		}
	}
	return TierPattern
}

// CommentPrefixes returns the line-comment prefixes used to count comment
// lines for a language. Unknown languages fall back to the common pair.
func CommentPrefixes(l Language) []string {
	for _, e := range extensions {
		if e.lang == l {
			if e.commentPrefix == nil {
				return nil
			}
			prefixes := e.commentPrefix
			if e.blockCloseOnly != "" {
				prefixes = append(append([]string{}, prefixes...), e.blockCloseOnly)
			}
			return prefixes
		}
	}
	return []string{"#", "//"}
}

// All returns every language in the registry, deduplicated.
func All() []Language {
	seen := make(map[Language]bool, len(extensions))
	var langs []Language
	for _, e := range extensions {
		if !seen[e.lang] {
			seen[e.lang] = true
			langs = append(langs, e.lang)
		}
	}
	return langs
}
