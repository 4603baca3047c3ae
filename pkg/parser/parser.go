package parser

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/php"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/augur-dev/augur/pkg/lang"
)

// Parser wraps tree-sitter for multi-language parsing.
type Parser struct {
	parser *sitter.Parser
}

// ParseResult contains the parsed AST and metadata.
type ParseResult struct {
	Tree     *sitter.Tree
	Language lang.Language
	Source   []byte
	Path     string
}

// New creates a new parser instance.
func New() *Parser {
	return &Parser{
		parser: sitter.NewParser(),
	}
}

// Parse parses source code with a specified language.
func (p *Parser) Parse(source []byte, l lang.Language, path string) (*ParseResult, error) {
	tsLang, err := grammarFor(l)
	if err != nil {
		return nil, err
	}

	p.parser.SetLanguage(tsLang)
	tree, err := p.parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}

	return &ParseResult{
		Tree:     tree,
		Language: l,
		Source:   source,
		Path:     path,
	}, nil
}

// Close releases parser resources.
func (p *Parser) Close() {
	p.parser.Close()
}

// grammarFor returns the tree-sitter grammar for a classifier language.
func grammarFor(l lang.Language) (*sitter.Language, error) {
	switch l {
	case lang.Go:
		return golang.GetLanguage(), nil
	case lang.Rust:
		return rust.GetLanguage(), nil
	case lang.Python:
		return python.GetLanguage(), nil
	case lang.TypeScript:
		return typescript.GetLanguage(), nil
	case lang.TSX:
		return tsx.GetLanguage(), nil
	case lang.JavaScript:
		return javascript.GetLanguage(), nil
	case lang.Java:
		return java.GetLanguage(), nil
	case lang.C:
		return c.GetLanguage(), nil
	case lang.CPP:
		return cpp.GetLanguage(), nil
	case lang.CSharp:
		return csharp.GetLanguage(), nil
	case lang.Ruby:
		return ruby.GetLanguage(), nil
	case lang.PHP:
		return php.GetLanguage(), nil
	case lang.Bash:
		return bash.GetLanguage(), nil
	default:
		return nil, fmt.Errorf("no grammar for language: %s", l)
	}
}

// HasErrors reports whether the parse tree contains error nodes, meaning the
// source could not be fully parsed.
func (r *ParseResult) HasErrors() bool {
	root := r.Tree.RootNode()
	if root == nil {
		return true
	}
	return root.HasError()
}

// FirstErrorLine returns the 1-based line of the first error node, or 0.
func (r *ParseResult) FirstErrorLine() int {
	var line int
	Walk(r.Tree.RootNode(), func(n *sitter.Node, nodeType string) bool {
		if line > 0 {
			return false
		}
		if nodeType == "ERROR" || n.IsMissing() {
			line = int(n.StartPoint().Row) + 1
			return false
		}
		return true
	})
	return line
}

// Visitor visits AST nodes with the node type pre-cached to avoid repeated
// CGO calls.
type Visitor func(node *sitter.Node, nodeType string) bool

// Walk traverses the AST calling visitor for each node. Returning false from
// the visitor stops descent into that node.
func Walk(node *sitter.Node, visitor Visitor) {
	if node == nil {
		return
	}

	nodeType := node.Type()
	if !visitor(node, nodeType) {
		return
	}

	for i := range int(node.ChildCount()) {
		Walk(node.Child(i), visitor)
	}
}

// NodeText extracts the source text for a node. Returns empty string if the
// node is nil or its byte offsets are out of bounds.
func NodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	start := node.StartByte()
	end := node.EndByte()
	if start > end || end > uint32(len(source)) {
		return ""
	}
	return string(source[start:end])
}

// FunctionNode represents a parsed function definition.
type FunctionNode struct {
	Name      string
	StartLine uint32
	EndLine   uint32
	Body      *sitter.Node
}

// Functions extracts all function definitions from parsed code.
func Functions(result *ParseResult) []FunctionNode {
	funcTypes := functionNodeTypes(result.Language)
	if len(funcTypes) == 0 {
		return nil
	}

	var functions []FunctionNode
	Walk(result.Tree.RootNode(), func(node *sitter.Node, nodeType string) bool {
		for _, ft := range funcTypes {
			if nodeType == ft {
				functions = append(functions, extractFunction(node, result.Source))
				break
			}
		}
		return true
	})

	return functions
}

// CountClasses tallies class/type definition nodes in parsed code.
func CountClasses(result *ParseResult) int {
	classTypes := classNodeTypes(result.Language)
	if len(classTypes) == 0 {
		return 0
	}

	count := 0
	Walk(result.Tree.RootNode(), func(node *sitter.Node, nodeType string) bool {
		for _, ct := range classTypes {
			if nodeType == ct {
				count++
				break
			}
		}
		return true
	})
	return count
}

// functionNodeTypes returns the AST node types for functions in each language.
func functionNodeTypes(l lang.Language) []string {
	switch l {
	case lang.Go:
		return []string{"function_declaration", "method_declaration"}
	case lang.Rust:
		return []string{"function_item"}
	case lang.Python:
		return []string{"function_definition"}
	case lang.TypeScript, lang.JavaScript, lang.TSX:
		return []string{"function_declaration", "function", "arrow_function", "method_definition"}
	case lang.Java:
		return []string{"method_declaration", "constructor_declaration"}
	case lang.C, lang.CPP:
		return []string{"function_definition"}
	case lang.CSharp:
		return []string{"method_declaration", "constructor_declaration"}
	case lang.Ruby:
		return []string{"method", "singleton_method"}
	case lang.PHP:
		return []string{"function_definition", "method_declaration"}
	case lang.Bash:
		return []string{"function_definition"}
	default:
		return nil
	}
}

// classNodeTypes returns the AST node types for classes in each language.
func classNodeTypes(l lang.Language) []string {
	switch l {
	case lang.Go:
		return []string{"type_declaration"}
	case lang.Rust:
		return []string{"struct_item", "impl_item"}
	case lang.Python:
		return []string{"class_definition"}
	case lang.TypeScript, lang.JavaScript, lang.TSX:
		return []string{"class_declaration", "class"}
	case lang.Java:
		return []string{"class_declaration", "interface_declaration"}
	case lang.CPP:
		return []string{"class_specifier", "struct_specifier"}
	case lang.CSharp:
		return []string{"class_declaration", "interface_declaration", "struct_declaration"}
	case lang.Ruby:
		return []string{"class", "module"}
	case lang.PHP:
		return []string{"class_declaration", "interface_declaration", "trait_declaration"}
	default:
		return nil
	}
}

// extractFunction extracts function details from an AST node.
func extractFunction(node *sitter.Node, source []byte) FunctionNode {
	fn := FunctionNode{
		StartLine: node.StartPoint().Row + 1,
		EndLine:   node.EndPoint().Row + 1,
	}

	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		fn.Name = NodeText(nameNode, source)
	} else if declNode := node.ChildByFieldName("declarator"); declNode != nil {
		// C/C++ function names nest inside the declarator.
		if nameNode := declNode.ChildByFieldName("declarator"); nameNode != nil {
			fn.Name = NodeText(nameNode, source)
		}
	}

	fn.Body = node.ChildByFieldName("body")
	if fn.Body == nil {
		fn.Body = node.ChildByFieldName("block")
	}
	if fn.Body == nil {
		// Ruby method bodies use body_statement.
		fn.Body = node.ChildByFieldName("body_statement")
	}

	return fn
}
