package metrics

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/augur-dev/augur/pkg/lang"
	"github.com/augur-dev/augur/pkg/parser"
)

// structured fills function, class and complexity metrics from a parse tree.
// Each function contributes a base complexity of 1 plus one per decision
// point in its body.
func structured(set *Set, result *parser.ParseResult) {
	functions := parser.Functions(result)
	set.Functions = len(functions)
	set.Classes = parser.CountClasses(result)

	for _, fn := range functions {
		set.CyclomaticComplexity++
		if fn.Body != nil {
			set.CyclomaticComplexity += countDecisionPoints(fn.Body, result.Source, result.Language)
		}
	}
}

// countDecisionPoints counts branching constructs for cyclomatic complexity.
// Logical operators count once per operator, so a chain of n boolean operands
// adds n-1.
func countDecisionPoints(node *sitter.Node, source []byte, l lang.Language) int {
	decisionTypes := makeSet(decisionNodeTypes(l))

	count := 0
	parser.Walk(node, func(n *sitter.Node, nodeType string) bool {
		if decisionTypes[nodeType] {
			count++
		}
		if nodeType == "binary_expression" || nodeType == "logical_expression" ||
			nodeType == "boolean_operator" {
			op := operatorOf(n, source)
			if op == "&&" || op == "||" || op == "and" || op == "or" {
				count++
			}
		}
		return true
	})

	return count
}

// makeSet converts a slice to a map for O(1) lookups.
func makeSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

// decisionNodeTypes returns AST node types that represent decision points.
func decisionNodeTypes(l lang.Language) []string {
	common := []string{
		"if_statement",
		"if_expression",
		"while_statement",
		"while_expression",
		"for_statement",
		"for_expression",
		"case_statement",
		"catch_clause",
		"ternary_expression",
		"conditional_expression",
	}

	switch l {
	case lang.Go:
		return append(common, "select_statement", "type_switch_statement", "expression_switch_statement")
	case lang.Rust:
		return append(common, "match_expression", "loop_expression", "if_let_expression")
	case lang.Python:
		return append(common, "elif_clause", "except_clause", "with_statement",
			"for_in_clause", "if_clause")
	case lang.TypeScript, lang.JavaScript, lang.TSX:
		return append(common, "switch_statement", "do_statement")
	case lang.Java, lang.CSharp:
		return append(common, "switch_statement", "switch_expression", "do_statement", "enhanced_for_statement")
	case lang.C, lang.CPP:
		return append(common, "switch_statement", "do_statement")
	case lang.Ruby:
		// Ruby grammars use bare keyword node names.
		return []string{"if", "elsif", "unless", "while", "until", "for", "case", "when", "rescue", "conditional"}
	case lang.PHP:
		return append(common, "switch_statement", "elseif_clause")
	case lang.Bash:
		return append(common, "elif_clause", "case_item")
	default:
		return common
	}
}

// operatorOf extracts the operator token from a binary expression node.
func operatorOf(node *sitter.Node, source []byte) string {
	for i := range int(node.ChildCount()) {
		child := node.Child(i)
		switch child.Type() {
		case "&&", "||", "and", "or":
			return child.Type()
		case "operator":
			return parser.NodeText(child, source)
		}
	}
	return ""
}
