package lints

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	tt "github.com/organisemyprojects/guilint/internal/types"
)

// maxCompactBody is the largest body, in direct statements, that may start
// immediately after the def line without a separating blank line.
const maxCompactBody = 4

// DetectFunctionSpacing requires a blank line between a def header and the
// first body statement when the body has more than four direct statements.
// Statements are counted at their own nesting level only: an if-block is a
// single statement no matter how large its branches are. The check is
// framework-agnostic.
func DetectFunctionSpacing(f *File, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	Inspect(f.Root, func(n *sitter.Node) bool {
		if n.Type() != "function_definition" {
			return true
		}

		body := n.ChildByFieldName("body")
		if body == nil {
			return true
		}

		count, first := directStatements(body)
		if count <= maxCompactBody || first == nil {
			return true
		}

		headerLine := defHeaderLine(n)
		if int(first.StartPoint().Row) > headerLine+1 {
			return true
		}

		name := "<anonymous>"
		if nameNode := n.ChildByFieldName("name"); nameNode != nil {
			name = text(f, nameNode)
		}
		issues = append(issues, tt.Issue{
			Rule:     "function-spacing",
			Category: tt.CategoryFormatting,
			Filename: f.Path,
			Severity: severity,
			Message:  fmt.Sprintf("function %q has %d statements; expected a blank line after the def line", name, count),
			Start:    startPos(f, n),
			End:      endPos(f, first),
		})
		return true
	})

	return issues, nil
}

// directStatements counts a block's immediate statements, skipping comment
// nodes, and returns the first of them.
func directStatements(body *sitter.Node) (int, *sitter.Node) {
	count := 0
	var first *sitter.Node
	for i := 0; i < int(body.NamedChildCount()); i++ {
		stmt := body.NamedChild(i)
		if stmt.Type() == "comment" {
			continue
		}
		if first == nil {
			first = stmt
		}
		count++
	}
	return count, first
}

// defHeaderLine returns the zero-based row of the colon that closes the def
// header, so multiline signatures are measured from their last line.
func defHeaderLine(fn *sitter.Node) int {
	for i := int(fn.ChildCount()) - 1; i >= 0; i-- {
		if fn.Child(i).Type() == ":" {
			return int(fn.Child(i).StartPoint().Row)
		}
	}
	return int(fn.StartPoint().Row)
}
