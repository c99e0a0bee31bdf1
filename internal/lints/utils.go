package lints

import (
	"go/token"

	sitter "github.com/smacker/go-tree-sitter"
)

// Inspect walks the tree rooted at n in source order, calling fn for each
// node. If fn returns false the children of that node are skipped.
func Inspect(n *sitter.Node, fn func(*sitter.Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		Inspect(n.Child(i), fn)
	}
}

// startPos converts a node's start point into a token.Position.
func startPos(f *File, n *sitter.Node) token.Position {
	return token.Position{
		Filename: f.Path,
		Line:     int(n.StartPoint().Row) + 1,
		Column:   int(n.StartPoint().Column) + 1,
	}
}

// endPos converts a node's end point into a token.Position.
func endPos(f *File, n *sitter.Node) token.Position {
	return token.Position{
		Filename: f.Path,
		Line:     int(n.EndPoint().Row) + 1,
		Column:   int(n.EndPoint().Column) + 1,
	}
}

func text(f *File, n *sitter.Node) string {
	return n.Content(f.Source)
}

// selfAttributeName returns the bound name of an attribute expression of the
// form `self.<name>`, or "" when the node has any other shape.
func selfAttributeName(f *File, n *sitter.Node) string {
	if n == nil || n.Type() != "attribute" {
		return ""
	}
	obj := n.ChildByFieldName("object")
	attr := n.ChildByFieldName("attribute")
	if obj == nil || attr == nil {
		return ""
	}
	if obj.Type() != "identifier" || text(f, obj) != "self" {
		return ""
	}
	return text(f, attr)
}

// insideClass reports whether n has an enclosing class definition.
func insideClass(n *sitter.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() == "class_definition" {
			return true
		}
	}
	return false
}

// stringLiteralValue returns the text content of a plain string node with
// its quotes stripped. Strings containing interpolation report ok=false
// because their final value is not known statically.
func stringLiteralValue(f *File, n *sitter.Node) (string, bool) {
	if n == nil || n.Type() != "string" {
		return "", false
	}
	var content string
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "interpolation":
			return "", false
		case "string_content":
			content += text(f, child)
		}
	}
	return content, true
}

// keywordArguments extracts the `name=value` pairs of a call's argument
// list as raw source text keyed by argument name.
func keywordArguments(f *File, call *sitter.Node) map[string]string {
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return nil
	}
	kwargs := make(map[string]string)
	for i := 0; i < int(args.NamedChildCount()); i++ {
		arg := args.NamedChild(i)
		if arg.Type() != "keyword_argument" {
			continue
		}
		name := arg.ChildByFieldName("name")
		value := arg.ChildByFieldName("value")
		if name != nil && value != nil {
			kwargs[text(f, name)] = text(f, value)
		}
	}
	return kwargs
}

// attributeCall splits a call of the form `<receiver>.<method>(...)` into
// its receiver node and method name. Calls on bare identifiers report
// ok=false.
func attributeCall(f *File, call *sitter.Node) (receiver *sitter.Node, method string, ok bool) {
	if call == nil || call.Type() != "call" {
		return nil, "", false
	}
	fn := call.ChildByFieldName("function")
	if fn == nil || fn.Type() != "attribute" {
		return nil, "", false
	}
	attr := fn.ChildByFieldName("attribute")
	if attr == nil {
		return nil, "", false
	}
	return fn.ChildByFieldName("object"), text(f, attr), true
}
