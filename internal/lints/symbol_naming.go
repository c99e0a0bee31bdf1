package lints

import (
	"fmt"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	tt "github.com/organisemyprojects/guilint/internal/types"
)

// literal node types that mark a module-level assignment as a constant.
var literalTypes = map[string]bool{
	"string":              true,
	"concatenated_string": true,
	"integer":             true,
	"float":               true,
	"true":                true,
	"false":               true,
	"none":                true,
	"list":                true,
	"tuple":               true,
}

// DetectConstantNaming flags module-level literal assignments whose name is
// not ALL_UPPER_WITH_UNDERSCORES. The convention is language-level, so it
// applies regardless of the detected framework.
func DetectConstantNaming(f *File, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	for i := 0; i < int(f.Root.NamedChildCount()); i++ {
		stmt := f.Root.NamedChild(i)
		if stmt.Type() != "expression_statement" || stmt.NamedChildCount() == 0 {
			continue
		}
		assign := stmt.NamedChild(0)
		if assign.Type() != "assignment" {
			continue
		}

		left := assign.ChildByFieldName("left")
		right := assign.ChildByFieldName("right")
		if left == nil || right == nil || left.Type() != "identifier" {
			continue
		}
		if !literalTypes[right.Type()] {
			continue
		}

		name := text(f, left)
		if !ConstantPattern.MatchString(name) {
			issues = append(issues, tt.Issue{
				Rule:     "constant-naming",
				Category: tt.CategoryNaming,
				Filename: f.Path,
				Severity: severity,
				Message:  fmt.Sprintf("module-level constant %q should be ALL_UPPER_WITH_UNDERSCORES", name),
				Start:    startPos(f, assign),
				End:      endPos(f, assign),
			})
		}
	}

	return issues, nil
}

// DetectClassNaming flags class names that are not CapitalizedCamelCase.
// Names on the exception list or matching an exception pattern are allowed.
func DetectClassNaming(f *File, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	Inspect(f.Root, func(n *sitter.Node) bool {
		if n.Type() != "class_definition" {
			return true
		}
		nameNode := n.ChildByFieldName("name")
		if nameNode == nil {
			return true
		}
		name := text(f, nameNode)

		if ClassNameExceptions[name] {
			return true
		}
		for _, pat := range ClassNamePatterns {
			if pat.MatchString(name) {
				return true
			}
		}

		if !ClassPattern.MatchString(name) {
			issues = append(issues, tt.Issue{
				Rule:     "class-naming",
				Category: tt.CategoryNaming,
				Filename: f.Path,
				Severity: severity,
				Message:  fmt.Sprintf("class name %q should start with an uppercase letter and contain no underscores", name),
				Start:    startPos(f, nameNode),
				End:      endPos(f, nameNode),
			})
		}
		return true
	})

	return issues, nil
}

// DetectHandlerNaming checks methods that are actually wired up as event
// callbacks: `command=self.x` widget options, `.bind(..., self.x)` and
// `.connect(self.x)` calls. Referenced handlers must be named onXxx in every
// framework. Methods never referenced as callbacks are left alone, favoring
// false negatives over false positives.
func DetectHandlerNaming(f *File, severity tt.Severity) ([]tt.Issue, error) {
	methodLines := collectMethodDefinitions(f)
	refs := collectCallbackReferences(f)

	names := make([]string, 0, len(refs))
	for name := range refs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if refs[names[i]].line != refs[names[j]].line {
			return refs[names[i]].line < refs[names[j]].line
		}
		return names[i] < names[j]
	})

	var issues []tt.Issue
	for _, name := range names {
		if HandlerPattern.MatchString(strings.TrimPrefix(name, "_")) {
			continue
		}

		issue := tt.Issue{
			Rule:     "handler-naming",
			Category: tt.CategoryNaming,
			Filename: f.Path,
			Severity: severity,
			Message:  fmt.Sprintf("event handler %q should follow the onXxx naming convention", name),
		}
		if def, ok := methodLines[name]; ok {
			issue.Start = startPos(f, def)
			issue.End = endPos(f, def.ChildByFieldName("name"))
		} else {
			ref := refs[name]
			issue.Start = startPos(f, ref.node)
			issue.End = endPos(f, ref.node)
		}
		issues = append(issues, issue)
	}

	return issues, nil
}

type callbackRef struct {
	node *sitter.Node
	line int
}

func collectMethodDefinitions(f *File) map[string]*sitter.Node {
	methods := make(map[string]*sitter.Node)
	Inspect(f.Root, func(n *sitter.Node) bool {
		if n.Type() != "function_definition" || !insideClass(n) {
			return true
		}
		if name := n.ChildByFieldName("name"); name != nil {
			if _, seen := methods[text(f, name)]; !seen {
				methods[text(f, name)] = n
			}
		}
		return true
	})
	return methods
}

func collectCallbackReferences(f *File) map[string]callbackRef {
	refs := make(map[string]callbackRef)

	record := func(name string, node *sitter.Node) {
		if _, seen := refs[name]; !seen {
			refs[name] = callbackRef{node: node, line: int(node.StartPoint().Row) + 1}
		}
	}

	Inspect(f.Root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "keyword_argument":
			key := n.ChildByFieldName("name")
			value := n.ChildByFieldName("value")
			if key != nil && text(f, key) == "command" {
				if name := selfAttributeName(f, value); name != "" {
					record(name, value)
				}
			}
		case "call":
			_, method, ok := attributeCall(f, n)
			if !ok || (method != "bind" && method != "connect") {
				return true
			}
			args := n.ChildByFieldName("arguments")
			if args == nil {
				return true
			}
			for i := 0; i < int(args.NamedChildCount()); i++ {
				arg := args.NamedChild(i)
				if name := selfAttributeName(f, arg); name != "" {
					record(name, arg)
				}
			}
		}
		return true
	})

	return refs
}
