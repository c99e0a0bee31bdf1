package lints

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	tt "github.com/organisemyprojects/guilint/internal/types"
)

// DetectWidgetNaming checks every `self.<name> = <Constructor>(...)`
// assignment inside a class body against the active framework's rule table.
// Constructors are resolved through the file's import aliases; types absent
// from the table are skipped so user-defined widget subclasses never
// produce false positives.
func DetectWidgetNaming(f *File, severity tt.Severity) ([]tt.Issue, error) {
	table, ok := TableFor(f.Framework)
	if !ok {
		return nil, nil
	}

	var issues []tt.Issue
	Inspect(f.Root, func(n *sitter.Node) bool {
		if n.Type() != "assignment" || !insideClass(n) {
			return true
		}

		name := selfAttributeName(f, n.ChildByFieldName("left"))
		if name == "" {
			return true
		}

		right := n.ChildByFieldName("right")
		if right == nil || right.Type() != "call" {
			return true
		}

		typeName := ResolveConstructor(f, right.ChildByFieldName("function"))
		rule, known := table.Widgets[typeName]
		if !known {
			return true
		}

		if !rule.Pattern.MatchString(strings.TrimPrefix(name, "_")) {
			issues = append(issues, tt.Issue{
				Rule:     "widget-naming",
				Category: tt.CategoryNaming,
				Filename: f.Path,
				Severity: severity,
				Message: fmt.Sprintf(
					"widget name %q does not follow the %s family convention (expected %s)",
					name, rule.Family, rule.Expected,
				),
				Start: startPos(f, n),
				End:   endPos(f, n),
			})
		}
		return true
	})

	return issues, nil
}
