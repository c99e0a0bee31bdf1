package nolint

import (
	"go/token"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/organisemyprojects/guilint/internal/lints"
)

const nolintPrefix = "# nolint"

// Manager records nolint comment scopes for one file and answers whether a
// finding at a given position is suppressed.
type Manager struct {
	scopes []nolintScope
}

// nolintScope is a line range where a nolint comment applies. An empty rule
// set suppresses every rule.
type nolintScope struct {
	rules     map[string]struct{}
	startLine int
	endLine   int
}

// ParseComments scans a parsed file for `# nolint` and `# nolint:rule-a,rule-b`
// comments. An inline comment suppresses its own line; a standalone comment
// suppresses itself and the following line.
func ParseComments(f *lints.File) *Manager {
	mgr := &Manager{}

	lints.Inspect(f.Root, func(n *sitter.Node) bool {
		if n.Type() != "comment" {
			return true
		}
		text := n.Content(f.Source)
		if !strings.HasPrefix(text, nolintPrefix) {
			return true
		}

		rest := strings.TrimPrefix(text, nolintPrefix)
		if rest != "" && !strings.HasPrefix(rest, ":") {
			// some other comment that merely starts with the prefix
			return true
		}

		scope := nolintScope{
			rules:     parseRuleNames(strings.TrimPrefix(rest, ":")),
			startLine: int(n.StartPoint().Row) + 1,
			endLine:   int(n.StartPoint().Row) + 1,
		}
		if isStandalone(f, n) {
			scope.endLine++
		}
		mgr.scopes = append(mgr.scopes, scope)
		return true
	})

	return mgr
}

func parseRuleNames(text string) map[string]struct{} {
	rules := make(map[string]struct{})
	for _, rule := range strings.Split(text, ",") {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rules[rule] = struct{}{}
		}
	}
	return rules
}

// isStandalone reports whether only whitespace precedes the comment on its
// line.
func isStandalone(f *lints.File, n *sitter.Node) bool {
	row := int(n.StartPoint().Row)
	col := int(n.StartPoint().Column)
	if row >= len(f.Lines) || col > len(f.Lines[row]) {
		return false
	}
	return strings.TrimSpace(f.Lines[row][:col]) == ""
}

// IsNolint reports whether a finding of ruleName at pos is suppressed.
func (m *Manager) IsNolint(pos token.Position, ruleName string) bool {
	for _, scope := range m.scopes {
		if pos.Line < scope.startLine || pos.Line > scope.endLine {
			continue
		}
		if len(scope.rules) == 0 {
			return true
		}
		if _, ok := scope.rules[ruleName]; ok {
			return true
		}
	}
	return false
}
