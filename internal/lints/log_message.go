package lints

import (
	"fmt"
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"

	tt "github.com/organisemyprojects/guilint/internal/types"
)

// DetectLogMessageFormat enforces the project's log message conventions:
// info and warning messages are lowercase (progress messages marked with an
// ellipsis are exempt), error messages are capitalized sentences. Only
// string literals are checked; dynamic messages are skipped.
func DetectLogMessageFormat(f *File, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	Inspect(f.Root, func(n *sitter.Node) bool {
		if n.Type() != "call" {
			return true
		}
		_, method, ok := attributeCall(f, n)
		if !ok {
			return true
		}
		if method != "info" && method != "warning" && method != "error" {
			return true
		}

		args := n.ChildByFieldName("arguments")
		if args == nil || args.NamedChildCount() == 0 {
			return true
		}
		msg, ok := stringLiteralValue(f, args.NamedChild(0))
		if !ok {
			return true
		}

		switch method {
		case "info", "warning":
			if !pythonIsLower(msg) && !strings.Contains(msg, "...") {
				issues = append(issues, tt.Issue{
					Rule:     "log-message",
					Category: tt.CategoryFormatting,
					Filename: f.Path,
					Severity: severity,
					Message:  fmt.Sprintf("%s message %q should be lowercase", method, msg),
					Start:    startPos(f, n),
					End:      endPos(f, n),
				})
			}
		case "error":
			if msg != pythonCapitalize(msg) {
				issues = append(issues, tt.Issue{
					Rule:     "log-message",
					Category: tt.CategoryFormatting,
					Filename: f.Path,
					Severity: severity,
					Message:  fmt.Sprintf("error message %q should be capitalized", msg),
					Start:    startPos(f, n),
					End:      endPos(f, n),
				})
			}
		}
		return true
	})

	return issues, nil
}

// pythonIsLower mirrors str.islower: true when the string has at least one
// cased character and no uppercase ones.
func pythonIsLower(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			hasCased = true
		}
	}
	return hasCased
}

// pythonCapitalize mirrors str.capitalize: first character uppercased, the
// rest lowercased.
func pythonCapitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	out := string(unicode.ToUpper(runes[0]))
	if len(runes) > 1 {
		out += strings.ToLower(string(runes[1:]))
	}
	return out
}
