package lints

import (
	"fmt"
	"regexp"

	sitter "github.com/smacker/go-tree-sitter"

	tt "github.com/organisemyprojects/guilint/internal/types"
)

var icloudPattern = regexp.MustCompile(`\b[iI][cC]loud\b`)

// DetectMisspelledICloud flags string literals that spell the brand name
// with any casing other than "iCloud".
func DetectMisspelledICloud(f *File, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	Inspect(f.Root, func(n *sitter.Node) bool {
		if n.Type() != "string" {
			return true
		}
		value, ok := stringLiteralValue(f, n)
		if !ok {
			return true
		}
		for _, match := range icloudPattern.FindAllString(value, -1) {
			if match == "iCloud" {
				continue
			}
			issues = append(issues, tt.Issue{
				Rule:     "spelling-icloud",
				Category: tt.CategoryFormatting,
				Filename: f.Path,
				Severity: severity,
				Message:  fmt.Sprintf("%q should be spelled \"iCloud\"", match),
				Start:    startPos(f, n),
				End:      endPos(f, n),
			})
		}
		// skip children so nested strings are not visited twice
		return false
	})

	return issues, nil
}
