package lints

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	tt "github.com/organisemyprojects/guilint/internal/types"
)

// LayoutPlacement is one grid-style geometry call on a previously declared
// self.<name> widget, with explicit coordinates and a stretch setting.
type LayoutPlacement struct {
	Name   string
	Row    string
	Column string
	Sticky string
	node   *sitter.Node
}

// DetectLayoutConflict looks for a status-indicator widget and a progress
// indicator widget placed at the same (row, column) cell with the same
// stickiness or fill setting. Both would occupy the same cell and visually
// overlap. The widgets are matched by bound name, not type, because both
// are commonly declared as generic containers. The check runs regardless of
// the detected framework; the grid geometry pattern is shared.
func DetectLayoutConflict(f *File, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	Inspect(f.Root, func(n *sitter.Node) bool {
		if n.Type() != "class_definition" {
			return true
		}
		body := n.ChildByFieldName("body")
		if body == nil {
			return true
		}

		cells := make(map[string][]LayoutPlacement)
		for _, p := range collectGridPlacements(f, body) {
			key := p.Row + "," + p.Column
			cells[key] = append(cells[key], p)
		}

		for _, group := range cells {
			issues = append(issues, conflictsInCell(f, group, severity)...)
		}
		return true
	})

	return issues, nil
}

func conflictsInCell(f *File, group []LayoutPlacement, severity tt.Severity) []tt.Issue {
	var issues []tt.Issue
	seen := make(map[string]bool)
	for i, status := range group {
		if !isStatusLike(status.Name) {
			continue
		}
		for j, progress := range group {
			if i == j || !isProgressLike(progress.Name) {
				continue
			}
			if status.Sticky != progress.Sticky {
				continue
			}
			// a name can satisfy both heuristics; report each pair once
			key := pairKey(status.Name, progress.Name)
			if seen[key] {
				continue
			}
			seen[key] = true
			later := status
			if progress.node.StartPoint().Row > status.node.StartPoint().Row {
				later = progress
			}
			issues = append(issues, tt.Issue{
				Rule:     "layout-conflict",
				Category: tt.CategoryLayoutConflict,
				Filename: f.Path,
				Severity: severity,
				Message: fmt.Sprintf(
					"widgets %q and %q are placed at the same grid cell (row=%s, column=%s) with identical stretch settings",
					status.Name, progress.Name, later.Row, later.Column,
				),
				Start: startPos(f, later.node),
				End:   endPos(f, later.node),
			})
		}
	}
	return issues
}

func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

// collectGridPlacements gathers grid() calls on self attributes that carry
// explicit row/column keywords and a sticky or fill keyword. Calls missing
// any of those are not placements in the sense of this check. Placements
// belong to their nearest enclosing class, so nested class bodies are left
// for their own visit.
func collectGridPlacements(f *File, classBody *sitter.Node) []LayoutPlacement {
	var placements []LayoutPlacement

	Inspect(classBody, func(n *sitter.Node) bool {
		if n.Type() == "class_definition" {
			return false
		}
		if n.Type() != "call" {
			return true
		}
		receiver, method, ok := attributeCall(f, n)
		if !ok || method != "grid" {
			return true
		}
		name := selfAttributeName(f, receiver)
		if name == "" {
			return true
		}

		kwargs := keywordArguments(f, n)
		row, hasRow := kwargs["row"]
		col, hasCol := kwargs["column"]
		sticky, hasSticky := kwargs["sticky"]
		if !hasSticky {
			sticky, hasSticky = kwargs["fill"]
		}
		if !hasRow || !hasCol || !hasSticky {
			return true
		}

		placements = append(placements, LayoutPlacement{
			Name:   name,
			Row:    row,
			Column: col,
			Sticky: sticky,
			node:   n,
		})
		return true
	})

	return placements
}

func isStatusLike(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "status") || strings.Contains(lower, "label")
}

func isProgressLike(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "progress") || strings.Contains(lower, "bar")
}

// DetectGeometryPreference reports a single advisory when a file places
// widgets with grid() but never uses pack(). The project convention prefers
// pack-based layouts.
func DetectGeometryPreference(f *File, severity tt.Severity) ([]tt.Issue, error) {
	var firstGrid *sitter.Node
	packCalls := 0

	Inspect(f.Root, func(n *sitter.Node) bool {
		if n.Type() != "call" {
			return true
		}
		if _, method, ok := attributeCall(f, n); ok {
			switch method {
			case "grid":
				if firstGrid == nil {
					firstGrid = n
				}
			case "pack":
				packCalls++
			}
		}
		return true
	})

	if firstGrid == nil || packCalls > 0 {
		return nil, nil
	}

	return []tt.Issue{{
		Rule:     "geometry-preference",
		Category: tt.CategoryLayoutConflict,
		Filename: f.Path,
		Severity: severity,
		Message:  "file uses grid() placement only; prefer pack() for this project's layouts",
		Start:    startPos(f, firstGrid),
		End:      endPos(f, firstGrid),
	}}, nil
}
