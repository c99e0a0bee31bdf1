package lints

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	tt "github.com/organisemyprojects/guilint/internal/types"
)

// Module names that identify each widget framework family. The Qt family
// covers the three common Python bindings, all treated as one framework.
var (
	tkinterModules = map[string]bool{
		"tkinter": true,
		"Tkinter": true,
	}
	qtModules = map[string]bool{
		"PyQt5":   true,
		"PyQt6":   true,
		"PySide6": true,
	}
)

// DetectFramework classifies the file by scanning its import statements in
// source order. The first import whose target module belongs to a known
// family wins; later imports never change the classification, even in files
// that mix both families.
func DetectFramework(f *File) tt.Framework {
	result := tt.FrameworkNone

	Inspect(f.Root, func(n *sitter.Node) bool {
		if result != tt.FrameworkNone {
			return false
		}
		switch n.Type() {
		case "import_statement":
			for _, module := range importedModules(f, n) {
				if fw := frameworkOf(module); fw != tt.FrameworkNone {
					result = fw
					return false
				}
			}
		case "import_from_statement":
			if module, ok := fromImportModule(f, n); ok {
				if fw := frameworkOf(module); fw != tt.FrameworkNone {
					result = fw
					return false
				}
			}
		}
		return true
	})

	return result
}

func frameworkOf(module string) tt.Framework {
	root := module
	if i := strings.Index(module, "."); i >= 0 {
		root = module[:i]
	}
	switch {
	case tkinterModules[root]:
		return tt.FrameworkTkinter
	case qtModules[root]:
		return tt.FrameworkQt
	default:
		return tt.FrameworkNone
	}
}

// importedModules returns the module targets of an `import a, b as c`
// statement.
func importedModules(f *File, n *sitter.Node) []string {
	var modules []string
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "dotted_name":
			modules = append(modules, text(f, child))
		case "aliased_import":
			if name := child.ChildByFieldName("name"); name != nil {
				modules = append(modules, text(f, name))
			}
		}
	}
	return modules
}

// fromImportModule returns the module a `from X import ...` statement
// targets. Relative imports report ok=false; they never name a framework.
func fromImportModule(f *File, n *sitter.Node) (string, bool) {
	module := n.ChildByFieldName("module_name")
	if module == nil || module.Type() != "dotted_name" {
		return "", false
	}
	return text(f, module), true
}

// BuildAliasMap maps local names introduced by `from X import Y [as Z]`
// statements to their canonical names. Rule-table lookups always go through
// this map, never through raw source tokens. Wildcard imports are skipped;
// names they introduce cannot be traced and are treated as unknown.
func BuildAliasMap(f *File) map[string]string {
	aliases := make(map[string]string)

	Inspect(f.Root, func(n *sitter.Node) bool {
		if n.Type() != "import_from_statement" {
			return true
		}
		sawImport := false
		for i := 0; i < int(n.ChildCount()); i++ {
			child := n.Child(i)
			switch child.Type() {
			case "import":
				sawImport = true
			case "dotted_name", "identifier":
				if sawImport {
					name := text(f, child)
					aliases[name] = canonicalName(name)
				}
			case "aliased_import":
				target := child.ChildByFieldName("name")
				alias := child.ChildByFieldName("alias")
				if target != nil && alias != nil {
					aliases[text(f, alias)] = canonicalName(text(f, target))
				}
			}
		}
		return true
	})

	return aliases
}

// canonicalName strips any qualifying module path from an imported name.
func canonicalName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// ResolveConstructor resolves the callee of a widget instantiation to its
// canonical type name. Bare identifiers go through the alias map; dotted
// callees like `ttk.Button` resolve to their final attribute. Anything else
// is unresolvable and returns "".
func ResolveConstructor(f *File, callee *sitter.Node) string {
	if callee == nil {
		return ""
	}
	switch callee.Type() {
	case "identifier":
		name := text(f, callee)
		if canonical, ok := f.Aliases[name]; ok {
			return canonical
		}
		return name
	case "attribute":
		if attr := callee.ChildByFieldName("attribute"); attr != nil {
			return text(f, attr)
		}
	}
	return ""
}
