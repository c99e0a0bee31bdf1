package lints

import (
	"regexp"

	tt "github.com/organisemyprojects/guilint/internal/types"
)

// NamingStyle is the casing convention a framework expects for widget names.
type NamingStyle int

const (
	StylePrefixedCamelCase NamingStyle = iota
	StyleSnakeCase
)

func (s NamingStyle) String() string {
	if s == StyleSnakeCase {
		return "SNAKE_CASE"
	}
	return "PREFIXED_CAMEL_CASE"
}

// WidgetRule binds a widget family to the pattern its bound names must
// match and a human-readable description of that pattern.
type WidgetRule struct {
	Family   string
	Pattern  *regexp.Regexp
	Expected string
}

// RuleTable is the active rule set for one framework. Tables are built once
// at package init, never mutated, and safe to share across concurrent runs.
type RuleTable struct {
	Style   NamingStyle
	Widgets map[string]WidgetRule
}

var snakeCasePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)

// Naming conventions that apply regardless of the detected framework.
// Handlers and constants follow language-level conventions, not widget
// library ones.
var (
	HandlerPattern  = regexp.MustCompile(`^on[A-Z]\w+`)
	ConstantPattern = regexp.MustCompile(`^[A-Z_]+$`)
	ClassPattern    = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
)

// Class names allowed to bypass the class naming rule, by exact name or by
// pattern.
var (
	ClassNameExceptions = map[string]bool{
		"iCloudSyncFrame": true,
	}
	ClassNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^iCloud[A-Z]\w*`),
	}
)

func prefixedRule(family, prefix string) WidgetRule {
	return WidgetRule{
		Family:   family,
		Pattern:  regexp.MustCompile(`^` + prefix + `[A-Z]\w+`),
		Expected: "'" + prefix + "' prefix followed by CamelCase",
	}
}

func snakeRule(family string) WidgetRule {
	return WidgetRule{
		Family:   family,
		Pattern:  snakeCasePattern,
		Expected: "snake_case",
	}
}

var tkinterTable = &RuleTable{
	Style: StylePrefixedCamelCase,
	Widgets: map[string]WidgetRule{
		"Button":      prefixedRule("button", "btn"),
		"Entry":       prefixedRule("entry", "entry"),
		"Label":       prefixedRule("label", "lbl"),
		"Frame":       prefixedRule("frame", "frm"),
		"Text":        prefixedRule("text", "txt"),
		"Listbox":     prefixedRule("listbox", "lst"),
		"Checkbutton": prefixedRule("checkbutton", "chk"),
		"Radiobutton": prefixedRule("radiobutton", "rdo"),
		"Combobox":    prefixedRule("combobox", "cmb"),
	},
}

var qtTable = &RuleTable{
	Style: StyleSnakeCase,
	Widgets: map[string]WidgetRule{
		"QPushButton":  snakeRule("button"),
		"QLabel":       snakeRule("label"),
		"QLineEdit":    snakeRule("entry"),
		"QFrame":       snakeRule("frame"),
		"QTextEdit":    snakeRule("text"),
		"QListWidget":  snakeRule("list"),
		"QCheckBox":    snakeRule("checkbox"),
		"QRadioButton": snakeRule("radio"),
		"QComboBox":    snakeRule("combobox"),
	},
}

// TableFor returns the widget rule table for a framework. Files classified
// as NONE have no table; widget naming checks are suppressed for them.
func TableFor(fw tt.Framework) (*RuleTable, bool) {
	switch fw {
	case tt.FrameworkTkinter:
		return tkinterTable, true
	case tt.FrameworkQt:
		return qtTable, true
	default:
		return nil, false
	}
}
