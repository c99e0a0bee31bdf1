package internal

import (
	"github.com/organisemyprojects/guilint/internal/lints"
	tt "github.com/organisemyprojects/guilint/internal/types"
)

// LintRule defines the interface for all lint rules.
type LintRule interface {
	// Check runs the rule against a parsed file and returns its findings.
	Check(file *lints.File) ([]tt.Issue, error)

	// Name returns the name of the lint rule.
	Name() string

	Severity() tt.Severity
	SetSeverity(tt.Severity)
}

type baseRule struct {
	severity tt.Severity
}

func (r *baseRule) Severity() tt.Severity     { return r.severity }
func (r *baseRule) SetSeverity(s tt.Severity) { r.severity = s }

type WidgetNamingRule struct{ baseRule }

func NewWidgetNamingRule() LintRule {
	return &WidgetNamingRule{baseRule{severity: tt.SeverityError}}
}

func (r *WidgetNamingRule) Check(file *lints.File) ([]tt.Issue, error) {
	return lints.DetectWidgetNaming(file, r.severity)
}

func (r *WidgetNamingRule) Name() string { return "widget-naming" }

type HandlerNamingRule struct{ baseRule }

func NewHandlerNamingRule() LintRule {
	return &HandlerNamingRule{baseRule{severity: tt.SeverityWarning}}
}

func (r *HandlerNamingRule) Check(file *lints.File) ([]tt.Issue, error) {
	return lints.DetectHandlerNaming(file, r.severity)
}

func (r *HandlerNamingRule) Name() string { return "handler-naming" }

type ConstantNamingRule struct{ baseRule }

func NewConstantNamingRule() LintRule {
	return &ConstantNamingRule{baseRule{severity: tt.SeverityWarning}}
}

func (r *ConstantNamingRule) Check(file *lints.File) ([]tt.Issue, error) {
	return lints.DetectConstantNaming(file, r.severity)
}

func (r *ConstantNamingRule) Name() string { return "constant-naming" }

type ClassNamingRule struct{ baseRule }

func NewClassNamingRule() LintRule {
	return &ClassNamingRule{baseRule{severity: tt.SeverityWarning}}
}

func (r *ClassNamingRule) Check(file *lints.File) ([]tt.Issue, error) {
	return lints.DetectClassNaming(file, r.severity)
}

func (r *ClassNamingRule) Name() string { return "class-naming" }

type FunctionSpacingRule struct{ baseRule }

func NewFunctionSpacingRule() LintRule {
	return &FunctionSpacingRule{baseRule{severity: tt.SeverityWarning}}
}

func (r *FunctionSpacingRule) Check(file *lints.File) ([]tt.Issue, error) {
	return lints.DetectFunctionSpacing(file, r.severity)
}

func (r *FunctionSpacingRule) Name() string { return "function-spacing" }

type LayoutConflictRule struct{ baseRule }

func NewLayoutConflictRule() LintRule {
	return &LayoutConflictRule{baseRule{severity: tt.SeverityError}}
}

func (r *LayoutConflictRule) Check(file *lints.File) ([]tt.Issue, error) {
	return lints.DetectLayoutConflict(file, r.severity)
}

func (r *LayoutConflictRule) Name() string { return "layout-conflict" }

type GeometryPreferenceRule struct{ baseRule }

func NewGeometryPreferenceRule() LintRule {
	return &GeometryPreferenceRule{baseRule{severity: tt.SeverityInfo}}
}

func (r *GeometryPreferenceRule) Check(file *lints.File) ([]tt.Issue, error) {
	return lints.DetectGeometryPreference(file, r.severity)
}

func (r *GeometryPreferenceRule) Name() string { return "geometry-preference" }

type LogMessageRule struct{ baseRule }

func NewLogMessageRule() LintRule {
	return &LogMessageRule{baseRule{severity: tt.SeverityWarning}}
}

func (r *LogMessageRule) Check(file *lints.File) ([]tt.Issue, error) {
	return lints.DetectLogMessageFormat(file, r.severity)
}

func (r *LogMessageRule) Name() string { return "log-message" }

type SpellingRule struct{ baseRule }

func NewSpellingRule() LintRule {
	return &SpellingRule{baseRule{severity: tt.SeverityWarning}}
}

func (r *SpellingRule) Check(file *lints.File) ([]tt.Issue, error) {
	return lints.DetectMisspelledICloud(file, r.severity)
}

func (r *SpellingRule) Name() string { return "spelling-icloud" }
