package formatter

// LayoutConflictFormatter renders overlapping grid placements. The snippet
// spans from the first placement to the conflicting one, so both widget
// assignments are visible in the report.
type LayoutConflictFormatter struct{}

func (f *LayoutConflictFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn}}
{{snippet .SnippetLines .StartLine .EndLine .MaxLineNumWidth .CommonIndent .Padding}}{{underlineAndMessage .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines .CommonIndent}}
{{- if .Note }}
{{note .Note}}
{{- end }}
`
}
