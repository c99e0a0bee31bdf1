package formatter

// ParseErrorFormatter renders a file-level parse failure. It skips the
// snippet body since the reported position sits on broken syntax.
type ParseErrorFormatter struct{}

func (f *ParseErrorFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn}}
{{underlineAndMessage .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines .CommonIndent}}
`
}
