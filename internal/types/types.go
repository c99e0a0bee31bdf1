package types

import "go/token"

// Issue represents a single finding in an analyzed source file.
type Issue struct {
	Rule     string
	Category Category
	Filename string
	Message  string
	Note     string
	Severity Severity
	Start    token.Position
	End      token.Position
}

// Category classifies a finding. The zero value is not a valid category.
type Category int

const (
	CategoryNaming Category = iota + 1
	CategoryFormatting
	CategoryLayoutConflict
	CategoryParseError
)

func (c Category) String() string {
	switch c {
	case CategoryNaming:
		return "NAMING"
	case CategoryFormatting:
		return "FORMATTING"
	case CategoryLayoutConflict:
		return "LAYOUT_CONFLICT"
	case CategoryParseError:
		return "PARSE_ERROR"
	default:
		return "UNKNOWN"
	}
}

// Severity is the reporting level of a rule.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	case SeverityOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// UnmarshalYAML lets severities be written as plain strings in the
// configuration file. Unknown values fall back to warning.
func (s *Severity) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch raw {
	case "error":
		*s = SeverityError
	case "info":
		*s = SeverityInfo
	case "off":
		*s = SeverityOff
	default:
		*s = SeverityWarning
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Severity) MarshalYAML() (interface{}, error) {
	switch s {
	case SeverityError:
		return "error", nil
	case SeverityInfo:
		return "info", nil
	case SeverityOff:
		return "off", nil
	}
	return "warning", nil
}

// ConfigRule is the per-rule configuration read from the yaml config file.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}

// Framework identifies the GUI widget library a source file is written
// against. It is detected once per file and never re-detected mid-run.
type Framework int

const (
	FrameworkNone Framework = iota
	FrameworkTkinter
	FrameworkQt
)

func (f Framework) String() string {
	switch f {
	case FrameworkTkinter:
		return "TKINTER"
	case FrameworkQt:
		return "QT"
	default:
		return "NONE"
	}
}

// AnalysisResult is the outcome of analyzing one source file. A result with
// an empty Issues slice means the file was analyzed and found clean, which
// is distinct from a file that was never analyzed at all.
type AnalysisResult struct {
	Filename  string
	Framework Framework
	Issues    []Issue
}

// Clean reports whether the file parsed and produced no findings.
func (r *AnalysisResult) Clean() bool {
	return len(r.Issues) == 0
}
