// Package diagnostics validates utility classes, explains why a class is
// wrong, and flags classes in the same attribute that fight over a property.
package diagnostics

// Severity of a diagnostic. Values match the editor protocol.
type Severity int

const (
	SeverityError Severity = iota + 1
	SeverityWarning
	SeverityInformation
	SeverityHint
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInformation:
		return "information"
	case SeverityHint:
		return "hint"
	}
	return "unknown"
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Diagnostic codes.
const (
	CodeUnknownVariant     = "unknown-variant"
	CodeUnbalancedBrackets = "unbalanced-brackets"
	CodeEmptyArbitrary     = "empty-arbitrary"
	CodeUnknownClass       = "unknown-class"
	CodeConflictingClasses = "conflicting-classes"
)

// Diagnostic is one problem with one class occurrence. Start and End are
// byte offsets into the scanned content, end-exclusive, so that
// content[Start:End] == ClassName.
type Diagnostic struct {
	ClassName   string   `json:"className"`
	Start       int      `json:"start"`
	End         int      `json:"end"`
	Message     string   `json:"message"`
	Severity    Severity `json:"severity"`
	Code        string   `json:"code,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Location is one class token found in content.
type Location struct {
	ClassName string `json:"className"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}
