package coralsense

// Issue represents a single lint finding in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "coralsense"
	Text        string       `json:"Text"`        // "Unknown utility class: \"flexx\""
	Severity    string       `json:"Severity"`    // "error", "warning", "information", "hint"
	Code        string       `json:"Code"`        // "unknown-class"
	Suggestions []string     `json:"Suggestions"` // Ranked replacements, possibly empty
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	Replacement *Replacement `json:"Replacement"` // Best suggestion, when there is one
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/pages/index.html"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based byte column, exact start of the class)
	Offset   int    `json:"Offset"`   // 0-based byte offset into the file
}

// Replacement is the top suggestion for the offending class
type Replacement struct {
	NewText      string // "flex"
	InlineLength int    // Length of text to replace
}

// Severity names used in issues
const (
	SeverityError       = "error"
	SeverityWarning     = "warning"
	SeverityInformation = "information"
	SeverityHint        = "hint"
)

// LinterName is reported in Issue.FromLinter
const LinterName = "coralsense"
