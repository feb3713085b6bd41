package coralsense

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  <div class=\"flex\">",
			column:     15,
			want:       "              ^", // 14 spaces + caret
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t<span class=\"p-4\">",
			column:     17,
			want:       "\t\t              ^",
		},
		{
			name:       "start of line",
			sourceLine: "class=\"flex\"",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func sampleResult() *LintResult {
	return &LintResult{
		Issues: []Issue{
			{
				FromLinter:  LinterName,
				Text:        `Potentially conflicting classes for "display". "grid" will take precedence.`,
				Severity:    SeverityWarning,
				Code:        "conflicting-classes",
				SourceLines: []string{`<div class="flex grid">`},
				Pos:         IssuePos{Filename: "b.html", Line: 1, Column: 13},
			},
			{
				FromLinter:  LinterName,
				Text:        `Unknown utility class: "flexx"`,
				Severity:    SeverityError,
				Code:        "unknown-class",
				SourceLines: []string{`<p class="flexx">`},
				Pos:         IssuePos{Filename: "a.html", Line: 1, Column: 11},
			},
		},
		IssuesByCode:   map[string]int{"unknown-class": 1, "conflicting-classes": 1},
		FilesScanned:   2,
		ClassesChecked: 3,
		ErrorCount:     1,
		TruncatedCount: 1,
	}
}

func TestReporterPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf, printLines: true, printLinterName: true}

	result := sampleResult()
	r.PrintIssues(result.Issues)

	want := "a.html:1:11: Unknown utility class: \"flexx\" (coralsense:unknown-class)\n" +
		"\t<p class=\"flexx\">\n" +
		"\t          ^\n" +
		"b.html:1:13: warning: Potentially conflicting classes for \"display\". \"grid\" will take precedence. (coralsense:conflicting-classes)\n" +
		"\t<div class=\"flex grid\">\n" +
		"\t            ^\n"
	assert.Equal(t, want, buf.String())
}

func TestReporterPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf}

	r.PrintSummary(*sampleResult())

	out := buf.String()
	assert.Contains(t, out, "2 issues (1 error, 1 warning, 1 issue truncated):\n")
	assert.Contains(t, out, "* conflicting-classes: 1\n* unknown-class: 1\n")
	assert.Contains(t, out, "Hint:")
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	assert.Equal(t, "0 issues", pluralizeCount(0, "issue", "issues"))
	assert.Equal(t, "3 issues", pluralizeCount(3, "issue", "issues"))
}

func TestVerboseReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewVerboseReporter(&buf, false)

	result := sampleResult()
	result.Warnings = []string{"reading x.html: permission denied"}
	r.PrintStatistics(*result)
	r.PrintCodeBreakdown(*result)
	r.PrintWarnings(*result)

	out := buf.String()
	assert.Contains(t, out, "Files Scanned:    2\n")
	assert.Contains(t, out, "Classes Checked:  3\n")
	assert.Contains(t, out, "Valid Classes:    66.7%\n")
	assert.Contains(t, out, "conflicting-classes")
	assert.Contains(t, out, "• reading x.html: permission denied\n")
}
