package coralsense

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		expected   OutputFormat
	}{
		{name: "explicit quiet flag", quiet: true, expected: OutputIssues},
		{name: "explicit issues format", formatFlag: "issues", expected: OutputIssues},
		{name: "explicit summary format", formatFlag: "summary", expected: OutputSummary},
		{name: "explicit full format", formatFlag: "full", expected: OutputFull},
		{name: "explicit json format", formatFlag: "json", expected: OutputJSON},
		{name: "explicit markdown format", formatFlag: "markdown", expected: OutputMarkdown},
		{name: "markdown shorthand (md)", formatFlag: "md", expected: OutputMarkdown},
		{name: "default format is issues", expected: OutputIssues},
		{name: "unknown format falls back", formatFlag: "xml", expected: OutputIssues},
		{name: "quiet overrides format flag", formatFlag: "full", quiet: true, expected: OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineOutputFormat(tt.formatFlag, tt.quiet))
		})
	}
}

func TestBuildJSONOutput(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	out := buildJSONOutput(sampleResult(), now)

	assert.Equal(t, "1.0", out.Version)
	assert.Equal(t, "2026-01-02T03:04:05Z", out.Timestamp)
	assert.Equal(t, JSONSummary{TotalIssues: 2, Errors: 1, Warnings: 1, Truncated: 1, FilesScanned: 2}, out.Summary)
	assert.Equal(t, 3, out.Stats.ClassesChecked)
	assert.Equal(t, 1, out.Stats.ByCode["unknown-class"])

	require.Len(t, out.Issues, 2)
	assert.Equal(t, "b.html", out.Issues[0].File)
	assert.Equal(t, "conflicting-classes", out.Issues[0].Code)
	assert.Equal(t, `<div class="flex grid">`, out.Issues[0].Source)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "summary")
	assert.Contains(t, decoded, "stats")
	assert.Len(t, decoded["issues"], 2)
	assert.Contains(t, buf.String(), "\n  \"version\": \"1.0\"")
}

func TestWriteJSONEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &LintResult{}))
	assert.Contains(t, buf.String(), `"issues": []`)
	assert.Contains(t, buf.String(), `"by_code": {}`)
}

func TestWriteOutputFormats(t *testing.T) {
	tests := []struct {
		format OutputFormat
		want   []string
	}{
		{OutputIssues, []string{"a.html:1:11:", "2 issues"}},
		{OutputSummary, []string{"Class Linter Statistics", "Diagnostics by Code"}},
		{OutputFull, []string{"a.html:1:11:", "Class Linter Statistics"}},
		{OutputJSON, []string{`"total_issues": 2`}},
		{OutputMarkdown, []string{"# Class Lint Report", "| `a.html:1:11` | error |", "(1 truncated)"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			err := WriteOutput(&buf, sampleResult(), tt.format, LintConfig{PrintIssuedLines: true, PrintLinterName: true})
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}

	require.Error(t, WriteOutput(&bytes.Buffer{}, sampleResult(), OutputFormat("xml"), LintConfig{}))
}
