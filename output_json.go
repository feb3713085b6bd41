package coralsense

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains scan statistics
type JSONStats struct {
	FilesSkipped    int            `json:"files_skipped"`
	ClassesChecked  int            `json:"classes_checked"`
	ValidPercentage float64        `json:"valid_percentage"`
	ByCode          map[string]int `json:"by_code"`
	Warnings        []string       `json:"warnings,omitempty"`
}

// JSONIssue represents a single lint issue
type JSONIssue struct {
	File        string   `json:"file"`
	Line        int      `json:"line"`
	Column      int      `json:"column"`
	Severity    string   `json:"severity"`
	Code        string   `json:"code,omitempty"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
	Linter      string   `json:"linter"`
	Source      string   `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result, time.Now())
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult, now time.Time) JSONOutput {
	var errs, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errs++
		case SeverityWarning:
			warnings++
		}
	}

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:        issue.Pos.Filename,
			Line:        issue.Pos.Line,
			Column:      issue.Pos.Column,
			Severity:    issue.Severity,
			Code:        issue.Code,
			Message:     issue.Text,
			Suggestions: issue.Suggestions,
			Linter:      issue.FromLinter,
			Source:      source,
		}
	}

	byCode := result.IssuesByCode
	if byCode == nil {
		byCode = map[string]int{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errs,
			Warnings:     warnings,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			FilesSkipped:    result.FilesSkipped,
			ClassesChecked:  result.ClassesChecked,
			ValidPercentage: validPercentage(*result),
			ByCode:          byCode,
			Warnings:        result.Warnings,
		},
		Issues: jsonIssues,
	}
}
