package coralsense

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes the lint result as a Markdown report
func WriteMarkdown(w io.Writer, result *LintResult) error {
	var b strings.Builder

	b.WriteString("# Class Lint Report\n\n")
	fmt.Fprintf(&b, "- Files scanned: %d\n", result.FilesScanned)
	fmt.Fprintf(&b, "- Classes checked: %d\n", result.ClassesChecked)
	fmt.Fprintf(&b, "- Issues: %d", len(result.Issues))
	if result.TruncatedCount > 0 {
		fmt.Fprintf(&b, " (%d truncated)", result.TruncatedCount)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "- Valid classes: %.1f%%\n", validPercentage(*result))

	if len(result.IssuesByCode) > 0 {
		b.WriteString("\n## By code\n\n| Code | Count |\n|---|---|\n")
		for _, c := range sortedCodes(result.IssuesByCode) {
			fmt.Fprintf(&b, "| `%s` | %d |\n", c.code, c.count)
		}
	}

	if len(result.Issues) > 0 {
		b.WriteString("\n## Issues\n\n| Location | Severity | Message |\n|---|---|---|\n")
		for _, issue := range result.Issues {
			fmt.Fprintf(&b, "| `%s:%d:%d` | %s | %s |\n",
				issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column,
				issue.Severity, escapeTableCell(issue.Text))
		}
	}

	if len(result.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, warning := range result.Warnings {
			fmt.Fprintf(&b, "- %s\n", warning)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeTableCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
