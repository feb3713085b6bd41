package coralsense

import (
	"fmt"
	"io"
	"sort"
)

// VerboseReporter handles detailed statistics
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs scan and diagnostic counts
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Class Linter Statistics", r.useColors))
	fmt.Fprintln(r.w, "-----------------------")

	fmt.Fprintf(r.w, "Files Scanned:    %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:    %d\n", result.FilesSkipped)
	fmt.Fprintf(r.w, "Classes Checked:  %d\n", result.ClassesChecked)
	fmt.Fprintf(r.w, "Errors:           %d\n", result.ErrorCount)
	fmt.Fprintf(r.w, "Valid Classes:    %.1f%%\n", validPercentage(result))
	printProgressBar(r.w, validPercentage(result))
}

// PrintCodeBreakdown lists diagnostics by code, most frequent first
func (r *VerboseReporter) PrintCodeBreakdown(result LintResult) {
	if len(result.IssuesByCode) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Diagnostics by Code", r.useColors))
	fmt.Fprintln(r.w, "-------------------")

	for _, c := range sortedCodes(result.IssuesByCode) {
		fmt.Fprintf(r.w, "%-22s %d\n", c.code, c.count)
	}
}

// PrintWarnings shows files that could not be linted
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

type codeCount struct {
	code  string
	count int
}

// sortedCodes orders codes by count, then name
func sortedCodes(counts map[string]int) []codeCount {
	out := make([]codeCount, 0, len(counts))
	for code, n := range counts {
		out = append(out, codeCount{code, n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].code < out[j].code
	})
	return out
}

// validPercentage is the share of checked classes without an error
func validPercentage(result LintResult) float64 {
	if result.ClassesChecked == 0 {
		return 100
	}
	valid := result.ClassesChecked - result.ErrorCount
	if valid < 0 {
		valid = 0
	}
	return float64(valid) / float64(result.ClassesChecked) * 100
}

// printProgressBar draws a 20-cell bar for percentage
func printProgressBar(w io.Writer, percentage float64) {
	const width = 20
	filled := int(percentage / 100 * width)
	fmt.Fprint(w, "[")
	for i := 0; i < width; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}
