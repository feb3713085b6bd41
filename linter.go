package coralsense

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"

	"github.com/yacobolo/coralsense/internal/diagnostics"
)

// LintConfig holds linting configuration
type LintConfig struct {
	ScanPaths []string // Patterns to scan (e.g., "web/**/*.html")
	Strict    bool     // Exit with code 1 if any issue is found
	Conflicts bool     // Report conflicting classes

	// golangci-style configuration
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (coralsense) suffix (default: true)
	UseColors          bool // Enable color output (default: auto-detect)
}

// LintResult contains linting results
type LintResult struct {
	Issues         []Issue        // Issues after limits were applied
	IssuesByCode   map[string]int // Counts before limits, for stats
	FilesScanned   int
	FilesSkipped   int
	ClassesChecked int
	ErrorCount     int // Issues with error severity, before limits
	TruncatedCount int // Issues removed due to limits

	// Warnings holds per-file failures that did not stop the run
	Warnings []string
}

// Failed reports whether the result should fail the run under config.
func (r *LintResult) Failed(config LintConfig) bool {
	if r.ErrorCount > 0 {
		return true
	}
	return config.Strict && len(r.Issues) > 0
}

// Lint scans the configured paths and validates every class attribute it
// finds against the provider's theme.
func Lint(ctx context.Context, fs afero.Fs, p *Provider, config LintConfig) (*LintResult, error) {
	log := zerolog.Ctx(ctx)

	if len(config.ScanPaths) == 0 {
		return nil, errors.New("no paths to lint")
	}

	s := newScanner(fs)
	files, stats, err := s.expandGlobPatternsWithStats(config.ScanPaths)
	if err != nil {
		return nil, err
	}
	if stats.FilesSkipped > 0 {
		log.Debug().Int("scanned", stats.FilesScanned).Int("skipped", stats.FilesSkipped).Msg("skipped generated or ignored files")
	}

	result := &LintResult{
		FilesScanned: stats.FilesScanned,
		FilesSkipped: stats.FilesSkipped,
		IssuesByCode: make(map[string]int),
	}

	var issues []Issue
	var fileErrs error
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		data, err := afero.ReadFile(fs, file)
		if err != nil {
			log.Warn().Err(err).Str("file", file).Msg("cannot read file")
			fileErrs = multierr.Append(fileErrs, errors.Errorf("reading %s: %w", file, err))
			continue
		}

		fileIssues, checked := lintContent(p, file, string(data), config.Conflicts)
		result.ClassesChecked += checked
		issues = append(issues, fileIssues...)
	}

	for _, err := range multierr.Errors(fileErrs) {
		result.Warnings = append(result.Warnings, err.Error())
	}

	for _, issue := range issues {
		result.IssuesByCode[issue.Code]++
		if issue.Severity == SeverityError {
			result.ErrorCount++
		}
	}

	sortIssues(issues)
	result.Issues, result.TruncatedCount = limitIssues(issues, config)

	log.Debug().Int("files", result.FilesScanned).Int("classes", result.ClassesChecked).Int("issues", len(issues)).Msg("lint complete")
	return result, nil
}

// lintContent validates one file's content and converts diagnostics to issues
func lintContent(p *Provider, filename, content string, conflicts bool) ([]Issue, int) {
	v := p.Validator()
	locs := diagnostics.ExtractClassLocations(content)

	var diags []diagnostics.Diagnostic
	for _, loc := range locs {
		if d := v.ValidateClass(loc.ClassName); d != nil {
			d.Start, d.End = loc.Start, loc.End
			diags = append(diags, *d)
		}
	}
	if conflicts {
		diags = append(diags, diagnostics.FindConflicts(locs)...)
	}

	lines := strings.Split(content, "\n")
	issues := make([]Issue, 0, len(diags))
	for _, d := range diags {
		issues = append(issues, issueFromDiagnostic(filename, content, lines, d))
	}
	return issues, len(locs)
}

// issueFromDiagnostic converts a diagnostic with byte offsets into a
// golangci-style issue with a 1-based line and column
func issueFromDiagnostic(filename, content string, lines []string, d diagnostics.Diagnostic) Issue {
	pos := PositionAt(content, d.Start)

	issue := Issue{
		FromLinter:  LinterName,
		Text:        d.Message,
		Severity:    d.Severity.String(),
		Code:        d.Code,
		Suggestions: d.Suggestions,
		Pos: IssuePos{
			Filename: filename,
			Line:     pos.Line + 1,
			Column:   pos.Character + 1,
			Offset:   d.Start,
		},
	}
	if pos.Line < len(lines) {
		issue.SourceLines = []string{strings.TrimSuffix(lines[pos.Line], "\r")}
	}
	if len(d.Suggestions) > 0 {
		issue.Replacement = &Replacement{
			NewText:      d.Suggestions[0],
			InlineLength: d.End - d.Start,
		}
		issue.Text += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}
	return issue
}

// sortIssues orders issues by file, then line, then column
func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	// Apply max-issues-per-linter
	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	// Apply max-same-issues (deduplication by message text)
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
