package coralsense

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/coralsense/internal/diagnostics"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
}

func TestLint(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"web/index.html":  "<main>\n\t<div class=\"flex p-4 flexx\"></div>\n</main>\n",
		"web/about.html":  `<p class="text-lg text-red-500">ok</p>`,
		"web/app.min.js":  `x.className="flexx"`,
		"web/notes.txt":   `class="flexx"`,
		"web/dist/a.html": `<div class="flexx"></div>`,
		".gitignore":      "web/dist/\n",
	})

	p := newTestProvider(t)
	result, err := Lint(testContext(t), fs, p, LintConfig{
		ScanPaths: []string{"web/**/*.html", "web/**/*.js", "web/index.html"},
		Conflicts: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesScanned)
	assert.Equal(t, 2, result.FilesSkipped)
	assert.Equal(t, 5, result.ClassesChecked)
	require.Len(t, result.Issues, 1)

	issue := result.Issues[0]
	assert.Equal(t, LinterName, issue.FromLinter)
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Equal(t, diagnostics.CodeUnknownClass, issue.Code)
	assert.Equal(t, "web/index.html", issue.Pos.Filename)
	assert.Equal(t, 2, issue.Pos.Line)
	assert.Equal(t, 23, issue.Pos.Column)
	assert.Equal(t, []string{"\t<div class=\"flex p-4 flexx\"></div>"}, issue.SourceLines)
	require.NotNil(t, issue.Replacement)
	assert.Equal(t, "flex", issue.Replacement.NewText)
	assert.Equal(t, 5, issue.Replacement.InlineLength)

	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, map[string]int{diagnostics.CodeUnknownClass: 1}, result.IssuesByCode)
	assert.True(t, result.Failed(LintConfig{}))
}

func TestLintConflicts(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"page.html": `<div class="flex grid"></div>`,
	})
	p := newTestProvider(t)

	result, err := Lint(testContext(t), fs, p, LintConfig{ScanPaths: []string{"page.html"}, Conflicts: true})
	require.NoError(t, err)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityWarning, result.Issues[0].Severity)
	assert.Equal(t, 13, result.Issues[0].Pos.Column)
	assert.False(t, result.Failed(LintConfig{}))
	assert.True(t, result.Failed(LintConfig{Strict: true}))

	result, err = Lint(testContext(t), fs, p, LintConfig{ScanPaths: []string{"page.html"}})
	require.NoError(t, err)
	assert.Empty(t, result.Issues)
}

func TestLintNoPaths(t *testing.T) {
	_, err := Lint(testContext(t), afero.NewMemMapFs(), newTestProvider(t), LintConfig{})
	require.Error(t, err)
}

func TestLintBadPattern(t *testing.T) {
	_, err := Lint(testContext(t), afero.NewMemMapFs(), newTestProvider(t), LintConfig{ScanPaths: []string{"web/[.html"}})
	require.Error(t, err)
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{Text: "a"}, {Text: "a"}, {Text: "a"}, {Text: "b"}, {Text: "c"},
	}

	tests := []struct {
		name          string
		config        LintConfig
		wantTexts     []string
		wantTruncated int
	}{
		{"unlimited", LintConfig{}, []string{"a", "a", "a", "b", "c"}, 0},
		{"max per linter", LintConfig{MaxIssuesPerLinter: 2}, []string{"a", "a"}, 3},
		{"max same", LintConfig{MaxSameIssues: 1}, []string{"a", "b", "c"}, 2},
		{"both", LintConfig{MaxIssuesPerLinter: 4, MaxSameIssues: 2}, []string{"a", "a", "b"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := limitIssues(issues, tt.config)
			var texts []string
			for _, i := range got {
				texts = append(texts, i.Text)
			}
			assert.Equal(t, tt.wantTexts, texts)
			assert.Equal(t, tt.wantTruncated, truncated)
		})
	}
}

func TestShouldSkip(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{".gitignore": "build/\n*.gen.html\n"})
	s := newScanner(fs)

	tests := []struct {
		path string
		want bool
	}{
		{"web/index.html", false},
		{"build/index.html", true},
		{"web/page.gen.html", true},
		{"web/app.min.js", true},
		{"node_modules/pkg/index.html", true},
		{"/abs/build/index.html", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, s.shouldSkip(tt.path))
		})
	}
}
