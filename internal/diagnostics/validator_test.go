package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/coralsense/internal/catalog"
	"github.com/yacobolo/coralsense/internal/compiler"
	"github.com/yacobolo/coralsense/internal/theme"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	th := theme.Default()
	return NewValidator(th, compiler.New(th, catalog.Generate(th)))
}

// stubCompiler accepts a fixed set of classes.
type stubCompiler map[string]bool

func (s stubCompiler) Compile(classNames []string) string {
	for _, c := range classNames {
		if !s[c] {
			return ""
		}
	}
	return ".x { color: red; }"
}

func TestValidateClassValid(t *testing.T) {
	v := newTestValidator(t)

	valid := []string{
		"flex",
		"hover:flex",
		"md:hover:bg-red-500",
		"bg-red-500/50",
		"bg-red-50/65",
		"hover:text-coral-50/85",
		"w-1/2",
		"-translate-x-1/2",
		"w-[200px]",
		"[&>*]:p-4",
		"data-[state=open]:block",
		"group-[.is-open]:block",
		"max-md:hidden",
		"min-[900px]:flex",
		"  p-4  ",
		"",
	}
	for _, c := range valid {
		t.Run(c, func(t *testing.T) {
			assert.Nil(t, v.ValidateClass(c))
		})
	}
}

func TestValidateClassErrors(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name      string
		className string
		code      string
		message   string
	}{
		{"unknown variant", "unknownvariant:flex", CodeUnknownVariant, `Unknown variant: "unknownvariant"`},
		{"min without bracket", "min-md:flex", CodeUnknownVariant, `Unknown variant: "min-md"`},
		{"unbalanced", "w-[200px", CodeUnbalancedBrackets, "Unbalanced brackets in arbitrary value"},
		{"empty arbitrary", "w-[]", CodeEmptyArbitrary, "Empty arbitrary value"},
		{"bad shade", "text-red-510", CodeUnknownClass, `Invalid color shade "510". Valid shades are: 50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950`},
		{"bad shade on unknown color", "bg-foo-123", CodeUnknownClass, `Invalid color shade "123". Valid shades are: 50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950`},
		{"bad spacing", "p-13", CodeUnknownClass, `Invalid spacing value "13". Use a theme value or arbitrary value like [24px]`},
		{"numeric font size", "text-13", CodeUnknownClass, `Invalid font size "13". Use a named size (xs, sm, base, lg, xl, 2xl, etc.) or arbitrary value like [16px]`},
		{"typo", "text-colour", CodeUnknownClass, `Possible typo: "colour" should be "color"`},
		{"unknown", "hover:flexx", CodeUnknownClass, `Unknown utility class: "hover:flexx"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := v.ValidateClass(tt.className)
			require.NotNil(t, d)
			assert.Equal(t, tt.code, d.Code)
			assert.Equal(t, tt.message, d.Message)
			assert.Equal(t, SeverityError, d.Severity)
			assert.Equal(t, tt.className, d.ClassName)
			assert.Equal(t, 0, d.Start)
			assert.Equal(t, len(tt.className), d.End)
		})
	}
}

func TestValidateClassSuggestions(t *testing.T) {
	v := newTestValidator(t)

	d := v.ValidateClass("hvr:flex")
	require.NotNil(t, d)
	assert.Equal(t, CodeUnknownVariant, d.Code)
	assert.Contains(t, d.Suggestions, "hover:")
	assert.LessOrEqual(t, len(d.Suggestions), maxVariantSuggestions)

	d = v.ValidateClass("flexx")
	require.NotNil(t, d)
	require.NotEmpty(t, d.Suggestions)
	assert.Equal(t, "flex", d.Suggestions[0])
	assert.LessOrEqual(t, len(d.Suggestions), maxClassSuggestions)

	d = v.ValidateClass("zzzzzzzzzzzz")
	require.NotNil(t, d)
	assert.Empty(t, d.Suggestions)
}

func TestValidateClassUsesOracle(t *testing.T) {
	v := NewValidator(theme.Default(), stubCompiler{"custom-thing": true})

	assert.Nil(t, v.ValidateClass("custom-thing"))
	assert.Nil(t, v.ValidateClass("focus:custom-thing"))

	d := v.ValidateClass("flex")
	require.NotNil(t, d)
	assert.Equal(t, CodeUnknownClass, d.Code)
}

func TestKnownPatterns(t *testing.T) {
	v := NewValidator(theme.Default(), stubCompiler{})
	patterns := v.KnownPatterns()

	assert.Contains(t, patterns, "m-4")
	assert.Contains(t, patterns, "gap-x-2")
	assert.Contains(t, patterns, "text-black")
	assert.Contains(t, patterns, "ring-blue-500")
	assert.Contains(t, patterns, "flex")
	assert.NotContains(t, patterns, "ring-black")

	seen := make(map[string]bool)
	for _, p := range patterns {
		assert.False(t, seen[p], "duplicate pattern %q", p)
		seen[p] = true
	}
}

func TestValidateContent(t *testing.T) {
	v := newTestValidator(t)

	content := `<div class="flex grid unknownvariant:p-4 hover:bg-red-500">`
	diags := v.Diagnose(content)
	require.Len(t, diags, 2)

	assert.Equal(t, CodeUnknownVariant, diags[0].Code)
	assert.Equal(t, "unknownvariant:p-4", content[diags[0].Start:diags[0].End])

	assert.Equal(t, CodeConflictingClasses, diags[1].Code)
	assert.Equal(t, SeverityWarning, diags[1].Severity)
	assert.Equal(t, "flex", content[diags[1].Start:diags[1].End])
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"flex", "flex", 0},
		{"flex", "flexx", 1},
		{"hvr", "hover", 2},
		{"kitten", "sitting", 3},
		{"ab", "ba", 2},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
		})
	}
}

func TestFindSimilar(t *testing.T) {
	candidates := []string{"flex", "grid", "flow", "fled", "block"}

	assert.Equal(t, []string{"flex", "fled", "flow"}, FindSimilar("flexx", candidates, 3, 5))
	assert.Equal(t, []string{"flex"}, FindSimilar("flexx", candidates, 3, 1))
	assert.Nil(t, FindSimilar("zzzzzz", candidates, 2, 5))
}
