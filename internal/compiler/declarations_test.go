package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDeclarations(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []Declaration
	}{
		{
			name: "single",
			body: "display: flex;",
			want: []Declaration{{"display", "flex"}},
		},
		{
			name: "multiple keep order",
			body: "overflow: hidden; text-overflow: ellipsis; white-space: nowrap;",
			want: []Declaration{{"overflow", "hidden"}, {"text-overflow", "ellipsis"}, {"white-space", "nowrap"}},
		},
		{
			name: "missing trailing semicolon",
			body: "margin: 0 auto",
			want: []Declaration{{"margin", "0 auto"}},
		},
		{
			name: "function value",
			body: "box-shadow: 0 1px 2px 0 rgb(0 0 0 / 0.05);",
			want: []Declaration{{"box-shadow", "0 1px 2px 0 rgb(0 0 0 / 0.05)"}},
		},
		{
			name: "empty value dropped",
			body: "color: ; display: block;",
			want: []Declaration{{"display", "block"}},
		},
		{
			name: "empty",
			body: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDeclarations(tt.body))
		})
	}
}

func TestSplitNested(t *testing.T) {
	suffix, body := splitNested("> * + * { margin-left: 1rem; }")
	assert.Equal(t, "> * + *", suffix)
	assert.Equal(t, "margin-left: 1rem;", body)

	suffix, body = splitNested("display: flex;")
	assert.Empty(t, suffix)
	assert.Equal(t, "display: flex;", body)
}

func TestFormatDeclarations(t *testing.T) {
	got := FormatDeclarations([]Declaration{{"width", "1rem"}, {"height", "1rem"}})
	assert.Equal(t, "width: 1rem; height: 1rem;", got)
}

func TestCategorize(t *testing.T) {
	tests := map[string]Category{
		"display":              CategoryLayout,
		"padding-top":          CategoryLayout,
		"grid-column-start":    CategoryLayout,
		"background-color":     CategoryVisual,
		"border-top-width":     CategoryVisual,
		"font-size":            CategoryTypography,
		"text-decoration-line": CategoryTypography,
		"transform":            CategoryEffects,
		"--tw-ring-color":      CategoryTokens,
		"-webkit-appearance":   CategoryInternal,
		"something-else":       CategoryLayout,
	}
	for prop, want := range tests {
		assert.Equal(t, want, Categorize(prop), prop)
	}
}

func TestGroupDeclarations(t *testing.T) {
	groups := GroupDeclarations([]Declaration{
		{"color", "red"},
		{"display", "flex"},
		{"--tw-x", "1"},
		{"background-color", "blue"},
	})

	if assert.Len(t, groups, 3) {
		assert.Equal(t, CategoryLayout, groups[0].Category)
		assert.Equal(t, CategoryVisual, groups[1].Category)
		assert.Equal(t, []Declaration{{"color", "red"}, {"background-color", "blue"}}, groups[1].Declarations)
		assert.Equal(t, CategoryTokens, groups[2].Category)
	}
}
