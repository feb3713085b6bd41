package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/coralsense/internal/catalog"
	"github.com/yacobolo/coralsense/internal/theme"
)

func newTestCompiler(t *testing.T) *Compiler {
	t.Helper()
	th := theme.Default()
	return New(th, catalog.Generate(th))
}

func TestCompileEmptyForUnknown(t *testing.T) {
	c := newTestCompiler(t)

	assert.Empty(t, c.Compile([]string{"not-a-class"}))
	assert.Empty(t, c.Compile([]string{"bg-red-550"}))
	assert.Empty(t, c.Compile([]string{"p-13"}))
	assert.Empty(t, c.Compile([]string{"unknownvariant:flex"}))
	assert.Empty(t, c.Compile(nil))
	assert.NotEmpty(t, c.Compile([]string{"flex"}))
}

func TestCompileRule(t *testing.T) {
	c := newTestCompiler(t)

	assert.Equal(t, ".p-4 {\n  padding: 1rem;\n}\n", c.Compile([]string{"p-4"}))
	assert.Equal(t, ".w-1\\/2 {\n  width: 50%;\n}\n", c.Compile([]string{"w-1/2"}))
}

func TestRuleVariants(t *testing.T) {
	c := newTestCompiler(t)

	tests := []struct {
		class        string
		wantSelector string
		wantAtRules  []string
	}{
		{"hover:bg-red-500", `.hover\:bg-red-500:hover`, nil},
		{"md:flex", `.md\:flex`, []string{"@media (min-width: 768px)"}},
		{"md:hover:flex", `.md\:hover\:flex:hover`, []string{"@media (min-width: 768px)"}},
		{"dark:text-white", `.dark .dark\:text-white`, nil},
		{"group-hover:underline", `.group:hover .group-hover\:underline`, nil},
		{"peer-disabled:hidden", `.peer:disabled ~ .peer-disabled\:hidden`, nil},
		{"first:mt-0", `.first\:mt-0:first-child`, nil},
		{"max-md:hidden", `.max-md\:hidden`, []string{"@media not all and (min-width: 768px)"}},
		{"data-[state=open]:flex", `.data-\[state\=open\]\:flex[data-state=open]`, nil},
		{"supports-[display:grid]:grid", `.supports-\[display\:grid\]\:grid`, []string{"@supports (display:grid)"}},
		{"space-x-4", `.space-x-4 > * + *`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			r, ok := c.Rule(tt.class)
			require.True(t, ok)
			assert.Equal(t, tt.wantSelector, r.Selector)
			assert.Equal(t, tt.wantAtRules, r.AtRules)
		})
	}
}

func TestRuleString(t *testing.T) {
	r := Rule{
		Selector:     ".x",
		AtRules:      []string{"@media print"},
		Declarations: []Declaration{{Property: "display", Value: "none"}},
	}
	assert.Equal(t, "@media print {\n  .x {\n    display: none;\n  }\n}\n", r.String())
}

func TestLookupOpacity(t *testing.T) {
	c := newTestCompiler(t)

	decls, ok := c.Lookup("bg-red-500/15")
	require.True(t, ok)
	assert.Equal(t, []Declaration{
		{Property: "background-color", Value: "#ef4444"},
		{Property: "opacity", Value: "15%"},
	}, decls)

	decls, ok = c.Lookup("text-black/5")
	require.True(t, ok)
	assert.Equal(t, "5%", decls[1].Value)

	_, ok = c.Lookup("p-4/50")
	assert.False(t, ok)
}

func TestLookupArbitrary(t *testing.T) {
	c := newTestCompiler(t)

	tests := []struct {
		class string
		want  []Declaration
	}{
		{"w-[200px]", []Declaration{{"width", "200px"}}},
		{"text-[#ff6b6b]", []Declaration{{"color", "#ff6b6b"}}},
		{"text-[14px]", []Declaration{{"font-size", "14px"}}},
		{"border-[3px]", []Declaration{{"border-width", "3px"}}},
		{"bg-[url(/img.png)]", []Declaration{{"background-image", "url(/img.png)"}}},
		{"grid-cols-[1fr_2fr]", []Declaration{{"grid-template-columns", "1fr 2fr"}}},
		{"-mt-[3px]", []Declaration{{"margin-top", "calc(3px * -1)"}}},
		{"translate-x-[10%]", []Declaration{{"transform", "translateX(10%)"}}},
		{"[mask-type:luminance]", []Declaration{{"mask-type", "luminance"}}},
		{"bg-[color:var(--brand)]", []Declaration{{"background-color", "var(--brand)"}}},
		{"bg-[#123456]/50", []Declaration{{"background-color", "#123456"}, {"opacity", "50%"}}},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			decls, ok := c.Lookup(tt.class)
			require.True(t, ok)
			assert.Equal(t, tt.want, decls)
		})
	}

	for _, bad := range []string{"nope-[1px]", "w-[]", "w-[200px", "bg-[14px]"} {
		_, ok := c.Lookup(bad)
		assert.False(t, ok, bad)
	}
}
