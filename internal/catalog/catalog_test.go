package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/coralsense/internal/theme"
)

func labels(entries []Entry) map[string]Entry {
	out := make(map[string]Entry, len(entries))
	for _, e := range entries {
		if _, ok := out[e.Label]; !ok {
			out[e.Label] = e
		}
	}
	return out
}

func TestParseFraction(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1/2", 0.5},
		{"3/4", 0.75},
		{"2/3", 2.0 / 3.0},
		{"1/0", 0},
		{"a/b", 0},
		{"1/2/3", 0},
		{"1.5/2", 0},
		{"", 0},
		{"12", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseFraction(tt.in), 1e-9)
		})
	}
}

func TestGenerateSpacing(t *testing.T) {
	byLabel := labels(Generate(theme.Default()))

	p4, ok := byLabel["p-4"]
	require.True(t, ok)
	assert.Equal(t, "padding: 1rem;", p4.CSS)
	assert.Equal(t, CategorySpacing, p4.Category)

	assert.Contains(t, byLabel, "-m-4")
	assert.Contains(t, byLabel, "-mx-0.5")
	for _, key := range []string{"0", "px"} {
		assert.NotContains(t, byLabel, "-m-"+key)
		assert.NotContains(t, byLabel, "-mt-"+key)
	}
	assert.NotContains(t, byLabel, "-m-auto")

	// Padding never negates.
	assert.NotContains(t, byLabel, "-p-4")

	assert.Equal(t, "> * + * { margin-left: 1rem; }", byLabel["space-x-4"].CSS)
}

func TestGenerateColors(t *testing.T) {
	th := theme.Theme{
		Colors: []theme.NamedColor{
			{Name: "brand", Value: theme.Solid("#123456")},
			{Name: "accent", Value: theme.ShadeScale(
				theme.Shade{Key: theme.DefaultShade, Literal: "#aa0000"},
				theme.Shade{Key: "500", Literal: "#bb0000"},
			)},
		},
	}
	byLabel := labels(colors(th))

	assert.Equal(t, "color: #123456;", byLabel["text-brand"].CSS)
	assert.Equal(t, "#123456", byLabel["bg-brand"].Color)
	// Solid colors get no opacity ladder.
	assert.NotContains(t, byLabel, "bg-brand/50")

	assert.Contains(t, byLabel, "bg-accent")
	assert.NotContains(t, byLabel, "bg-accent-DEFAULT")
	assert.Equal(t, "background-color: #bb0000;", byLabel["bg-accent-500"].CSS)

	for _, op := range OpacityLadder {
		label := "bg-accent-500/" + itoa(op)
		e, ok := byLabel[label]
		require.True(t, ok, label)
		assert.True(t, strings.Contains(e.CSS, "opacity: "+itoa(op)+"%;"), e.CSS)
		assert.Equal(t, "#bb0000", e.Color)
	}
	assert.NotContains(t, byLabel, "bg-accent-500/15")

	assert.Equal(t, "color: currentColor;", byLabel["text-current"].CSS)
}

func TestGenerateFixedFamilies(t *testing.T) {
	byLabel := labels(Generate(theme.Default()))

	tests := []struct {
		label string
		css   string
	}{
		{"grid-cols-12", "grid-template-columns: repeat(12, minmax(0, 1fr));"},
		{"grid-rows-6", "grid-template-rows: repeat(6, minmax(0, 1fr));"},
		{"col-start-13", "grid-column-start: 13;"},
		{"row-end-7", "grid-row-end: 7;"},
		{"col-span-full", "grid-column: 1 / -1;"},
		{"order-first", "order: -9999;"},
		{"w-1/2", "width: 50%;"},
		{"h-3/4", "height: 75%;"},
		{"inset-x-4", "left: 1rem; right: 1rem;"},
		{"top-1/2", "top: 50%;"},
		{"-translate-x-1/2", "transform: translateX(-50%);"},
		{"hidden", "display: none;"},
		{"border", "border-width: 1px;"},
		{"rounded", "border-radius: 0.25rem;"},
		{"ring", "box-shadow: 0 0 0 3px var(--tw-ring-color);"},
		{"opacity-50", "opacity: 0.5;"},
		{"scale-105", "transform: scale(1.05);"},
		{"object-left-top", "object-position: left top;"},
		{"text-lg", "font-size: 1.125rem;"},
		{"text-center", "text-align: center;"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			e, ok := byLabel[tt.label]
			require.True(t, ok)
			assert.Equal(t, tt.css, e.CSS)
		})
	}

	assert.NotContains(t, byLabel, "grid-cols-13")
	assert.NotContains(t, byLabel, "grid-rows-7")
	assert.NotContains(t, byLabel, "col-start-14")
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(theme.Default())
	b := Generate(theme.Default())
	require.Equal(t, a, b)
}

func TestGenerateVariants(t *testing.T) {
	variants := GenerateVariants()
	byLabel := labels(variants)

	for _, e := range variants {
		assert.True(t, strings.HasSuffix(e.Label, ":"), e.Label)
		assert.Equal(t, CategoryVariants, e.Category)
	}

	assert.Equal(t, ":hover", byLabel["hover:"].CSS)
	assert.Equal(t, "::before", byLabel["before:"].CSS)
	assert.Equal(t, "@media (min-width: 768px)", byLabel["md:"].CSS)
	assert.Equal(t, ".dark &", byLabel["dark:"].CSS)
	assert.Equal(t, ".peer:checked ~ &", byLabel["peer-checked:"].CSS)
	assert.Equal(t, 5, byLabel["motion-safe:"].SortOrder)
}
