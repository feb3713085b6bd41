package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/coralsense/internal/theme"
)

func TestNewProviderSkipsMalformed(t *testing.T) {
	p := NewProvider(theme.Theme{
		Colors: []theme.NamedColor{
			{Name: "bad", Value: theme.Solid("not-a-color")},
			{Name: "ok", Value: theme.Solid("#fff")},
			{Name: "accent", Value: theme.ShadeScale(
				theme.Shade{Key: theme.DefaultShade, Literal: "#ff0000"},
				theme.Shade{Key: "500", Literal: "nope"},
				theme.Shade{Key: "600", Literal: "#aa0000"},
			)},
		},
	})

	assert.Equal(t, 3, p.Len())
	assert.NotNil(t, p.Color("ok"))
	assert.NotNil(t, p.Color("accent"))
	assert.NotNil(t, p.Color("accent-600"))
	assert.Nil(t, p.Color("accent-500"))
	assert.Nil(t, p.Color("accent-DEFAULT"))
	assert.Nil(t, p.Color("bad"))
}

func TestProviderColor(t *testing.T) {
	p := NewProvider(theme.Default())

	c := p.Color("blue-500")
	require.NotNil(t, c)
	assert.Equal(t, "#3b82f6", c.Hex)
	assert.Equal(t, "blue-500", c.Name)

	faded := p.Color("blue-500/50")
	require.NotNil(t, faded)
	require.NotNil(t, faded.Opacity)
	assert.InDelta(t, 0.5, *faded.Opacity, 1e-9)
	assert.Equal(t, "rgba(59, 130, 246, 0.5)", faded.RGBA)

	again := p.Color("blue-500")
	require.NotNil(t, again)
	assert.Nil(t, again.Opacity)
	assert.Empty(t, again.RGBA)

	assert.Nil(t, p.Color("blue-500/150"))
	assert.Nil(t, p.Color("blue-500/abc"))
	assert.Nil(t, p.Color("nope"))
}

func TestProviderFromClass(t *testing.T) {
	p := NewProvider(theme.Default())

	tests := []struct {
		class   string
		wantHex string
	}{
		{"bg-blue-500", "#3b82f6"},
		{"hover:text-red-500", "#ef4444"},
		{"md:dark:border-coral-500/50", "#ff6b6b"},
		{"from-white", "#ffffff"},
		{"text-lg", ""},
		{"flex", ""},
		{"bg-[#123456]", ""},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			c := p.FromClass(tt.class)
			if tt.wantHex == "" {
				assert.Nil(t, c)
				return
			}
			require.NotNil(t, c)
			assert.Equal(t, tt.wantHex, c.Hex)
		})
	}
}

func TestPaletteName(t *testing.T) {
	assert.Equal(t, "coral", PaletteName("coral-500"))
	assert.Equal(t, "light-blue", PaletteName("light-blue-100"))
	assert.Equal(t, BasePalette, PaletteName("black"))
	assert.Equal(t, BasePalette, PaletteName("brand-primary"))
}

func TestProviderPalettes(t *testing.T) {
	p := NewProvider(theme.Default())
	palettes := p.Palettes()
	require.NotEmpty(t, palettes)

	assert.Equal(t, BasePalette, palettes[0].Name)

	total := 0
	byName := make(map[string]Palette)
	for _, pal := range palettes {
		byName[pal.Name] = pal
		total += len(pal.Colors)
	}
	assert.Equal(t, p.Len(), total)
	assert.Len(t, byName["blue"].Colors, 11)
}

func TestProviderSearch(t *testing.T) {
	p := NewProvider(theme.Default())

	got := p.Search("3B82F6")
	require.Len(t, got, 1)
	assert.Equal(t, "blue-500", got[0].Name)

	for _, c := range p.Search("CORAL") {
		assert.Contains(t, c.Name, "coral")
	}
	assert.Empty(t, p.Search("zzz"))
}

func TestProviderContrast(t *testing.T) {
	p := NewProvider(theme.Default())

	assert.InDelta(t, 21.0, p.ContrastRatio("black", "white"), 0.1)
	assert.InDelta(t, 21.0, p.ContrastRatio("#000", "white"), 0.1)
	assert.Equal(t, 0.0, p.ContrastRatio("black", "nope"))

	res := p.MeetsWCAG("black", "white", LevelAA)
	assert.True(t, res.NormalText)
	assert.True(t, res.LargeText)
	assert.InDelta(t, 21.0, res.Ratio, 0.1)
}

func TestSuggestTextColors(t *testing.T) {
	p := NewProvider(theme.Default())

	got := p.SuggestTextColors("white")
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 10)
	assert.Equal(t, "black", got[0].Color.Name)

	for i, s := range got {
		assert.GreaterOrEqual(t, s.Ratio, MinTextContrast)
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].Ratio, s.Ratio)
		}
	}

	assert.Nil(t, p.SuggestTextColors("nope"))
}

func TestNearest(t *testing.T) {
	p := NewProvider(theme.Default())

	got := p.Nearest("#3b82f6", 3)
	require.Len(t, got, 3)
	assert.Equal(t, "blue-500", got[0].Color.Name)
	assert.InDelta(t, 0, got[0].Distance, 1e-6)
	assert.LessOrEqual(t, got[0].Distance, got[1].Distance)

	assert.Nil(t, p.Nearest("nope", 3))
	assert.Nil(t, p.Nearest("#fff", 0))
}
