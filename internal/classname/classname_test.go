package classname

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitVariants(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantVariants []string
		wantBase     string
	}{
		{name: "no variants", raw: "flex", wantBase: "flex"},
		{name: "single variant", raw: "hover:bg-red-500", wantVariants: []string{"hover"}, wantBase: "bg-red-500"},
		{name: "chain keeps order", raw: "md:dark:hover:p-4", wantVariants: []string{"md", "dark", "hover"}, wantBase: "p-4"},
		{name: "colon inside arbitrary variant", raw: "supports-[display:grid]:grid", wantVariants: []string{"supports-[display:grid]"}, wantBase: "grid"},
		{name: "colon inside arbitrary value", raw: "[mask-type:luminance]", wantBase: "[mask-type:luminance]"},
		{name: "arbitrary selector variant", raw: "[&>*]:p-2", wantVariants: []string{"[&>*]"}, wantBase: "p-2"},
		{name: "empty base", raw: "hover:", wantVariants: []string{"hover"}, wantBase: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variants, base := SplitVariants(tt.raw)
			require.Equal(t, tt.wantVariants, variants)
			require.Equal(t, tt.wantBase, base)
		})
	}
}

func TestParse(t *testing.T) {
	half := 0.5
	five := 0.05
	sixtyFive := 0.65

	tests := []struct {
		name string
		raw  string
		want Token
	}{
		{
			name: "plain",
			raw:  "flex",
			want: Token{Raw: "flex", Base: "flex", Utility: "flex"},
		},
		{
			name: "opacity modifier on shade",
			raw:  "hover:bg-red-500/50",
			want: Token{Raw: "hover:bg-red-500/50", Variants: []string{"hover"}, Base: "bg-red-500/50", Utility: "bg-red-500", Opacity: &half},
		},
		{
			name: "opacity modifier on solid",
			raw:  "text-black/5",
			want: Token{Raw: "text-black/5", Base: "text-black/5", Utility: "text-black", Opacity: &five},
		},
		{
			name: "fraction is not opacity",
			raw:  "w-1/2",
			want: Token{Raw: "w-1/2", Base: "w-1/2", Utility: "w-1/2"},
		},
		{
			name: "opacity above the shade number",
			raw:  "bg-red-50/65",
			want: Token{Raw: "bg-red-50/65", Base: "bg-red-50/65", Utility: "bg-red-50", Opacity: &sixtyFive},
		},
		{
			name: "negative translate fraction",
			raw:  "-translate-x-1/2",
			want: Token{Raw: "-translate-x-1/2", Base: "-translate-x-1/2", Utility: "-translate-x-1/2"},
		},
		{
			name: "inset fraction",
			raw:  "md:inset-x-3/4",
			want: Token{Raw: "md:inset-x-3/4", Variants: []string{"md"}, Base: "inset-x-3/4", Utility: "inset-x-3/4"},
		},
		{
			name: "arbitrary value",
			raw:  "  w-[200px] ",
			want: Token{Raw: "w-[200px]", Base: "w-[200px]", Utility: "w-[200px]", ArbitraryValue: "200px", Arbitrary: true},
		},
		{
			name: "arbitrary color with opacity",
			raw:  "bg-[#ff6b6b]/50",
			want: Token{Raw: "bg-[#ff6b6b]/50", Base: "bg-[#ff6b6b]/50", Utility: "bg-[#ff6b6b]", ArbitraryValue: "#ff6b6b", Arbitrary: true, Opacity: &half},
		},
		{
			name: "unbalanced bracket",
			raw:  "w-[200px",
			want: Token{Raw: "w-[200px", Base: "w-[200px", Utility: "w-[200px", Arbitrary: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func TestVariantPrefix(t *testing.T) {
	assert.Equal(t, "md:hover", Parse("md:hover:flex").VariantPrefix())
	assert.Equal(t, "", Parse("flex").VariantPrefix())
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"flex", "flex"},
		{"hover:bg-red-500", `hover\:bg-red-500`},
		{"w-1/2", `w-1\/2`},
		{"p-0.5", `p-0\.5`},
		{"w-[200px]", `w-\[200px\]`},
		{"2xl:flex", `\32 xl\:flex`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}
