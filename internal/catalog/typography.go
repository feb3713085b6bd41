package catalog

import (
	"github.com/yacobolo/coralsense/internal/theme"
)

func typography(t theme.Theme) []Entry {
	b := newBuilder(CategoryTypography)

	for _, tok := range t.FontSize {
		b.add(30, "text-"+tok.Key, "font-size: "+tok.Value+";", "Set font size to "+tok.Value)
	}
	for _, tok := range t.FontWeight {
		b.add(31, "font-"+tok.Key, "font-weight: "+tok.Value+";", "Set font weight to "+tok.Value)
	}
	for _, tok := range t.FontFamily {
		b.add(32, "font-"+tok.Key, "font-family: "+tok.Value+";", "Use "+tok.Key+" font family")
	}
	for _, tok := range t.LetterSpacing {
		b.add(33, "tracking-"+tok.Key, "letter-spacing: "+tok.Value+";", "Set letter spacing to "+tok.Value)
	}
	for _, tok := range t.LineHeight {
		b.add(34, "leading-"+tok.Key, "line-height: "+tok.Value+";", "Set line height to "+tok.Value)
	}

	for _, align := range []string{"left", "center", "right", "justify", "start", "end"} {
		b.add(35, "text-"+align, "text-align: "+align+";", "Align text to "+align)
	}

	b.add(36, "underline", "text-decoration-line: underline;", "Add underline")
	b.add(36, "overline", "text-decoration-line: overline;", "Add overline")
	b.add(36, "line-through", "text-decoration-line: line-through;", "Add strikethrough")
	b.add(36, "no-underline", "text-decoration-line: none;", "Remove text decoration")

	b.add(37, "uppercase", "text-transform: uppercase;", "Transform to uppercase")
	b.add(37, "lowercase", "text-transform: lowercase;", "Transform to lowercase")
	b.add(37, "capitalize", "text-transform: capitalize;", "Capitalize each word")
	b.add(37, "normal-case", "text-transform: none;", "No text transform")

	b.add(38, "truncate", "overflow: hidden; text-overflow: ellipsis; white-space: nowrap;", "Truncate text with ellipsis")
	b.add(38, "text-ellipsis", "text-overflow: ellipsis;", "Use ellipsis for overflow")
	b.add(38, "text-clip", "text-overflow: clip;", "Clip overflowing text")
	b.add(38, "text-wrap", "text-wrap: wrap;", "Allow text wrapping")
	b.add(38, "text-nowrap", "text-wrap: nowrap;", "Prevent text wrapping")
	b.add(38, "text-balance", "text-wrap: balance;", "Balance text across lines")
	b.add(38, "text-pretty", "text-wrap: pretty;", "Pretty text wrapping")

	for _, ws := range []string{"normal", "nowrap", "pre", "pre-line", "pre-wrap", "break-spaces"} {
		b.add(39, "whitespace-"+ws, "white-space: "+ws+";", "Set white-space to "+ws)
	}

	b.add(40, "break-normal", "overflow-wrap: normal; word-break: normal;", "Normal word breaks")
	b.add(40, "break-words", "overflow-wrap: break-word;", "Break words to prevent overflow")
	b.add(40, "break-all", "word-break: break-all;", "Break anywhere")
	b.add(40, "break-keep", "word-break: keep-all;", "Keep words together")

	return b.entries
}
