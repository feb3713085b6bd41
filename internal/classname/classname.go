// Package classname decomposes utility-class tokens into their variant chain,
// base utility and modifiers.
package classname

import (
	"strconv"
	"strings"
)

// Token is the parsed shape of one utility class such as "md:hover:bg-red-500/50".
type Token struct {
	Raw            string   // "md:hover:bg-red-500/50"
	Variants       []string // ["md", "hover"], in written order
	Base           string   // "bg-red-500/50"
	Utility        string   // "bg-red-500" (Base without the opacity modifier)
	ArbitraryValue string   // "200px" for "w-[200px]"
	Arbitrary      bool     // true when Base carries a bracket
	Opacity        *float64 // 0.5 for "/50"
}

// VariantPrefix returns the variant chain joined with ":" ("" when unprefixed).
func (t Token) VariantPrefix() string {
	return strings.Join(t.Variants, ":")
}

// Parse decomposes a raw class token.
func Parse(raw string) Token {
	raw = strings.TrimSpace(raw)
	variants, base := SplitVariants(raw)

	tok := Token{
		Raw:      raw,
		Variants: variants,
		Base:     base,
		Utility:  base,
	}

	if strings.ContainsAny(base, "[]") {
		tok.Arbitrary = true
		open := strings.Index(base, "[")
		closing := strings.LastIndex(base, "]")
		if open >= 0 && closing > open {
			tok.ArbitraryValue = base[open+1 : closing]
			if rest := base[closing+1:]; strings.HasPrefix(rest, "/") {
				if op, ok := parseOpacity(rest[1:]); ok {
					tok.Opacity = &op
					tok.Utility = base[:closing+1]
				}
			}
		}
		return tok
	}

	idx := strings.LastIndex(base, "/")
	if idx <= 0 {
		return tok
	}
	stem, mod := base[:idx], base[idx+1:]
	if isFraction(stem, mod) {
		return tok
	}
	if op, ok := parseOpacity(mod); ok {
		tok.Opacity = &op
		tok.Utility = stem
	}
	return tok
}

// SplitVariants splits on ":" outside brackets and parentheses. The last
// segment is the base; earlier segments are variants.
func SplitVariants(raw string) (variants []string, base string) {
	depth := 0
	start := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				variants = append(variants, raw[start:i])
				start = i + 1
			}
		}
	}
	return variants, raw[start:]
}

// fractionUtilities are the utility families that accept "n/d" values.
var fractionUtilities = map[string]bool{
	"w": true, "h": true, "size": true, "basis": true,
	"min-w": true, "max-w": true, "min-h": true, "max-h": true,
	"inset": true, "inset-x": true, "inset-y": true,
	"top": true, "right": true, "bottom": true, "left": true, "start": true, "end": true,
	"translate-x": true, "translate-y": true,
}

// isFraction reports whether "stem/mod" is a sizing fraction such as "w-1/2"
// rather than an opacity modifier such as "bg-red-50/75".
func isFraction(stem, mod string) bool {
	if _, err := strconv.Atoi(mod); err != nil {
		return false
	}
	dash := strings.LastIndex(stem, "-")
	if dash <= 0 {
		return false
	}
	if _, err := strconv.Atoi(stem[dash+1:]); err != nil {
		return false
	}
	return fractionUtilities[strings.TrimPrefix(stem[:dash], "-")]
}

func parseOpacity(s string) (float64, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return float64(n) / 100, true
}

// Escape escapes a class name for use in a CSS class selector.
func Escape(className string) string {
	var b strings.Builder
	for i := 0; i < len(className); i++ {
		c := className[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c >= 0x80:
			b.WriteByte(c)
		case c >= '0' && c <= '9':
			if i == 0 {
				b.WriteString(`\3`)
				b.WriteByte(c)
				b.WriteByte(' ')
				continue
			}
			b.WriteByte(c)
		case c == '-':
			b.WriteByte(c)
		default:
			b.WriteByte('\\')
			b.WriteByte(c)
		}
	}
	return b.String()
}
