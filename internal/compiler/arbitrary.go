package compiler

import (
	"regexp"
	"strings"

	"github.com/yacobolo/coralsense/internal/colors"
)

// valueKind is the type an arbitrary value is taken to have.
type valueKind int

const (
	kindAny valueKind = iota
	kindColor
	kindLength
	kindURL
)

// arbitraryProperty binds a utility prefix to the properties its arbitrary
// value sets, optionally restricted to one value kind.
type arbitraryProperty struct {
	prefix string
	kind   valueKind
	props  []string
	// wrap formats the value ("translateX(%s)"); empty means the raw value.
	wrap string
}

// arbitraryProperties is evaluated in order; the first prefix whose kind
// accepts the value wins. A value of unknown kind, such as var(--x), takes
// the first entry for its prefix.
var arbitraryProperties = []arbitraryProperty{
	{prefix: "min-w", props: []string{"min-width"}},
	{prefix: "max-w", props: []string{"max-width"}},
	{prefix: "min-h", props: []string{"min-height"}},
	{prefix: "max-h", props: []string{"max-height"}},
	{prefix: "w", props: []string{"width"}},
	{prefix: "h", props: []string{"height"}},
	{prefix: "size", props: []string{"width", "height"}},

	{prefix: "m", props: []string{"margin"}},
	{prefix: "mx", props: []string{"margin-inline"}},
	{prefix: "my", props: []string{"margin-block"}},
	{prefix: "mt", props: []string{"margin-top"}},
	{prefix: "mr", props: []string{"margin-right"}},
	{prefix: "mb", props: []string{"margin-bottom"}},
	{prefix: "ml", props: []string{"margin-left"}},
	{prefix: "p", props: []string{"padding"}},
	{prefix: "px", props: []string{"padding-inline"}},
	{prefix: "py", props: []string{"padding-block"}},
	{prefix: "pt", props: []string{"padding-top"}},
	{prefix: "pr", props: []string{"padding-right"}},
	{prefix: "pb", props: []string{"padding-bottom"}},
	{prefix: "pl", props: []string{"padding-left"}},
	{prefix: "gap", props: []string{"gap"}},
	{prefix: "gap-x", props: []string{"column-gap"}},
	{prefix: "gap-y", props: []string{"row-gap"}},

	{prefix: "inset", props: []string{"inset"}},
	{prefix: "top", props: []string{"top"}},
	{prefix: "right", props: []string{"right"}},
	{prefix: "bottom", props: []string{"bottom"}},
	{prefix: "left", props: []string{"left"}},
	{prefix: "z", props: []string{"z-index"}},

	{prefix: "text", kind: kindColor, props: []string{"color"}},
	{prefix: "text", props: []string{"font-size"}},
	{prefix: "bg", kind: kindColor, props: []string{"background-color"}},
	{prefix: "bg", kind: kindURL, props: []string{"background-image"}},
	{prefix: "border", kind: kindColor, props: []string{"border-color"}},
	{prefix: "border", kind: kindLength, props: []string{"border-width"}},
	{prefix: "ring", kind: kindColor, props: []string{"--tw-ring-color"}},
	{prefix: "outline", kind: kindColor, props: []string{"outline-color"}},
	{prefix: "accent", kind: kindColor, props: []string{"accent-color"}},
	{prefix: "caret", kind: kindColor, props: []string{"caret-color"}},
	{prefix: "fill", kind: kindColor, props: []string{"fill"}},
	{prefix: "stroke", kind: kindColor, props: []string{"stroke"}},
	{prefix: "decoration", kind: kindColor, props: []string{"text-decoration-color"}},

	{prefix: "rounded", props: []string{"border-radius"}},
	{prefix: "shadow", props: []string{"box-shadow"}},
	{prefix: "opacity", props: []string{"opacity"}},
	{prefix: "leading", props: []string{"line-height"}},
	{prefix: "tracking", props: []string{"letter-spacing"}},
	{prefix: "font", props: []string{"font-family"}},
	{prefix: "content", props: []string{"content"}},
	{prefix: "aspect", props: []string{"aspect-ratio"}},
	{prefix: "basis", props: []string{"flex-basis"}},
	{prefix: "grid-cols", props: []string{"grid-template-columns"}},
	{prefix: "grid-rows", props: []string{"grid-template-rows"}},
	{prefix: "duration", props: []string{"transition-duration"}},
	{prefix: "delay", props: []string{"transition-delay"}},
	{prefix: "ease", props: []string{"transition-timing-function"}},
	{prefix: "animate", props: []string{"animation"}},
	{prefix: "translate-x", props: []string{"transform"}, wrap: "translateX(%s)"},
	{prefix: "translate-y", props: []string{"transform"}, wrap: "translateY(%s)"},
	{prefix: "rotate", props: []string{"transform"}, wrap: "rotate(%s)"},
	{prefix: "scale", props: []string{"transform"}, wrap: "scale(%s)"},
}

var lengthPattern = regexp.MustCompile(`^-?[\d.]+(px|rem|em|%|vh|vw|svh|dvh|lvh|ch|ex|pt)?$`)

// typeHints are the explicit "[kind:value]" prefixes.
var typeHints = map[string]valueKind{
	"color":  kindColor,
	"length": kindLength,
	"url":    kindURL,
}

// NormalizeArbitrary replaces underscores with spaces, as in "grid-cols-[1fr_2fr]".
func NormalizeArbitrary(value string) string {
	return strings.ReplaceAll(value, "_", " ")
}

// arbitraryDeclarations resolves a bracketed utility such as "w-[200px]" or
// "[mask-type:luminance]".
func arbitraryDeclarations(utility string) ([]Declaration, bool) {
	open := strings.Index(utility, "[")
	closing := strings.LastIndex(utility, "]")
	if open < 0 || closing != len(utility)-1 || closing <= open+1 {
		return nil, false
	}
	raw := utility[open+1 : closing]

	// Arbitrary property: the whole utility is "[prop:value]".
	if open == 0 {
		prop, value, ok := strings.Cut(raw, ":")
		if !ok || prop == "" || value == "" {
			return nil, false
		}
		return []Declaration{{Property: prop, Value: NormalizeArbitrary(value)}}, true
	}

	if utility[open-1] != '-' {
		return nil, false
	}
	prefix := utility[:open-1]
	negative := strings.HasPrefix(prefix, "-")
	prefix = strings.TrimPrefix(prefix, "-")

	kind := kindAny
	value := raw
	if hint, rest, ok := strings.Cut(raw, ":"); ok {
		if k, known := typeHints[hint]; known {
			kind = k
			value = rest
		}
	}
	value = NormalizeArbitrary(value)
	if kind == kindAny {
		kind = detectKind(value)
	}
	if negative {
		value = "calc(" + value + " * -1)"
	}

	for _, ap := range arbitraryProperties {
		if ap.prefix != prefix {
			continue
		}
		if ap.kind != kindAny && kind != kindAny && ap.kind != kind {
			continue
		}
		v := value
		if ap.wrap != "" {
			v = strings.Replace(ap.wrap, "%s", value, 1)
		}
		decls := make([]Declaration, len(ap.props))
		for i, p := range ap.props {
			decls[i] = Declaration{Property: p, Value: v}
		}
		return decls, true
	}
	return nil, false
}

func detectKind(value string) valueKind {
	switch {
	case strings.HasPrefix(value, "url("):
		return kindURL
	case colors.Parse("", value) != nil:
		return kindColor
	case lengthPattern.MatchString(value):
		return kindLength
	}
	return kindAny
}
