package diagnostics

import (
	"regexp"
	"strings"

	"github.com/yacobolo/coralsense/internal/classname"
)

// propertyRule maps base classes to the CSS property they set. Directional
// forms share the shorthand's key: m-4, mx-2 and mt-1 are all "margin".
type propertyRule struct {
	property string
	pattern  *regexp.Regexp
	match    func(base string) bool
}

var (
	fontSizeKeyword  = regexp.MustCompile(`^text-(xs|sm|base|lg|xl|\d+xl)$`)
	textAlignKeyword = regexp.MustCompile(`^text-(left|center|right|justify|start|end)$`)
	textNonColor     = regexp.MustCompile(`^text-(ellipsis|clip|wrap|nowrap|balance|pretty)$`)
	borderStyle      = regexp.MustCompile(`^border-(\d|solid|dashed|dotted|double|hidden|none|collapse|separate|spacing)`)
)

// propertyRules is ordered: first match wins.
var propertyRules = []propertyRule{
	{property: "display", pattern: regexp.MustCompile(`^(flex|inline-flex|grid|inline-grid|block|inline-block|inline|hidden|contents|flow-root|table|table-row|table-cell)$`)},
	{property: "position", pattern: regexp.MustCompile(`^(static|relative|absolute|fixed|sticky)$`)},
	{property: "margin", pattern: regexp.MustCompile(`^-?m[xytblrse]?-`)},
	{property: "padding", pattern: regexp.MustCompile(`^p[xytblrse]?-`)},
	{property: "width", pattern: regexp.MustCompile(`^w-`)},
	{property: "min-width", pattern: regexp.MustCompile(`^min-w-`)},
	{property: "max-width", pattern: regexp.MustCompile(`^max-w-`)},
	{property: "height", pattern: regexp.MustCompile(`^h-`)},
	{property: "min-height", pattern: regexp.MustCompile(`^min-h-`)},
	{property: "max-height", pattern: regexp.MustCompile(`^max-h-`)},
	{property: "font-size", match: func(base string) bool {
		return fontSizeKeyword.MatchString(base) || strings.HasPrefix(base, "text-[") && isLengthArbitrary(base)
	}},
	{property: "font-weight", pattern: regexp.MustCompile(`^font-(thin|extralight|light|normal|medium|semibold|bold|extrabold|black)$`)},
	{property: "text-align", pattern: textAlignKeyword},
	{property: "color", match: func(base string) bool {
		return strings.HasPrefix(base, "text-") &&
			!fontSizeKeyword.MatchString(base) &&
			!textAlignKeyword.MatchString(base) &&
			!textNonColor.MatchString(base) &&
			!isLengthArbitrary(base)
	}},
	{property: "background-color", match: func(base string) bool {
		return strings.HasPrefix(base, "bg-") && !strings.HasPrefix(base, "bg-blend-")
	}},
	{property: "border-radius", pattern: regexp.MustCompile(`^rounded(-|$)`)},
	{property: "border-width", pattern: regexp.MustCompile(`^border(-[xytblrse])?(-\d+)?$`)},
	{property: "border-color", match: func(base string) bool {
		return strings.HasPrefix(base, "border-") && !borderStyle.MatchString(base)
	}},
	{property: "flex-direction", pattern: regexp.MustCompile(`^flex-(row|row-reverse|col|col-reverse)$`)},
	{property: "flex-wrap", pattern: regexp.MustCompile(`^flex-(wrap|wrap-reverse|nowrap)$`)},
	{property: "align-items", pattern: regexp.MustCompile(`^items-`)},
	{property: "justify-content", pattern: regexp.MustCompile(`^justify-(start|end|center|between|around|evenly|normal|stretch)$`)},
	{property: "gap", pattern: regexp.MustCompile(`^gap(-[xy])?-`)},
	{property: "opacity", pattern: regexp.MustCompile(`^opacity-`)},
	{property: "z-index", pattern: regexp.MustCompile(`^-?z-`)},
	{property: "overflow", pattern: regexp.MustCompile(`^overflow(-[xy])?-`)},
	{property: "cursor", pattern: regexp.MustCompile(`^cursor-`)},
	{property: "transition-property", pattern: regexp.MustCompile(`^transition(-|$)`)},
	{property: "transition-duration", pattern: regexp.MustCompile(`^duration-`)},
	{property: "transition-timing-function", pattern: regexp.MustCompile(`^ease-`)},
	{property: "transition-delay", pattern: regexp.MustCompile(`^delay-`)},
	{property: "transform", pattern: regexp.MustCompile(`^-?(scale|rotate|translate|skew|origin)-`)},
	{property: "box-shadow", pattern: regexp.MustCompile(`^shadow`)},
}

// isLengthArbitrary reports text-[14px]-style values, which set font-size
// rather than color.
func isLengthArbitrary(base string) bool {
	rest, ok := strings.CutPrefix(base, "text-[")
	if !ok {
		return false
	}
	return rest != "" && (rest[0] >= '0' && rest[0] <= '9' || rest[0] == '.' || strings.HasPrefix(rest, "length:"))
}

// PropertyKey returns the conflict bucket for a class: the variant chain
// joined with ":" followed by the property, or "" when the class is not
// classified.
func PropertyKey(className string) string {
	tok := classname.Parse(className)
	property := propertyFor(tok.Utility)
	if property == "" {
		return ""
	}
	if prefix := tok.VariantPrefix(); prefix != "" {
		return prefix + ":" + property
	}
	return property
}

func propertyFor(base string) string {
	for _, r := range propertyRules {
		if r.match != nil {
			if r.match(base) {
				return r.property
			}
			continue
		}
		if r.pattern.MatchString(base) {
			return r.property
		}
	}
	return ""
}

// FindConflicts warns about classes in the same variant bucket that set the
// same property. Every occurrence but the last is reported, since the last
// one wins the cascade.
func FindConflicts(locs []Location) []Diagnostic {
	var order []string
	groups := make(map[string][]Location)
	for _, loc := range locs {
		key := PropertyKey(loc.ClassName)
		if key == "" {
			continue
		}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], loc)
	}

	var out []Diagnostic
	for _, key := range order {
		group := groups[key]
		if len(group) < 2 || !hasDistinctBases(group) {
			continue
		}
		property := key[strings.LastIndex(key, ":")+1:]
		last := group[len(group)-1].ClassName
		for _, loc := range group[:len(group)-1] {
			out = append(out, Diagnostic{
				ClassName: loc.ClassName,
				Start:     loc.Start,
				End:       loc.End,
				Message:   `Potentially conflicting classes for "` + property + `". "` + last + `" will take precedence.`,
				Severity:  SeverityWarning,
				Code:      CodeConflictingClasses,
			})
		}
	}
	return out
}

func hasDistinctBases(group []Location) bool {
	_, first := classname.SplitVariants(group[0].ClassName)
	for _, loc := range group[1:] {
		if _, base := classname.SplitVariants(loc.ClassName); base != first {
			return true
		}
	}
	return false
}
