package diagnostics

import (
	"strings"

	"github.com/yacobolo/coralsense/internal/catalog"
)

// extraVariants are accepted without having a completion entry.
var extraVariants = []string{"group-focus-within", "peer-disabled", "has"}

// arbitraryNamespaces take a bracketed condition ("data-[state=open]").
var arbitraryNamespaces = []string{"data-[", "aria-[", "supports-[", "has-["}

// variantSet is the fixed variant grammar, kept in suggestion order.
type variantSet struct {
	names []string
	known map[string]bool
}

func newVariantSet() variantSet {
	vs := variantSet{known: make(map[string]bool)}
	add := func(name string) {
		if !vs.known[name] {
			vs.known[name] = true
			vs.names = append(vs.names, name)
		}
	}
	for _, v := range catalog.Variants() {
		add(v.Name)
	}
	for _, name := range extraVariants {
		add(name)
	}
	return vs
}

// check returns a diagnostic for an unrecognized variant, or nil.
func (vs variantSet) check(variant string) *Diagnostic {
	if vs.valid(variant) {
		return nil
	}

	var suggestions []string
	for _, s := range FindSimilar(variant, vs.names, maxVariantDistance, maxVariantSuggestions) {
		suggestions = append(suggestions, s+":")
	}
	return &Diagnostic{
		Message:     `Unknown variant: "` + variant + `"`,
		Severity:    SeverityError,
		Code:        CodeUnknownVariant,
		Suggestions: suggestions,
	}
}

func (vs variantSet) valid(variant string) bool {
	if strings.HasPrefix(variant, "[") && strings.HasSuffix(variant, "]") {
		return true
	}
	for _, ns := range arbitraryNamespaces {
		if strings.HasPrefix(variant, ns) {
			return true
		}
	}
	if (strings.HasPrefix(variant, "group-") || strings.HasPrefix(variant, "peer-")) &&
		strings.Contains(variant, "[") {
		return true
	}

	if vs.known[variant] {
		return true
	}
	if rest, ok := strings.CutPrefix(variant, "max-"); ok && vs.known[rest] {
		return true
	}
	if strings.HasPrefix(variant, "min-") && strings.Contains(variant, "[") {
		return true
	}
	return false
}
