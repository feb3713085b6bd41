package diagnostics

import (
	"strings"

	"github.com/yacobolo/coralsense/internal/classname"
	"github.com/yacobolo/coralsense/internal/theme"
)

// Compiler is the stylesheet oracle. A non-empty result means every class
// it was given produced CSS.
type Compiler interface {
	Compile(classNames []string) string
}

// Validator checks single classes and whole documents against one theme.
// It is safe for concurrent use once constructed.
type Validator struct {
	compiler   Compiler
	variants   variantSet
	heuristics heuristics
	patterns   []string
}

// NewValidator builds a validator whose suggestion vocabulary is derived
// from t.
func NewValidator(t theme.Theme, c Compiler) *Validator {
	return &Validator{
		compiler:   c,
		variants:   newVariantSet(),
		heuristics: newHeuristics(t),
		patterns:   knownPatterns(t),
	}
}

// KnownPatterns returns the suggestion vocabulary.
func (v *Validator) KnownPatterns() []string {
	out := make([]string, len(v.patterns))
	copy(out, v.patterns)
	return out
}

// ValidateClass returns nil for a valid class. The returned diagnostic spans
// the whole class (Start 0, End len).
func (v *Validator) ValidateClass(className string) *Diagnostic {
	className = strings.TrimSpace(className)
	if className == "" {
		return nil
	}

	tok := classname.Parse(className)

	for _, variant := range tok.Variants {
		if d := v.variants.check(variant); d != nil {
			return v.span(d, className)
		}
	}

	if strings.ContainsAny(tok.Base, "[]") {
		return v.span(checkArbitrary(tok.Base), className)
	}

	// Variants are already checked; the oracle only has to accept the base.
	if v.compiler.Compile([]string{tok.Base}) != "" {
		return nil
	}

	d := &Diagnostic{
		Message:     `Unknown utility class: "` + className + `"`,
		Severity:    SeverityError,
		Code:        CodeUnknownClass,
		Suggestions: FindSimilar(tok.Base, v.patterns, maxClassDistance, maxClassSuggestions),
	}
	if msg := v.heuristics.detect(tok.Base); msg != "" {
		d.Message = msg
	}
	return v.span(d, className)
}

// checkArbitrary validates bracket syntax only; any balanced, non-empty
// value is accepted.
func checkArbitrary(base string) *Diagnostic {
	if strings.Count(base, "[") != strings.Count(base, "]") {
		return &Diagnostic{
			Message:  "Unbalanced brackets in arbitrary value",
			Severity: SeverityError,
			Code:     CodeUnbalancedBrackets,
		}
	}
	if strings.Contains(base, "[]") {
		return &Diagnostic{
			Message:  "Empty arbitrary value",
			Severity: SeverityError,
			Code:     CodeEmptyArbitrary,
		}
	}
	return nil
}

func (v *Validator) span(d *Diagnostic, className string) *Diagnostic {
	if d == nil {
		return nil
	}
	d.ClassName = className
	d.Start = 0
	d.End = len(className)
	return d
}

// ValidateContent validates every location, then appends conflict warnings.
// Offsets are taken from the locations.
func (v *Validator) ValidateContent(locs []Location) []Diagnostic {
	var out []Diagnostic
	for _, loc := range locs {
		d := v.ValidateClass(loc.ClassName)
		if d == nil {
			continue
		}
		d.ClassName = loc.ClassName
		d.Start = loc.Start
		d.End = loc.End
		out = append(out, *d)
	}
	return append(out, FindConflicts(locs)...)
}

// Diagnose extracts class locations from content and validates them.
func (v *Validator) Diagnose(content string) []Diagnostic {
	return v.ValidateContent(ExtractClassLocations(content))
}
