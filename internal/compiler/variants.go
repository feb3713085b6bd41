package compiler

import (
	"strings"

	"github.com/yacobolo/coralsense/internal/catalog"
)

// wrapKind says how a variant changes a rule.
type wrapKind int

const (
	wrapSuffix   wrapKind = iota // append to the selector (":hover", "[open]")
	wrapTemplate                 // replace "&" with the selector (".dark &")
	wrapAtRule                   // nest inside an at-rule ("@media print")
)

type variantWrap struct {
	kind  wrapKind
	value string
}

func classify(selector string) variantWrap {
	switch {
	case strings.HasPrefix(selector, "@"):
		return variantWrap{kind: wrapAtRule, value: selector}
	case strings.Contains(selector, "&"):
		return variantWrap{kind: wrapTemplate, value: selector}
	default:
		return variantWrap{kind: wrapSuffix, value: selector}
	}
}

// variantTable resolves variant names to wraps.
type variantTable struct {
	named   map[string]variantWrap
	pseudo  map[string]string // pseudo-class name -> selector, for group-*/peer-*
	screens map[string]string // breakpoint name -> min width
}

func newVariantTable(variants []catalog.Variant, screens map[string]string) variantTable {
	vt := variantTable{
		named:   make(map[string]variantWrap, len(variants)),
		pseudo:  make(map[string]string),
		screens: screens,
	}
	for _, v := range variants {
		sel := v.Selector
		if w, ok := screens[v.Name]; ok {
			sel = "@media (min-width: " + w + ")"
		}
		vt.named[v.Name] = classify(sel)
		if v.Order == 1 {
			vt.pseudo[v.Name] = sel
		}
	}
	for name, w := range screens {
		if _, ok := vt.named[name]; !ok {
			vt.named[name] = variantWrap{kind: wrapAtRule, value: "@media (min-width: " + w + ")"}
		}
	}
	return vt
}

// resolve maps one variant to its wrap. Unknown variants report false.
func (vt variantTable) resolve(name string) (variantWrap, bool) {
	if w, ok := vt.named[name]; ok {
		return w, true
	}

	if inner, ok := bracketed(name); ok {
		return classify(NormalizeArbitrary(inner)), true
	}

	for _, ns := range []struct{ prefix, attr string }{{"data-", "data-"}, {"aria-", "aria-"}} {
		if rest, ok := strings.CutPrefix(name, ns.prefix); ok {
			if inner, ok := bracketed(rest); ok {
				return variantWrap{kind: wrapSuffix, value: "[" + ns.attr + NormalizeArbitrary(inner) + "]"}, true
			}
		}
	}
	if rest, ok := strings.CutPrefix(name, "supports-"); ok {
		if inner, ok := bracketed(rest); ok {
			return variantWrap{kind: wrapAtRule, value: "@supports (" + NormalizeArbitrary(inner) + ")"}, true
		}
	}
	if rest, ok := strings.CutPrefix(name, "has-"); ok {
		if inner, ok := bracketed(rest); ok {
			return variantWrap{kind: wrapSuffix, value: ":has(" + NormalizeArbitrary(inner) + ")"}, true
		}
	}

	if rest, ok := strings.CutPrefix(name, "min-"); ok {
		if inner, ok := bracketed(rest); ok {
			return variantWrap{kind: wrapAtRule, value: "@media (min-width: " + inner + ")"}, true
		}
	}
	if rest, ok := strings.CutPrefix(name, "max-"); ok {
		if inner, ok := bracketed(rest); ok {
			return variantWrap{kind: wrapAtRule, value: "@media (max-width: " + inner + ")"}, true
		}
		if w, ok := vt.screens[rest]; ok {
			return variantWrap{kind: wrapAtRule, value: "@media not all and (min-width: " + w + ")"}, true
		}
	}

	for _, gp := range []struct{ prefix, template string }{
		{"group-", ".group%s &"},
		{"peer-", ".peer%s ~ &"},
	} {
		rest, ok := strings.CutPrefix(name, gp.prefix)
		if !ok {
			continue
		}
		if inner, ok := bracketed(rest); ok {
			return variantWrap{kind: wrapTemplate, value: strings.Replace(gp.template, "%s", NormalizeArbitrary(inner), 1)}, true
		}
		if sel, ok := vt.pseudo[rest]; ok {
			return variantWrap{kind: wrapTemplate, value: strings.Replace(gp.template, "%s", sel, 1)}, true
		}
	}

	return variantWrap{}, false
}

// bracketed returns the inside of "[...]".
func bracketed(s string) (string, bool) {
	if len(s) < 3 || s[0] != '[' || s[len(s)-1] != ']' {
		return "", false
	}
	return s[1 : len(s)-1], true
}
