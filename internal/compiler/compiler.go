// Package compiler turns utility class names into CSS rules. It is the
// authority the validator consults to decide whether a themed utility exists.
package compiler

import (
	"strconv"
	"strings"

	"github.com/yacobolo/coralsense/internal/catalog"
	"github.com/yacobolo/coralsense/internal/classname"
	"github.com/yacobolo/coralsense/internal/theme"
)

// Rule is one compiled class.
type Rule struct {
	ClassName    string        `json:"className"`
	Selector     string        `json:"selector"`
	AtRules      []string      `json:"atRules,omitempty"` // outermost first
	Declarations []Declaration `json:"declarations"`
}

// String renders the rule as indented CSS.
func (r Rule) String() string {
	var b strings.Builder
	indent := ""
	for _, at := range r.AtRules {
		b.WriteString(indent + at + " {\n")
		indent += "  "
	}
	b.WriteString(indent + r.Selector + " {\n")
	for _, d := range r.Declarations {
		b.WriteString(indent + "  " + d.String() + "\n")
	}
	b.WriteString(indent + "}\n")
	for i := len(r.AtRules) - 1; i >= 0; i-- {
		indent = indent[:len(indent)-2]
		b.WriteString(indent + "}\n")
	}
	return b.String()
}

// utility is a catalog entry pre-split for compilation.
type utility struct {
	suffix string // nested selector such as "> * + *"
	decls  []Declaration
}

// Compiler is immutable after New and safe for concurrent use.
type Compiler struct {
	utilities map[string]utility
	variants  variantTable
}

// New indexes entries by label. When labels repeat, the first entry wins.
func New(t theme.Theme, entries []catalog.Entry) *Compiler {
	c := &Compiler{utilities: make(map[string]utility, len(entries))}
	for _, e := range entries {
		if _, exists := c.utilities[e.Label]; exists {
			continue
		}
		suffix, body := splitNested(e.CSS)
		c.utilities[e.Label] = utility{suffix: suffix, decls: ParseDeclarations(body)}
	}

	screens := make(map[string]string, len(t.Screens))
	for _, s := range t.Screens {
		screens[s.Key] = s.Value
	}
	c.variants = newVariantTable(catalog.Variants(), screens)
	return c
}

// Compile returns the CSS for every class that resolves, in input order.
// Classes that do not resolve contribute nothing, so an empty result means
// none of them exist.
func (c *Compiler) Compile(classNames []string) string {
	var b strings.Builder
	for _, name := range classNames {
		if r, ok := c.Rule(name); ok {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(r.String())
		}
	}
	return b.String()
}

// Rule compiles a single class.
func (c *Compiler) Rule(className string) (Rule, bool) {
	tok := classname.Parse(className)
	if tok.Base == "" {
		return Rule{}, false
	}

	decls, suffix, ok := c.declarations(tok)
	if !ok || len(decls) == 0 {
		return Rule{}, false
	}

	r := Rule{
		ClassName:    tok.Raw,
		Selector:     "." + classname.Escape(tok.Raw),
		Declarations: decls,
	}
	for _, v := range tok.Variants {
		w, ok := c.variants.resolve(v)
		if !ok {
			return Rule{}, false
		}
		switch w.kind {
		case wrapSuffix:
			r.Selector += w.value
		case wrapTemplate:
			r.Selector = strings.ReplaceAll(w.value, "&", r.Selector)
		case wrapAtRule:
			r.AtRules = append(r.AtRules, w.value)
		}
	}
	if suffix != "" {
		r.Selector += " " + suffix
	}
	return r, true
}

// Lookup reports the declarations of a base utility without variants.
func (c *Compiler) Lookup(base string) ([]Declaration, bool) {
	decls, _, ok := c.declarations(classname.Parse(base))
	return decls, ok && len(decls) > 0
}

func (c *Compiler) declarations(tok classname.Token) ([]Declaration, string, bool) {
	if u, ok := c.utilities[tok.Base]; ok {
		return u.decls, u.suffix, true
	}

	if tok.Arbitrary {
		decls, ok := arbitraryDeclarations(tok.Utility)
		if !ok {
			return nil, "", false
		}
		if tok.Opacity != nil {
			decls = append(decls, opacityDeclaration(*tok.Opacity))
		}
		return decls, "", true
	}

	if tok.Opacity == nil || tok.Utility == tok.Base {
		return nil, "", false
	}
	u, ok := c.utilities[tok.Utility]
	if !ok || !isColorUtility(u.decls) {
		return nil, "", false
	}
	decls := make([]Declaration, 0, len(u.decls)+1)
	decls = append(decls, u.decls...)
	decls = append(decls, opacityDeclaration(*tok.Opacity))
	return decls, u.suffix, true
}

func opacityDeclaration(o float64) Declaration {
	return Declaration{Property: "opacity", Value: strconv.Itoa(int(o*100+0.5)) + "%"}
}

// colorProperties are the properties an opacity modifier may qualify.
var colorProperties = map[string]bool{
	"color":                 true,
	"background-color":      true,
	"border-color":          true,
	"outline-color":         true,
	"accent-color":          true,
	"caret-color":           true,
	"fill":                  true,
	"stroke":                true,
	"text-decoration-color": true,
	"--tw-ring-color":       true,
	"--tw-shadow-color":     true,
}

func isColorUtility(decls []Declaration) bool {
	return len(decls) == 1 && colorProperties[decls[0].Property]
}
