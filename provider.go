package coralsense

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/yacobolo/coralsense/internal/catalog"
	"github.com/yacobolo/coralsense/internal/classname"
	"github.com/yacobolo/coralsense/internal/colors"
	"github.com/yacobolo/coralsense/internal/compiler"
	"github.com/yacobolo/coralsense/internal/diagnostics"
	"github.com/yacobolo/coralsense/internal/theme"
)

// Provider answers editor questions for one theme. Everything is built once
// in NewProvider; a Provider is read-only afterwards and safe for concurrent
// use. A new theme needs a new Provider.
type Provider struct {
	theme     theme.Theme
	entries   []catalog.Entry
	variants  []catalog.Entry
	labels    map[string]int
	colors    *colors.Provider
	compiler  *compiler.Compiler
	validator *diagnostics.Validator
}

// NewProvider builds the catalog, color index, compiler and validator for t.
func NewProvider(t theme.Theme) *Provider {
	entries := catalog.Generate(t)
	comp := compiler.New(t, entries)

	p := &Provider{
		theme:     t,
		entries:   entries,
		variants:  catalog.GenerateVariants(),
		labels:    make(map[string]int, len(entries)),
		colors:    colors.NewProvider(t),
		compiler:  comp,
		validator: diagnostics.NewValidator(t, comp),
	}
	for i, e := range entries {
		if _, ok := p.labels[e.Label]; !ok {
			p.labels[e.Label] = i
		}
	}
	return p
}

// Theme returns the theme the provider was built from.
func (p *Provider) Theme() theme.Theme { return p.theme }

// Catalog returns a copy of the utility completions.
func (p *Provider) Catalog() []catalog.Entry {
	out := make([]catalog.Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Variants returns a copy of the variant completions.
func (p *Provider) Variants() []catalog.Entry {
	out := make([]catalog.Entry, len(p.variants))
	copy(out, p.variants)
	return out
}

// Colors returns the color index.
func (p *Provider) Colors() *colors.Provider { return p.colors }

// Compiler returns the catalog-backed stylesheet compiler.
func (p *Provider) Compiler() *compiler.Compiler { return p.compiler }

// Validator returns the class validator.
func (p *Provider) Validator() *diagnostics.Validator { return p.validator }

// Completions filters the catalog for a typed prefix. After a ":" only
// utilities are offered, matched against the text after the last ":".
// Otherwise inVariant restricts results to variants.
func (p *Provider) Completions(prefix string, inVariant bool) []catalog.Entry {
	if i := strings.LastIndex(prefix, ":"); i >= 0 {
		return catalog.Filter(p.entries, prefix[i+1:])
	}
	if inVariant {
		return catalog.Filter(p.variants, prefix)
	}
	all := make([]catalog.Entry, 0, len(p.entries)+len(p.variants))
	all = append(all, p.entries...)
	all = append(all, p.variants...)
	return catalog.Filter(all, prefix)
}

// HoverInfo describes one class for a hover card.
type HoverInfo struct {
	ClassName    string                      `json:"className"`
	Base         string                      `json:"base"`
	Variants     []string                    `json:"variants,omitempty"`
	Category     string                      `json:"category,omitempty"`
	Description  string                      `json:"description,omitempty"`
	CSS          string                      `json:"css"`
	Color        string                      `json:"color,omitempty"`
	Nearest      string                      `json:"nearest,omitempty"`
	Declarations []compiler.DeclarationGroup `json:"declarations,omitempty"`
}

const arbitraryCategory = "arbitrary"

// Hover describes className, or returns nil when it is empty or unknown.
func (p *Provider) Hover(className string) *HoverInfo {
	className = strings.TrimSpace(className)
	if className == "" {
		return nil
	}
	tok := classname.Parse(className)

	decls, ok := p.compiler.Lookup(tok.Base)
	if !ok {
		return nil
	}

	info := &HoverInfo{
		ClassName:    className,
		Base:         tok.Base,
		Variants:     tok.Variants,
		Declarations: compiler.GroupDeclarations(decls),
	}

	if e, ok := p.entry(tok); ok {
		info.Category = e.Category
		info.Description = e.Description
		info.Color = e.Color
		info.CSS = e.CSS
	} else if tok.Arbitrary {
		info.Category = arbitraryCategory
		info.Description = "Arbitrary value " + tok.ArbitraryValue
		if c := colors.Parse("", compiler.NormalizeArbitrary(tok.ArbitraryValue)); c != nil {
			info.Color = c.Hex
			if m := p.colors.Nearest(c.Hex, 1); len(m) > 0 {
				info.Nearest = m[0].Color.Name
			}
		}
	}

	if c := p.colors.FromClass(className); c != nil {
		info.Color = c.Hex
		if c.RGBA != "" {
			info.Color = c.RGBA
		}
	}

	if r, ok := p.compiler.Rule(className); ok {
		info.CSS = strings.TrimSuffix(r.String(), "\n")
	} else if info.CSS == "" {
		info.CSS = compiler.FormatDeclarations(decls)
	}
	return info
}

func (p *Provider) entry(tok classname.Token) (catalog.Entry, bool) {
	for _, label := range []string{tok.Base, tok.Utility} {
		if i, ok := p.labels[label]; ok {
			return p.entries[i], true
		}
	}
	return catalog.Entry{}, false
}

// HoverMarkdown renders a hover card as markdown.
func HoverMarkdown(info *HoverInfo) string {
	if info == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("**`" + info.ClassName + "`**")
	if info.Description != "" {
		b.WriteString("\n" + info.Description)
	}
	if len(info.Variants) > 0 {
		quoted := make([]string, len(info.Variants))
		for i, v := range info.Variants {
			quoted[i] = "`" + v + "`"
		}
		b.WriteString("\n*Variants:* " + strings.Join(quoted, ", "))
	}
	if info.Color != "" {
		b.WriteString("\n**Color:** " + info.Color)
		if info.Nearest != "" {
			b.WriteString(" (nearest theme color: `" + info.Nearest + "`)")
		}
	}
	if info.CSS != "" {
		b.WriteString("\n```css\n" + info.CSS + "\n```")
	}
	return b.String()
}

// Validate checks a single class.
func (p *Provider) Validate(className string) *diagnostics.Diagnostic {
	return p.validator.ValidateClass(className)
}

// Diagnose validates every class attribute in content and reports conflicts.
func (p *Provider) Diagnose(content string) []diagnostics.Diagnostic {
	return p.validator.Diagnose(content)
}

// ColorLocation is a class in content that resolves to a theme color.
// Red, Green, Blue and Alpha are normalized to [0, 1].
type ColorLocation struct {
	diagnostics.Location
	Color colors.Color `json:"color"`
	Red   float64      `json:"red"`
	Green float64      `json:"green"`
	Blue  float64      `json:"blue"`
	Alpha float64      `json:"alpha"`
}

// ColorLocations finds color-carrying classes in content.
func (p *Provider) ColorLocations(content string) []ColorLocation {
	var out []ColorLocation
	for _, loc := range diagnostics.ExtractClassLocations(content) {
		c := p.colors.FromClass(loc.ClassName)
		if c == nil {
			continue
		}
		alpha := 1.0
		if c.Opacity != nil {
			alpha = *c.Opacity
		}
		out = append(out, ColorLocation{
			Location: loc,
			Color:    *c,
			Red:      float64(c.RGB.R) / 255,
			Green:    float64(c.RGB.G) / 255,
			Blue:     float64(c.RGB.B) / 255,
			Alpha:    alpha,
		})
	}
	return out
}

// ColorPresentations lists the ways a picked color can be written back.
// The class itself always comes first; a translucent pick adds an opacity
// modifier.
func (p *Provider) ColorPresentations(alpha float64, className string) []string {
	out := []string{className}
	if alpha < 1 {
		base, _, _ := strings.Cut(className, "/")
		out = append(out, base+"/"+strconv.Itoa(int(math.Round(alpha*100))))
	}
	return out
}

// ArbitraryHint documents the value expected inside "prefix-[".
type ArbitraryHint struct {
	Label     string `json:"label"`
	Doc       string `json:"doc"`
	Example   string `json:"example"`
	Parameter string `json:"parameter"`
}

var (
	arbitraryInput = regexp.MustCompile(`^([\w-]+?)-\[([^\]]*)$`)
	hintParameter  = regexp.MustCompile(`<[^>]+>`)
)

var arbitraryHints = map[string]ArbitraryHint{
	"w":           {Label: "w-[<length>]", Doc: "Custom width", Example: "w-[250px]"},
	"h":           {Label: "h-[<length>]", Doc: "Custom height", Example: "h-[100vh]"},
	"m":           {Label: "m-[<length>]", Doc: "Custom margin", Example: "m-[1.5rem]"},
	"p":           {Label: "p-[<length>]", Doc: "Custom padding", Example: "p-[10px]"},
	"text":        {Label: "text-[<size>|<color>]", Doc: "Custom font size or color", Example: "text-[14px] or text-[#ff6b6b]"},
	"bg":          {Label: "bg-[<color>|<url>]", Doc: "Custom background color or image", Example: "bg-[#ff6b6b] or bg-[url(...)]"},
	"border":      {Label: "border-[<width>|<color>]", Doc: "Custom border", Example: "border-[3px] or border-[#ccc]"},
	"rounded":     {Label: "rounded-[<radius>]", Doc: "Custom border radius", Example: "rounded-[20px]"},
	"grid-cols":   {Label: "grid-cols-[<template>]", Doc: "Custom grid columns", Example: "grid-cols-[1fr_2fr_1fr]"},
	"grid-rows":   {Label: "grid-rows-[<template>]", Doc: "Custom grid rows", Example: "grid-rows-[auto_1fr_auto]"},
	"gap":         {Label: "gap-[<length>]", Doc: "Custom gap", Example: "gap-[2rem]"},
	"top":         {Label: "top-[<length>]", Doc: "Custom top offset", Example: "top-[72px]"},
	"left":        {Label: "left-[<length>]", Doc: "Custom left offset", Example: "left-[50%]"},
	"translate-x": {Label: "translate-x-[<length>]", Doc: "Custom X translation", Example: "translate-x-[50%]"},
	"translate-y": {Label: "translate-y-[<length>]", Doc: "Custom Y translation", Example: "translate-y-[-20px]"},
	"rotate":      {Label: "rotate-[<angle>]", Doc: "Custom rotation", Example: "rotate-[17deg]"},
	"scale":       {Label: "scale-[<ratio>]", Doc: "Custom scale", Example: "scale-[1.15]"},
	"z":           {Label: "z-[<number>]", Doc: "Custom z-index", Example: "z-[9999]"},
	"shadow":      {Label: "shadow-[<shadow>]", Doc: "Custom box shadow", Example: "shadow-[0_4px_12px_rgba(0,0,0,0.1)]"},
}

// ArbitraryHint returns a hint for a partially typed arbitrary value such as
// "w-[25", or nil when the prefix has none.
func (p *Provider) ArbitraryHint(partial string) *ArbitraryHint {
	_, base := classname.SplitVariants(partial)
	m := arbitraryInput.FindStringSubmatch(base)
	if m == nil {
		return nil
	}
	hint, ok := arbitraryHints[m[1]]
	if !ok {
		return nil
	}
	hint.Parameter = hintParameter.FindString(hint.Label)
	return &hint
}

// Position is a 0-based line and byte column.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// PositionAt converts a byte offset into content to a line and column.
// Offsets outside content are clamped.
func PositionAt(content string, offset int) Position {
	offset = max(0, min(offset, len(content)))
	before := content[:offset]
	return Position{
		Line:      strings.Count(before, "\n"),
		Character: offset - (strings.LastIndex(before, "\n") + 1),
	}
}
