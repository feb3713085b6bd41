package colors

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/yacobolo/coralsense/internal/classname"
	"github.com/yacobolo/coralsense/internal/theme"
)

// BasePalette collects colors without a numeric shade suffix.
const BasePalette = "base"

// MinTextContrast is the ratio SuggestTextColors requires.
const MinTextContrast = 4.5

const maxSuggestions = 10

// ClassPrefixes are the utility prefixes that carry a color name.
var ClassPrefixes = []string{
	"text-", "bg-", "border-", "ring-", "divide-", "outline-", "accent-", "caret-",
	"fill-", "stroke-", "decoration-", "shadow-", "placeholder-", "from-", "via-", "to-",
}

// Provider is a read-only color index built from one theme. It is safe for
// concurrent use.
type Provider struct {
	names []string
	index map[string]Color
}

// NewProvider indexes every parsable theme color. Unparsable literals are skipped.
func NewProvider(t theme.Theme) *Provider {
	p := &Provider{index: make(map[string]Color)}
	for _, c := range t.Colors {
		switch c.Value.Kind {
		case theme.ColorSolid:
			p.put(c.Name, c.Value.Literal)
		case theme.ColorScale:
			for _, shade := range c.Value.Shades {
				name := c.Name + "-" + shade.Key
				if shade.Key == theme.DefaultShade {
					name = c.Name
				}
				p.put(name, shade.Literal)
			}
		}
	}
	return p
}

func (p *Provider) put(name, literal string) {
	c := Parse(name, literal)
	if c == nil {
		return
	}
	if _, exists := p.index[name]; !exists {
		p.names = append(p.names, name)
	}
	p.index[name] = *c
}

// Len returns the number of indexed colors.
func (p *Provider) Len() int {
	return len(p.names)
}

// All returns every indexed color in theme order.
func (p *Provider) All() []Color {
	out := make([]Color, len(p.names))
	for i, name := range p.names {
		out[i] = p.index[name]
	}
	return out
}

// Color looks up "name" or "name/NN". The opacity form returns a copy with
// Opacity = NN/100; NN must be an integer from 0 to 100.
func (p *Provider) Color(name string) *Color {
	base, opacity, hasOpacity := strings.Cut(name, "/")
	c, ok := p.index[base]
	if !ok {
		return nil
	}
	if !hasOpacity || opacity == "" {
		return &c
	}
	n, err := strconv.Atoi(opacity)
	if err != nil || n < 0 || n > 100 {
		return nil
	}
	out := c.WithOpacity(float64(n) / 100)
	return &out
}

// Resolve accepts either an indexed color name or a color literal.
func (p *Provider) Resolve(s string) *Color {
	if c := p.Color(s); c != nil {
		return c
	}
	return Parse(s, s)
}

// FromClass returns the color a utility class refers to, ignoring variants.
func (p *Provider) FromClass(className string) *Color {
	_, base := classname.SplitVariants(strings.TrimSpace(className))
	for _, prefix := range ClassPrefixes {
		if rest, ok := strings.CutPrefix(base, prefix); ok {
			return p.Color(rest)
		}
	}
	return nil
}

// Palette groups colors sharing a name prefix.
type Palette struct {
	Name   string  `json:"name"`
	Colors []Color `json:"colors"`
}

var numericPattern = regexp.MustCompile(`^\d+$`)

// PaletteName returns the palette a color name belongs to: the name minus a
// trailing numeric segment, or BasePalette.
func PaletteName(name string) string {
	i := strings.LastIndex(name, "-")
	if i <= 0 || !numericPattern.MatchString(name[i+1:]) {
		return BasePalette
	}
	return name[:i]
}

// Palettes groups the index by palette, in order of first appearance.
func (p *Provider) Palettes() []Palette {
	var palettes []Palette
	pos := make(map[string]int)
	for _, name := range p.names {
		pn := PaletteName(name)
		i, ok := pos[pn]
		if !ok {
			i = len(palettes)
			pos[pn] = i
			palettes = append(palettes, Palette{Name: pn})
		}
		palettes[i].Colors = append(palettes[i].Colors, p.index[name])
	}
	return palettes
}

// Search returns colors whose name or hex contains query, case-insensitively.
func (p *Provider) Search(query string) []Color {
	q := strings.ToLower(query)
	var out []Color
	for _, name := range p.names {
		c := p.index[name]
		if strings.Contains(strings.ToLower(name), q) || strings.Contains(c.Hex, q) {
			out = append(out, c)
		}
	}
	return out
}

// ContrastRatio returns the ratio between two colors given by name or
// literal, or 0 if either cannot be resolved.
func (p *Provider) ContrastRatio(a, b string) float64 {
	ca, cb := p.Resolve(a), p.Resolve(b)
	if ca == nil || cb == nil {
		return 0
	}
	return ContrastRatio(ca.RGB, cb.RGB)
}

// MeetsWCAG checks a pair against level.
func (p *Provider) MeetsWCAG(a, b string, level Level) WCAGResult {
	return level.Evaluate(p.ContrastRatio(a, b))
}

// Suggestion pairs a color with its contrast against a background.
type Suggestion struct {
	Color Color   `json:"color"`
	Ratio float64 `json:"ratio"`
}

// SuggestTextColors ranks indexed colors readable on background (ratio of at
// least MinTextContrast), highest contrast first, at most ten.
func (p *Provider) SuggestTextColors(background string) []Suggestion {
	bg := p.Resolve(background)
	if bg == nil {
		return nil
	}

	var out []Suggestion
	for _, name := range p.names {
		c := p.index[name]
		if ratio := ContrastRatio(bg.RGB, c.RGB); ratio >= MinTextContrast {
			out = append(out, Suggestion{Color: c, Ratio: ratio})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Ratio > out[j].Ratio
	})
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// Match is a color with its perceptual distance from a target.
type Match struct {
	Color    Color   `json:"color"`
	Distance float64 `json:"distance"`
}

// Nearest returns the n indexed colors perceptually closest (CIEDE2000) to
// target, which may be a name or a literal.
func (p *Provider) Nearest(target string, n int) []Match {
	t := p.Resolve(target)
	if t == nil || n <= 0 {
		return nil
	}
	tc := t.Colorful()

	out := make([]Match, 0, len(p.names))
	for _, name := range p.names {
		c := p.index[name]
		out = append(out, Match{Color: c, Distance: tc.DistanceCIEDE2000(c.Colorful())})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
