// Package theme holds the normalized design-token table that drives the
// completion catalog, the validator and the color model.
package theme

// Token is one step of a design scale.
type Token struct {
	Key   string // "4"
	Value string // "1rem"
}

// Scale is an ordered design scale. Order is preserved from the source so
// generated completions are stable.
type Scale []Token

// Keys returns the scale keys in order.
func (s Scale) Keys() []string {
	keys := make([]string, len(s))
	for i, t := range s {
		keys[i] = t.Key
	}
	return keys
}

// Get returns the value stored under key.
func (s Scale) Get(key string) (string, bool) {
	for _, t := range s {
		if t.Key == key {
			return t.Value, true
		}
	}
	return "", false
}

// ColorKind distinguishes a single color literal from a shade scale.
type ColorKind int

const (
	// ColorSolid is a bare literal such as "#000000".
	ColorSolid ColorKind = iota
	// ColorScale is a family of shades such as coral-50 … coral-950.
	ColorScale
)

// DefaultShade is the shade key elided from labels ("bg-brand" instead of "bg-brand-DEFAULT").
const DefaultShade = "DEFAULT"

// Shade is one step of a color scale.
type Shade struct {
	Key     string // "500" or "DEFAULT"
	Literal string // "#ef4444"
}

// ColorValue is a resolved theme color. Exactly one of Literal or Shades is
// meaningful, selected by Kind.
type ColorValue struct {
	Kind    ColorKind
	Literal string
	Shades  []Shade
}

// Solid builds a single-literal color.
func Solid(literal string) ColorValue {
	return ColorValue{Kind: ColorSolid, Literal: literal}
}

// ShadeScale builds a shade-scale color.
func ShadeScale(shades ...Shade) ColorValue {
	return ColorValue{Kind: ColorScale, Shades: shades}
}

// Shade returns the literal for a shade key of a scale color.
func (c ColorValue) Shade(key string) (string, bool) {
	for _, s := range c.Shades {
		if s.Key == key {
			return s.Literal, true
		}
	}
	return "", false
}

// NamedColor pairs a color name with its value.
type NamedColor struct {
	Name  string
	Value ColorValue
}

// Theme is the read-only design-token table. A provider is built once per
// theme; nothing mutates a Theme after construction.
type Theme struct {
	Colors        []NamedColor
	Spacing       Scale
	FontSize      Scale
	FontWeight    Scale
	FontFamily    Scale
	LineHeight    Scale
	LetterSpacing Scale
	Screens       Scale
}

// Color looks up a color by name.
func (t Theme) Color(name string) (ColorValue, bool) {
	for _, c := range t.Colors {
		if c.Name == name {
			return c.Value, true
		}
	}
	return ColorValue{}, false
}

// FlatColors expands the theme colors into (name, literal) pairs where scale
// shades are named "{color}-{shade}" and DEFAULT shades take the bare name.
func (t Theme) FlatColors() []Token {
	var out []Token
	for _, c := range t.Colors {
		switch c.Value.Kind {
		case ColorSolid:
			out = append(out, Token{Key: c.Name, Value: c.Value.Literal})
		case ColorScale:
			for _, s := range c.Value.Shades {
				name := c.Name + "-" + s.Key
				if s.Key == DefaultShade {
					name = c.Name
				}
				out = append(out, Token{Key: name, Value: s.Literal})
			}
		}
	}
	return out
}
