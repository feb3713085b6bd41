// Package colors parses theme color literals and answers color and
// accessibility questions about them.
package colors

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB holds 0-255 channels.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds hue in degrees and saturation/lightness in percent.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// Color is a parsed color. Hex, RGB and HSL are always derived from the
// same parse and never edited independently.
type Color struct {
	Name    string   `json:"name"`
	Hex     string   `json:"hex"`
	RGB     RGB      `json:"rgb"`
	HSL     HSL      `json:"hsl"`
	Opacity *float64 `json:"opacity,omitempty"`
	RGBA    string   `json:"rgba,omitempty"`
	HSLA    string   `json:"hsla,omitempty"`
}

// Colorful converts the color for perceptual math.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.RGB.R) / 255,
		G: float64(c.RGB.G) / 255,
		B: float64(c.RGB.B) / 255,
	}
}

// WithOpacity returns a copy carrying opacity and the derived rgba/hsla
// strings. The receiver is not modified.
func (c Color) WithOpacity(opacity float64) Color {
	out := c
	out.Opacity = &opacity
	out.RGBA = rgbaString(c.RGB, opacity)
	out.HSLA = hslaString(c.HSL, opacity)
	return out
}

var (
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*[,\s]\s*(\d{1,3})\s*[,\s]\s*(\d{1,3})\s*(?:[,/]\s*([\d.]+)(%)?\s*)?\)$`)
	hslPattern = regexp.MustCompile(`^hsla?\(\s*(\d{1,3})(?:deg)?\s*[,\s]\s*([\d.]+)%?\s*[,\s]\s*([\d.]+)%?\s*(?:[,/]\s*([\d.]+)(%)?\s*)?\)$`)
	hexPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)
)

var namedColors = map[string]string{
	"transparent": "#00000000",
	"black":       "#000000",
	"white":       "#ffffff",
}

// Parse parses a hex, rgb(a), hsl(a) or named color literal. It returns nil
// for anything it does not understand, including "current" and "inherit".
func Parse(name, literal string) *Color {
	literal = strings.TrimSpace(literal)

	switch {
	case strings.HasPrefix(literal, "#"):
		hex, ok := normalizeHex(literal)
		if !ok {
			return nil
		}
		rgb := hexToRGB(hex)
		return &Color{Name: name, Hex: hex, RGB: rgb, HSL: RGBToHSL(rgb)}

	case strings.HasPrefix(literal, "rgb"):
		return parseRGB(name, literal)

	case strings.HasPrefix(literal, "hsl"):
		return parseHSL(name, literal)
	}

	if hex, ok := namedColors[literal]; ok {
		return Parse(name, hex)
	}
	return nil
}

func parseRGB(name, literal string) *Color {
	m := rgbPattern.FindStringSubmatch(literal)
	if m == nil {
		return nil
	}
	var ch [3]int
	for i := range ch {
		n, err := strconv.Atoi(m[i+1])
		if err != nil || n > 255 {
			return nil
		}
		ch[i] = n
	}
	rgb := RGB{R: ch[0], G: ch[1], B: ch[2]}
	c := &Color{Name: name, Hex: RGBToHex(rgb), RGB: rgb, HSL: RGBToHSL(rgb)}

	if m[4] != "" {
		a, ok := parseAlpha(m[4], m[5] != "")
		if !ok {
			return nil
		}
		c.Opacity = &a
		c.RGBA = rgbaString(rgb, a)
	}
	return c
}

func parseHSL(name, literal string) *Color {
	m := hslPattern.FindStringSubmatch(literal)
	if m == nil {
		return nil
	}
	h, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	s, err := strconv.ParseFloat(m[2], 64)
	if err != nil || s > 100 {
		return nil
	}
	l, err := strconv.ParseFloat(m[3], 64)
	if err != nil || l > 100 {
		return nil
	}
	h %= 360

	rgb := HSLToRGB(float64(h), s, l)
	hsl := HSL{H: h, S: int(math.Round(s)), L: int(math.Round(l))}
	c := &Color{Name: name, Hex: RGBToHex(rgb), RGB: rgb, HSL: hsl}

	if m[4] != "" {
		a, ok := parseAlpha(m[4], m[5] != "")
		if !ok {
			return nil
		}
		c.Opacity = &a
		c.HSLA = hslaString(hsl, a)
	}
	return c
}

func parseAlpha(s string, percent bool) (float64, bool) {
	a, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if percent {
		a /= 100
	}
	if a < 0 || a > 1 {
		return 0, false
	}
	return a, true
}

// normalizeHex returns the lowercase 6-digit form. Three-digit input is
// expanded and an 8-digit alpha channel is dropped.
func normalizeHex(literal string) (string, bool) {
	hex := strings.TrimPrefix(literal, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 8:
		hex = hex[:6]
	}
	if !hexPattern.MatchString(hex) {
		return "", false
	}
	return "#" + strings.ToLower(hex), true
}

func hexToRGB(hex string) RGB {
	v, _ := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	return RGB{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}
}

// RGBToHex renders "#rrggbb".
func RGBToHex(c RGB) string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, ch := range []int{c.R, c.G, c.B} {
		b[1+i*2] = digits[ch>>4&0xf]
		b[2+i*2] = digits[ch&0xf]
	}
	return string(b)
}

// RGBToHSL converts to rounded HSL.
func RGBToHSL(c RGB) HSL {
	h, s, l := rgbToHSL(c)
	return HSL{H: int(math.Round(h)), S: int(math.Round(s)), L: int(math.Round(l))}
}

// rgbToHSL returns unrounded hue in degrees and saturation/lightness in percent.
func rgbToHSL(c RGB) (h, s, l float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l = (maxC + minC) / 2

	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}

		switch maxC {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return h * 360, s * 100, l * 100
}

// HSLToRGB converts hue in degrees and saturation/lightness in percent.
func HSLToRGB(h, s, l float64) RGB {
	h /= 360
	s /= 100
	l /= 100

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToChannel(p, q, h+1.0/3)
		g = hueToChannel(p, q, h)
		b = hueToChannel(p, q, h-1.0/3)
	}

	return RGB{
		R: int(math.Round(r * 255)),
		G: int(math.Round(g * 255)),
		B: int(math.Round(b * 255)),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func rgbaString(c RGB, a float64) string {
	return "rgba(" + strconv.Itoa(c.R) + ", " + strconv.Itoa(c.G) + ", " + strconv.Itoa(c.B) + ", " + formatAlpha(a) + ")"
}

func hslaString(c HSL, a float64) string {
	return "hsla(" + strconv.Itoa(c.H) + ", " + strconv.Itoa(c.S) + "%, " + strconv.Itoa(c.L) + "%, " + formatAlpha(a) + ")"
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}
