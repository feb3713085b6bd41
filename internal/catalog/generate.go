package catalog

import (
	"github.com/yacobolo/coralsense/internal/theme"
)

// Generate builds the utility completion catalog for a theme. The result is a
// pure function of the theme and is safe to share read-only.
func Generate(t theme.Theme) []Entry {
	var entries []Entry
	entries = append(entries, spacing(t)...)
	entries = append(entries, colors(t)...)
	entries = append(entries, typography(t)...)
	entries = append(entries, layout()...)
	entries = append(entries, flexbox()...)
	entries = append(entries, grid()...)
	entries = append(entries, sizing(t)...)
	entries = append(entries, borders()...)
	entries = append(entries, effects()...)
	entries = append(entries, transforms()...)
	entries = append(entries, transitions()...)
	entries = append(entries, filters()...)
	entries = append(entries, interactivity()...)
	return entries
}

// directional is a utility prefix bound to the CSS property it sets.
type directional struct {
	prefix string
	prop   string
	desc   string
}

var marginPrefixes = []directional{
	{"m", "margin", "margin on all sides"},
	{"mx", "margin-inline", "horizontal margin"},
	{"my", "margin-block", "vertical margin"},
	{"mt", "margin-top", "top margin"},
	{"mr", "margin-right", "right margin"},
	{"mb", "margin-bottom", "bottom margin"},
	{"ml", "margin-left", "left margin"},
	{"ms", "margin-inline-start", "start margin (RTL-aware)"},
	{"me", "margin-inline-end", "end margin (RTL-aware)"},
}

var paddingPrefixes = []directional{
	{"p", "padding", "padding on all sides"},
	{"px", "padding-inline", "horizontal padding"},
	{"py", "padding-block", "vertical padding"},
	{"pt", "padding-top", "top padding"},
	{"pr", "padding-right", "right padding"},
	{"pb", "padding-bottom", "bottom padding"},
	{"pl", "padding-left", "left padding"},
	{"ps", "padding-inline-start", "start padding (RTL-aware)"},
	{"pe", "padding-inline-end", "end padding (RTL-aware)"},
}

var gapPrefixes = []directional{
	{"gap", "gap", "gap between grid/flex items"},
	{"gap-x", "column-gap", "horizontal gap"},
	{"gap-y", "row-gap", "vertical gap"},
}

var spacePrefixes = []directional{
	{"space-x", "margin-left", "horizontal space between children"},
	{"space-y", "margin-top", "vertical space between children"},
}

// noNegative lists spacing keys that never get a negated margin.
var noNegative = map[string]bool{"0": true, "px": true, "auto": true}

func spacing(t theme.Theme) []Entry {
	b := newBuilder(CategorySpacing)

	for _, tok := range t.Spacing {
		key, value := tok.Key, tok.Value

		for _, d := range marginPrefixes {
			b.add(10, d.prefix+"-"+key, d.prop+": "+value+";", "Set "+d.desc+" to "+value)
			if !noNegative[key] {
				b.add(11, "-"+d.prefix+"-"+key, d.prop+": -"+value+";", "Set negative "+d.desc+" to -"+value)
			}
		}
		for _, d := range paddingPrefixes {
			b.add(10, d.prefix+"-"+key, d.prop+": "+value+";", "Set "+d.desc+" to "+value)
		}
		for _, d := range gapPrefixes {
			b.add(12, d.prefix+"-"+key, d.prop+": "+value+";", "Set "+d.desc+" to "+value)
		}
		for _, d := range spacePrefixes {
			b.add(13, d.prefix+"-"+key, "> * + * { "+d.prop+": "+value+"; }", "Set "+d.desc+" to "+value)
		}
	}

	b.add(10, "m-auto", "margin: auto;", "Set margin to auto")
	b.add(10, "mx-auto", "margin-inline: auto;", "Center element horizontally")
	b.add(10, "my-auto", "margin-block: auto;", "Center element vertically")

	return b.entries
}

// colorPrefixes lists the color-consuming utility prefixes in catalog order.
var colorPrefixes = []directional{
	{"text", "color", "text color"},
	{"bg", "background-color", "background color"},
	{"border", "border-color", "border color"},
	{"ring", "--tw-ring-color", "ring/outline color"},
	{"divide", "border-color", "divide color between children"},
	{"outline", "outline-color", "outline color"},
	{"accent", "accent-color", "accent color for form controls"},
	{"caret", "caret-color", "text cursor color"},
	{"fill", "fill", "SVG fill color"},
	{"stroke", "stroke", "SVG stroke color"},
	{"decoration", "text-decoration-color", "underline/decoration color"},
	{"shadow", "--tw-shadow-color", "box shadow color"},
	{"placeholder", "color", "placeholder text color"},
}

// OpacityLadder is the discrete opacity set expanded for every shade.
var OpacityLadder = []int{5, 10, 20, 25, 30, 40, 50, 60, 70, 75, 80, 90, 95}

// specialColors are keyword colors available for every color prefix.
var specialColors = []struct{ name, value string }{
	{"inherit", "inherit"},
	{"current", "currentColor"},
	{"transparent", "transparent"},
}

func colors(t theme.Theme) []Entry {
	b := newBuilder(CategoryColors)

	for _, c := range t.Colors {
		switch c.Value.Kind {
		case theme.ColorSolid:
			for _, p := range colorPrefixes {
				b.addColor(20, p.prefix+"-"+c.Name, p.prop+": "+c.Value.Literal+";",
					"Set "+p.desc+" to "+c.Name, c.Value.Literal)
			}
		case theme.ColorScale:
			for _, shade := range c.Value.Shades {
				for _, p := range colorPrefixes {
					label := p.prefix + "-" + c.Name + "-" + shade.Key
					if shade.Key == theme.DefaultShade {
						label = p.prefix + "-" + c.Name
					}
					shadeName := c.Name + "-" + shade.Key
					b.addColor(20, label, p.prop+": "+shade.Literal+";",
						"Set "+p.desc+" to "+shadeName, shade.Literal)

					for _, op := range OpacityLadder {
						n := itoa(op)
						b.addColor(21, label+"/"+n, p.prop+": "+shade.Literal+"; opacity: "+n+"%;",
							"Set "+p.desc+" to "+shadeName+" with "+n+"% opacity", shade.Literal)
					}
				}
			}
		}
	}

	for _, sc := range specialColors {
		for _, p := range colorPrefixes {
			b.add(22, p.prefix+"-"+sc.name, p.prop+": "+sc.value+";", "Set "+p.desc+" to "+sc.name)
		}
	}

	return b.entries
}
