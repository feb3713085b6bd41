package diagnostics

import (
	"github.com/yacobolo/coralsense/internal/theme"
)

var spacingPatternPrefixes = []string{
	"m", "mx", "my", "mt", "mr", "mb", "ml",
	"p", "px", "py", "pt", "pr", "pb", "pl",
	"gap", "gap-x", "gap-y", "w", "h", "size",
}

var staticUtilities = []string{
	"flex", "grid", "block", "inline-block", "inline", "hidden",
	"static", "relative", "absolute", "fixed", "sticky",
	"flex-row", "flex-col", "flex-wrap", "flex-nowrap",
	"items-start", "items-center", "items-end", "items-stretch",
	"justify-start", "justify-center", "justify-end", "justify-between", "justify-around",
	"font-thin", "font-light", "font-normal", "font-medium", "font-semibold", "font-bold",
	"text-xs", "text-sm", "text-base", "text-lg", "text-xl", "text-2xl",
	"text-left", "text-center", "text-right", "text-justify",
	"rounded", "rounded-sm", "rounded-md", "rounded-lg", "rounded-xl", "rounded-full",
	"shadow", "shadow-sm", "shadow-md", "shadow-lg", "shadow-xl",
	"transition", "transition-all", "transition-colors", "transition-opacity",
	"duration-75", "duration-100", "duration-150", "duration-200", "duration-300",
	"cursor-pointer", "cursor-default", "cursor-not-allowed",
	"overflow-hidden", "overflow-auto", "overflow-scroll", "overflow-visible",
	"truncate", "underline", "line-through", "no-underline",
	"uppercase", "lowercase", "capitalize", "normal-case",
	"visible", "invisible", "opacity-0", "opacity-50", "opacity-100",
}

// knownPatterns builds the suggestion vocabulary for a theme: spacing and
// color utilities followed by common static utilities, without duplicates.
func knownPatterns(t theme.Theme) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, key := range t.Spacing.Keys() {
		for _, prefix := range spacingPatternPrefixes {
			add(prefix + "-" + key)
		}
	}

	for _, c := range t.Colors {
		switch c.Value.Kind {
		case theme.ColorSolid:
			add("text-" + c.Name)
			add("bg-" + c.Name)
			add("border-" + c.Name)
		case theme.ColorScale:
			for _, shade := range c.Value.Shades {
				name := c.Name + "-" + shade.Key
				if shade.Key == theme.DefaultShade {
					name = c.Name
				}
				add("text-" + name)
				add("bg-" + name)
				add("border-" + name)
				add("ring-" + name)
			}
		}
	}

	for _, u := range staticUtilities {
		add(u)
	}
	return out
}
