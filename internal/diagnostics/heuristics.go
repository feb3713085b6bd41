package diagnostics

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yacobolo/coralsense/internal/theme"
)

var (
	shadePattern    = regexp.MustCompile(`^(text|bg|border|ring)-(\w+)-(\d+)$`)
	spacingPattern  = regexp.MustCompile(`^-?(m|p|gap|w|h|size)(-[xy]|[xytbrlse]?)-(.+)$`)
	numericPattern  = regexp.MustCompile(`^\d+$`)
	fontSizePattern = regexp.MustCompile(`^text-(xs|sm|base|lg|xl|\d+xl)$`)
)

// typos are matched as substrings of the base class, in order.
var typos = []struct{ typo, correction string }{
	{"colour", "color"},
	{"centre", "center"},
	{"grey", "gray"},
	{"flexbox", "flex"},
	{"margin", "m-"},
	{"padding", "p-"},
	{"backround", "bg-"},
	{"trasition", "transition"},
	{"tranform", "transform"},
}

// heuristics explains why a themed class produced no CSS.
type heuristics struct {
	spacing map[string]bool
}

func newHeuristics(t theme.Theme) heuristics {
	h := heuristics{
		spacing: map[string]bool{"auto": true, "full": true},
	}
	for _, key := range t.Spacing.Keys() {
		h.spacing[key] = true
	}
	return h
}

// detect runs the heuristics in order and returns the message of the first
// hit, or "" when none applies.
func (h heuristics) detect(base string) string {
	if m := shadePattern.FindStringSubmatch(base); m != nil {
		shade, err := strconv.Atoi(m[3])
		if err == nil && (shade%50 != 0 || shade < 50 || shade > 950) {
			return `Invalid color shade "` + m[3] + `". Valid shades are: 50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950`
		}
	}

	if m := spacingPattern.FindStringSubmatch(base); m != nil {
		value := m[3]
		if !h.spacing[value] && !strings.ContainsAny(value, "[/") {
			return `Invalid spacing value "` + value + `". Use a theme value or arbitrary value like [24px]`
		}
	}

	if size, ok := strings.CutPrefix(base, "text-"); ok && !fontSizePattern.MatchString(base) && numericPattern.MatchString(size) {
		return `Invalid font size "` + size + `". Use a named size (xs, sm, base, lg, xl, 2xl, etc.) or arbitrary value like [16px]`
	}

	for _, t := range typos {
		if strings.Contains(base, t.typo) {
			return `Possible typo: "` + t.typo + `" should be "` + t.correction + `"`
		}
	}

	return ""
}
