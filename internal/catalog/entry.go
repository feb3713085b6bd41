// Package catalog turns a theme into the enumerable set of utility-class
// completions and the theme-independent variant completions.
package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// DefaultSortOrder applies to entries that do not set one.
const DefaultSortOrder = 100

// Completion categories.
const (
	CategorySpacing       = "spacing"
	CategoryColors        = "colors"
	CategoryTypography    = "typography"
	CategoryLayout        = "layout"
	CategoryFlexbox       = "flexbox"
	CategoryGrid          = "grid"
	CategorySizing        = "sizing"
	CategoryBorders       = "borders"
	CategoryEffects       = "effects"
	CategoryTransforms    = "transforms"
	CategoryTransitions   = "transitions"
	CategoryFilters       = "filters"
	CategoryInteractivity = "interactivity"
	CategoryVariants      = "variants"
)

// Entry is one completion: the literal class a user types and the CSS it produces.
type Entry struct {
	Label       string `json:"label"`
	Category    string `json:"category"`
	CSS         string `json:"css"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"` // color literal for color utilities
	SortOrder   int    `json:"sortOrder,omitempty"`
}

// Order returns the sort order, defaulting to DefaultSortOrder when unset (zero).
func (e Entry) Order() int {
	if e.SortOrder == 0 {
		return DefaultSortOrder
	}
	return e.SortOrder
}

// Filter returns the entries whose label starts with prefix (case-insensitive).
// An exact label match sorts first, then ascending sort order. An empty prefix
// returns every entry sorted by sort order. The input is never modified.
func Filter(entries []Entry, prefix string) []Entry {
	if prefix == "" {
		out := make([]Entry, len(entries))
		copy(out, entries)
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Order() < out[j].Order()
		})
		return out
	}

	lower := strings.ToLower(prefix)
	var out []Entry
	for _, e := range entries {
		if strings.HasPrefix(strings.ToLower(e.Label), lower) {
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ei := strings.ToLower(out[i].Label) == lower
		ej := strings.ToLower(out[j].Label) == lower
		if ei != ej {
			return ei
		}
		return out[i].Order() < out[j].Order()
	})
	return out
}

// Group is one category partition produced by GroupByCategory.
type Group struct {
	Category string
	Entries  []Entry
}

// GroupByCategory partitions entries by category, preserving first-seen
// category order and entry order within each group.
func GroupByCategory(entries []Entry) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, e := range entries {
		i, ok := index[e.Category]
		if !ok {
			i = len(groups)
			index[e.Category] = i
			groups = append(groups, Group{Category: e.Category})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

var fractionPattern = regexp.MustCompile(`^\d+/\d+$`)

// ParseFraction parses "numerator/denominator". Malformed input and a zero
// denominator yield 0.
func ParseFraction(fraction string) float64 {
	if !fractionPattern.MatchString(fraction) {
		return 0
	}
	num, den, _ := strings.Cut(fraction, "/")
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0
	}
	d, err := strconv.Atoi(den)
	if err != nil || d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// percent renders a fraction as a CSS percentage ("1/3" -> "33.33333333333333%").
func percent(fraction string) string {
	return formatNumber(ParseFraction(fraction)*100) + "%"
}

// formatNumber renders a float without trailing zeros.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// builder accumulates entries for one category.
type builder struct {
	category string
	entries  []Entry
}

func newBuilder(category string) *builder {
	return &builder{category: category}
}

func (b *builder) add(order int, label, css, desc string) {
	b.entries = append(b.entries, Entry{
		Label:       label,
		Category:    b.category,
		CSS:         css,
		Description: desc,
		SortOrder:   order,
	})
}

func (b *builder) addColor(order int, label, css, desc, color string) {
	b.entries = append(b.entries, Entry{
		Label:       label,
		Category:    b.category,
		CSS:         css,
		Description: desc,
		Color:       color,
		SortOrder:   order,
	})
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
