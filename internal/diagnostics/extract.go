package diagnostics

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// scanPattern finds class attribute values. The first capture group is the
// class list.
type scanPattern struct {
	name  string
	regex *regexp.Regexp
}

// Ordered from most specific to least specific.
var scanPatterns = []scanPattern{
	{
		name:  "class attribute with double quotes",
		regex: regexp.MustCompile(`\b(?:class|className)="([^"]*)"`),
	},
	{
		name:  "class attribute with single quotes",
		regex: regexp.MustCompile(`\b(?:class|className)='([^']*)'`),
	},
	{
		name:  "class expression with template literal",
		regex: regexp.MustCompile("\\b(?:class|className)=\\{\\s*`([^`]*)`\\s*\\}"),
	},
	{
		name:  "class expression with double-quoted string",
		regex: regexp.MustCompile(`\b(?:class|className)=\{\s*"([^"]*)"\s*\}`),
	},
	{
		name:  "class expression with single-quoted string",
		regex: regexp.MustCompile(`\b(?:class|className)=\{\s*'([^']*)'\s*\}`),
	},
	{
		name:  "templ.Classes with string",
		regex: regexp.MustCompile(`templ\.Classes\(\s*"([^"]*)"`),
	},
	{
		name:  "templ.KV with string",
		regex: regexp.MustCompile(`templ\.KV\(\s*"([^"]*)"`),
	},
}

// ExtractClassLocations returns every class token in class attributes of
// content, ordered by offset. Each location satisfies
// content[Start:End] == ClassName. Tokens containing interpolation or
// quote characters are skipped.
func ExtractClassLocations(content string) []Location {
	var out []Location
	seen := make(map[int]bool)

	for _, p := range scanPatterns {
		for _, m := range p.regex.FindAllStringSubmatchIndex(content, -1) {
			start, end := m[2], m[3]
			if start < 0 {
				continue
			}
			for _, loc := range splitClasses(content[start:end], start) {
				if seen[loc.Start] {
					continue
				}
				seen[loc.Start] = true
				out = append(out, loc)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// splitClasses splits a whitespace-separated class list, offsetting each
// token by base.
func splitClasses(value string, base int) []Location {
	var out []Location
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		token := value[start:end]
		if !strings.ContainsAny(token, "${}`'\"") {
			out = append(out, Location{
				ClassName: token,
				Start:     base + start,
				End:       base + end,
			})
		}
		start = -1
	}

	for i, r := range value {
		if unicode.IsSpace(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(value))
	return out
}
