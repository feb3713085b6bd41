package diagnostics

import (
	"sort"

	"github.com/agext/levenshtein"
)

const (
	maxClassDistance    = 3
	maxClassSuggestions = 5

	maxVariantDistance    = 2
	maxVariantSuggestions = 3
)

// Distance is the Levenshtein edit distance (insert, delete, substitute;
// no transpositions).
func Distance(a, b string) int {
	return levenshtein.Distance(a, b, nil)
}

// FindSimilar returns up to limit candidates within maxDist of target, closest
// first. Ties keep candidate order.
func FindSimilar(target string, candidates []string, maxDist, limit int) []string {
	type scored struct {
		value    string
		distance int
	}

	var hits []scored
	for _, c := range candidates {
		if d := Distance(target, c); d <= maxDist {
			hits = append(hits, scored{c, d})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].distance < hits[j].distance
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	if len(hits) == 0 {
		return nil
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.value
	}
	return out
}
