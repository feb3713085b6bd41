package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/coralsense/internal/theme"
)

func TestFilterEmptyPrefix(t *testing.T) {
	entries := []Entry{
		{Label: "c", SortOrder: 50},
		{Label: "a"},
		{Label: "b", SortOrder: 10},
		{Label: "d", SortOrder: 100},
	}

	got := Filter(entries, "")
	require.Len(t, got, 4)
	assert.Equal(t, []string{"b", "c", "a", "d"}, labelsOf(got))

	// input untouched
	assert.Equal(t, "c", entries[0].Label)
}

func TestFilterCaseInsensitive(t *testing.T) {
	entries := Generate(theme.Default())

	lower := Filter(entries, "flex")
	upper := Filter(entries, "FLEX")
	require.NotEmpty(t, lower)
	assert.Equal(t, lower, upper)

	for _, e := range lower {
		assert.Regexp(t, `^flex`, e.Label)
	}
	assert.Equal(t, "flex", lower[0].Label)
}

func TestFilterExactMatchFirst(t *testing.T) {
	entries := []Entry{
		{Label: "rounded-lg", SortOrder: 1},
		{Label: "Rounded", SortOrder: 99},
		{Label: "rounded-sm", SortOrder: 2},
	}

	got := Filter(entries, "rounded")
	assert.Equal(t, []string{"Rounded", "rounded-lg", "rounded-sm"}, labelsOf(got))

	assert.Empty(t, Filter(entries, "zzz"))
}

func TestGroupByCategory(t *testing.T) {
	entries := Generate(theme.Default())
	groups := GroupByCategory(entries)

	total := 0
	seen := make(map[string]bool)
	for _, g := range groups {
		assert.False(t, seen[g.Category], "category %q repeated", g.Category)
		seen[g.Category] = true
		for _, e := range g.Entries {
			assert.Equal(t, g.Category, e.Category)
		}
		total += len(g.Entries)
	}
	assert.Equal(t, len(entries), total)
	assert.Equal(t, CategorySpacing, groups[0].Category)
}

func TestEntryOrder(t *testing.T) {
	assert.Equal(t, DefaultSortOrder, Entry{}.Order())
	assert.Equal(t, 7, Entry{SortOrder: 7}.Order())
}

func TestResolveLength(t *testing.T) {
	tests := map[string]string{
		"0":    "0px",
		"px":   "1px",
		"0.5":  "0.125rem",
		"4":    "1rem",
		"1/2":  "50%",
		"full": "100%",
		"auto": "auto",
	}
	for in, want := range tests {
		assert.Equal(t, want, resolveLength(in), in)
	}
}

func labelsOf(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}
