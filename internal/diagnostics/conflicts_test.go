package diagnostics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// locate builds locations for a space-separated class list.
func locate(classes string) []Location {
	return ExtractClassLocations(`<div class="` + classes + `">`)
}

func TestPropertyKey(t *testing.T) {
	tests := []struct {
		className string
		want      string
	}{
		{"flex", "display"},
		{"hidden", "display"},
		{"relative", "position"},
		{"mx-2", "margin"},
		{"-mt-4", "margin"},
		{"m-4", "margin"},
		{"px-4", "padding"},
		{"w-1/2", "width"},
		{"max-w-lg", "max-width"},
		{"text-lg", "font-size"},
		{"text-[14px]", "font-size"},
		{"text-center", "text-align"},
		{"text-red-500", "color"},
		{"text-red-500/50", "color"},
		{"text-[#fff]", "color"},
		{"text-ellipsis", ""},
		{"font-bold", "font-weight"},
		{"bg-blue-500", "background-color"},
		{"bg-blend-multiply", ""},
		{"rounded", "border-radius"},
		{"rounded-tl-lg", "border-radius"},
		{"border", "border-width"},
		{"border-x-2", "border-width"},
		{"border-red-500", "border-color"},
		{"border-dashed", ""},
		{"flex-col", "flex-direction"},
		{"flex-wrap", "flex-wrap"},
		{"items-center", "align-items"},
		{"justify-between", "justify-content"},
		{"gap-x-2", "gap"},
		{"z-10", "z-index"},
		{"duration-300", "transition-duration"},
		{"rotate-45", "transform"},
		{"shadow-lg", "box-shadow"},
		{"hover:flex", "hover:display"},
		{"md:hover:bg-red-500", "md:hover:background-color"},
		{"select-none", ""},
	}

	for _, tt := range tests {
		t.Run(tt.className, func(t *testing.T) {
			assert.Equal(t, tt.want, PropertyKey(tt.className))
		})
	}
}

func TestFindConflicts(t *testing.T) {
	tests := []struct {
		name    string
		classes string
		flagged []string
		winner  string
	}{
		{"display", "flex grid", []string{"flex"}, "grid"},
		{"three way", "block flex grid", []string{"block", "flex"}, "grid"},
		{"variant bucket", "flex hover:grid", nil, ""},
		{"same variant", "hover:flex hover:grid", []string{"hover:flex"}, "hover:grid"},
		{"same class twice", "flex flex", nil, ""},
		{"shorthand then side", "m-4 mx-2", []string{"m-4"}, "mx-2"},
		{"padding shorthand then side", "p-4 pt-2", []string{"p-4"}, "pt-2"},
		{"different sides share margin", "mx-2 mt-4", []string{"mx-2"}, "mt-4"},
		{"radius corners", "rounded-lg rounded-tl-none", []string{"rounded-lg"}, "rounded-tl-none"},
		{"colors", "text-red-500 text-blue-500", []string{"text-red-500"}, "text-blue-500"},
		{"size and color", "text-lg text-red-500", nil, ""},
		{"unclassified", "select-none select-all", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := FindConflicts(locate(tt.classes))
			require.Len(t, diags, len(tt.flagged))
			for i, d := range diags {
				assert.Equal(t, tt.flagged[i], d.ClassName)
				assert.Equal(t, SeverityWarning, d.Severity)
				assert.Equal(t, CodeConflictingClasses, d.Code)
				assert.True(t, strings.HasSuffix(d.Message, `"`+tt.winner+`" will take precedence.`), d.Message)
			}
		})
	}
}

func TestFindConflictsMessage(t *testing.T) {
	diags := FindConflicts(locate("flex grid"))
	require.Len(t, diags, 1)
	assert.Equal(t, `Potentially conflicting classes for "display". "grid" will take precedence.`, diags[0].Message)
}

func TestExtractClassLocations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"double quotes", `<div class="flex p-4">`, []string{"flex", "p-4"}},
		{"single quotes", `<div class='flex  p-4'>`, []string{"flex", "p-4"}},
		{"className", `<div className="text-lg">`, []string{"text-lg"}},
		{"jsx string", `<div className={"m-2 hover:bg-red-500"}>`, []string{"m-2", "hover:bg-red-500"}},
		{"template literal", "<div className={`grid ${cols} gap-4`}>", []string{"grid", "gap-4"}},
		{"templ classes", `@templ.Classes("flex", other)`, []string{"flex"}},
		{"multiline", "<div class=\"flex\n\tp-4\">", []string{"flex", "p-4"}},
		{"arbitrary", `<div class="w-[calc(100%-1rem)] [&>*]:p-2">`, []string{"w-[calc(100%-1rem)]", "[&>*]:p-2"}},
		{"several attributes", `<a class="a"></a><b class="b c">`, []string{"a", "b", "c"}},
		{"empty", `<div class="">`, nil},
		{"no attribute", `<div id="flex">`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locs := ExtractClassLocations(tt.content)
			var got []string
			for _, loc := range locs {
				assert.Equal(t, loc.ClassName, tt.content[loc.Start:loc.End])
				got = append(got, loc.ClassName)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractClassLocationsOffsets(t *testing.T) {
	content := `<div class="flex p-4">`
	locs := ExtractClassLocations(content)
	require.Len(t, locs, 2)
	assert.Equal(t, Location{ClassName: "flex", Start: 12, End: 16}, locs[0])
	assert.Equal(t, Location{ClassName: "p-4", Start: 17, End: 20}, locs[1])
}
