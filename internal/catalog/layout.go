package catalog

import (
	"strconv"
	"strings"
)

// resolveLength turns a spacing-style key into a CSS length without a theme:
// numeric keys step by 0.25rem, fractions become percentages.
func resolveLength(key string) string {
	switch key {
	case "0":
		return "0px"
	case "px":
		return "1px"
	case "auto":
		return "auto"
	case "full":
		return "100%"
	}
	if strings.Contains(key, "/") {
		return percent(key)
	}
	n, err := strconv.ParseFloat(key, 64)
	if err != nil {
		return key
	}
	return formatNumber(n*0.25) + "rem"
}

var insetValues = []string{"0", "px", "0.5", "1", "2", "3", "4", "5", "6", "8", "10", "12", "16", "20", "auto", "1/2", "1/3", "2/3", "1/4", "3/4", "full"}

var insetPrefixes = []struct {
	prefix string
	props  []string
}{
	{"inset", []string{"inset"}},
	{"inset-x", []string{"left", "right"}},
	{"inset-y", []string{"top", "bottom"}},
	{"top", []string{"top"}},
	{"right", []string{"right"}},
	{"bottom", []string{"bottom"}},
	{"left", []string{"left"}},
}

// declare renders "a: v; b: v;" for every property.
func declare(props []string, value string) string {
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = p + ": " + value + ";"
	}
	return strings.Join(parts, " ")
}

func layout() []Entry {
	b := newBuilder(CategoryLayout)

	displays := []struct{ label, value string }{
		{"block", "block"},
		{"inline-block", "inline-block"},
		{"inline", "inline"},
		{"flex", "flex"},
		{"inline-flex", "inline-flex"},
		{"grid", "grid"},
		{"inline-grid", "inline-grid"},
		{"contents", "contents"},
		{"flow-root", "flow-root"},
		{"hidden", "none"},
		{"table", "table"},
		{"table-row", "table-row"},
		{"table-cell", "table-cell"},
	}
	for _, d := range displays {
		b.add(50, d.label, "display: "+d.value+";", "Set display to "+d.value)
	}

	for _, pos := range []string{"static", "fixed", "absolute", "relative", "sticky"} {
		b.add(51, pos, "position: "+pos+";", "Set position to "+pos)
	}

	for _, p := range insetPrefixes {
		for _, v := range insetValues {
			value := resolveLength(v)
			b.add(52, p.prefix+"-"+v, declare(p.props, value), "Set "+strings.Join(p.props, " and ")+" to "+value)
		}
	}

	for _, z := range []string{"0", "10", "20", "30", "40", "50", "auto"} {
		b.add(53, "z-"+z, "z-index: "+z+";", "Set z-index to "+z)
	}

	for _, prop := range []string{"overflow", "overflow-x", "overflow-y"} {
		for _, v := range []string{"auto", "hidden", "clip", "visible", "scroll"} {
			b.add(54, prop+"-"+v, prop+": "+v+";", "Set "+prop+" to "+v)
		}
	}

	b.add(55, "visible", "visibility: visible;", "Make element visible")
	b.add(55, "invisible", "visibility: hidden;", "Hide element but keep its space")
	b.add(55, "collapse", "visibility: collapse;", "Collapse table rows or columns")

	for _, f := range []string{"right", "left", "none"} {
		b.add(56, "float-"+f, "float: "+f+";", "Float "+f)
	}
	for _, c := range []string{"left", "right", "both", "none"} {
		b.add(56, "clear-"+c, "clear: "+c+";", "Clear "+c)
	}

	b.add(57, "isolate", "isolation: isolate;", "Create a new stacking context")
	b.add(57, "isolation-auto", "isolation: auto;", "Use the default stacking context")

	for _, fit := range []string{"contain", "cover", "fill", "none", "scale-down"} {
		b.add(58, "object-"+fit, "object-fit: "+fit+";", "Set object-fit to "+fit)
	}
	for _, pos := range []string{"bottom", "center", "left", "left-bottom", "left-top", "right", "right-bottom", "right-top", "top"} {
		value := strings.Replace(pos, "-", " ", 1)
		b.add(58, "object-"+pos, "object-position: "+value+";", "Set object-position to "+value)
	}

	return b.entries
}

func flexbox() []Entry {
	b := newBuilder(CategoryFlexbox)

	directions := []struct{ label, value string }{
		{"flex-row", "row"},
		{"flex-row-reverse", "row-reverse"},
		{"flex-col", "column"},
		{"flex-col-reverse", "column-reverse"},
	}
	for _, d := range directions {
		b.add(60, d.label, "flex-direction: "+d.value+";", "Set flex direction to "+d.value)
	}

	b.add(61, "flex-wrap", "flex-wrap: wrap;", "Allow flex items to wrap")
	b.add(61, "flex-wrap-reverse", "flex-wrap: wrap-reverse;", "Wrap flex items in reverse")
	b.add(61, "flex-nowrap", "flex-wrap: nowrap;", "Prevent flex items from wrapping")

	b.add(62, "flex-1", "flex: 1 1 0%;", "Grow and shrink, ignoring initial size")
	b.add(62, "flex-auto", "flex: 1 1 auto;", "Grow and shrink from initial size")
	b.add(62, "flex-initial", "flex: 0 1 auto;", "Shrink but do not grow")
	b.add(62, "flex-none", "flex: none;", "Neither grow nor shrink")
	b.add(62, "grow", "flex-grow: 1;", "Allow item to grow")
	b.add(62, "grow-0", "flex-grow: 0;", "Prevent item from growing")
	b.add(62, "shrink", "flex-shrink: 1;", "Allow item to shrink")
	b.add(62, "shrink-0", "flex-shrink: 0;", "Prevent item from shrinking")

	justify := []struct{ key, value string }{
		{"start", "flex-start"},
		{"end", "flex-end"},
		{"center", "center"},
		{"between", "space-between"},
		{"around", "space-around"},
		{"evenly", "space-evenly"},
		{"stretch", "stretch"},
	}
	for _, j := range justify {
		b.add(63, "justify-"+j.key, "justify-content: "+j.value+";", "Justify content "+j.key)
	}
	for _, v := range []string{"start", "end", "center", "stretch"} {
		b.add(63, "justify-items-"+v, "justify-items: "+v+";", "Justify items "+v)
		b.add(63, "justify-self-"+v, "justify-self: "+v+";", "Justify self "+v)
	}

	content := []struct{ key, value string }{
		{"start", "flex-start"},
		{"end", "flex-end"},
		{"center", "center"},
		{"between", "space-between"},
		{"around", "space-around"},
		{"evenly", "space-evenly"},
		{"baseline", "baseline"},
		{"stretch", "stretch"},
	}
	for _, c := range content {
		b.add(64, "content-"+c.key, "align-content: "+c.value+";", "Align content "+c.key)
	}

	align := []struct{ key, value string }{
		{"start", "flex-start"},
		{"end", "flex-end"},
		{"center", "center"},
		{"baseline", "baseline"},
		{"stretch", "stretch"},
	}
	for _, a := range align {
		b.add(64, "items-"+a.key, "align-items: "+a.value+";", "Align items "+a.key)
		b.add(64, "self-"+a.key, "align-self: "+a.value+";", "Align self "+a.key)
	}
	b.add(64, "self-auto", "align-self: auto;", "Align self auto")

	place := []struct{ key, value string }{
		{"start", "start"},
		{"end", "end"},
		{"center", "center"},
		{"between", "space-between"},
		{"around", "space-around"},
		{"evenly", "space-evenly"},
		{"stretch", "stretch"},
	}
	for _, p := range place {
		b.add(65, "place-content-"+p.key, "place-content: "+p.value+";", "Place content "+p.key)
	}
	for _, v := range []string{"start", "end", "center", "stretch"} {
		b.add(65, "place-items-"+v, "place-items: "+v+";", "Place items "+v)
		b.add(65, "place-self-"+v, "place-self: "+v+";", "Place self "+v)
	}

	b.add(66, "order-first", "order: -9999;", "Order first")
	b.add(66, "order-last", "order: 9999;", "Order last")
	b.add(66, "order-none", "order: 0;", "Reset order")
	for i := 1; i <= 12; i++ {
		n := itoa(i)
		b.add(66, "order-"+n, "order: "+n+";", "Set order to "+n)
	}

	return b.entries
}

func grid() []Entry {
	b := newBuilder(CategoryGrid)

	for i := 1; i <= 12; i++ {
		n := itoa(i)
		b.add(70, "grid-cols-"+n, "grid-template-columns: repeat("+n+", minmax(0, 1fr));", "Grid with "+n+" columns")
	}
	b.add(70, "grid-cols-none", "grid-template-columns: none;", "No grid columns")
	b.add(70, "grid-cols-subgrid", "grid-template-columns: subgrid;", "Inherit parent grid columns")

	for i := 1; i <= 6; i++ {
		n := itoa(i)
		b.add(71, "grid-rows-"+n, "grid-template-rows: repeat("+n+", minmax(0, 1fr));", "Grid with "+n+" rows")
	}
	b.add(71, "grid-rows-none", "grid-template-rows: none;", "No grid rows")
	b.add(71, "grid-rows-subgrid", "grid-template-rows: subgrid;", "Inherit parent grid rows")

	for i := 1; i <= 12; i++ {
		n := itoa(i)
		b.add(72, "col-span-"+n, "grid-column: span "+n+" / span "+n+";", "Span "+n+" columns")
	}
	b.add(72, "col-span-full", "grid-column: 1 / -1;", "Span all columns")
	b.add(72, "col-auto", "grid-column: auto;", "Auto column placement")

	for i := 1; i <= 13; i++ {
		n := itoa(i)
		b.add(73, "col-start-"+n, "grid-column-start: "+n+";", "Start at column line "+n)
		b.add(73, "col-end-"+n, "grid-column-end: "+n+";", "End at column line "+n)
	}
	b.add(73, "col-start-auto", "grid-column-start: auto;", "Auto column start")
	b.add(73, "col-end-auto", "grid-column-end: auto;", "Auto column end")

	for i := 1; i <= 6; i++ {
		n := itoa(i)
		b.add(74, "row-span-"+n, "grid-row: span "+n+" / span "+n+";", "Span "+n+" rows")
	}
	b.add(74, "row-span-full", "grid-row: 1 / -1;", "Span all rows")
	b.add(74, "row-auto", "grid-row: auto;", "Auto row placement")

	for i := 1; i <= 7; i++ {
		n := itoa(i)
		b.add(75, "row-start-"+n, "grid-row-start: "+n+";", "Start at row line "+n)
		b.add(75, "row-end-"+n, "grid-row-end: "+n+";", "End at row line "+n)
	}
	b.add(75, "row-start-auto", "grid-row-start: auto;", "Auto row start")
	b.add(75, "row-end-auto", "grid-row-end: auto;", "Auto row end")

	flows := []struct{ label, value string }{
		{"grid-flow-row", "row"},
		{"grid-flow-col", "column"},
		{"grid-flow-dense", "dense"},
		{"grid-flow-row-dense", "row dense"},
		{"grid-flow-col-dense", "column dense"},
	}
	for _, f := range flows {
		b.add(76, f.label, "grid-auto-flow: "+f.value+";", "Set grid auto flow to "+f.value)
	}

	autos := []struct{ key, value string }{
		{"auto", "auto"},
		{"min", "min-content"},
		{"max", "max-content"},
		{"fr", "minmax(0, 1fr)"},
	}
	for _, a := range autos {
		b.add(77, "auto-cols-"+a.key, "grid-auto-columns: "+a.value+";", "Size implicit columns to "+a.value)
		b.add(77, "auto-rows-"+a.key, "grid-auto-rows: "+a.value+";", "Size implicit rows to "+a.value)
	}

	return b.entries
}
