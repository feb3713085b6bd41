package catalog

var borderSides = []struct {
	suffix string
	props  []string
}{
	{"", []string{"border-width"}},
	{"-x", []string{"border-left-width", "border-right-width"}},
	{"-y", []string{"border-top-width", "border-bottom-width"}},
	{"-t", []string{"border-top-width"}},
	{"-r", []string{"border-right-width"}},
	{"-b", []string{"border-bottom-width"}},
	{"-l", []string{"border-left-width"}},
}

var lineStyles = []string{"solid", "dashed", "dotted", "double", "hidden", "none"}

var radiusCorners = []struct {
	suffix string
	props  []string
}{
	{"", []string{"border-radius"}},
	{"-t", []string{"border-top-left-radius", "border-top-right-radius"}},
	{"-r", []string{"border-top-right-radius", "border-bottom-right-radius"}},
	{"-b", []string{"border-bottom-right-radius", "border-bottom-left-radius"}},
	{"-l", []string{"border-top-left-radius", "border-bottom-left-radius"}},
	{"-tl", []string{"border-top-left-radius"}},
	{"-tr", []string{"border-top-right-radius"}},
	{"-br", []string{"border-bottom-right-radius"}},
	{"-bl", []string{"border-bottom-left-radius"}},
}

var radii = []struct{ key, value string }{
	{"none", "0px"},
	{"sm", "0.125rem"},
	{"", "0.25rem"},
	{"md", "0.375rem"},
	{"lg", "0.5rem"},
	{"xl", "0.75rem"},
	{"2xl", "1rem"},
	{"3xl", "1.5rem"},
	{"full", "9999px"},
}

// joinKey appends "-key" unless key is empty.
func joinKey(prefix, key string) string {
	if key == "" {
		return prefix
	}
	return prefix + "-" + key
}

func borders() []Entry {
	b := newBuilder(CategoryBorders)

	widths := []struct{ key, value string }{
		{"", "1px"},
		{"0", "0px"},
		{"2", "2px"},
		{"4", "4px"},
		{"8", "8px"},
	}
	for _, side := range borderSides {
		for _, w := range widths {
			label := joinKey("border"+side.suffix, w.key)
			b.add(90, label, declare(side.props, w.value), "Set border width to "+w.value)
		}
	}

	for _, s := range lineStyles {
		b.add(91, "border-"+s, "border-style: "+s+";", "Set border style to "+s)
	}

	for _, c := range radiusCorners {
		for _, r := range radii {
			b.add(92, joinKey("rounded"+c.suffix, r.key), declare(c.props, r.value), "Set border radius to "+r.value)
		}
	}

	for _, w := range widths {
		b.add(93, joinKey("divide-x", w.key), "> * + * { border-left-width: "+w.value+"; }", "Vertical divider width "+w.value)
		b.add(93, joinKey("divide-y", w.key), "> * + * { border-top-width: "+w.value+"; }", "Horizontal divider width "+w.value)
	}
	for _, s := range lineStyles[:4] {
		b.add(93, "divide-"+s, "> * + * { border-style: "+s+"; }", "Set divider style to "+s)
	}

	b.add(94, "outline", "outline-style: solid;", "Solid outline")
	b.add(94, "outline-none", "outline: 2px solid transparent; outline-offset: 2px;", "Hide outline, keeping it for forced colors")
	b.add(94, "outline-dashed", "outline-style: dashed;", "Dashed outline")
	b.add(94, "outline-dotted", "outline-style: dotted;", "Dotted outline")
	b.add(94, "outline-double", "outline-style: double;", "Double outline")
	for _, w := range []string{"0", "1", "2", "4", "8"} {
		b.add(94, "outline-"+w, "outline-width: "+w+"px;", "Set outline width to "+w+"px")
		b.add(94, "outline-offset-"+w, "outline-offset: "+w+"px;", "Set outline offset to "+w+"px")
	}

	ringWidths := []struct{ key, value string }{
		{"", "3px"},
		{"0", "0px"},
		{"1", "1px"},
		{"2", "2px"},
		{"4", "4px"},
		{"8", "8px"},
	}
	for _, r := range ringWidths {
		b.add(95, joinKey("ring", r.key), "box-shadow: 0 0 0 "+r.value+" var(--tw-ring-color);", "Set ring width to "+r.value)
	}
	b.add(95, "ring-inset", "--tw-ring-inset: inset;", "Draw ring inside the element")
	for _, w := range []string{"0", "1", "2", "4", "8"} {
		b.add(95, "ring-offset-"+w, "--tw-ring-offset-width: "+w+"px;", "Set ring offset to "+w+"px")
	}

	return b.entries
}
