package catalog

// Variant describes one state, media or structural prefix.
type Variant struct {
	Name        string
	Description string
	Order       int
	// Selector is the CSS form: ":hover", "::before", "@media (min-width: 640px)".
	Selector string
}

var pseudoClasses = []struct{ name, desc string }{
	{"hover", "On mouse hover"},
	{"focus", "On focus"},
	{"focus-within", "When child has focus"},
	{"focus-visible", "On keyboard focus"},
	{"active", "On active/pressed"},
	{"visited", "Visited link"},
	{"target", "URL target"},
	{"first", "First child"},
	{"last", "Last child"},
	{"only", "Only child"},
	{"odd", "Odd children"},
	{"even", "Even children"},
	{"first-of-type", "First of type"},
	{"last-of-type", "Last of type"},
	{"only-of-type", "Only of type"},
	{"empty", "Empty element"},
	{"disabled", "Disabled state"},
	{"enabled", "Enabled state"},
	{"checked", "Checked state"},
	{"indeterminate", "Indeterminate state"},
	{"default", "Default option"},
	{"required", "Required field"},
	{"valid", "Valid input"},
	{"invalid", "Invalid input"},
	{"in-range", "Value in range"},
	{"out-of-range", "Value out of range"},
	{"placeholder-shown", "Placeholder visible"},
	{"autofill", "Autofilled input"},
	{"read-only", "Read-only input"},
}

// pseudoSelectors maps variant names whose selector differs from ":name".
var pseudoSelectors = map[string]string{
	"first": ":first-child",
	"last":  ":last-child",
	"only":  ":only-child",
	"odd":   ":nth-child(odd)",
	"even":  ":nth-child(even)",
}

var pseudoElements = []struct{ name, desc string }{
	{"before", "::before pseudo-element"},
	{"after", "::after pseudo-element"},
	{"first-letter", "::first-letter"},
	{"first-line", "::first-line"},
	{"marker", "List marker"},
	{"selection", "Selected text"},
	{"file", "File input button"},
	{"placeholder", "Placeholder text"},
	{"backdrop", "Dialog backdrop"},
}

var breakpoints = []struct{ name, width, desc string }{
	{"sm", "640px", "Small screens (640px+)"},
	{"md", "768px", "Medium screens (768px+)"},
	{"lg", "1024px", "Large screens (1024px+)"},
	{"xl", "1280px", "Extra large screens (1280px+)"},
	{"2xl", "1536px", "2XL screens (1536px+)"},
}

var groupPeer = []struct{ name, selector, desc string }{
	{"group-hover", ".group:hover &", "When group is hovered"},
	{"group-focus", ".group:focus &", "When group is focused"},
	{"group-active", ".group:active &", "When group is active"},
	{"peer-hover", ".peer:hover ~ &", "When peer is hovered"},
	{"peer-focus", ".peer:focus ~ &", "When peer is focused"},
	{"peer-checked", ".peer:checked ~ &", "When peer is checked"},
	{"peer-invalid", ".peer:invalid ~ &", "When peer is invalid"},
}

var modernVariants = []struct{ name, selector, desc string }{
	{"motion-safe", "@media (prefers-reduced-motion: no-preference)", "Prefers reduced motion: no-preference"},
	{"motion-reduce", "@media (prefers-reduced-motion: reduce)", "Prefers reduced motion: reduce"},
	{"contrast-more", "@media (prefers-contrast: more)", "Prefers more contrast"},
	{"contrast-less", "@media (prefers-contrast: less)", "Prefers less contrast"},
	{"portrait", "@media (orientation: portrait)", "Portrait orientation"},
	{"landscape", "@media (orientation: landscape)", "Landscape orientation"},
	{"print", "@media print", "Print media"},
	{"rtl", `[dir="rtl"] &`, "Right-to-left direction"},
	{"ltr", `[dir="ltr"] &`, "Left-to-right direction"},
	{"open", "[open]", "Open state (details/dialog)"},
}

// Variants returns every built-in variant in catalog order.
func Variants() []Variant {
	var out []Variant
	for _, p := range pseudoClasses {
		sel, ok := pseudoSelectors[p.name]
		if !ok {
			sel = ":" + p.name
		}
		out = append(out, Variant{Name: p.name, Description: p.desc, Order: 1, Selector: sel})
	}
	for _, p := range pseudoElements {
		sel := "::" + p.name
		if p.name == "file" {
			sel = "::file-selector-button"
		}
		out = append(out, Variant{Name: p.name, Description: p.desc, Order: 2, Selector: sel})
	}
	for _, bp := range breakpoints {
		out = append(out, Variant{Name: bp.name, Description: bp.desc, Order: 3, Selector: "@media (min-width: " + bp.width + ")"})
	}
	out = append(out, Variant{Name: "dark", Description: "Dark mode", Order: 3, Selector: ".dark &"})
	for _, g := range groupPeer {
		out = append(out, Variant{Name: g.name, Description: g.desc, Order: 4, Selector: g.selector})
	}
	for _, m := range modernVariants {
		out = append(out, Variant{Name: m.name, Description: m.desc, Order: 5, Selector: m.selector})
	}
	return out
}

// GenerateVariants returns the variant completions. Labels carry a trailing ":".
func GenerateVariants() []Entry {
	variants := Variants()
	entries := make([]Entry, 0, len(variants))
	for _, v := range variants {
		entries = append(entries, Entry{
			Label:       v.Name + ":",
			Category:    CategoryVariants,
			CSS:         v.Selector,
			Description: v.Description,
			SortOrder:   v.Order,
		})
	}
	return entries
}
