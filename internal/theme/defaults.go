package theme

// shadeKeys is the shade ladder shared by every built-in color scale.
var shadeKeys = [11]string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

// defaultScales lists the built-in color families in catalog order.
var defaultScales = []struct {
	name   string
	shades [11]string
}{
	{"slate", [11]string{"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a", "#020617"}},
	{"gray", [11]string{"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827", "#030712"}},
	{"red", [11]string{"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#450a0a"}},
	{"orange", [11]string{"#fff7ed", "#ffedd5", "#fed7aa", "#fdba74", "#fb923c", "#f97316", "#ea580c", "#c2410c", "#9a3412", "#7c2d12", "#431407"}},
	{"amber", [11]string{"#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f", "#451a03"}},
	{"yellow", [11]string{"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12", "#422006"}},
	{"green", [11]string{"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d", "#052e16"}},
	{"emerald", [11]string{"#ecfdf5", "#d1fae5", "#a7f3d0", "#6ee7b7", "#34d399", "#10b981", "#059669", "#047857", "#065f46", "#064e3b", "#022c22"}},
	{"teal", [11]string{"#f0fdfa", "#ccfbf1", "#99f6e4", "#5eead4", "#2dd4bf", "#14b8a6", "#0d9488", "#0f766e", "#115e59", "#134e4a", "#042f2e"}},
	{"cyan", [11]string{"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63", "#083344"}},
	{"sky", [11]string{"#f0f9ff", "#e0f2fe", "#bae6fd", "#7dd3fc", "#38bdf8", "#0ea5e9", "#0284c7", "#0369a1", "#075985", "#0c4a6e", "#082f49"}},
	{"blue", [11]string{"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a", "#172554"}},
	{"indigo", [11]string{"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81", "#1e1b4b"}},
	{"violet", [11]string{"#f5f3ff", "#ede9fe", "#ddd6fe", "#c4b5fd", "#a78bfa", "#8b5cf6", "#7c3aed", "#6d28d9", "#5b21b6", "#4c1d95", "#2e1065"}},
	{"purple", [11]string{"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7e22ce", "#6b21a8", "#581c87", "#3b0764"}},
	{"pink", [11]string{"#fdf2f8", "#fce7f3", "#fbcfe8", "#f9a8d4", "#f472b6", "#ec4899", "#db2777", "#be185d", "#9d174d", "#831843", "#500724"}},
	{"rose", [11]string{"#fff1f2", "#ffe4e6", "#fecdd3", "#fda4af", "#fb7185", "#f43f5e", "#e11d48", "#be123c", "#9f1239", "#881337", "#4c0519"}},
	{"coral", [11]string{"#fff5f3", "#ffe8e3", "#ffd5cc", "#ffb5a6", "#ff8a73", "#ff6b6b", "#f0524f", "#d63d3d", "#b33434", "#8f2f2f", "#4d1414"}},
}

// Default returns the built-in theme. Each call returns a fresh value.
func Default() Theme {
	return Theme{
		Colors:        defaultColors(),
		Spacing:       defaultSpacing(),
		FontSize:      defaultFontSize(),
		FontWeight:    defaultFontWeight(),
		FontFamily:    defaultFontFamily(),
		LineHeight:    defaultLineHeight(),
		LetterSpacing: defaultLetterSpacing(),
		Screens:       defaultScreens(),
	}
}

func defaultColors() []NamedColor {
	colors := []NamedColor{
		{Name: "black", Value: Solid("#000000")},
		{Name: "white", Value: Solid("#ffffff")},
	}
	for _, s := range defaultScales {
		shades := make([]Shade, len(shadeKeys))
		for i, key := range shadeKeys {
			shades[i] = Shade{Key: key, Literal: s.shades[i]}
		}
		colors = append(colors, NamedColor{Name: s.name, Value: ShadeScale(shades...)})
	}
	return colors
}

func defaultSpacing() Scale {
	return Scale{
		{"0", "0px"}, {"px", "1px"}, {"0.5", "0.125rem"}, {"1", "0.25rem"},
		{"1.5", "0.375rem"}, {"2", "0.5rem"}, {"2.5", "0.625rem"}, {"3", "0.75rem"},
		{"3.5", "0.875rem"}, {"4", "1rem"}, {"5", "1.25rem"}, {"6", "1.5rem"},
		{"7", "1.75rem"}, {"8", "2rem"}, {"9", "2.25rem"}, {"10", "2.5rem"},
		{"11", "2.75rem"}, {"12", "3rem"}, {"14", "3.5rem"}, {"16", "4rem"},
		{"20", "5rem"}, {"24", "6rem"}, {"28", "7rem"}, {"32", "8rem"},
		{"36", "9rem"}, {"40", "10rem"}, {"44", "11rem"}, {"48", "12rem"},
		{"52", "13rem"}, {"56", "14rem"}, {"60", "15rem"}, {"64", "16rem"},
		{"72", "18rem"}, {"80", "20rem"}, {"96", "24rem"},
	}
}

func defaultFontSize() Scale {
	return Scale{
		{"xs", "0.75rem"}, {"sm", "0.875rem"}, {"base", "1rem"}, {"lg", "1.125rem"},
		{"xl", "1.25rem"}, {"2xl", "1.5rem"}, {"3xl", "1.875rem"}, {"4xl", "2.25rem"},
		{"5xl", "3rem"}, {"6xl", "3.75rem"}, {"7xl", "4.5rem"}, {"8xl", "6rem"},
		{"9xl", "8rem"},
	}
}

func defaultFontWeight() Scale {
	return Scale{
		{"thin", "100"}, {"extralight", "200"}, {"light", "300"}, {"normal", "400"},
		{"medium", "500"}, {"semibold", "600"}, {"bold", "700"}, {"extrabold", "800"},
		{"black", "900"},
	}
}

func defaultFontFamily() Scale {
	return Scale{
		{"sans", "var(--font-sans)"},
		{"serif", "var(--font-serif)"},
		{"mono", "var(--font-mono)"},
	}
}

func defaultLineHeight() Scale {
	return Scale{
		{"none", "1"}, {"tight", "1.25"}, {"snug", "1.375"}, {"normal", "1.5"},
		{"relaxed", "1.625"}, {"loose", "2"}, {"3", ".75rem"}, {"4", "1rem"},
		{"5", "1.25rem"}, {"6", "1.5rem"}, {"7", "1.75rem"}, {"8", "2rem"},
		{"9", "2.25rem"}, {"10", "2.5rem"},
	}
}

func defaultLetterSpacing() Scale {
	return Scale{
		{"tighter", "-0.05em"}, {"tight", "-0.025em"}, {"normal", "0em"},
		{"wide", "0.025em"}, {"wider", "0.05em"}, {"widest", "0.1em"},
	}
}

func defaultScreens() Scale {
	return Scale{
		{"sm", "640px"}, {"md", "768px"}, {"lg", "1024px"}, {"xl", "1280px"}, {"2xl", "1536px"},
	}
}
