package catalog

import (
	"github.com/yacobolo/coralsense/internal/theme"
)

var sizeFractions = []string{"1/2", "1/3", "2/3", "1/4", "2/4", "3/4", "1/5", "2/5", "3/5", "4/5", "1/6", "5/6"}

var intrinsicSizes = []struct{ key, value string }{
	{"auto", "auto"},
	{"min", "min-content"},
	{"max", "max-content"},
	{"fit", "fit-content"},
}

var maxWidths = []struct{ key, value string }{
	{"xs", "20rem"},
	{"sm", "24rem"},
	{"md", "28rem"},
	{"lg", "32rem"},
	{"xl", "36rem"},
	{"2xl", "42rem"},
	{"3xl", "48rem"},
	{"4xl", "56rem"},
	{"5xl", "64rem"},
	{"6xl", "72rem"},
	{"7xl", "80rem"},
	{"prose", "65ch"},
	{"screen-sm", "640px"},
	{"screen-md", "768px"},
	{"screen-lg", "1024px"},
	{"screen-xl", "1280px"},
	{"screen-2xl", "1536px"},
}

func sizing(t theme.Theme) []Entry {
	b := newBuilder(CategorySizing)

	for _, tok := range t.Spacing {
		b.add(80, "w-"+tok.Key, "width: "+tok.Value+";", "Set width to "+tok.Value)
		b.add(80, "h-"+tok.Key, "height: "+tok.Value+";", "Set height to "+tok.Value)
	}

	for _, f := range sizeFractions {
		b.add(81, "w-"+f, "width: "+percent(f)+";", "Set width to "+f)
	}
	b.add(81, "w-full", "width: 100%;", "Full width")
	b.add(81, "w-screen", "width: 100vw;", "Full viewport width")

	for _, f := range sizeFractions {
		b.add(81, "h-"+f, "height: "+percent(f)+";", "Set height to "+f)
	}
	b.add(81, "h-full", "height: 100%;", "Full height")
	b.add(81, "h-screen", "height: 100vh;", "Full viewport height")
	b.add(81, "h-svh", "height: 100svh;", "Small viewport height")
	b.add(81, "h-lvh", "height: 100lvh;", "Large viewport height")
	b.add(81, "h-dvh", "height: 100dvh;", "Dynamic viewport height")

	for _, s := range intrinsicSizes {
		b.add(82, "w-"+s.key, "width: "+s.value+";", "Set width to "+s.value)
		b.add(82, "h-"+s.key, "height: "+s.value+";", "Set height to "+s.value)
	}

	bounds := []struct{ prefix, prop string }{
		{"min-w", "min-width"},
		{"max-w", "max-width"},
		{"min-h", "min-height"},
		{"max-h", "max-height"},
	}
	boundValues := []struct{ key, value string }{
		{"0", "0px"},
		{"full", "100%"},
		{"min", "min-content"},
		{"max", "max-content"},
		{"fit", "fit-content"},
	}
	for _, bd := range bounds {
		for _, v := range boundValues {
			b.add(83, bd.prefix+"-"+v.key, bd.prop+": "+v.value+";", "Set "+bd.prop+" to "+v.value)
		}
	}

	for _, mw := range maxWidths {
		b.add(84, "max-w-"+mw.key, "max-width: "+mw.value+";", "Set max width to "+mw.value)
	}

	for _, tok := range t.Spacing {
		b.add(85, "size-"+tok.Key, "width: "+tok.Value+"; height: "+tok.Value+";", "Set width and height to "+tok.Value)
	}

	return b.entries
}
