package catalog

import (
	"strings"
)

var boxShadows = []struct{ key, value string }{
	{"sm", "0 1px 2px 0 rgb(0 0 0 / 0.05)"},
	{"", "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)"},
	{"md", "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)"},
	{"lg", "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)"},
	{"xl", "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)"},
	{"2xl", "0 25px 50px -12px rgb(0 0 0 / 0.25)"},
	{"inner", "inset 0 2px 4px 0 rgb(0 0 0 / 0.05)"},
	{"none", "none"},
}

var blendModes = []string{
	"normal", "multiply", "screen", "overlay", "darken", "lighten",
	"color-dodge", "color-burn", "hard-light", "soft-light", "difference",
	"exclusion", "hue", "saturation", "color", "luminosity", "plus-lighter",
}

func effects() []Entry {
	b := newBuilder(CategoryEffects)

	for _, s := range boxShadows {
		b.add(100, joinKey("shadow", s.key), "box-shadow: "+s.value+";", "Set box shadow")
	}

	for i := 0; i <= 100; i += 5 {
		n := itoa(i)
		value := formatNumber(float64(i) / 100)
		b.add(101, "opacity-"+n, "opacity: "+value+";", "Set opacity to "+n+"%")
	}

	for _, m := range blendModes {
		b.add(102, "mix-blend-"+m, "mix-blend-mode: "+m+";", "Blend element with "+m)
		b.add(102, "bg-blend-"+m, "background-blend-mode: "+m+";", "Blend background with "+m)
	}

	return b.entries
}

var translateValues = []string{"0", "px", "0.5", "1", "2", "3", "4", "5", "6", "8", "10", "12", "16", "20", "24", "1/2", "1/3", "2/3", "1/4", "3/4", "full"}

func transforms() []Entry {
	b := newBuilder(CategoryTransforms)

	for _, s := range []int{0, 50, 75, 90, 95, 100, 105, 110, 125, 150} {
		n := itoa(s)
		value := formatNumber(float64(s) / 100)
		b.add(110, "scale-"+n, "transform: scale("+value+");", "Scale to "+n+"%")
		b.add(110, "scale-x-"+n, "transform: scaleX("+value+");", "Scale horizontally to "+n+"%")
		b.add(110, "scale-y-"+n, "transform: scaleY("+value+");", "Scale vertically to "+n+"%")
	}

	for _, r := range []string{"0", "1", "2", "3", "6", "12", "45", "90", "180"} {
		b.add(111, "rotate-"+r, "transform: rotate("+r+"deg);", "Rotate "+r+" degrees")
		if r != "0" {
			b.add(111, "-rotate-"+r, "transform: rotate(-"+r+"deg);", "Rotate -"+r+" degrees")
		}
	}

	for _, v := range translateValues {
		value := resolveLength(v)
		b.add(112, "translate-x-"+v, "transform: translateX("+value+");", "Translate horizontally by "+value)
		b.add(112, "translate-y-"+v, "transform: translateY("+value+");", "Translate vertically by "+value)
		if v != "0" {
			b.add(112, "-translate-x-"+v, "transform: translateX(-"+value+");", "Translate horizontally by -"+value)
			b.add(112, "-translate-y-"+v, "transform: translateY(-"+value+");", "Translate vertically by -"+value)
		}
	}

	for _, s := range []string{"0", "1", "2", "3", "6", "12"} {
		b.add(113, "skew-x-"+s, "transform: skewX("+s+"deg);", "Skew horizontally "+s+" degrees")
		b.add(113, "skew-y-"+s, "transform: skewY("+s+"deg);", "Skew vertically "+s+" degrees")
		if s != "0" {
			b.add(113, "-skew-x-"+s, "transform: skewX(-"+s+"deg);", "Skew horizontally -"+s+" degrees")
			b.add(113, "-skew-y-"+s, "transform: skewY(-"+s+"deg);", "Skew vertically -"+s+" degrees")
		}
	}

	for _, o := range []string{"center", "top", "top-right", "right", "bottom-right", "bottom", "bottom-left", "left", "top-left"} {
		value := strings.Replace(o, "-", " ", 1)
		b.add(114, "origin-"+o, "transform-origin: "+value+";", "Set transform origin to "+value)
	}

	return b.entries
}

var transitionProperties = []struct{ key, value string }{
	{"none", "none"},
	{"all", "all"},
	{"", "color, background-color, border-color, text-decoration-color, fill, stroke, opacity, box-shadow, transform, filter, backdrop-filter"},
	{"colors", "color, background-color, border-color, text-decoration-color, fill, stroke"},
	{"opacity", "opacity"},
	{"shadow", "box-shadow"},
	{"transform", "transform"},
}

var durations = []string{"0", "75", "100", "150", "200", "300", "500", "700", "1000"}

func transitions() []Entry {
	b := newBuilder(CategoryTransitions)

	for _, p := range transitionProperties {
		b.add(120, joinKey("transition", p.key), "transition-property: "+p.value+";", "Transition "+p.value)
	}

	for _, d := range durations {
		b.add(121, "duration-"+d, "transition-duration: "+d+"ms;", "Transition for "+d+"ms")
	}

	easings := []struct{ key, value string }{
		{"linear", "linear"},
		{"in", "cubic-bezier(0.4, 0, 1, 1)"},
		{"out", "cubic-bezier(0, 0, 0.2, 1)"},
		{"in-out", "cubic-bezier(0.4, 0, 0.2, 1)"},
	}
	for _, e := range easings {
		b.add(122, "ease-"+e.key, "transition-timing-function: "+e.value+";", "Ease "+e.key)
	}

	for _, d := range durations {
		b.add(123, "delay-"+d, "transition-delay: "+d+"ms;", "Delay transition by "+d+"ms")
	}

	animations := []struct{ key, value string }{
		{"none", "none"},
		{"spin", "spin 1s linear infinite"},
		{"ping", "ping 1s cubic-bezier(0, 0, 0.2, 1) infinite"},
		{"pulse", "pulse 2s cubic-bezier(0.4, 0, 0.6, 1) infinite"},
		{"bounce", "bounce 1s infinite"},
	}
	for _, a := range animations {
		b.add(124, "animate-"+a.key, "animation: "+a.value+";", "Animate with "+a.key)
	}

	return b.entries
}

var blurs = []struct{ key, value string }{
	{"none", "0"},
	{"sm", "4px"},
	{"", "8px"},
	{"md", "12px"},
	{"lg", "16px"},
	{"xl", "24px"},
	{"2xl", "40px"},
	{"3xl", "64px"},
}

var dropShadows = []struct{ key, value string }{
	{"sm", "drop-shadow(0 1px 1px rgb(0 0 0 / 0.05))"},
	{"", "drop-shadow(0 1px 2px rgb(0 0 0 / 0.1)) drop-shadow(0 1px 1px rgb(0 0 0 / 0.06))"},
	{"md", "drop-shadow(0 4px 3px rgb(0 0 0 / 0.07)) drop-shadow(0 2px 2px rgb(0 0 0 / 0.06))"},
	{"lg", "drop-shadow(0 10px 8px rgb(0 0 0 / 0.04)) drop-shadow(0 4px 3px rgb(0 0 0 / 0.1))"},
	{"xl", "drop-shadow(0 20px 13px rgb(0 0 0 / 0.03)) drop-shadow(0 8px 5px rgb(0 0 0 / 0.08))"},
	{"2xl", "drop-shadow(0 25px 25px rgb(0 0 0 / 0.15))"},
	{"none", "drop-shadow(0 0 #0000)"},
}

func filters() []Entry {
	b := newBuilder(CategoryFilters)

	for _, bl := range blurs {
		b.add(130, joinKey("blur", bl.key), "filter: blur("+bl.value+");", "Blur by "+bl.value)
		b.add(130, joinKey("backdrop-blur", bl.key), "backdrop-filter: blur("+bl.value+");", "Blur backdrop by "+bl.value)
	}

	levels := []int{0, 50, 75, 90, 95, 100, 105, 110, 125, 150, 200}
	for _, fn := range []struct {
		name  string
		order int
	}{{"brightness", 131}, {"contrast", 132}} {
		for _, l := range levels {
			n := itoa(l)
			value := formatNumber(float64(l) / 100)
			b.add(fn.order, fn.name+"-"+n, "filter: "+fn.name+"("+value+");", "Set "+fn.name+" to "+n+"%")
			b.add(fn.order, "backdrop-"+fn.name+"-"+n, "backdrop-filter: "+fn.name+"("+value+");", "Set backdrop "+fn.name+" to "+n+"%")
		}
	}

	for _, fn := range []struct {
		name  string
		order int
	}{{"grayscale", 133}, {"invert", 134}, {"sepia", 135}} {
		b.add(fn.order, fn.name, "filter: "+fn.name+"(100%);", "Apply full "+fn.name)
		b.add(fn.order, fn.name+"-0", "filter: "+fn.name+"(0);", "Remove "+fn.name)
		b.add(fn.order, "backdrop-"+fn.name, "backdrop-filter: "+fn.name+"(100%);", "Apply full backdrop "+fn.name)
		b.add(fn.order, "backdrop-"+fn.name+"-0", "backdrop-filter: "+fn.name+"(0);", "Remove backdrop "+fn.name)
	}

	for _, s := range []int{0, 50, 100, 150, 200} {
		n := itoa(s)
		value := formatNumber(float64(s) / 100)
		b.add(136, "saturate-"+n, "filter: saturate("+value+");", "Set saturation to "+n+"%")
		b.add(136, "backdrop-saturate-"+n, "backdrop-filter: saturate("+value+");", "Set backdrop saturation to "+n+"%")
	}

	for _, h := range []string{"0", "15", "30", "60", "90", "180"} {
		b.add(137, "hue-rotate-"+h, "filter: hue-rotate("+h+"deg);", "Rotate hue "+h+" degrees")
		if h != "0" {
			b.add(137, "-hue-rotate-"+h, "filter: hue-rotate(-"+h+"deg);", "Rotate hue -"+h+" degrees")
		}
		b.add(137, "backdrop-hue-rotate-"+h, "backdrop-filter: hue-rotate("+h+"deg);", "Rotate backdrop hue "+h+" degrees")
	}

	for _, d := range dropShadows {
		b.add(138, joinKey("drop-shadow", d.key), "filter: "+d.value+";", "Apply drop shadow")
	}

	return b.entries
}
