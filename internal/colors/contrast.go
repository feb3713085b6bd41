package colors

import (
	"math"
	"strings"
)

// Level is a WCAG conformance level.
type Level string

const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// ParseLevel maps "AAA" (any case) to LevelAAA and everything else to LevelAA.
func ParseLevel(s string) Level {
	if strings.EqualFold(s, string(LevelAAA)) {
		return LevelAAA
	}
	return LevelAA
}

// Thresholds returns the minimum ratios for normal and large text.
func (l Level) Thresholds() (normal, large float64) {
	if l == LevelAAA {
		return 7, 4.5
	}
	return 4.5, 3
}

// WCAGResult reports whether a pair passes a level.
type WCAGResult struct {
	NormalText bool    `json:"normalText"`
	LargeText  bool    `json:"largeText"`
	Ratio      float64 `json:"ratio"`
}

// Evaluate checks a contrast ratio against the level.
func (l Level) Evaluate(ratio float64) WCAGResult {
	normal, large := l.Thresholds()
	return WCAGResult{
		NormalText: ratio >= normal,
		LargeText:  ratio >= large,
		Ratio:      ratio,
	}
}

// Luminance returns the WCAG relative luminance.
func Luminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(ch int) float64 {
	c := float64(ch) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns (L_light + 0.05) / (L_dark + 0.05), in [1, 21].
func ContrastRatio(a, b RGB) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
