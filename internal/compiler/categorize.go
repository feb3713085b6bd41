package compiler

import (
	"strings"
)

// Category groups related CSS properties for display.
type Category string

const (
	CategoryLayout     Category = "Layout"
	CategoryVisual     Category = "Visual"
	CategoryTypography Category = "Typography"
	CategoryEffects    Category = "Effects"
	CategoryTokens     Category = "Tokens"
	CategoryInternal   Category = "Internal"
)

// categoryOrder is the display order used by GroupDeclarations.
var categoryOrder = []Category{
	CategoryLayout,
	CategoryVisual,
	CategoryTypography,
	CategoryEffects,
	CategoryTokens,
	CategoryInternal,
}

// propertyCategories maps CSS property names to categories
var propertyCategories = map[string]Category{
	// Visual
	"background":            CategoryVisual,
	"background-color":      CategoryVisual,
	"background-image":      CategoryVisual,
	"background-blend-mode": CategoryVisual,
	"color":                 CategoryVisual,
	"accent-color":          CategoryVisual,
	"caret-color":           CategoryVisual,
	"border":                CategoryVisual,
	"border-color":          CategoryVisual,
	"border-radius":         CategoryVisual,
	"border-width":          CategoryVisual,
	"border-style":          CategoryVisual,
	"box-shadow":            CategoryVisual,
	"opacity":               CategoryVisual,
	"outline":               CategoryVisual,
	"outline-color":         CategoryVisual,
	"outline-width":         CategoryVisual,
	"outline-style":         CategoryVisual,
	"outline-offset":        CategoryVisual,
	"fill":                  CategoryVisual,
	"stroke":                CategoryVisual,
	"visibility":            CategoryVisual,
	"cursor":                CategoryVisual,
	"appearance":            CategoryVisual,

	// Layout
	"display":               CategoryLayout,
	"flex":                  CategoryLayout,
	"order":                 CategoryLayout,
	"justify-content":       CategoryLayout,
	"justify-items":         CategoryLayout,
	"justify-self":          CategoryLayout,
	"align-items":           CategoryLayout,
	"align-self":            CategoryLayout,
	"align-content":         CategoryLayout,
	"place-content":         CategoryLayout,
	"place-items":           CategoryLayout,
	"place-self":            CategoryLayout,
	"gap":                   CategoryLayout,
	"row-gap":               CategoryLayout,
	"column-gap":            CategoryLayout,
	"position":              CategoryLayout,
	"inset":                 CategoryLayout,
	"top":                   CategoryLayout,
	"right":                 CategoryLayout,
	"bottom":                CategoryLayout,
	"left":                  CategoryLayout,
	"width":                 CategoryLayout,
	"height":                CategoryLayout,
	"min-width":             CategoryLayout,
	"min-height":            CategoryLayout,
	"max-width":             CategoryLayout,
	"max-height":            CategoryLayout,
	"overflow":              CategoryLayout,
	"overflow-x":            CategoryLayout,
	"overflow-y":            CategoryLayout,
	"z-index":               CategoryLayout,
	"aspect-ratio":          CategoryLayout,
	"object-fit":            CategoryLayout,
	"object-position":       CategoryLayout,
	"float":                 CategoryLayout,
	"clear":                 CategoryLayout,
	"isolation":             CategoryLayout,
	"resize":                CategoryLayout,
	"scroll-behavior":       CategoryLayout,
	"touch-action":          CategoryLayout,
	"user-select":           CategoryLayout,
	"pointer-events":        CategoryLayout,
	"will-change":           CategoryLayout,

	// Typography
	"font-family":     CategoryTypography,
	"font-size":       CategoryTypography,
	"font-weight":     CategoryTypography,
	"font-style":      CategoryTypography,
	"line-height":     CategoryTypography,
	"letter-spacing":  CategoryTypography,
	"text-align":      CategoryTypography,
	"text-transform":  CategoryTypography,
	"text-overflow":   CategoryTypography,
	"text-wrap":       CategoryTypography,
	"white-space":     CategoryTypography,
	"word-break":      CategoryTypography,
	"overflow-wrap":   CategoryTypography,
	"hyphens":         CategoryTypography,
	"content":         CategoryTypography,
	"text-decoration": CategoryTypography,

	// Effects
	"transition":                 CategoryEffects,
	"transition-property":        CategoryEffects,
	"transition-duration":        CategoryEffects,
	"transition-timing-function": CategoryEffects,
	"transition-delay":           CategoryEffects,
	"transform":                  CategoryEffects,
	"transform-origin":           CategoryEffects,
	"animation":                  CategoryEffects,
	"filter":                     CategoryEffects,
	"backdrop-filter":            CategoryEffects,
	"mix-blend-mode":             CategoryEffects,
	"clip-path":                  CategoryEffects,
	"mask":                       CategoryEffects,
}

// Categorize determines the category of a CSS property.
func Categorize(property string) Category {
	if cat, exists := propertyCategories[property]; exists {
		return cat
	}

	if strings.HasPrefix(property, "--") {
		return CategoryTokens
	}

	if strings.HasPrefix(property, "-webkit-") ||
		strings.HasPrefix(property, "-moz-") ||
		strings.HasPrefix(property, "-ms-") ||
		strings.HasPrefix(property, "-o-") {
		return CategoryInternal
	}

	switch {
	case strings.HasPrefix(property, "flex-"), strings.HasPrefix(property, "grid-"),
		strings.HasPrefix(property, "padding-"), strings.HasPrefix(property, "margin-"),
		strings.HasPrefix(property, "scroll-"):
		return CategoryLayout
	case strings.HasPrefix(property, "border-"):
		return CategoryVisual
	case strings.HasPrefix(property, "text-decoration-"), strings.HasPrefix(property, "font-"):
		return CategoryTypography
	}

	// padding, margin and unknown properties
	return CategoryLayout
}

// DeclarationGroup is the declarations of one category.
type DeclarationGroup struct {
	Category     Category      `json:"category"`
	Declarations []Declaration `json:"declarations"`
}

// GroupDeclarations partitions decls by category in display order, keeping
// declaration order within each group. Empty categories are omitted.
func GroupDeclarations(decls []Declaration) []DeclarationGroup {
	byCat := make(map[Category][]Declaration)
	for _, d := range decls {
		cat := Categorize(d.Property)
		byCat[cat] = append(byCat[cat], d)
	}

	var groups []DeclarationGroup
	for _, cat := range categoryOrder {
		if ds := byCat[cat]; len(ds) > 0 {
			groups = append(groups, DeclarationGroup{Category: cat, Declarations: ds})
		}
	}
	return groups
}
