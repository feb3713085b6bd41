package compiler

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is one "property: value" pair.
type Declaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

func (d Declaration) String() string {
	return d.Property + ": " + d.Value + ";"
}

// ParseDeclarations reads property: value pairs from a declaration block body
// such as "margin: 0; padding: 1rem;". Order is preserved; a repeated
// property keeps both occurrences, as the cascade would.
func ParseDeclarations(body string) []Declaration {
	lexer := css.NewLexer(parse.NewInputString(body))

	var decls []Declaration
	var currentProp string
	var currentVal []string
	afterColon := false

	flush := func() {
		if currentProp != "" && afterColon {
			if v := strings.TrimSpace(strings.Join(currentVal, "")); v != "" {
				decls = append(decls, Declaration{Property: currentProp, Value: v})
			}
		}
		currentProp = ""
		currentVal = nil
		afterColon = false
	}

	for {
		tt, text := lexer.Next()

		if tt == css.ErrorToken || tt == css.RightBraceToken {
			flush()
			break
		}

		switch {
		case (tt == css.IdentToken || tt == css.CustomPropertyNameToken) && currentProp == "":
			currentProp = string(text)
		case tt == css.ColonToken && currentProp != "" && !afterColon:
			afterColon = true
		case tt == css.SemicolonToken:
			flush()
		case afterColon:
			currentVal = append(currentVal, string(text))
		}
	}

	return decls
}

// FormatDeclarations renders decls on one line: "a: 1; b: 2;".
func FormatDeclarations(decls []Declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}

// splitNested separates a nested block such as "> * + * { margin-left: 1rem; }"
// into its selector suffix and body. Plain declaration lists return an empty
// suffix.
func splitNested(cssText string) (suffix, body string) {
	head, rest, ok := strings.Cut(cssText, "{")
	if !ok {
		return "", cssText
	}
	rest = strings.TrimSpace(rest)
	rest = strings.TrimSuffix(rest, "}")
	return strings.TrimSpace(head), rest
}
