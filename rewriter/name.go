package rewriter

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName converts raw input into a capitalized identifier:
//
//   - "my button"      -> "MyButton"
//   - "fancy-card_v2"  -> "FancyCardV2"
//   - "navBar"         -> "NavBar"
//
// Words are split on non-alphanumerics and on lower-to-upper case boundaries.
// Leading digits are dropped.
func NormalizeName(raw string) string {
	title := cases.Title(language.English, cases.NoLower)

	var b strings.Builder
	for _, word := range reWordSplit.Split(raw, -1) {
		for _, part := range splitCamel(word) {
			b.WriteString(title.String(part))
		}
	}
	return strings.TrimLeftFunc(b.String(), unicode.IsDigit)
}

// ValidateName reports whether name can be used as a JS identifier.
func ValidateName(name string) bool {
	return reIdentifier.MatchString(name)
}

func splitCamel(word string) []string {
	if word == "" {
		return nil
	}
	var parts []string
	start := 0
	runes := []rune(word)
	for i := 1; i < len(runes); i++ {
		if unicode.IsUpper(runes[i]) && unicode.IsLower(runes[i-1]) {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	return append(parts, string(runes[start:]))
}
