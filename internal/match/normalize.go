package match

import (
	"strings"
	"unicode"
)

// Normalize case-folds s and strips separators, so "Kebab_Case", "kebab-case"
// and "kebabcase" compare equal.
func Normalize(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
