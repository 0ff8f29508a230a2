package text

import (
	"strings"
	"unicode"
)

// Words splits s into words. Word boundaries are hyphens, underscores,
// whitespace, lower-to-upper transitions, and the last letter of an
// upper-case run that is followed by a lower-case letter.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customer_name" -> ["customer", "name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "get HTTP-response" -> ["get", "HTTP", "response"]
//   - "version2Beta" -> ["version2Beta"]
func Words(s string) []string {
	if s == "" {
		return nil
	}

	var words []string

	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return words
}

// isSeparator returns true if the rune separates words on its own.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// startsWord determines if a new word starts at position i.
func startsWord(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "orderID" -> split before 'I'
	if unicode.IsLower(prev) {
		return true
	}

	// "version2Beta" stays one word
	if !unicode.IsUpper(prev) {
		return false
	}

	// "XMLParser" -> split before 'P'
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
