package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CamelCase converts s to camelCase: "user_first-name" -> "userFirstName".
func CamelCase(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}

	lower := cases.Lower(language.Und)

	var b strings.Builder

	b.WriteString(lower.String(words[0]))

	for _, w := range words[1:] {
		b.WriteString(titleWord(w))
	}

	return b.String()
}

// PascalCase converts s to PascalCase: "user_first-name" -> "UserFirstName".
func PascalCase(s string) string {
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(titleWord(w))
	}

	return b.String()
}

// SnakeCase converts s to snake_case: "userFirstName" -> "user_first_name".
func SnakeCase(s string) string {
	return joinLower(Words(s), "_")
}

// KebabCase converts s to kebab-case: "userFirstName" -> "user-first-name".
func KebabCase(s string) string {
	return joinLower(Words(s), "-")
}

// Capitalize upper-cases the first character of s and leaves the rest alone.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return cases.Upper(language.Und).String(string(r)) + s[size:]
}

// Truncate shortens s to n characters and appends "..." when s is longer.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}

	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n]) + "..."
}

func titleWord(w string) string {
	return Capitalize(cases.Lower(language.Und).String(w))
}

func joinLower(words []string, sep string) string {
	lower := cases.Lower(language.Und)

	for i, w := range words {
		words[i] = lower.String(w)
	}

	return strings.Join(words, sep)
}
