package text

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Style -output=style_string.go

// Style names a case convention.
type Style int

const (
	_ Style = iota // zero value is invalid

	StyleCamel
	StylePascal
	StyleSnake
	StyleKebab
)

var styleNames = map[string]Style{
	"camel":  StyleCamel,
	"pascal": StylePascal,
	"snake":  StyleSnake,
	"kebab":  StyleKebab,
}

// StyleNames returns the names accepted by ParseStyle.
func StyleNames() []string {
	return []string{"camel", "pascal", "snake", "kebab"}
}

// ParseStyle resolves a style name such as "snake" or "kebab-case".
func ParseStyle(name string) (Style, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(strings.TrimSuffix(key, "case"), "-")
	key = strings.TrimSuffix(key, "_")

	if s, ok := styleNames[key]; ok {
		return s, nil
	}

	return 0, fmt.Errorf("unknown case style %q", name)
}

// Convert applies style to s.
func Convert(style Style, s string) (string, error) {
	switch style {
	case StyleCamel:
		return CamelCase(s), nil
	case StylePascal:
		return PascalCase(s), nil
	case StyleSnake:
		return SnakeCase(s), nil
	case StyleKebab:
		return KebabCase(s), nil
	default:
		return "", fmt.Errorf("unsupported case style %v", style)
	}
}
