package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"OrderID", []string{"Order", "ID"}},
		{"order_id", []string{"order", "id"}},
		{"order-id", []string{"order", "id"}},
		{"customerName", []string{"customer", "Name"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"hello   world", []string{"hello", "world"}},
		{"tab\tnew\nline", []string{"tab", "new", "line"}},
		{"__leading--trailing__", []string{"leading", "trailing"}},
		{"version2Update", []string{"version2Update"}},
		{"v2API", []string{"v2API"}},
		{"http2Server", []string{"http2Server"}},
		{"", nil},
		{"a", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Words(tt.input))
		})
	}
}

func TestCaseConversion(t *testing.T) {
	tests := []struct {
		input                       string
		camel, pascal, snake, kebab string
	}{
		{"hello world", "helloWorld", "HelloWorld", "hello_world", "hello-world"},
		{"helloWorld", "helloWorld", "HelloWorld", "hello_world", "hello-world"},
		{"HelloWorld", "helloWorld", "HelloWorld", "hello_world", "hello-world"},
		{"hello_world", "helloWorld", "HelloWorld", "hello_world", "hello-world"},
		{"hello-world", "helloWorld", "HelloWorld", "hello_world", "hello-world"},
		{"XMLParser", "xmlParser", "XmlParser", "xml_parser", "xml-parser"},
		{"version2Beta", "version2beta", "Version2beta", "version2beta", "version2beta"},
		{"user_first-name", "userFirstName", "UserFirstName", "user_first_name", "user-first-name"},
		{"", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.camel, CamelCase(tt.input), "camel")
			assert.Equal(t, tt.pascal, PascalCase(tt.input), "pascal")
			assert.Equal(t, tt.snake, SnakeCase(tt.input), "snake")
			assert.Equal(t, tt.kebab, KebabCase(tt.input), "kebab")
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Hello", Capitalize("hello"))
	assert.Equal(t, "HELLO world", Capitalize("hELLO world"))
	assert.Equal(t, "HWorld", Capitalize("hWorld"))
	assert.Equal(t, "Élan", Capitalize("élan"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "1abc", Capitalize("1abc"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello...", Truncate("hello world", 5))
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "你好...", Truncate("你好世界", 2))
	assert.Equal(t, "...", Truncate("abc", -1))
}

func TestParseStyle(t *testing.T) {
	for _, name := range []string{"snake", "snake_case", "SNAKE", "snake-case"} {
		s, err := ParseStyle(name)
		require.NoError(t, err, name)
		assert.Equal(t, StyleSnake, s)
	}

	s, err := ParseStyle("camelCase")
	require.NoError(t, err)
	assert.Equal(t, StyleCamel, s)

	_, err = ParseStyle("screaming")
	require.Error(t, err)

	assert.Equal(t, "StyleKebab", StyleKebab.String())
	assert.Equal(t, "Style(0)", Style(0).String())
	assert.Len(t, StyleNames(), 4)
}

func TestConvert(t *testing.T) {
	out, err := Convert(StyleKebab, "someValue")
	require.NoError(t, err)
	assert.Equal(t, "some-value", out)

	_, err = Convert(Style(0), "x")
	require.Error(t, err)
}

func TestIsValidURL(t *testing.T) {
	valid := []string{
		"https://example.com",
		"http://localhost:8080/path?q=1#frag",
		"ftp://files.example.com/a.txt",
		"mailto:someone@example.com",
		"file:///etc/hosts",
	}
	invalid := []string{
		"",
		"example.com",
		"not a url",
		"http://",
		"://missing-scheme",
		"http://exa mple.com",
	}

	for _, s := range valid {
		assert.True(t, IsValidURL(s), s)
	}

	for _, s := range invalid {
		assert.False(t, IsValidURL(s), s)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last+tag@sub.example.org", "a@b.co"}
	invalid := []string{"", "user", "user@", "@example.com", "user@example", "us er@example.com", "user@.com"}

	for _, s := range valid {
		assert.True(t, IsValidEmail(s), s)
	}

	for _, s := range invalid {
		assert.False(t, IsValidEmail(s), s)
	}

	// Known looseness: consecutive dots in the domain tail are accepted.
	assert.True(t, IsValidEmail("user@example..com"))
}
