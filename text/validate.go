package text

import (
	"net/url"
	"regexp"
)

// emailPattern is deliberately loose and accepts many addresses RFC 5322
// rejects (and a few it allows are refused).
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@][^\s.@]*\.[^\s@]+$`)

// IsValidURL reports whether s parses as an absolute URL: it needs a scheme
// plus a host, an opaque part or a path. Parse errors yield false.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}

	return u.Host != "" || u.Opaque != "" || u.Path != ""
}

// IsValidEmail reports whether s looks like an e-mail address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
