package object

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"datakit/utils"
)

// ToQueryString encodes params as "k1=v1&k2=v2" without a leading "?".
// Keys are emitted in sorted order and nil values are skipped. Maps, slices,
// arrays and structs are JSON-encoded before escaping.
//
// ParseQueryString does not undo the JSON step: a nested value comes back as
// its JSON text.
func ToQueryString(params map[string]any) (string, error) {
	parts := make([]string, 0, len(params))

	for _, k := range slices.Sorted(maps.Keys(params)) {
		v := params[k]
		if isNil(v) {
			continue
		}

		s, err := queryValue(v)
		if err != nil {
			return "", fmt.Errorf("failed to encode query parameter %q: %w", k, err)
		}

		parts = append(parts, encodeComponent(k)+"="+encodeComponent(s))
	}

	return strings.Join(parts, "&"), nil
}

// ParseQueryString decodes "?a=1&b=2" (the leading "?" is optional) into a
// map of strings. Values are never JSON-decoded. A parameter without "=" maps
// to the empty string, parameters with an empty key are skipped, and text with
// malformed percent escapes is kept verbatim.
func ParseQueryString(qs string) map[string]string {
	out := make(map[string]string)
	if strings.TrimSpace(qs) == "" {
		return out
	}

	qs = strings.TrimPrefix(qs, "?")

	for _, param := range strings.Split(qs, "&") {
		key, value := utils.Unpack2(strings.Split(param, "="))
		if key == "" {
			continue
		}

		out[decodeComponent(key)] = decodeComponent(value)
	}

	return out
}

func queryValue(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}

		return string(data), nil
	default:
		return fmt.Sprint(rv.Interface()), nil
	}
}

// encodeComponent escapes s the way encodeURIComponent does: everything
// except A-Z a-z 0-9 and - _ . ! ~ * ' ( ) is percent-encoded as UTF-8.
func encodeComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder

	b.Grow(len(s))

	for i := range len(s) {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}

	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	return strings.IndexByte("-_.!~*'()", c) >= 0
}

func decodeComponent(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}

	return decoded
}
