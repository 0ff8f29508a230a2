package object

import (
	"reflect"
	"strconv"
	"strings"
)

// GetNestedValue resolves a dot-delimited path such as "user.address.city".
//
// def is returned as soon as a segment lands on nil or on a missing key, when
// the final value is missing, or when it cannot be converted to T. A final
// value that is present but nil yields the zero value of T.
func GetNestedValue[T any](obj any, path string, def T) T {
	v, ok := Lookup(obj, path)
	if !ok {
		return def
	}

	if v == nil {
		var zero T
		return zero
	}

	if t, ok := v.(T); ok {
		return t
	}

	if t, ok := convertNumber[T](v); ok {
		return t
	}

	return def
}

// Lookup resolves a dot-delimited path and reports whether the final segment
// exists. Segments select map keys, slice or array indexes, and exported
// struct fields; pointers and interfaces are followed transparently.
func Lookup(obj any, path string) (any, bool) {
	cur := obj

	for _, seg := range strings.Split(path, ".") {
		if isNil(cur) {
			return nil, false
		}

		next, ok := child(cur, seg)
		if !ok {
			return nil, false
		}

		cur = next
	}

	return cur, true
}

func child(cur any, seg string) (any, bool) {
	switch c := cur.(type) {
	case map[string]any:
		v, ok := c[seg]
		return v, ok
	case []any:
		i, ok := index(seg, len(c))
		if !ok {
			return nil, false
		}

		return c[i], true
	}

	rv := reflect.ValueOf(cur)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}

		v := rv.MapIndex(reflect.ValueOf(seg).Convert(kt))
		if !v.IsValid() {
			return nil, false
		}

		return v.Interface(), true
	case reflect.Slice, reflect.Array:
		i, ok := index(seg, rv.Len())
		if !ok {
			return nil, false
		}

		return rv.Index(i).Interface(), true
	case reflect.Struct:
		f, ok := rv.Type().FieldByName(seg)
		if !ok || !f.IsExported() {
			return nil, false
		}

		fv, err := rv.FieldByIndexErr(f.Index)
		if err != nil {
			return nil, false
		}

		return fv.Interface(), true
	default:
		return nil, false
	}
}

func index(seg string, n int) (int, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}

	return i, true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// convertNumber converts between numeric kinds, e.g. a JSON float64 into an int.
func convertNumber[T any](v any) (T, bool) {
	var zero T

	target := reflect.TypeOf(&zero).Elem()
	rv := reflect.ValueOf(v)

	if !isNumberKind(target.Kind()) || !isNumberKind(rv.Kind()) {
		return zero, false
	}

	return rv.Convert(target).Interface().(T), true
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
