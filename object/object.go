package object

import (
	"maps"
	"slices"
	"strings"
)

// RemoveEmpty returns a copy of m without entries whose value is nil or the
// empty string. Other zero values such as 0 and false are kept.
func RemoveEmpty(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))

	for k, v := range m {
		if v == nil {
			continue
		}

		if s, ok := v.(string); ok && s == "" {
			continue
		}

		out[k] = v
	}

	return out
}

// Flatten turns nested maps into a single level with dot-joined keys.
// Only map[string]any values are descended into; slices and every other
// value are kept as leaves under their key.
//
//	Flatten(map[string]any{"user": map[string]any{"name": "John"}}, "")
//	// map[user.name:John]
func Flatten(m map[string]any, prefix string) map[string]any {
	out := make(map[string]any)
	flattenInto(out, m, prefix)

	return out
}

func flattenInto(out, m map[string]any, prefix string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		if nested, ok := v.(map[string]any); ok && nested != nil {
			flattenInto(out, nested, key)
			continue
		}

		out[key] = v
	}
}

// Unflatten rebuilds nested maps from dot-joined keys. It inverts Flatten for
// nested maps without slices. When a key is both a leaf and a prefix
// ("a" and "a.b"), the nested map wins.
func Unflatten(flat map[string]any) map[string]any {
	out := make(map[string]any)

	for _, key := range slices.Sorted(maps.Keys(flat)) {
		segs := strings.Split(key, ".")
		cur := out

		for _, seg := range segs[:len(segs)-1] {
			next, ok := cur[seg].(map[string]any)
			if !ok {
				next = make(map[string]any)
				cur[seg] = next
			}

			cur = next
		}

		last := segs[len(segs)-1]
		if _, isMap := cur[last].(map[string]any); isMap {
			continue
		}

		cur[last] = flat[key]
	}

	return out
}

// MergeObjects deep-merges objs from left to right. When both sides hold a
// map[string]any under the same key the maps are merged recursively;
// otherwise the right-hand value replaces the left one. Slices are replaced
// as a whole, never merged element by element.
func MergeObjects(objs ...map[string]any) map[string]any {
	out := make(map[string]any)

	for _, obj := range objs {
		for k, v := range obj {
			prev, prevIsMap := out[k].(map[string]any)
			next, nextIsMap := v.(map[string]any)

			if prevIsMap && nextIsMap {
				out[k] = MergeObjects(prev, next)
				continue
			}

			out[k] = v
		}
	}

	return out
}

// Pick returns a map holding only the listed keys that exist in m.
func Pick[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	out := make(M, len(keys))

	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}

	return out
}

// Omit returns a copy of m without the listed keys.
func Omit[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	out := make(M, len(m))
	maps.Copy(out, m)

	for _, k := range keys {
		delete(out, k)
	}

	return out
}
