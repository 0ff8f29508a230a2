package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetNestedValue(t *testing.T) {
	t.Parallel()

	user := map[string]any{
		"profile": map[string]any{
			"name":  "John",
			"age":   float64(30),
			"phone": nil,
			"tags":  []any{"a", "b"},
		},
	}

	tests := []struct {
		name string
		path string
		def  any
		want any
	}{
		{"leaf", "profile.name", nil, "John"},
		{"missing leaf", "profile.email", "none", "none"},
		{"missing branch", "account.id", 7, 7},
		{"through nil", "profile.phone.number", "n/a", "n/a"},
		{"present nil", "profile.phone", "n/a", nil},
		{"slice index", "profile.tags.1", nil, "b"},
		{"slice out of range", "profile.tags.5", "x", "x"},
		{"empty segment", "profile..name", "x", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetNestedValue(user, tt.path, tt.def))
		})
	}
}

func TestGetNestedValue_Typed(t *testing.T) {
	t.Parallel()

	user := map[string]any{"profile": map[string]any{"name": "John", "age": float64(30)}}

	assert.Equal(t, "John", GetNestedValue(user, "profile.name", ""))
	assert.Equal(t, 30, GetNestedValue(user, "profile.age", 18))
	assert.Equal(t, 18, GetNestedValue(user, "profile.missing", 18))
	assert.Equal(t, 18, GetNestedValue(user, "profile.name", 18), "type mismatch falls back")
}

func TestGetNestedValue_Structs(t *testing.T) {
	t.Parallel()

	type address struct{ City string }

	type person struct {
		Address *address
		Labels  map[string]string
		secret  string
	}

	p := person{Address: &address{City: "NY"}, Labels: map[string]string{"team": "core"}, secret: "s"}

	assert.Equal(t, "NY", GetNestedValue(p, "Address.City", ""))
	assert.Equal(t, "core", GetNestedValue(&p, "Labels.team", ""))
	assert.Equal(t, "?", GetNestedValue(p, "secret", "?"))
	assert.Equal(t, "?", GetNestedValue(person{}, "Address.City", "?"))
}

func TestLookup(t *testing.T) {
	t.Parallel()

	v, ok := Lookup(map[string]any{"a": nil}, "a")
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = Lookup(nil, "a")
	assert.False(t, ok)
}

func TestRemoveEmpty(t *testing.T) {
	t.Parallel()

	in := map[string]any{"name": "John", "age": nil, "email": "", "count": 0, "active": false}
	out := RemoveEmpty(in)

	assert.Equal(t, map[string]any{"name": "John", "count": 0, "active": false}, out)
	assert.Len(t, in, 5)
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"user": map[string]any{
			"name":    "John",
			"address": map[string]any{"city": "NY"},
		},
	}

	assert.Equal(t, map[string]any{"user.name": "John", "user.address.city": "NY"}, Flatten(in, ""))
	assert.Equal(t, map[string]any{"p.user.name": "John", "p.user.address.city": "NY"}, Flatten(in, "p"))
}

func TestFlatten_SlicesAreLeaves(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"list":  []any{map[string]any{"a": 1}},
		"empty": map[string]any{},
		"n":     nil,
	}

	assert.Equal(t, map[string]any{"list": []any{map[string]any{"a": 1}}, "n": nil}, Flatten(in, ""))
}

func TestUnflatten(t *testing.T) {
	t.Parallel()

	nested := map[string]any{
		"user": map[string]any{
			"name":    "John",
			"address": map[string]any{"city": "NY", "zip": "10001"},
		},
		"active": true,
	}

	assert.Equal(t, nested, Unflatten(Flatten(nested, "")))
	assert.Equal(t, map[string]any{"a": map[string]any{"b": 2}}, Unflatten(map[string]any{"a": 1, "a.b": 2}))
}

func TestMergeObjects(t *testing.T) {
	t.Parallel()

	left := map[string]any{"a": 1, "b": map[string]any{"c": 2}}
	right := map[string]any{"b": map[string]any{"d": 3}, "e": 4}

	merged := MergeObjects(left, right)

	assert.Equal(t, map[string]any{"a": 1, "b": map[string]any{"c": 2, "d": 3}, "e": 4}, merged)
	assert.Equal(t, map[string]any{"c": 2}, left["b"], "inputs must stay untouched")
	assert.Equal(t, map[string]any{"d": 3}, right["b"])
}

func TestMergeObjects_SlicesAreAtomic(t *testing.T) {
	t.Parallel()

	merged := MergeObjects(
		map[string]any{"tags": []any{"a", "b"}, "x": map[string]any{"y": 1}},
		map[string]any{"tags": []any{"c"}, "x": "flat"},
		map[string]any{"z": nil},
	)

	assert.Equal(t, map[string]any{"tags": []any{"c"}, "x": "flat", "z": nil}, merged)
	assert.Empty(t, MergeObjects())
}

func TestPickOmit(t *testing.T) {
	t.Parallel()

	user := map[string]any{"name": "John", "age": 30}

	assert.Equal(t, map[string]any{"name": "John"}, Pick(user, "name"))
	assert.Equal(t, map[string]any{"age": 30}, Omit(user, "name"))
	assert.Equal(t, map[string]any{"name": "John"}, Pick(user, "name", "missing"))
	assert.Equal(t, user, Omit(user))
	assert.Len(t, user, 2)

	typed := map[string]int{"a": 1, "b": 2}
	assert.Equal(t, map[string]int{"b": 2}, Omit(typed, "a"))
}
