package object

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepClone_NestedMap(t *testing.T) {
	t.Parallel()

	original := map[string]any{
		"a": 1,
		"b": map[string]any{"c": 2},
		"l": []any{1, map[string]any{"d": 3}},
	}

	clone := DeepClone(original)
	require.Equal(t, original, clone)

	clone["b"].(map[string]any)["c"] = 3
	clone["l"].([]any)[1].(map[string]any)["d"] = 4

	assert.Equal(t, 2, original["b"].(map[string]any)["c"])
	assert.Equal(t, 3, original["l"].([]any)[1].(map[string]any)["d"])
}

func TestDeepClone_SelfReferentialMap(t *testing.T) {
	t.Parallel()

	original := map[string]any{"name": "root"}
	original["self"] = original

	clone := DeepClone(original)

	self, ok := clone["self"].(map[string]any)
	require.True(t, ok, spew.Sdump(clone))

	assert.Equal(t, reflect.ValueOf(clone).Pointer(), reflect.ValueOf(self).Pointer(),
		"the cycle must point at the clone")
	assert.NotEqual(t, reflect.ValueOf(original).Pointer(), reflect.ValueOf(self).Pointer())

	self["name"] = "changed"
	assert.Equal(t, "changed", clone["name"])
	assert.Equal(t, "root", original["name"])
}

type node struct {
	Name  string
	Next  *node
	Tags  []string
	notes []string
}

func TestDeepClone_PointerCycle(t *testing.T) {
	t.Parallel()

	a := &node{Name: "a", Tags: []string{"x"}, notes: []string{"private"}}
	b := &node{Name: "b", Next: a}
	a.Next = b

	clone := DeepClone(a)

	require.NotSame(t, a, clone)
	require.NotSame(t, b, clone.Next)
	assert.Same(t, clone, clone.Next.Next)
	assert.Equal(t, "b", clone.Next.Name)

	clone.Tags[0] = "y"
	assert.Equal(t, "x", a.Tags[0])

	// unexported fields are carried over shallowly
	assert.Equal(t, []string{"private"}, clone.notes)
}

func TestDeepClone_SharedStructure(t *testing.T) {
	t.Parallel()

	shared := map[string]any{"v": 1}
	original := []any{shared, shared}

	clone := DeepClone(original)

	first := clone[0].(map[string]any)
	second := clone[1].(map[string]any)
	assert.Equal(t, reflect.ValueOf(first).Pointer(), reflect.ValueOf(second).Pointer())
	assert.NotEqual(t, reflect.ValueOf(shared).Pointer(), reflect.ValueOf(first).Pointer())
}

func TestDeepClone_SelfReferentialSlice(t *testing.T) {
	t.Parallel()

	original := make([]any, 2)
	original[0] = "head"
	original[1] = original

	clone := DeepClone(original)

	inner, ok := clone[1].([]any)
	require.True(t, ok)
	assert.Equal(t, reflect.ValueOf(clone).Pointer(), reflect.ValueOf(inner).Pointer())
}

func TestDeepClone_Scalars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, DeepClone(42))
	assert.Equal(t, "s", DeepClone("s"))
	assert.Nil(t, DeepClone[any](nil))
	assert.Nil(t, DeepClone[map[string]any](nil))
	assert.Equal(t, [2]int{1, 2}, DeepClone([2]int{1, 2}))
}
