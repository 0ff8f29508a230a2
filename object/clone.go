package object

import "reflect"

// DeepClone returns a structural copy of v.
//
// Maps, slices, arrays, pointers, interfaces and exported struct fields are
// copied recursively. A visited table keyed by address makes shared
// substructures and cycles come out as the same sharing and cycles in the
// clone, pointing at cloned values rather than at v. Channels, functions and
// unexported struct fields are copied by value (shallowly).
func DeepClone[T any](v T) T {
	c := cloner{visited: make(map[visitKey]reflect.Value)}

	src := reflect.ValueOf(&v).Elem()
	dst := reflect.New(src.Type())
	dst.Elem().Set(c.clone(src))

	return *dst.Interface().(*T)
}

// visitKey identifies a reference-typed value. Slices also record their
// length because two slices may share a backing array with different bounds.
type visitKey struct {
	typ reflect.Type
	ptr uintptr
	len int
}

type cloner struct {
	visited map[visitKey]reflect.Value
}

func (c *cloner) clone(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Pointer:
		return c.clonePointer(v)
	case reflect.Map:
		return c.cloneMap(v)
	case reflect.Slice:
		return c.cloneSlice(v)
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := range v.Len() {
			out.Index(i).Set(c.clone(v.Index(i)))
		}

		return out
	case reflect.Struct:
		return c.cloneStruct(v)
	case reflect.Interface:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}

		out := reflect.New(v.Type()).Elem()
		out.Set(c.clone(v.Elem()))

		return out
	default:
		return v
	}
}

func (c *cloner) clonePointer(v reflect.Value) reflect.Value {
	if v.IsNil() {
		return reflect.Zero(v.Type())
	}

	key := visitKey{typ: v.Type(), ptr: v.Pointer()}
	if done, ok := c.visited[key]; ok {
		return done
	}

	out := reflect.New(v.Type().Elem())
	c.visited[key] = out
	out.Elem().Set(c.clone(v.Elem()))

	return out
}

func (c *cloner) cloneMap(v reflect.Value) reflect.Value {
	if v.IsNil() {
		return reflect.Zero(v.Type())
	}

	key := visitKey{typ: v.Type(), ptr: v.Pointer()}
	if done, ok := c.visited[key]; ok {
		return done
	}

	out := reflect.MakeMapWithSize(v.Type(), v.Len())
	c.visited[key] = out

	iter := v.MapRange()
	for iter.Next() {
		out.SetMapIndex(c.clone(iter.Key()), c.clone(iter.Value()))
	}

	return out
}

func (c *cloner) cloneSlice(v reflect.Value) reflect.Value {
	if v.IsNil() {
		return reflect.Zero(v.Type())
	}

	key := visitKey{typ: v.Type(), ptr: v.Pointer(), len: v.Len()}
	if done, ok := c.visited[key]; ok {
		return done
	}

	out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
	c.visited[key] = out

	for i := range v.Len() {
		out.Index(i).Set(c.clone(v.Index(i)))
	}

	return out
}

func (c *cloner) cloneStruct(v reflect.Value) reflect.Value {
	out := reflect.New(v.Type()).Elem()
	out.Set(v)

	t := v.Type()
	for i := range t.NumField() {
		if !t.Field(i).IsExported() {
			continue
		}

		out.Field(i).Set(c.clone(v.Field(i)))
	}

	return out
}
