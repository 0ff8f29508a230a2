package collection

import (
	"maps"
	"math"
	"reflect"
	"slices"
)

// Record is a flat keyed record as decoded from JSON or YAML.
type Record = map[string]any

const (
	defaultIDField       = "id"
	defaultParentIDField = "parentId"
	defaultChildrenField = "children"
)

// TreeOptions controls how ArrayToTree links records.
type TreeOptions struct {
	// IDField names the field holding a record's identifier.
	IDField string
	// ParentIDField names the field holding the parent's identifier.
	ParentIDField string
	// ChildrenField names the field that receives the list of children.
	ChildrenField string
	// RootValue is the parent identifier that marks a top-level record.
	RootValue any
}

// DefaultTreeOptions returns {id, parentId, children, nil}.
func DefaultTreeOptions() TreeOptions {
	return TreeOptions{
		IDField:       defaultIDField,
		ParentIDField: defaultParentIDField,
		ChildrenField: defaultChildrenField,
	}
}

// Resolved fills empty field names with their defaults. A nil receiver yields
// DefaultTreeOptions.
func (o *TreeOptions) Resolved() TreeOptions {
	res := DefaultTreeOptions()
	if o == nil {
		return res
	}

	if o.IDField != "" {
		res.IDField = o.IDField
	}

	if o.ParentIDField != "" {
		res.ParentIDField = o.ParentIDField
	}

	if o.ChildrenField != "" {
		res.ChildrenField = o.ChildrenField
	}

	res.RootValue = o.RootValue

	return res
}

// ArrayToTree links flat records into a forest.
//
// Records whose parent identifier equals RootValue are returned as roots, in
// input order. Every other record is appended to the children of the record
// whose identifier matches its parent identifier; records whose parent is not
// in items, or that lack the parent field altogether, are dropped. The input records are not modified: the tree is built
// from shallow copies.
func ArrayToTree(items []Record, opts *TreeOptions) []Record {
	l := newLinker(items, opts)

	roots := make([]Record, 0)
	children := make(map[any][]Record)

	for _, item := range l.copies {
		switch parent, state := l.parentOf(item); state {
		case linkRoot:
			roots = append(roots, item)
		case linkChild:
			children[parent] = append(children[parent], item)
		}
	}

	for key, kids := range children {
		parent := l.index[key]
		parent[l.opts.ChildrenField] = append(childList(parent[l.opts.ChildrenField]), kids...)
	}

	return roots
}

// Orphans returns the records of items that ArrayToTree would drop because
// their parent identifier is missing or matches no record.
func Orphans(items []Record, opts *TreeOptions) []Record {
	var out []Record

	for _, i := range OrphanIndexes(items, opts) {
		out = append(out, items[i])
	}

	return out
}

// OrphanIndexes is Orphans reporting positions in items instead of records.
func OrphanIndexes(items []Record, opts *TreeOptions) []int {
	l := newLinker(items, opts)

	var out []int

	for i, item := range l.copies {
		if _, state := l.parentOf(item); state == linkOrphan {
			out = append(out, i)
		}
	}

	return out
}

// TreeToArray flattens a forest in depth-first pre-order. Each emitted record
// is a copy of the node without childrenField. An empty childrenField means
// "children".
func TreeToArray(tree []Record, childrenField string) []Record {
	if childrenField == "" {
		childrenField = defaultChildrenField
	}

	out := make([]Record, 0, len(tree))
	stack := make([]Record, 0, len(tree))

	push := func(nodes []Record) {
		for i := len(nodes) - 1; i >= 0; i-- {
			stack = append(stack, nodes[i])
		}
	}

	push(tree)

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		flat := make(Record, len(node))
		for k, v := range node {
			if k != childrenField {
				flat[k] = v
			}
		}

		out = append(out, flat)
		push(childList(node[childrenField]))
	}

	return out
}

type linkState int

const (
	linkRoot linkState = iota
	linkChild
	linkOrphan
)

type linker struct {
	opts   TreeOptions
	root   any
	rootOK bool
	copies []Record
	index  map[any]Record
}

func newLinker(items []Record, opts *TreeOptions) *linker {
	l := &linker{
		opts:   opts.Resolved(),
		copies: make([]Record, len(items)),
		index:  make(map[any]Record, len(items)),
	}

	l.root, l.rootOK = IDKey(l.opts.RootValue)

	for i, item := range items {
		c := maps.Clone(item)
		if c == nil {
			c = Record{}
		}

		l.copies[i] = c

		id := c[l.opts.IDField]
		if id == nil {
			continue
		}

		if key, ok := IDKey(id); ok {
			l.index[key] = c
		}
	}

	return l
}

// parentOf classifies a record and returns its normalized parent key. A
// record without the parent field is neither a root nor linkable.
func (l *linker) parentOf(item Record) (any, linkState) {
	parent, present := item[l.opts.ParentIDField]
	if !present {
		return nil, linkOrphan
	}

	key, ok := IDKey(parent)
	if !ok {
		return nil, linkOrphan
	}

	if l.rootOK && key == l.root {
		return key, linkRoot
	}

	if _, found := l.index[key]; !found {
		return key, linkOrphan
	}

	return key, linkChild
}

// two63 is 2^63, the first float64 outside the int64 range.
const two63 = float64(1 << 63)

// IDKey normalizes an identifier into a comparable map key, reporting false
// for values that cannot be map keys. Integral numbers of every kind key as
// int64 (uint64 above MaxInt64) so that 1, int64(1) and 1.0 identify the same
// record without losing precision above 2^53; other floats key as float64.
func IDKey(v any) (any, bool) {
	if v == nil {
		return nil, true
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return u, true
		}

		return int64(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == math.Trunc(f) && f >= -two63 && f < two63 {
			return int64(f), true
		}

		return f, true
	default:
		if !rv.Type().Comparable() {
			return nil, false
		}

		return v, true
	}
}

// childList returns a fresh slice holding the record children stored in v.
// Decoded JSON and YAML carry children as []any; non-record entries are skipped.
func childList(v any) []Record {
	switch kids := v.(type) {
	case []Record:
		return slices.Clone(kids)
	case []any:
		out := make([]Record, 0, len(kids))

		for _, k := range kids {
			if r, ok := k.(Record); ok {
				out = append(out, r)
			}
		}

		return out
	default:
		return nil
	}
}
