package collection

// Node is a typed tree node produced by BuildTree.
type Node[T any] struct {
	Value    T
	Children []*Node[T]
}

// BuildTree links items into a forest using id and parent accessors. Items
// whose parent equals root become roots in input order; items whose parent is
// not present are dropped. When several items share an id the last one wins as
// a parent.
func BuildTree[T any, ID comparable](items []T, id, parent func(T) ID, root ID) []*Node[T] {
	nodes := make([]*Node[T], len(items))
	index := make(map[ID]*Node[T], len(items))

	for i, item := range items {
		nodes[i] = &Node[T]{Value: item}
		index[id(item)] = nodes[i]
	}

	roots := make([]*Node[T], 0)

	for _, n := range nodes {
		p := parent(n.Value)
		if p == root {
			roots = append(roots, n)
			continue
		}

		if owner, ok := index[p]; ok {
			owner.Children = append(owner.Children, n)
		}
	}

	return roots
}

// FlattenTree returns the values of a forest in depth-first pre-order.
func FlattenTree[T any](nodes []*Node[T]) []T {
	out := make([]T, 0, len(nodes))
	stack := make([]*Node[T], 0, len(nodes))

	push := func(ns []*Node[T]) {
		for i := len(ns) - 1; i >= 0; i-- {
			stack = append(stack, ns[i])
		}
	}

	push(nodes)

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n == nil {
			continue
		}

		out = append(out, n.Value)
		push(n.Children)
	}

	return out
}
