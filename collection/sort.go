package collection

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

//go:generate go tool stringer -type=Order -output=order_string.go

// Order is the direction used by SortBy. The zero value sorts ascending.
type Order int

const (
	Asc Order = iota
	Desc
)

// ParseOrder converts "asc" or "desc" (any case) into an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return Asc, fmt.Errorf("unknown sort order %q", s)
	}
}

// SortBy returns a copy of s sorted by the value key projects from each element.
// The sort is stable: elements with equal keys keep their relative order.
func SortBy[T any, K cmp.Ordered](s []T, key func(T) K, order Order) []T {
	out := slices.Clone(s)

	sign := 1
	if order == Desc {
		sign = -1
	}

	slices.SortStableFunc(out, func(a, b T) int {
		return sign * cmp.Compare(key(a), key(b))
	})

	return out
}
