package collections

import "github.com/hasbyte1/go-usefull/internal/kind"

// flattenFrame is one level of the explicit traversal stack used by
// [Flatten]. depth is the remaining depth for elements of items; a negative
// value means unlimited.
type flattenFrame struct {
	items []any
	pos   int
	depth int
}

// Flatten flattens nested slices and arrays inside nested, up to depth
// levels. A negative depth flattens everything; depth 0 returns a shallow
// copy of nested.
//
// Leaves are emitted in left-to-right, depth-first order. Strings and byte
// slices are leaves. Maps, structs and all other non-sequence values are
// leaves too.
//
//	Flatten([]any{1, []any{2, 3}, []any{4, []any{5, 6}}}, -1)
//	// → [1 2 3 4 5 6]
//	Flatten([]any{1, []any{2, []any{3, []any{4}}}}, 1)
//	// → [1 2 [3 [4]]]
//
// The traversal uses an explicit stack, so arbitrarily deep input does not
// grow the goroutine stack.
func Flatten(nested []any, depth int) []any {
	out := make([]any, 0, len(nested))
	stack := []flattenFrame{{items: nested, depth: depth}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.pos == len(top.items) {
			stack = stack[:len(stack)-1]
			continue
		}
		item := top.items[top.pos]
		top.pos++

		if top.depth != 0 {
			if elems, ok := kind.Elems(item); ok {
				stack = append(stack, flattenFrame{items: elems, depth: childDepth(top.depth)})
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

// childDepth decrements a positive depth and leaves an unlimited (negative)
// depth untouched.
func childDepth(depth int) int {
	if depth > 0 {
		return depth - 1
	}
	return depth
}

// Collapse flattens a slice of slices into a single slice (one level only).
//
//	Collapse([][]int{{1, 2}, {3, 4}, {5}}) // → [1 2 3 4 5]
func Collapse[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}
