package collections

import "iter"

// Groups is an insertion-ordered mapping from a group key to the elements
// that produced it. It is the result of [GroupBy].
//
// Keys are kept in the order they were first encountered, and each group
// keeps its elements in input order. A Groups value is read-only once
// returned and safe for concurrent reads.
type Groups[K comparable, T any] struct {
	keys  []K
	index map[K]int
	items [][]T
}

// GroupBy applies key to every element of items and buckets the elements by
// the returned value.
//
//	groups := collections.GroupBy([]int{1, 2, 3, 4, 5}, func(n int) int { return n % 2 })
//	groups.Keys()  // → [1 0]
//	groups.Get(1)  // → [1 3 5], true
//	groups.Get(0)  // → [2 4], true
func GroupBy[T any, K comparable](items []T, key func(T) K) *Groups[K, T] {
	g := &Groups[K, T]{
		keys:  make([]K, 0),
		index: make(map[K]int),
		items: make([][]T, 0),
	}
	for _, item := range items {
		k := key(item)
		i, ok := g.index[k]
		if !ok {
			i = len(g.keys)
			g.index[k] = i
			g.keys = append(g.keys, k)
			g.items = append(g.items, nil)
		}
		g.items[i] = append(g.items[i], item)
	}
	return g
}

// Len returns the number of distinct keys.
func (g *Groups[K, T]) Len() int { return len(g.keys) }

// Keys returns a copy of the keys in first-encounter order.
func (g *Groups[K, T]) Keys() []K {
	out := make([]K, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns a copy of the group for k together with a presence flag.
func (g *Groups[K, T]) Get(k K) ([]T, bool) {
	i, ok := g.index[k]
	if !ok {
		return nil, false
	}
	return cloneGroup(g.items[i]), true
}

// All iterates over every group in key order.
//
//	for k, items := range groups.All() {
//	    fmt.Println(k, items)
//	}
func (g *Groups[K, T]) All() iter.Seq2[K, []T] {
	return func(yield func(K, []T) bool) {
		for i, k := range g.keys {
			if !yield(k, cloneGroup(g.items[i])) {
				return
			}
		}
	}
}

// Map returns the groups as a plain Go map. Key order is lost.
func (g *Groups[K, T]) Map() map[K][]T {
	out := make(map[K][]T, len(g.keys))
	for i, k := range g.keys {
		out[k] = cloneGroup(g.items[i])
	}
	return out
}

func cloneGroup[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
