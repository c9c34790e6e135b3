package collections

import (
	"iter"
	"slices"
)

// Unique returns the distinct elements of items in order of first
// occurrence.
//
//	Unique([]int{1, 2, 2, 3, 1, 4})       // → [1 2 3 4]
//	Unique([]rune("abracadabra"))         // → [a b r c d]
func Unique[T comparable](items []T) []T {
	return UniqueBy(items, func(item T) T { return item })
}

// UniqueSeq is [Unique] for an arbitrary [iter.Seq]. seq is consumed once.
func UniqueSeq[T comparable](seq iter.Seq[T]) []T {
	seen := make(map[T]struct{})
	out := make([]T, 0)
	for item := range seq {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// UniqueBy returns elements of items with duplicates removed, where two
// elements are duplicates when key returns the same value for both. The
// first element seen for each key is kept.
//
//	UniqueBy(users, func(u User) string { return strings.ToLower(u.Email) })
func UniqueBy[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return slices.Clip(out)
}
