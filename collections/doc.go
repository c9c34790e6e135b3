// Package collections provides stateless, generic helpers for common slice
// and sequence operations: flattening nested structures, splitting into
// chunks, removing duplicates and grouping by key.
//
// # Overview
//
// Every helper is a package-level function over a plain []T (or an
// [iter.Seq] where laziness matters). Inputs are never modified and results
// never alias the input's backing array, so values are safe to share across
// goroutines without locking.
//
//	flat := collections.Flatten([]any{1, []any{2, 3}, []any{4, []any{5}}}, -1)
//	// → [1 2 3 4 5]
//
//	chunks, _ := collections.Chunk([]int{1, 2, 3, 4, 5}, 2)
//	for c := range chunks {
//	    fmt.Println(c) // [1 2], [3 4], [5]
//	}
//
//	collections.Unique([]int{1, 2, 2, 3, 1}) // → [1 2 3]
//
//	groups := collections.GroupBy([]string{"apple", "banana", "avocado"},
//	    func(s string) byte { return s[0] })
//	groups.Keys() // → ['a' 'b'], in first-encounter order
//
// # Nested input
//
// [Flatten] works on heterogeneous []any values. Any slice or array element
// is treated as a nested sequence; strings and byte slices are leaves even
// though they are indexable.
//
// # Laziness
//
// [Chunk] and [ChunkSeq] return an [iter.Seq] that pulls from its source
// only as far as the consumer ranges. Ranging over the result again starts
// from the beginning of the source.
//
// # Errors
//
// The only failure is a non-positive chunk size, reported as
// [ErrInvalidChunkSize]. It also matches [ErrInvalidArgument].
package collections
