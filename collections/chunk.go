package collections

import (
	"iter"
	"slices"
)

// Chunk splits items into consecutive groups of size elements. The last
// group holds the remainder and may be shorter. Empty input yields no
// groups at all.
//
// Chunk returns [ErrInvalidChunkSize] immediately when size <= 0.
//
// The returned sequence is lazy and can be ranged over any number of times.
// Every yielded slice is freshly allocated, so callers may keep or modify
// it without affecting items or later chunks.
//
//	chunks, err := collections.Chunk([]int{1, 2, 3, 4, 5}, 2)
//	if err != nil { ... }
//	for c := range chunks {
//	    fmt.Println(c) // [1 2], then [3 4], then [5]
//	}
//
// Use [slices.Collect] to materialise every chunk at once.
func Chunk[T any](items []T, size int) (iter.Seq[[]T], error) {
	return ChunkSeq(slices.Values(items), size)
}

// ChunkSeq is [Chunk] for an arbitrary [iter.Seq]. It pulls from seq only as
// far as the consumer ranges, so it works with unbounded sources as long as
// the consumer stops early. Each range over the result ranges over seq again
// from its start.
func ChunkSeq[T any](seq iter.Seq[T], size int) (iter.Seq[[]T], error) {
	if size <= 0 {
		return nil, ErrInvalidChunkSize
	}

	return func(yield func([]T) bool) {
		var buf []T
		for item := range seq {
			buf = append(buf, item)
			if len(buf) < size {
				continue
			}
			if !yield(buf) {
				return
			}
			buf = nil
		}
		if len(buf) > 0 {
			yield(buf)
		}
	}, nil
}
