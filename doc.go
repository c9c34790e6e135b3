// Package usefull is a collection of small, stateless helper functions for
// everyday programming tasks.
//
// The helpers live in four independent packages:
//
//   - [github.com/hasbyte1/go-usefull/text]: Slugify, Truncate, WordCount, RemoveDuplicates
//   - [github.com/hasbyte1/go-usefull/collections]: Flatten, Chunk, Unique, GroupBy
//   - [github.com/hasbyte1/go-usefull/validation]: IsEmail, IsURL, IsEmpty
//   - [github.com/hasbyte1/go-usefull/numeric]: Clamp, Lerp, RoundTo, Percentage
//
// This package re-exports all of them under one import for callers that
// prefer a single namespace:
//
//	usefull.Slugify("Hello, World!")               // "hello-world"
//	usefull.Flatten([]any{1, []any{2, 3}}, -1)     // [1 2 3]
//	usefull.IsEmpty("   ")                         // true
//
// # Errors
//
// Every failure in this module is an invalid argument and matches
// [ErrInvalidArgument] with errors.Is. The more specific sentinels (for
// example [ErrInvalidChunkSize]) are re-exported as well.
//
// # Concurrency
//
// No function holds or touches shared mutable state. Everything is safe to
// call from multiple goroutines without coordination.
package usefull
