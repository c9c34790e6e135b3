package usefull

import (
	"iter"

	"github.com/hasbyte1/go-usefull/collections"
	"github.com/hasbyte1/go-usefull/internal/errs"
	"github.com/hasbyte1/go-usefull/numeric"
	"github.com/hasbyte1/go-usefull/text"
	"github.com/hasbyte1/go-usefull/validation"
)

// Version is the module version.
const Version = "0.1.0"

// Errors.
var (
	ErrInvalidArgument  = errs.ErrInvalidArgument
	ErrInvalidChunkSize = collections.ErrInvalidChunkSize
	ErrInvalidRange     = numeric.ErrInvalidRange
	ErrInvalidPrecision = numeric.ErrInvalidPrecision
	ErrZeroTotal        = numeric.ErrZeroTotal
)

// ─────────────────────────────────────────────────────────────────────────────
// Text
// ─────────────────────────────────────────────────────────────────────────────

// TextOption configures the text helpers. See [text.Option].
type TextOption = text.Option

// Separator is [text.Separator].
func Separator(sep string) TextOption { return text.Separator(sep) }

// Suffix is [text.Suffix].
func Suffix(suffix string) TextOption { return text.Suffix(suffix) }

// Slugify is [text.Slugify].
func Slugify(s string, opts ...TextOption) string { return text.Slugify(s, opts...) }

// Truncate is [text.Truncate].
func Truncate(s string, maxLength int, opts ...TextOption) string {
	return text.Truncate(s, maxLength, opts...)
}

// WordCount is [text.WordCount].
func WordCount(s string) int { return text.WordCount(s) }

// RemoveDuplicates is [text.RemoveDuplicates].
func RemoveDuplicates(s string, opts ...TextOption) string {
	return text.RemoveDuplicates(s, opts...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Collections
// ─────────────────────────────────────────────────────────────────────────────

// Groups is [collections.Groups].
type Groups[K comparable, T any] = collections.Groups[K, T]

// Flatten is [collections.Flatten].
func Flatten(nested []any, depth int) []any { return collections.Flatten(nested, depth) }

// Chunk is [collections.Chunk].
func Chunk[T any](items []T, size int) (iter.Seq[[]T], error) {
	return collections.Chunk(items, size)
}

// ChunkSeq is [collections.ChunkSeq].
func ChunkSeq[T any](seq iter.Seq[T], size int) (iter.Seq[[]T], error) {
	return collections.ChunkSeq(seq, size)
}

// Unique is [collections.Unique].
func Unique[T comparable](items []T) []T { return collections.Unique(items) }

// GroupBy is [collections.GroupBy].
func GroupBy[T any, K comparable](items []T, key func(T) K) *Groups[K, T] {
	return collections.GroupBy(items, key)
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// IsEmail is [validation.IsEmail].
func IsEmail(value string) bool { return validation.IsEmail(value) }

// IsURL is [validation.IsURL].
func IsURL(value string) bool { return validation.IsURL(value) }

// IsEmpty is [validation.IsEmpty].
func IsEmpty(value any) bool { return validation.IsEmpty(value) }

// ─────────────────────────────────────────────────────────────────────────────
// Numeric
// ─────────────────────────────────────────────────────────────────────────────

// Number is [numeric.Number].
type Number = numeric.Number

// Clamp is [numeric.Clamp].
func Clamp[T Number](value, lo, hi T) (T, error) { return numeric.Clamp(value, lo, hi) }

// Lerp is [numeric.Lerp].
func Lerp[T Number](start, end T, t float64) float64 { return numeric.Lerp(start, end, t) }

// RoundTo is [numeric.RoundTo].
func RoundTo[T Number](value, precision T) (float64, error) {
	return numeric.RoundTo(value, precision)
}

// Percentage is [numeric.Percentage].
func Percentage[T Number](value, total T) (float64, error) {
	return numeric.Percentage(value, total)
}
