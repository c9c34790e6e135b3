// Package kind classifies dynamically-typed values into a small closed set
// of shapes. Functions that accept any (Flatten, IsEmpty) classify their
// input once with [Of] and branch on the result instead of scattering type
// switches through their bodies.
package kind

import (
	"bytes"
	"reflect"
	"strings"
)

// Kind is the shape of a value as seen by this module.
type Kind uint8

const (
	// Null is the absence of a value: a nil interface, pointer, func, chan
	// or unsafe pointer.
	Null Kind = iota
	// Scalar is any atomic value: numbers, booleans, structs, non-nil
	// pointers and everything else that is not one of the shapes below.
	Scalar
	// Text is a string (or a type whose underlying type is string) or a
	// byte slice. Text is atomic: it is never expanded as a sequence.
	Text
	// Sequence is an ordered collection: a slice or array, or any value
	// implementing [Sized].
	Sequence
	// Mapping is a Go map, including sets modelled as map[T]struct{}.
	Mapping
)

var names = [...]string{
	Null:     "null",
	Scalar:   "scalar",
	Text:     "text",
	Sequence: "sequence",
	Mapping:  "mapping",
}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Sized is implemented by collection types that report their own length.
type Sized interface {
	Len() int
}

// Of returns the shape of v.
func Of(v any) Kind {
	switch v.(type) {
	case nil:
		return Null
	case string, []byte:
		return Text
	case []any, []string, []int:
		return Sequence
	case map[string]any:
		return Mapping
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return Scalar
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return Null
		}
	}
	if _, ok := v.(Sized); ok {
		return Sequence
	}

	switch rv.Kind() {
	case reflect.String:
		return Text
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Text
		}
		return Sequence
	case reflect.Array:
		return Sequence
	case reflect.Map:
		return Mapping
	default:
		return Scalar
	}
}

// Len returns the number of elements of a Text, Sequence or Mapping value.
// Text length is in bytes. Len returns 0 for Null and Scalar values.
func Len(v any) int {
	switch x := v.(type) {
	case nil:
		return 0
	case string:
		return len(x)
	case []byte:
		return len(x)
	case []any:
		return len(x)
	case map[string]any:
		return len(x)
	case Sized:
		return x.Len()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len()
	default:
		return 0
	}
}

// IsBlank reports whether a Text value is empty or holds only whitespace.
// It returns false for values that are not Text.
func IsBlank(v any) bool {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x) == ""
	case []byte:
		return len(bytes.TrimSpace(x)) == 0
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		return len(bytes.TrimSpace(rv.Bytes())) == 0
	default:
		return false
	}
}

// Elems returns the elements of a slice or array value as []any.
// The second result is false when v is not a slice or array, or when it is
// Text. A []any is returned as is, without copying.
func Elems(v any) ([]any, bool) {
	if x, ok := v.([]any); ok {
		return x, true
	}
	if Of(v) != Sequence {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
