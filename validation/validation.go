package validation

import (
	"strings"

	"github.com/hasbyte1/go-usefull/internal/kind"
)

// IsEmail reports whether value looks like an email address.
//
// The check is conservative: local part from [A-Za-z0-9._%+-], an "@", a
// domain from [A-Za-z0-9.-], and a final alphabetic label of two or more
// letters. Quoted local parts, IP-literal domains and internationalized
// domains are not supported.
func IsEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// IsURL reports whether value looks like an http, https or ftp URL.
//
// This is a loose structural check. The authority is not validated, so
// values such as "http://a.." are accepted.
func IsURL(value string) bool {
	return urlRegex.MatchString(value)
}

// IsBlank reports whether value is empty or contains only whitespace.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// IsEmpty reports whether value is "empty":
//
//   - nil, including typed nil pointers, funcs and channels;
//   - a string or byte slice that is empty or only whitespace;
//   - a slice, array, map or set (map[T]struct{}) with no elements, or any
//     value whose Len method returns 0.
//
// Every other value is not empty. In particular numeric zero and false are
// NOT empty, unlike Go's zero-value notion:
//
//	IsEmpty(nil)        // true
//	IsEmpty("   ")      // true
//	IsEmpty([]int{})    // true
//	IsEmpty(0)          // false
//	IsEmpty(false)      // false
func IsEmpty(value any) bool {
	switch kind.Of(value) {
	case kind.Null:
		return true
	case kind.Text:
		return kind.IsBlank(value)
	case kind.Sequence, kind.Mapping:
		return kind.Len(value) == 0
	default:
		return false
	}
}
