package text

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nonSlugRun matches every maximal run of characters that cannot appear in
// a slug word.
var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// asciiFold decomposes s with NFKD and drops whatever is left outside
// ASCII. Transformers are stateful, so a new chain is built per call.
func asciiFold(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	out, _, err := transform.String(t, s)
	if err != nil {
		return ""
	}
	return out
}

// Slugify converts text to a lowercase ASCII slug.
//
// The text is folded to ASCII (see the package documentation), lowercased,
// and every run of characters outside [a-z0-9] becomes a single separator.
// Separator characters are trimmed from both ends. The default separator is
// "-"; change it with [Separator].
//
//	Slugify("Hello, World!")                   // "hello-world"
//	Slugify("Café")                            // "cafe"
//	Slugify("Python is Awesome", Separator("_")) // "python_is_awesome"
//	Slugify("")                                // ""
func Slugify(text string, opts ...Option) string {
	o := applyOptions(opts)

	s := strings.ToLower(asciiFold(text))
	s = nonSlugRun.ReplaceAllLiteralString(s, o.separator)
	return strings.Trim(s, o.separator)
}

// Truncate shortens text to at most maxLength runes, ending it with a suffix
// ("..." by default, see [Suffix]) when it had to be cut.
//
// Text that already fits is returned unchanged. Otherwise the result is the
// first maxLength-len(suffix) runes followed by the suffix, so its length is
// exactly maxLength.
//
// When maxLength is shorter than the suffix there is no room for any text:
// the result is the suffix cut to maxLength runes. A negative maxLength is
// treated as zero.
//
//	Truncate("Hello World", 8)              // "Hello..."
//	Truncate("Hi", 10)                      // "Hi"
//	Truncate("Hello World", 9, Suffix("…")) // "Hello Wo…"
//	Truncate("Hello World", 2)              // ".."
func Truncate(text string, maxLength int, opts ...Option) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	o := applyOptions(opts)

	maxLength = max(maxLength, 0)
	suffix := []rune(o.suffix)
	keep := maxLength - len(suffix)
	if keep < 0 {
		return string(suffix[:maxLength])
	}
	return string([]rune(text)[:keep]) + o.suffix
}

// WordCount returns the number of whitespace-separated words in text.
// Leading, trailing and repeated whitespace is ignored.
//
//	WordCount("Hello World")            // 2
//	WordCount("  multiple   spaces  ")  // 2
//	WordCount("")                       // 0
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// RemoveDuplicates removes repeated tokens from text, keeping the first
// occurrence of each in its original position.
//
// By default text is split on runs of whitespace (the same rule as
// [WordCount]) and the result is joined with a single space. With
// [Separator], text is split on that exact separator and rejoined with it.
// An empty separator splits text into individual runes.
//
//	RemoveDuplicates("apple banana apple cherry banana") // "apple banana cherry"
//	RemoveDuplicates("a,b,a,c", Separator(","))          // "a,b,c"
func RemoveDuplicates(text string, opts ...Option) string {
	o := applyOptions(opts)

	parts, sep := strings.Fields(text), " "
	if o.separatorSet {
		parts, sep = strings.Split(text, o.separator), o.separator
	}

	seen := make(map[string]struct{}, len(parts))
	kept := parts[:0]
	for _, part := range parts {
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		kept = append(kept, part)
	}
	return strings.Join(kept, sep)
}
