// Package text provides stateless string helpers: URL slugs, length-bounded
// truncation, word counting and duplicate-token removal.
//
// All functions work on runes (Unicode code points), never on raw bytes, and
// are total: every input, including the empty string, produces a result.
//
//	text.Slugify("Hello, World!")                 // "hello-world"
//	text.Slugify("Café au lait", text.Separator("_")) // "cafe_au_lait"
//	text.Truncate("Hello World", 8)               // "Hello..."
//	text.WordCount("  multiple   spaces  ")       // 2
//	text.RemoveDuplicates("a,b,a,c", text.Separator(",")) // "a,b,c"
//
// # Options
//
// Per-call behaviour is configured with functional [Option] values. Each
// function reads only the options that apply to it and ignores the rest:
//
//   - [Separator] is read by [Slugify] and [RemoveDuplicates].
//   - [Suffix] is read by [Truncate].
//
// # ASCII folding
//
// [Slugify] folds text to ASCII through Unicode compatibility decomposition
// (NFKD) and then drops every code point that is still outside ASCII.
// Diacritics disappear ("é" → "e"), while scripts without a Latin
// decomposition (Cyrillic, CJK, …) are dropped entirely. There is no
// transliteration.
package text
