package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-usefull/text"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []text.Option
		expected string
	}{
		{name: "simple text", input: "Hello World", expected: "hello-world"},
		{name: "punctuation", input: "Hello, World!", expected: "hello-world"},
		{name: "custom separator", input: "Hello World", opts: []text.Option{text.Separator("_")}, expected: "hello_world"},
		{name: "multiple spaces", input: "Hello    World", expected: "hello-world"},
		{name: "diacritics", input: "Café", expected: "cafe"},
		{name: "mixed diacritics", input: "Café résumé naïve", expected: "cafe-resume-naive"},
		{name: "compatibility forms", input: "ﬁle ½", expected: "file-12"},
		{name: "non latin script is dropped", input: "Привет мир", expected: ""},
		{name: "non latin next to latin", input: "Go 北京 2024", expected: "go-2024"},
		{name: "empty string", input: "", expected: ""},
		{name: "only special characters", input: "!@#$%^&*()", expected: ""},
		{name: "leading and trailing noise", input: "  --Trim Me!--  ", expected: "trim-me"},
		{name: "numbers", input: "Product 123", expected: "product-123"},
		{name: "multi character separator", input: "a b", opts: []text.Option{text.Separator("--")}, expected: "a--b"},
		{name: "separator with regexp metacharacters", input: "a b", opts: []text.Option{text.Separator("$1")}, expected: "a$1b"},
		{name: "empty separator", input: "Hello World", opts: []text.Option{text.Separator("")}, expected: "helloworld"},
		{name: "suffix option is ignored", input: "Hello World", opts: []text.Option{text.Suffix("~")}, expected: "hello-world"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.Slugify(tt.input, tt.opts...))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		opts      []text.Option
		expected  string
	}{
		{name: "no truncation needed", input: "Hello", maxLength: 10, expected: "Hello"},
		{name: "truncation", input: "Hello World", maxLength: 8, expected: "Hello..."},
		{name: "exact length", input: "Hello", maxLength: 5, expected: "Hello"},
		{name: "custom suffix", input: "Hello World", maxLength: 9, opts: []text.Option{text.Suffix("…")}, expected: "Hello Wo…"},
		{name: "long text custom suffix", input: "Long text here", maxLength: 10, opts: []text.Option{text.Suffix("…")}, expected: "Long text…"},
		{name: "empty suffix", input: "Hello World", maxLength: 5, opts: []text.Option{text.Suffix("")}, expected: "Hello"},
		{name: "counts runes not bytes", input: "héllo wörld", maxLength: 8, expected: "héllo..."},
		{name: "max equals suffix length", input: "Hello World", maxLength: 3, expected: "..."},
		{name: "max shorter than suffix", input: "Hello World", maxLength: 2, expected: ".."},
		{name: "zero max", input: "Hello", maxLength: 0, expected: ""},
		{name: "negative max", input: "Hello", maxLength: -4, expected: ""},
		{name: "empty input", input: "", maxLength: 0, expected: ""},
		{name: "separator option is ignored", input: "Hello World", maxLength: 8, opts: []text.Option{text.Separator("_")}, expected: "Hello..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.Truncate(tt.input, tt.maxLength, tt.opts...))
		})
	}
}

func TestTruncateNeverExceedsMaxLength(t *testing.T) {
	input := "The quick brown fox jumps over the lazy dog"
	for n := 0; n <= len(input)+2; n++ {
		got := text.Truncate(input, n)
		assert.LessOrEqual(t, len([]rune(got)), n, "Truncate(%q, %d) = %q", input, n, got)
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"Hello World", 2},
		{"  multiple   spaces  ", 2},
		{"", 0},
		{"   \t\n ", 0},
		{"Hello", 1},
		{"tabs\tand\nnewlines", 3},
		{"non\u00a0breaking space", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, text.WordCount(tt.input), "WordCount(%q)", tt.input)
	}
}

func TestRemoveDuplicates(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []text.Option
		expected string
	}{
		{name: "words", input: "apple banana apple cherry banana", expected: "apple banana cherry"},
		{name: "custom separator", input: "a,b,a,c", opts: []text.Option{text.Separator(",")}, expected: "a,b,c"},
		{name: "no duplicates", input: "a b c", expected: "a b c"},
		{name: "all duplicates", input: "a a a", expected: "a"},
		{name: "whitespace is collapsed", input: "  a\t\tb  a\n", expected: "a b"},
		{name: "empty", input: "", expected: ""},
		{name: "empty with separator", input: "", opts: []text.Option{text.Separator(",")}, expected: ""},
		{name: "empty tokens are tokens", input: "a,,b,,", opts: []text.Option{text.Separator(",")}, expected: "a,,b"},
		{name: "multi character separator", input: "x::y::x", opts: []text.Option{text.Separator("::")}, expected: "x::y"},
		{name: "lines", input: "one\ntwo\none", opts: []text.Option{text.Separator("\n")}, expected: "one\ntwo"},
		{name: "empty separator splits runes", input: "abracadabra", opts: []text.Option{text.Separator("")}, expected: "abrcd"},
		{name: "case sensitive", input: "Go go GO", expected: "Go go GO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.RemoveDuplicates(tt.input, tt.opts...))
		})
	}
}
