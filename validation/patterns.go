package validation

import "regexp"

// Pre-compiled patterns. Go's $ matches only at the end of input (no
// trailing-newline allowance), so a value with a trailing "\n" never
// matches.
var (
	// One or more local-part characters, "@", a domain, a dot and an
	// alphabetic TLD of at least two letters.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// Scheme (http, https or ftp, any case), "://", a first host character
	// that is not whitespace or one of / $ . ? #, then at least one more
	// non-whitespace character.
	urlRegex = regexp.MustCompile(`(?i)^(https?|ftp)://[^\s/$.?#].[^\s]*$`)
)
