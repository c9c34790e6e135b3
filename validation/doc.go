// Package validation provides lightweight predicate checks for common input
// shapes: email addresses, URLs and "empty" values.
//
// The email and URL checks are syntactic heuristics built on anchored
// regular expressions. They reject obvious garbage cheaply; they do not
// implement RFC 5322 or RFC 3986 and accept some strings those grammars
// would reject.
//
//	validation.IsEmail("user.name+tag@domain.co.uk") // true
//	validation.IsURL("http://localhost:8080/path")   // true
//	validation.IsEmpty("   ")                        // true
//	validation.IsEmpty(0)                            // false
package validation
