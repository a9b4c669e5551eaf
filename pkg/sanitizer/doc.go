// Package sanitizer provides small, composable helpers for cleaning user
// input before it is formatted, stored or rendered.
//
// Every helper is a plain func(string) string (or returns one), so helpers can
// be chained with Apply and Compose into reusable pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.KeepDigits,
//	    sanitizer.Truncate(11),
//	)
//
//	digits := clean(" 123.456.789-01 ") // "12345678901"
//
// # Error handling
//
// None of the helpers returns an error. They always fall back to a safe
// result, usually an empty string.
//
// # Concurrency
//
// The package holds no mutable state; helpers are safe for concurrent use.
package sanitizer
