package validator

import (
	"fmt"
	"unicode/utf8"
)

// Len requires value to have exactly n characters.
func Len(field, value string, n int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) == n
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be exactly %d characters long", n),
		},
	}
}

// LenBetween requires value to have between minLen and maxLen characters.
func LenBetween(field, value string, minLen, maxLen int) Rule {
	return Rule{
		Check: func() bool {
			n := utf8.RuneCountInString(value)
			return n >= minLen && n <= maxLen
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d characters long", minLen, maxLen),
		},
	}
}

// Optional skips r when value is empty.
func Optional(value string, r Rule) Rule {
	check := r.Check
	r.Check = func() bool {
		return value == "" || check()
	}
	return r
}
