package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UpperFor returns an uppercase transform bound to the casing rules of tag.
// The returned func allocates a fresh caser per call since cases.Caser is stateful.
func UpperFor(tag language.Tag) func(string) string {
	return func(s string) string {
		return cases.Upper(tag).String(s)
	}
}

// MaxLength truncates a string to at most maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// Truncate is MaxLength in pipeline form.
func Truncate(maxLen int) func(string) string {
	return func(s string) string {
		return MaxLength(s, maxLen)
	}
}

// KeepDigits drops every character except ASCII digits 0-9.
func KeepDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// RemoveExtraWhitespace collapses whitespace runs into single spaces and trims.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}
