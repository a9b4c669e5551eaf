package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// \D is ASCII-only in RE2, so non-Latin digits are dropped as well
	nonDigitRegex = regexp.MustCompile(`\D`)

	whitespaceRegex = regexp.MustCompile(`\s+`)
)
