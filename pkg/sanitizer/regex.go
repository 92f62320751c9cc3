package sanitizer

import "regexp"

var (
	nonDigitRegex = regexp.MustCompile(`\D`)
	digitRegex    = regexp.MustCompile(`\d`)
)
