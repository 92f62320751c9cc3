package format

import (
	"regexp"

	"github.com/dmitrymomot/brkit/pkg/sanitizer"
	"github.com/dmitrymomot/brkit/pkg/typetag"
)

const (
	groupReplacement = "${1}.${2}"
	checkReplacement = "${1}-${2}"
)

var (
	nonDigitRegex = regexp.MustCompile(`\D`)
	threeThenOne  = regexp.MustCompile(`(\d{3})(\d)`)
	cpfCheckRegex = regexp.MustCompile(`(\d{3})(\d{1,2})$`)
	rgKeepRegex   = regexp.MustCompile(`[^\dABX]`)
	twoThenOne    = regexp.MustCompile(`(\d{2})(\d)`)
	rgCheckRegex  = regexp.MustCompile(`(\d{3})([\dABX])$`)
)

var (
	cpfMask = sanitizer.Compose(
		sanitizer.ReplaceAll(nonDigitRegex, ""),
		sanitizer.ReplaceFirst(threeThenOne, groupReplacement),
		sanitizer.ReplaceFirst(threeThenOne, groupReplacement),
		sanitizer.ReplaceFirst(cpfCheckRegex, checkReplacement),
	)

	rgMask = sanitizer.Compose(
		sanitizer.ReplaceAll(rgKeepRegex, ""),
		sanitizer.ReplaceFirst(twoThenOne, groupReplacement),
		sanitizer.ReplaceFirst(threeThenOne, groupReplacement),
		sanitizer.ReplaceFirst(rgCheckRegex, checkReplacement),
	)
)

// ToCPF formats value as DDD.DDD.DDD-DD. Fewer digits give a partial mask
// ("12345678" becomes "123.456.78"). Fails unless value is a string with at
// least one digit.
func (f *Formatter) ToCPF(value any) (string, bool) {
	return mask(value, cpfMask)
}

// ToRG formats value as DD.DDD.DDD-D, where the check character may be one of
// the letters A, B or X. Other characters are dropped.
func (f *Formatter) ToRG(value any) (string, bool) {
	return mask(value, rgMask)
}

func mask(value any, apply func(string) string) (string, bool) {
	s, ok := typetag.AsString(value)
	if !ok || !sanitizer.HasDigit(s) {
		return "", false
	}
	return apply(s), true
}
