package validator

import (
	"regexp"

	"github.com/dmitrymomot/brkit/pkg/dateformat"
	"github.com/dmitrymomot/brkit/pkg/sanitizer"
	"github.com/dmitrymomot/brkit/pkg/typetag"
)

const (
	cpfLength  = 11
	cpfBaseLen = 9
	cpfZeroes  = "00000000000"
)

var (
	digitsRegex = regexp.MustCompile(`^\d+$`)
	rgKeepRegex = regexp.MustCompile(`[^\dABX]`)
	rgRegex     = regexp.MustCompile(`^\d{8}[\dABX]$`)
)

// Is reports whether the runtime tag of value equals tag.
//
//	Is(12, typetag.Number)                      // true
//	Is(map[string]any{"name": "Lucas"}, typetag.Object) // true
//	Is([]int{2, 3}, typetag.Object)             // false
func Is(value any, tag typetag.Tag) bool {
	return typetag.Is(value, tag)
}

// IsCPF validates a CPF number. Punctuation is ignored; anything that is not
// a string is rejected.
func IsCPF(value any) bool {
	cpf, ok := typetag.AsString(value)
	if !ok {
		return false
	}

	cpf = sanitizer.ExtractDigits(cpf)
	if !digitsRegex.MatchString(cpf) {
		return false
	}
	if cpf == cpfZeroes || len(cpf) != cpfLength {
		return false
	}

	digits, ok := CPFCheckDigits(cpf[:cpfBaseLen])
	return ok && digits == cpf[cpfBaseLen:]
}

// CPFCheckDigits computes the two mod-11 check digits for a nine digit CPF base.
func CPFCheckDigits(base string) (string, bool) {
	if len(base) != cpfBaseLen || !digitsRegex.MatchString(base) {
		return "", false
	}

	first := cpfCheckDigit(base)
	second := cpfCheckDigit(base + string(first))
	return string([]byte{first, second}), true
}

// cpfCheckDigit weights the digits from len+1 down to 2.
func cpfCheckDigit(digits string) byte {
	weight := len(digits) + 1
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (weight - i)
	}

	rest := 11 - sum%11
	if rest > 9 {
		rest = 0
	}
	return byte('0' + rest)
}

// IsRG reports whether value normalises to eight digits followed by a digit
// or one of the check letters A, B or X. Issuers differ on the check digit
// algorithm, so it is not verified.
func IsRG(value any) bool {
	rg, ok := typetag.AsString(value)
	if !ok {
		return false
	}
	return rgRegex.MatchString(rgKeepRegex.ReplaceAllString(rg, ""))
}

// IsDate reports whether text is a real calendar date. The layout is inferred
// when none (or Unknown) is given.
func IsDate(text string, layout ...dateformat.Layout) bool {
	return IsDateWith(dateformat.Default, text, layout...)
}

// IsDateWith is IsDate with a caller supplied engine.
func IsDateWith(engine dateformat.Engine, text string, layout ...dateformat.Layout) bool {
	from := dateformat.Unknown
	if len(layout) > 0 {
		from = layout[0]
	}
	if from == dateformat.Unknown {
		from = dateformat.Infer(text)
	}
	if from == dateformat.Unknown {
		return false
	}
	return engine.Valid(text, from)
}

// IsMoney reports whether value is a finite number or a numeric string.
func IsMoney(value any) bool {
	_, ok := typetag.AsNumber(value)
	return ok
}
