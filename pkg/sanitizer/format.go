package sanitizer

import "strings"

// ExtractDigits drops every character that is not an ASCII digit.
func ExtractDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// HasDigit reports whether s contains at least one ASCII digit.
func HasDigit(s string) bool {
	return digitRegex.MatchString(s)
}

// GroupDigits inserts sep between every three digits counted from the right
// of a run of digits. A leading sign is kept in front of the first group.
//
//	GroupDigits("1200000", ".") // "1.200.000"
//	GroupDigits("-1200", ".")   // "-1.200"
func GroupDigits(digits, sep string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	b.Grow(len(sign) + len(digits) + len(digits)/3*len(sep))
	b.WriteString(sign)

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
