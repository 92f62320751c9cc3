package format

import (
	"math"
	"math/big"
	"strings"

	"github.com/dmitrymomot/brkit/pkg/sanitizer"
	"github.com/dmitrymomot/brkit/pkg/typetag"
)

const (
	currencyPrefix   = "R$ "
	decimalSeparator = ","
	groupSeparator   = "."
	moneyDecimals    = 2
)

// ToMoney formats a number or numeric string as Brazilian reais:
// two decimals, comma as decimal separator, dot every three integer digits.
//
//	ToMoney("1200")  // "R$ 1.200,00"
//	ToMoney(15.50)   // "R$ 15,50"
//	ToMoney(-1200.5) // "R$ -1.200,50"
func (f *Formatter) ToMoney(value any) (string, bool) {
	n, ok := typetag.AsNumber(value)
	if !ok {
		return "", false
	}

	formatted := sanitizer.Apply(toFixed(n),
		sanitizer.ReplaceFirstString(".", decimalSeparator),
		groupIntegerPart,
	)
	return currencyPrefix + formatted, true
}

// toFixed renders n with two decimals, rounding the exact binary value half
// away from zero: 0.125 gives "0.13" while 1.005 (stored as 1.00499...) gives
// "1.00". A result of zero carries no sign.
func toFixed(n float64) string {
	scaled := new(big.Float).SetPrec(256).SetFloat64(math.Abs(n))
	scaled.Mul(scaled, big.NewFloat(100))

	cents, _ := scaled.Int(nil)
	rest := new(big.Float).SetPrec(256).Sub(scaled, new(big.Float).SetInt(cents))
	if rest.Cmp(big.NewFloat(0.5)) >= 0 {
		cents.Add(cents, big.NewInt(1))
	}

	digits := cents.String()
	if pad := moneyDecimals + 1 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	fixed := digits[:len(digits)-moneyDecimals] + "." + digits[len(digits)-moneyDecimals:]
	if n < 0 && cents.Sign() != 0 {
		fixed = "-" + fixed
	}
	return fixed
}

func groupIntegerPart(s string) string {
	integer, fraction, found := strings.Cut(s, decimalSeparator)
	integer = sanitizer.GroupDigits(integer, groupSeparator)
	if !found {
		return integer
	}
	return integer + decimalSeparator + fraction
}
