package synthdoc

import "github.com/shopspring/decimal"

var two = decimal.NewFromInt(2)

// Threshold returns the underlying price at which an inverse synth reaches limit:
// the mirror image of limit about entryPoint. The result carries exactly as many
// fractional digits as limit was written with. Inputs are not validated.
func Threshold(entryPoint, limit decimal.Decimal) string {
	return entryPoint.Mul(two).Sub(limit).StringFixed(fractionDigits(limit))
}

// Literal renders d with the fractional digits it was written with.
func Literal(d decimal.Decimal) string {
	return d.StringFixed(fractionDigits(d))
}

func fractionDigits(d decimal.Decimal) int32 {
	if exp := d.Exponent(); exp < 0 {
		return -exp
	}
	return 0
}
