package synthdoc

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const maxTableFractionDigits = 5

// NumberFormatter renders table values with thousands separators.
type NumberFormatter struct {
	printer *message.Printer
}

// NewNumberFormatter returns a formatter for the given locale tag.
func NewNumberFormatter(tag language.Tag) NumberFormatter {
	return NumberFormatter{printer: message.NewPrinter(tag)}
}

// Format renders d with grouping and at most five fraction digits, trailing zeros dropped.
func (f NumberFormatter) Format(d decimal.Decimal) string {
	return f.printer.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(maxTableFractionDigits)))
}
