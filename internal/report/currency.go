package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var huPrinter = message.NewPrinter(language.Hungarian)

// FormatForint renders an amount as whole forints with Hungarian digit
// grouping and no fractional digits, e.g. "1 234 567 Ft".
func FormatForint(amount decimal.Decimal) string {
	return huPrinter.Sprintf("%d Ft", amount.Round(0).IntPart())
}
