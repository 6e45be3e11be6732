package metrics

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Both report languages display western digits with comma grouping.
var printer = message.NewPrinter(language.English)

// FormatMillions formats a USD amount in millions, e.g. "$196M" or "$91.5M".
func FormatMillions(v float64, decimals int) string {
	return printer.Sprintf(fmt.Sprintf("$%%.%dfM", decimals), v/1e6)
}

// FormatMoney formats a whole USD amount with thousands separators.
func FormatMoney(v float64) string {
	return printer.Sprintf("$%.0f", v)
}

// FormatQuantity formats a whole quantity with thousands separators.
func FormatQuantity(v float64) string {
	return printer.Sprintf("%.0f", v)
}

// FormatThousands formats a quantity in thousands, e.g. "39.4K".
func FormatThousands(v float64, decimals int) string {
	return printer.Sprintf(fmt.Sprintf("%%.%dfK", decimals), v/1e3)
}

// FormatPercent formats a ratio as a percentage, e.g. 0.7058 -> "70.6%".
func FormatPercent(ratio float64, decimals int) string {
	return printer.Sprintf(fmt.Sprintf("%%.%df%%%%", decimals), ratio*100)
}
