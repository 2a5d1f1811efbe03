// Package money formats integer cent amounts for display. Amounts are held
// as int64 cents everywhere; formatting to two decimal places happens only
// at the edges (responses, messages, exports).
package money

import "fmt"

// Format renders cents as a plain decimal string with two places, e.g. 12345 -> "123.45".
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// FormatUSD renders cents with a dollar sign, e.g. 12345 -> "$123.45".
func FormatUSD(cents int64) string {
	if cents < 0 {
		return "-$" + Format(-cents)
	}
	return "$" + Format(cents)
}
