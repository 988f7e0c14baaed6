// Package currencyutils provides the decimal handling for Flex report amounts,
// prices and quantities. Values are kept as shopspring decimals end to end so
// no amount ever passes through a binary float.
package currencyutils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal parses a Flex numeric attribute such as "1,234.56" or
// "-0.0001234". Thousands-separator commas are removed before parsing.
// "", "N/A" and anything unparsable yield ok == false.
func ParseDecimal(value string) (decimal.Decimal, bool) {
	if value == "" || value == "N/A" {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(value, ",", ""))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// FormatDecimal renders an optional decimal, using "" for an absent value.
func FormatDecimal(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// FormatAmount formats an optional amount with two decimal places and its
// currency code, e.g. "USD 1234.56". An absent amount renders as "-".
func FormatAmount(amount *decimal.Decimal, currency string) string {
	if amount == nil {
		return "-"
	}
	formatted := amount.StringFixed(2)
	if currency == "" {
		return formatted
	}
	return strings.ToUpper(currency) + " " + formatted
}

// Sum adds the present values of amounts. Absent values are skipped.
func Sum(amounts ...*decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		if a != nil {
			total = total.Add(*a)
		}
	}
	return total
}
