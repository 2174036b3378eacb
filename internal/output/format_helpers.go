package output

import (
	"strconv"

	"github.com/TheAugDev/smart-steps-to-wealth/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.Format(amount) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return money.FormatPercent(amount) }

// FormatMonths renders a month count as "N months" with singular handling.
func FormatMonths(months int) string {
	if months == 1 {
		return "1 month"
	}
	return strconv.Itoa(months) + " months"
}

func intToString(v int) string { return strconv.Itoa(v) }
