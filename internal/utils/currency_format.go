package utils

import "github.com/shopspring/decimal"

// FormatWithPrecision formats an amount with a fixed number of decimal places.
// Example: 12.3456 at precision 2 returns "12.35"; at precision 0 returns "12".
func FormatWithPrecision(amount float64, precision int) string {
	return decimal.NewFromFloat(amount).Round(int32(precision)).StringFixed(int32(precision))
}
