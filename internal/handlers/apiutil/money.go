package apiutil

import (
	"github.com/shopspring/decimal"
)

// Money renders an amount as a JSON number.
func Money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// ParseMoney converts a JSON number into a decimal amount.
func ParseMoney(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
