package utils

import "github.com/shopspring/decimal"

// Round2 rounds a currency amount to 2 decimal places, halves away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent returns amount * rate rounded to cents.
func Percent(amount, rate decimal.Decimal) decimal.Decimal {
	return Round2(amount.Mul(rate))
}
