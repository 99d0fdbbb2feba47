package letter

import "github.com/shopspring/decimal"

// Money stays in integer cents until formatting; multiplication by a
// possibly-fractional statutory multiplier goes through decimal so cent-level
// precision survives (150000 cents x 1.5 renders exactly "$2250.00").

// formatCents renders integer cents as a dollar string with two decimals.
func formatCents(cents int64) string {
	return "$" + decimal.New(cents, -2).StringFixed(2)
}

// penaltyAmount renders deposit cents multiplied by the statutory penalty
// multiplier, rounded to the cent only at the formatting step.
func penaltyAmount(cents int64, multiplier decimal.Decimal) string {
	return "$" + decimal.New(cents, -2).Mul(multiplier).StringFixed(2)
}
