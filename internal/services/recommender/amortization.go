package recommender

import (
	"math"

	"github.com/shopspring/decimal"
)

// MonthlyPayment returns the fixed installment that repays principal at
// annualRatePct over months, rounded to 2 places.
//
//	monthlyRate = annualRatePct / 100 / 12
//	payment     = P * r / (1 - (1+r)^-n)
func MonthlyPayment(principal decimal.Decimal, annualRatePct float64, months int) decimal.Decimal {
	if months <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	r := annualRatePct / 100 / 12
	if r <= 0 {
		return principal.Div(decimal.NewFromInt(int64(months))).Round(2)
	}

	// float64 for the power, decimal for the money.
	factor := annuityFactor(r, months)
	return decimal.NewFromFloat(principal.InexactFloat64() / factor).Round(2)
}

// PrincipalForPayment inverts MonthlyPayment: the largest principal a fixed
// monthly payment can amortize at annualRatePct over months.
//
//	principal = P * (1 - (1+r)^-n) / r
func PrincipalForPayment(payment decimal.Decimal, annualRatePct float64, months int) decimal.Decimal {
	if months <= 0 || payment.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	r := annualRatePct / 100 / 12
	if r <= 0 {
		return payment.Mul(decimal.NewFromInt(int64(months))).Round(2)
	}

	return decimal.NewFromFloat(payment.InexactFloat64() * annuityFactor(r, months)).Round(2)
}

// annuityFactor is the present value of 1 paid monthly for n months.
func annuityFactor(monthlyRate float64, months int) float64 {
	return (1 - math.Pow(1+monthlyRate, -float64(months))) / monthlyRate
}
