package recommender_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"loan-recommendation-engine/internal/services/recommender"
)

func TestMonthlyPayment_KnownValue(t *testing.T) {
	// 10000 at 3.5% over 30 years.
	payment := recommender.MonthlyPayment(decimal.NewFromInt(10000), 3.5, 360)
	assert.InDelta(t, 44.90, payment.InexactFloat64(), 0.01)
}

func TestAmortization_RoundTrip(t *testing.T) {
	cases := []struct {
		principal int64
		rate      float64
		months    int
	}{
		{100000, 3.5, 360},
		{50000, 4.2, 240},
		{250000, 2.9, 480},
		{12000, 6.0, 24},
	}

	for _, c := range cases {
		principal := decimal.NewFromInt(c.principal)
		payment := recommender.MonthlyPayment(principal, c.rate, c.months)
		recovered := recommender.PrincipalForPayment(payment, c.rate, c.months)

		assert.InEpsilon(t, float64(c.principal), recovered.InexactFloat64(), 1e-4,
			"principal %d at %.2f%% over %d months", c.principal, c.rate, c.months)
	}
}

func TestAmortization_ZeroRateIsLinear(t *testing.T) {
	payment := recommender.MonthlyPayment(decimal.NewFromInt(12000), 0, 120)
	assert.True(t, payment.Equal(decimal.NewFromInt(100)))

	principal := recommender.PrincipalForPayment(decimal.NewFromInt(100), 0, 120)
	assert.True(t, principal.Equal(decimal.NewFromInt(12000)))
}

func TestAmortization_DegenerateInputs(t *testing.T) {
	assert.True(t, recommender.MonthlyPayment(decimal.NewFromInt(10000), 3.5, 0).IsZero())
	assert.True(t, recommender.MonthlyPayment(decimal.Zero, 3.5, 360).IsZero())
	assert.True(t, recommender.PrincipalForPayment(decimal.NewFromInt(-5), 3.5, 360).IsZero())
}
