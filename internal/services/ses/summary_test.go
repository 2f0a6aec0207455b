package ses_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-recommendation-engine/internal/models"
	"loan-recommendation-engine/internal/services/ses"
)

func sampleResult() *models.RecommendationResult {
	return &models.RecommendationResult{
		Products: []*models.ScoredProduct{
			{LoanProduct: models.LoanProduct{ID: 1, LenderName: "KB Kookmin Bank", ProductName: "KB Star Youth Home Loan", RateRange: "2.9% ~ 3.8%"}, Score: 12.5, MaxLoanAmount: 4900},
			{LoanProduct: models.LoanProduct{ID: 2, LenderName: "Shinhan Bank", ProductName: "Shinhan Home Mortgage", RateRange: "3.3% ~ 4.6%"}, Score: 11, MaxLoanAmount: 4550},
			{LoanProduct: models.LoanProduct{ID: 4, LenderName: "Hana Bank", ProductName: "Hana Property Collateral Loan"}, Score: 8, MaxLoanAmount: 4200},
			{LoanProduct: models.LoanProduct{ID: 5, LenderName: "Korea Housing Finance Corporation", ProductName: "Bogeumjari Loan"}, Score: 7.5, MaxLoanAmount: 4900},
		},
		PurchaseInfo: &models.PurchaseInfo{
			MaxLoanAmount:     4900,
			CashAssets:        2000,
			MaxPurchaseAmount: 6900,
			SourceProductID:   1,
			SourceProduct:     "KB Star Youth Home Loan",
			SourceLender:      "KB Kookmin Bank",
		},
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		value    int64
		expected string
	}{
		{0, "0원"},
		{-5, "0원"},
		{900, "900만원"},
		{4900, "4,900만원"},
		{10000, "1억원"},
		{35000, "3억 5,000만원"},
		{120000, "12억원"},
		{12345678, "1,234억 5,678만원"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ses.FormatAmount(tt.value))
	}
}

func TestBuildSummaryParams_LimitsProducts(t *testing.T) {
	user := &models.UserConditions{UserID: "USR001", Email: "kim@example.com"}
	params := ses.BuildSummaryParams(user, sampleResult(), 3)

	assert.Equal(t, "kim@example.com", params.Email)
	assert.Equal(t, 4, params.ProductCount)
	require.Len(t, params.TopProducts, 3)
	assert.Equal(t, 1, params.TopProducts[0].Rank)
	assert.Equal(t, "Hana Property Collateral Loan", params.TopProducts[2].ProductName)
	assert.Equal(t, int64(6900), params.MaxPurchaseAmount)
}

func TestBuildSummaryParams_NilInputs(t *testing.T) {
	params := ses.BuildSummaryParams(nil, nil, 3)
	assert.Empty(t, params.Email)
	assert.Zero(t, params.ProductCount)
	assert.Empty(t, params.TopProducts)
}

func TestRenderSummary(t *testing.T) {
	params := ses.BuildSummaryParams(&models.UserConditions{Email: "kim@example.com"}, sampleResult(), 3)

	html, err := ses.RenderSummaryHTML(params)
	require.NoError(t, err)
	assert.Contains(t, html, "6,900만원")
	assert.Contains(t, html, "KB Star Youth Home Loan")
	assert.NotContains(t, html, "Bogeumjari Loan")

	text := ses.RenderSummaryText(params)
	assert.Contains(t, text, "We found 4 loan products")
	assert.Contains(t, text, "1. KB Star Youth Home Loan by KB Kookmin Bank")
	assert.Contains(t, text, "Maximum purchase amount: 6,900만원")

	assert.Equal(t, "Your loan recommendations: 4 products, up to 6,900만원 purchase", ses.SummarySubject(params))
}

func TestRenderSummary_EscapesProductNames(t *testing.T) {
	params := ses.SummaryParams{
		ProductCount: 1,
		TopProducts:  []ses.SummaryProduct{{Rank: 1, ProductName: "<script>alert(1)</script>"}},
	}

	html, err := ses.RenderSummaryHTML(params)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}
