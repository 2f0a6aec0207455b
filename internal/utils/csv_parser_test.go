package utils_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-recommendation-engine/internal/models"
	"loan-recommendation-engine/internal/utils"
)

func TestCSVParser_ValidFile(t *testing.T) {
	csvContent := `lender_name,product_name,category,rate_range,max_amount_text,loan_term,qual_age,qual_home_ownership,qual_income,qual_credit_score,required_documents,rate_types,ltv,dsr_preferred,mobile_available,youth_preferred,preferential_rate,simple_documents,collateral_types
KB Kookmin Bank,KB Star Youth Home Loan,collateral-loan,2.9% ~ 3.8%,up to 500 million,up to 40 years,19-34,no-home,income ≤ 70 million,600+,ID card|Income certificate,fixed|mixed,70,false,yes,true,0.3,no,metro-apartment|regional-apartment
KakaoBank,Kakao Jeonse Loan,lease-deposit-loan,3.1% ~ 4.1%,"up to 80% of deposit, max 300 million",2 years,19+,no-home or one-home,no income limit,,ID card|Lease contract,fixed|variable,,,Y,,,Y,`

	parser := utils.NewCSVParser()
	products, errs := parser.ParseProducts(csvContent)

	require.Empty(t, errs, "Expected no parse errors")
	require.Len(t, products, 2, "Expected 2 products")

	kb := products[0]
	assert.Equal(t, "KB Kookmin Bank", kb.LenderName)
	assert.Equal(t, "KB Star Youth Home Loan", kb.ProductName)
	assert.Equal(t, "19-34", kb.Qualification.Age)
	assert.Equal(t, "600+", kb.Qualification.CreditScore)
	assert.Equal(t, []string{"ID card", "Income certificate"}, kb.RequiredDocuments)
	assert.Equal(t, []models.RateType{models.RateTypeFixed, models.RateTypeMixed}, kb.RateTypes)
	assert.Equal(t, []models.CollateralType{models.CollateralTypeMetroApartment, models.CollateralTypeRegionalApartment}, kb.CollateralTypes)
	assert.Equal(t, 70.0, kb.LTV)
	assert.Equal(t, 0.3, kb.PreferentialRate)
	assert.True(t, kb.MobileAvailable)
	assert.True(t, kb.YouthPreferred)
	assert.False(t, kb.DSRPreferred)
	assert.False(t, kb.SimpleDocuments)
	assert.True(t, kb.IsActive)

	kakao := products[1]
	assert.Equal(t, "up to 80% of deposit, max 300 million", kakao.MaxAmountText)
	assert.Empty(t, kakao.Qualification.CreditScore)
	assert.Zero(t, kakao.LTV)
	assert.True(t, kakao.SimpleDocuments)
	assert.Empty(t, kakao.CollateralTypes)
}

func TestCSVParser_ColumnAliases(t *testing.T) {
	csvContent := `은행,상품명,대출종류,금리,한도,연령,신용점수,Rate Type,담보종류
신한은행,신한 주택담보대출,주택담보대출,3.3~4.6%,최대 10억원,19세 이상,650점 이상,고정|변동,수도권아파트|단독주택`

	parser := utils.NewCSVParser()
	products, errs := parser.ParseProducts(csvContent)

	require.Empty(t, errs, "Expected no parse errors")
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "신한은행", p.LenderName)
	assert.Equal(t, "주택담보대출", p.Category)
	assert.Equal(t, "최대 10억원", p.MaxAmountText)
	assert.Equal(t, "19세 이상", p.Qualification.Age)
	assert.Equal(t, []models.RateType{models.RateTypeFixed, models.RateTypeVariable}, p.RateTypes)
	assert.Equal(t, []models.CollateralType{models.CollateralTypeMetroApartment, models.CollateralTypeDetachedHouse}, p.CollateralTypes)
}

func TestCSVParser_BadRowsDoNotAbortFile(t *testing.T) {
	csvContent := `lender_name,product_name,category,ltv,mobile_available,rate_types
Good Bank,Good Loan,collateral-loan,70,yes,fixed
,Nameless Lender Loan,collateral-loan,70,yes,fixed
Bad Bank,Bad LTV Loan,collateral-loan,seventy,yes,fixed
Bad Bank,Bad Flag Loan,collateral-loan,70,maybe,fixed
Bad Bank,Bad Rate Loan,collateral-loan,70,yes,teaser

Other Bank,Other Loan,lease-deposit-loan,,,`

	parser := utils.NewCSVParser()
	products, errs := parser.ParseProducts(csvContent)

	require.Len(t, products, 2)
	assert.Equal(t, "Good Loan", products[0].ProductName)
	assert.Equal(t, "Other Loan", products[1].ProductName)

	require.Len(t, errs, 4)
	assert.Contains(t, errs[0].Error(), "line 3")
	assert.True(t, errors.Is(errs[0], models.ErrEmptyLenderName))
	assert.Contains(t, errs[1].Error(), "invalid ltv")
	assert.True(t, errors.Is(errs[2], utils.ErrInvalidBool))
	assert.True(t, errors.Is(errs[3], models.ErrInvalidRateType))
}

func TestCSVParser_MissingRequiredColumns(t *testing.T) {
	csvContent := `lender_name,rate_range
Good Bank,3.0%`

	parser := utils.NewCSVParser()
	products, errs := parser.ParseProducts(csvContent)

	assert.Empty(t, products)
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], utils.ErrMissingColumns))
	assert.Contains(t, errs[0].Error(), "product_name")
	assert.Contains(t, errs[0].Error(), "category")
}

func TestCSVParser_EmptyFile(t *testing.T) {
	parser := utils.NewCSVParser()
	products, errs := parser.ParseProducts(``)

	assert.Empty(t, products)
	require.NotEmpty(t, errs)
	assert.True(t, errors.Is(errs[0], utils.ErrEmptyCSV))
}

func TestCSVParser_AllRowsInvalid(t *testing.T) {
	csvContent := `lender_name,product_name,category
,Loan A,collateral-loan
Bank B,,collateral-loan`

	parser := utils.NewCSVParser()
	products, errs := parser.ParseProducts(csvContent)

	assert.Empty(t, products)
	require.Len(t, errs, 3)
	assert.True(t, errors.Is(errs[0], utils.ErrNoDataRows))
}

func TestCSVParser_HeaderOnly(t *testing.T) {
	parser := utils.NewCSVParser()
	products, errs := parser.ParseProducts(`lender_name,product_name,category`)

	assert.Empty(t, products)
	assert.Empty(t, errs)
}

func TestValidateCSVStructure(t *testing.T) {
	result, err := utils.ValidateCSVStructure("\ufeffbank,product,type\nA,B,collateral-loan\n,,\nC,D,lease-deposit-loan\n")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, 2, result.RowCount)
	assert.Empty(t, result.MissingColumns)

	result, err = utils.ValidateCSVStructure("bank,rate\nA,3.0%\n")
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"product_name", "category"}, result.MissingColumns)
}
