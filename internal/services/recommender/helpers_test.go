package recommender_test

import (
	"loan-recommendation-engine/internal/models"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

// mockUser creates test borrower conditions with default values
func mockUser(overrides map[string]interface{}) *models.UserConditions {
	user := &models.UserConditions{
		UserID:          "USR001",
		Age:             intPtr(25),
		AnnualIncome:    int64Ptr(3000),
		ExistingDebt:    int64Ptr(0),
		CashAssets:      int64Ptr(2000),
		CreditScore:     intPtr(650),
		LoanCategory:    models.LoanCategoryCollateral,
		HomeOwnership:   models.HomeOwnershipNone,
		Tag:             models.UserTagYouth,
		CollateralType:  models.CollateralTypeMetroApartment,
		CollateralValue: int64Ptr(10000),
	}

	if v, ok := overrides["user_id"]; ok {
		user.UserID = v.(string)
	}
	if v, ok := overrides["email"]; ok {
		user.Email = v.(string)
	}
	if v, ok := overrides["age"]; ok {
		user.Age = v.(*int)
	}
	if v, ok := overrides["annual_income"]; ok {
		user.AnnualIncome = v.(*int64)
	}
	if v, ok := overrides["existing_debt"]; ok {
		user.ExistingDebt = v.(*int64)
	}
	if v, ok := overrides["cash_assets"]; ok {
		user.CashAssets = v.(*int64)
	}
	if v, ok := overrides["credit_score"]; ok {
		user.CreditScore = v.(*int)
	}
	if v, ok := overrides["loan_category"]; ok {
		user.LoanCategory = v.(models.LoanCategory)
	}
	if v, ok := overrides["home_ownership"]; ok {
		user.HomeOwnership = v.(models.HomeOwnership)
	}
	if v, ok := overrides["tag"]; ok {
		user.Tag = v.(models.UserTag)
	}
	if v, ok := overrides["collateral_type"]; ok {
		user.CollateralType = v.(models.CollateralType)
	}
	if v, ok := overrides["collateral_value"]; ok {
		user.CollateralValue = v.(*int64)
	}
	if v, ok := overrides["rate_preference"]; ok {
		user.RatePreference = v.(models.RateType)
	}
	if v, ok := overrides["primary_bank"]; ok {
		user.PrimaryBank = v.(string)
	}

	return user
}

// mockProduct creates a test loan product with default values
func mockProduct(overrides map[string]interface{}) *models.LoanProduct {
	product := &models.LoanProduct{
		ID:            1,
		LenderName:    "Test Bank",
		ProductName:   "Youth Home Loan",
		Category:      "collateral-loan",
		RateRange:     "3.0% ~ 4.0%",
		MaxAmountText: "up to 500 million",
		LoanTerm:      "up to 30 years",
		Qualification: models.Qualification{
			Age:           "19-34",
			HomeOwnership: "no-home",
			Income:        "no income limit",
			CreditScore:   "600+",
		},
		RateTypes:       []models.RateType{models.RateTypeFixed, models.RateTypeVariable},
		LTV:             70,
		YouthPreferred:  true,
		CollateralTypes: []models.CollateralType{models.CollateralTypeMetroApartment},
		IsActive:        true,
	}

	if v, ok := overrides["id"]; ok {
		product.ID = v.(int64)
	}
	if v, ok := overrides["lender_name"]; ok {
		product.LenderName = v.(string)
	}
	if v, ok := overrides["product_name"]; ok {
		product.ProductName = v.(string)
	}
	if v, ok := overrides["category"]; ok {
		product.Category = v.(string)
	}
	if v, ok := overrides["rate_range"]; ok {
		product.RateRange = v.(string)
	}
	if v, ok := overrides["max_amount_text"]; ok {
		product.MaxAmountText = v.(string)
	}
	if v, ok := overrides["loan_term"]; ok {
		product.LoanTerm = v.(string)
	}
	if v, ok := overrides["qual_age"]; ok {
		product.Qualification.Age = v.(string)
	}
	if v, ok := overrides["qual_home_ownership"]; ok {
		product.Qualification.HomeOwnership = v.(string)
	}
	if v, ok := overrides["qual_income"]; ok {
		product.Qualification.Income = v.(string)
	}
	if v, ok := overrides["qual_credit_score"]; ok {
		product.Qualification.CreditScore = v.(string)
	}
	if v, ok := overrides["rate_types"]; ok {
		product.RateTypes = v.([]models.RateType)
	}
	if v, ok := overrides["ltv"]; ok {
		product.LTV = v.(float64)
	}
	if v, ok := overrides["dsr_preferred"]; ok {
		product.DSRPreferred = v.(bool)
	}
	if v, ok := overrides["mobile_available"]; ok {
		product.MobileAvailable = v.(bool)
	}
	if v, ok := overrides["youth_preferred"]; ok {
		product.YouthPreferred = v.(bool)
	}
	if v, ok := overrides["preferential_rate"]; ok {
		product.PreferentialRate = v.(float64)
	}
	if v, ok := overrides["simple_documents"]; ok {
		product.SimpleDocuments = v.(bool)
	}
	if v, ok := overrides["collateral_types"]; ok {
		product.CollateralTypes = v.([]models.CollateralType)
	}

	return product
}

// leaseProduct creates a lease-deposit product with default values
func leaseProduct(overrides map[string]interface{}) *models.LoanProduct {
	defaults := map[string]interface{}{
		"id":                  int64(100),
		"product_name":        "Jeonse Deposit Loan",
		"category":            "lease-deposit-loan",
		"max_amount_text":     "up to 80% of deposit, max 200 million",
		"loan_term":           "2 years",
		"qual_age":            "19+",
		"qual_home_ownership": "no-home",
		"youth_preferred":     false,
		"collateral_types":    []models.CollateralType{},
		"ltv":                 float64(0),
	}
	for k, v := range overrides {
		defaults[k] = v
	}
	return mockProduct(defaults)
}
