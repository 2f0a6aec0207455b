package catalog

import (
	"loan-recommendation-engine/internal/models"
)

func allCollateral() []models.CollateralType {
	return []models.CollateralType{
		models.CollateralTypeMetroApartment,
		models.CollateralTypeRegionalApartment,
		models.CollateralTypeDetachedHouse,
		models.CollateralTypeRowHouse,
	}
}

func apartments() []models.CollateralType {
	return []models.CollateralType{
		models.CollateralTypeMetroApartment,
		models.CollateralTypeRegionalApartment,
	}
}

// DefaultProducts returns the seed catalog. Each call returns fresh values.
func DefaultProducts() []*models.LoanProduct {
	return []*models.LoanProduct{
		{
			ID:            1,
			LenderName:    "KB Kookmin Bank",
			ProductName:   "KB Star Youth Home Loan",
			Category:      "collateral-loan",
			RateRange:     "2.9% ~ 3.8%",
			MaxAmountText: "up to 500 million",
			LoanTerm:      "up to 40 years",
			Qualification: models.Qualification{
				Age:           "19-34",
				HomeOwnership: "no-home",
				Income:        "income ≤ 70 million",
				CreditScore:   "600+",
			},
			RequiredDocuments: []string{"ID card", "Income certificate", "Certified copy of register"},
			InfoURL:           "https://obank.kbstar.com",
			RateTypes:         []models.RateType{models.RateTypeFixed, models.RateTypeMixed},
			LTV:               70,
			MobileAvailable:   true,
			YouthPreferred:    true,
			PreferentialRate:  0.3,
			CollateralTypes:   apartments(),
			IsActive:          true,
		},
		{
			ID:            2,
			LenderName:    "Shinhan Bank",
			ProductName:   "Shinhan Home Mortgage",
			Category:      "collateral-loan",
			RateRange:     "3.3% ~ 4.6%",
			MaxAmountText: "up to 1 billion",
			LoanTerm:      "10, 20, 30 or 40 years",
			Qualification: models.Qualification{
				Age:           "19+",
				HomeOwnership: "no-home or one-home",
				Income:        "no income limit",
				CreditScore:   "650+",
			},
			RequiredDocuments: []string{"ID card", "Income certificate", "Sales contract"},
			InfoURL:           "https://bank.shinhan.com",
			RateTypes: []models.RateType{
				models.RateTypeFixed, models.RateTypeVariable, models.RateTypeMixed, models.RateTypePeriodic,
			},
			LTV:              65,
			DSRPreferred:     true,
			MobileAvailable:  true,
			PreferentialRate: 0.5,
			CollateralTypes: []models.CollateralType{
				models.CollateralTypeMetroApartment,
				models.CollateralTypeRegionalApartment,
				models.CollateralTypeDetachedHouse,
			},
			IsActive: true,
		},
		{
			ID:            3,
			LenderName:    "Woori Bank",
			ProductName:   "Woori First Home Loan",
			Category:      "collateral-loan",
			RateRange:     "3.0% ~ 3.9%",
			MaxAmountText: "up to 400 million",
			LoanTerm:      "up to 30 years",
			Qualification: models.Qualification{
				Age:           "adult",
				HomeOwnership: "first-time buyer or no-home",
				Income:        "income ≤ 100 million",
				CreditScore:   "700+",
			},
			RequiredDocuments: []string{"ID card", "Income certificate", "Proof of first-time purchase"},
			InfoURL:           "https://spot.wooribank.com",
			RateTypes:         []models.RateType{models.RateTypeFixed},
			LTV:               75,
			SimpleDocuments:   true,
			CollateralTypes:   []models.CollateralType{models.CollateralTypeMetroApartment, models.CollateralTypeRowHouse},
			IsActive:          true,
		},
		{
			ID:            4,
			LenderName:    "Hana Bank",
			ProductName:   "Hana Property Collateral Loan",
			Category:      "collateral-loan",
			RateRange:     "3.5% ~ 5.0%",
			MaxAmountText: "up to 70% of collateral value",
			LoanTerm:      "up to 35 years",
			Qualification: models.Qualification{
				Age:           "19+",
				HomeOwnership: "regardless of ownership",
				Income:        "no income limit",
				CreditScore:   "550+",
			},
			RequiredDocuments: []string{"ID card", "Certified copy of register"},
			InfoURL:           "https://www.kebhana.com",
			RateTypes:         []models.RateType{models.RateTypeVariable, models.RateTypeMixed},
			LTV:               60,
			MobileAvailable:   true,
			CollateralTypes:   allCollateral(),
			IsActive:          true,
		},
		{
			ID:            5,
			LenderName:    "Korea Housing Finance Corporation",
			ProductName:   "Bogeumjari Loan",
			Category:      "collateral-loan",
			RateRange:     "3.95% ~ 4.25%",
			MaxAmountText: "up to 360 million",
			LoanTerm:      "10, 15, 20, 30, 40 or 50 years",
			Qualification: models.Qualification{
				Age:           "19+",
				HomeOwnership: "no-home or one-home",
				Income:        "income ≤ 70 million",
				CreditScore:   "",
			},
			RequiredDocuments: []string{"ID card", "Income certificate", "Resident registration"},
			InfoURL:           "https://www.hf.go.kr",
			RateTypes:         []models.RateType{models.RateTypeFixed},
			LTV:               70,
			YouthPreferred:    true,
			PreferentialRate:  0.8,
			CollateralTypes:   allCollateral(),
			IsActive:          true,
		},
		{
			ID:            6,
			LenderName:    "NongHyup Bank",
			ProductName:   "NH Jeonse Deposit Loan",
			Category:      "lease-deposit-loan",
			RateRange:     "3.4% ~ 4.4%",
			MaxAmountText: "up to 80% of deposit, max 222 million",
			LoanTerm:      "2 years",
			Qualification: models.Qualification{
				Age:           "19+",
				HomeOwnership: "no-home",
				Income:        "no income limit",
				CreditScore:   "600+ recommended",
			},
			RequiredDocuments: []string{"ID card", "Lease contract", "Deposit receipt"},
			InfoURL:           "https://banking.nonghyup.com",
			RateTypes:         []models.RateType{models.RateTypeVariable},
			MobileAvailable:   true,
			SimpleDocuments:   true,
			IsActive:          true,
		},
		{
			ID:            7,
			LenderName:    "KakaoBank",
			ProductName:   "Kakao Jeonse Loan",
			Category:      "lease-deposit-loan",
			RateRange:     "3.1% ~ 4.1%",
			MaxAmountText: "up to 80% of deposit, max 300 million",
			LoanTerm:      "2 years",
			Qualification: models.Qualification{
				Age:           "19+",
				HomeOwnership: "no-home or one-home",
				Income:        "no income limit",
				CreditScore:   "",
			},
			RequiredDocuments: []string{"ID card", "Lease contract"},
			InfoURL:           "https://www.kakaobank.com",
			RateTypes:         []models.RateType{models.RateTypeFixed, models.RateTypeVariable},
			MobileAvailable:   true,
			SimpleDocuments:   true,
			IsActive:          true,
		},
		{
			ID:            8,
			LenderName:    "Shinhan Bank",
			ProductName:   "Shinhan Youth Jeonse Loan",
			Category:      "lease-deposit-loan",
			RateRange:     "2.8% ~ 3.6%",
			MaxAmountText: "up to 70% of deposit, max 200 million",
			LoanTerm:      "2 years",
			Qualification: models.Qualification{
				Age:           "19-34",
				HomeOwnership: "no-home",
				Income:        "income ≤ 50 million",
				CreditScore:   "600+",
			},
			RequiredDocuments: []string{"ID card", "Lease contract", "Income certificate"},
			InfoURL:           "https://bank.shinhan.com",
			RateTypes:         []models.RateType{models.RateTypeVariable},
			YouthPreferred:    true,
			MobileAvailable:   true,
			IsActive:          true,
		},
	}
}
