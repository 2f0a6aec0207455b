package recommender

import (
	"loan-recommendation-engine/internal/config"
	"loan-recommendation-engine/internal/models"
)

// RateTier awards Points when a product's average rate is at most MaxAverage.
type RateTier struct {
	MaxAverage float64
	Points     float64
}

// LTVTier awards Points when a collateral product's LTV is at least MinLTV.
type LTVTier struct {
	MinLTV float64
	Points float64
}

// CreditTier applies Multiplier to loan amounts for scores at or above MinScore.
type CreditTier struct {
	MinScore   int
	Multiplier float64
}

// IncomeCeiling caps loan amounts at Cap for incomes at or above MinIncome.
type IncomeCeiling struct {
	MinIncome int64
	Cap       int64
}

// Policy holds every weight, threshold and default the engine uses. The
// values are empirical and meant to be tuned, not derived.
// Money values are in 10k-currency units.
type Policy struct {
	// Scoring
	HomeBankBonus          float64
	RateTiers              []RateTier // ordered by MaxAverage ascending
	RateTierFloor          float64
	RateStabilitySpread    float64
	RateStabilityBonus     float64
	LTVTiers               []LTVTier // ordered by MinLTV descending
	LTVTierFloor           float64
	DSRPreferredBonus      float64
	MobileBonus            float64
	YouthBonus             float64
	RateTypeDiversityMin   int
	RateTypeBonus          float64
	PreferentialRateMin    float64
	PreferentialRateBonus  float64
	SimpleDocumentsBonus   float64
	LeaseConvenienceWeight float64
	CollateralMatchBonus   float64
	ZeroDebtBonus          float64

	// Affordability
	MaxLTV                      float64
	DefaultLTV                  float64
	CollateralMultipliers       map[models.CollateralType]float64
	DefaultCollateralMultiplier float64
	DebtServiceRate             float64
	DSRCollateral               float64
	DSRLease                    float64
	IncomeMultiple              float64
	FallbackRate                float64
	FallbackTermMonths          int
	CreditTiers                 []CreditTier // ordered by MinScore descending
	CreditTierFloor             float64
	MissingCreditMultiplier     float64
	IncomeCeilings              []IncomeCeiling // ordered by MinIncome descending
	IncomeCeilingFloor          int64
	DefaultGuaranteeRatio       float64
	LeaseIncomeFloorRatio       float64
	LeaseIncomeCorrectionRatio  float64
	LeaseRaiseRatio             float64

	// Defaults for missing borrower fields
	DefaultIncome          int64
	DefaultCollateralValue int64
	DefaultDepositValue    int64
}

// DefaultPolicy returns the stock tuning.
func DefaultPolicy() Policy {
	return Policy{
		HomeBankBonus: 1.0,
		RateTiers: []RateTier{
			{MaxAverage: 2.8, Points: 5},
			{MaxAverage: 3.2, Points: 4},
			{MaxAverage: 3.6, Points: 3},
			{MaxAverage: 4.0, Points: 2},
		},
		RateTierFloor:       1,
		RateStabilitySpread: 1.0,
		RateStabilityBonus:  0.5,
		LTVTiers: []LTVTier{
			{MinLTV: 70, Points: 5},
			{MinLTV: 65, Points: 4},
			{MinLTV: 60, Points: 3},
			{MinLTV: 55, Points: 2},
		},
		LTVTierFloor:           1,
		DSRPreferredBonus:      1.0,
		MobileBonus:            1.0,
		YouthBonus:             1.0,
		RateTypeDiversityMin:   3,
		RateTypeBonus:          1.0,
		PreferentialRateMin:    0.5,
		PreferentialRateBonus:  1.0,
		SimpleDocumentsBonus:   1.0,
		LeaseConvenienceWeight: 1.5,
		CollateralMatchBonus:   0.5,
		ZeroDebtBonus:          0.5,

		MaxLTV:     0.8,
		DefaultLTV: 70,
		CollateralMultipliers: map[models.CollateralType]float64{
			models.CollateralTypeMetroApartment:    1.00,
			models.CollateralTypeRegionalApartment: 0.95,
			models.CollateralTypeDetachedHouse:     0.90,
			models.CollateralTypeRowHouse:          0.85,
		},
		DefaultCollateralMultiplier: 0.95,
		DebtServiceRate:             0.08,
		DSRCollateral:               0.40,
		DSRLease:                    0.35,
		IncomeMultiple:              8,
		FallbackRate:                3.0,
		FallbackTermMonths:          30 * 12,
		CreditTiers: []CreditTier{
			{MinScore: 900, Multiplier: 1.00},
			{MinScore: 800, Multiplier: 0.90},
			{MinScore: 700, Multiplier: 0.80},
			{MinScore: 600, Multiplier: 0.70},
			{MinScore: 550, Multiplier: 0.60},
		},
		CreditTierFloor:         0.50,
		MissingCreditMultiplier: 0.80,
		IncomeCeilings: []IncomeCeiling{
			{MinIncome: 10000, Cap: 200000},
			{MinIncome: 8000, Cap: 150000},
			{MinIncome: 6000, Cap: 120000},
			{MinIncome: 4000, Cap: 100000},
			{MinIncome: 3000, Cap: 80000},
			{MinIncome: 2000, Cap: 60000},
			{MinIncome: 1000, Cap: 40000},
		},
		IncomeCeilingFloor:         20000,
		DefaultGuaranteeRatio:      0.70,
		LeaseIncomeFloorRatio:      0.30,
		LeaseIncomeCorrectionRatio: 0.50,
		LeaseRaiseRatio:            0.80,

		DefaultIncome:          3000,
		DefaultCollateralValue: 10000,
		DefaultDepositValue:    5000,
	}
}

// PolicyFromConfig applies the non-zero overrides in cfg to DefaultPolicy.
func PolicyFromConfig(cfg *config.Config) Policy {
	p := DefaultPolicy()
	if cfg == nil {
		return p
	}
	if cfg.PolicyDSRCollateral > 0 {
		p.DSRCollateral = cfg.PolicyDSRCollateral
	}
	if cfg.PolicyDSRLease > 0 {
		p.DSRLease = cfg.PolicyDSRLease
	}
	if cfg.PolicyIncomeMultiple > 0 {
		p.IncomeMultiple = cfg.PolicyIncomeMultiple
	}
	if cfg.PolicyDebtServiceRate > 0 {
		p.DebtServiceRate = cfg.PolicyDebtServiceRate
	}
	if cfg.PolicyMaxLTV > 0 {
		p.MaxLTV = cfg.PolicyMaxLTV
	}
	return p
}
