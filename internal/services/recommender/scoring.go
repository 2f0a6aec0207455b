package recommender

import (
	"sort"

	"loan-recommendation-engine/internal/models"
)

// Score component names as they appear in a product's breakdown.
const (
	ComponentHomeBank         = "home_bank"
	ComponentRateTier         = "rate_tier"
	ComponentRateStability    = "rate_stability"
	ComponentLTVTier          = "ltv_tier"
	ComponentDSRPreferred     = "dsr_preferred"
	ComponentMobile           = "mobile_available"
	ComponentYouth            = "youth_preference"
	ComponentRateType         = "rate_type"
	ComponentPreferentialRate = "preferential_rate"
	ComponentSimpleDocuments  = "simple_documents"
	ComponentCollateralMatch  = "collateral_match"
	ComponentZeroDebt         = "zero_debt"
)

// RankedProduct pairs a scored product with the compiled entry it came from.
type RankedProduct struct {
	*models.ScoredProduct
	Compiled *CompiledProduct
}

type breakdown []models.ScoreComponent

func (b *breakdown) add(name string, points float64) {
	if points > 0 {
		*b = append(*b, models.ScoreComponent{Name: name, Points: points})
	}
}

func (b breakdown) total() float64 {
	var sum float64
	for _, c := range b {
		sum += c.Points
	}
	return sum
}

// Score ranks products by descending score. Ties keep catalog order.
func (e *Engine) Score(products []*CompiledProduct, user *models.UserConditions) []*RankedProduct {
	ranked := make([]*RankedProduct, 0, len(products))
	for _, p := range products {
		parts := e.scoreComponents(p, user)
		product := *p.Product
		ranked = append(ranked, &RankedProduct{
			ScoredProduct: &models.ScoredProduct{
				LoanProduct:    product,
				Score:          parts.total(),
				ScoreBreakdown: []models.ScoreComponent(parts),
			},
			Compiled: p,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

func (e *Engine) scoreComponents(p *CompiledProduct, user *models.UserConditions) breakdown {
	pol := e.policy
	prod := p.Product
	parts := make(breakdown, 0, 12)

	if user.PrimaryBank != "" && prod.LenderName == user.PrimaryBank {
		parts.add(ComponentHomeBank, pol.HomeBankBonus)
	}

	if p.Rate.Parsed {
		parts.add(ComponentRateTier, e.rateTierPoints(p.Rate.Average()))
		if p.Rate.Spread() <= pol.RateStabilitySpread {
			parts.add(ComponentRateStability, pol.RateStabilityBonus)
		}
	} else {
		parts.add(ComponentRateTier, pol.RateTierFloor)
	}

	if p.IsCollateral() {
		parts.add(ComponentLTVTier, e.ltvTierPoints(prod.LTV))
	}

	if prod.DSRPreferred {
		parts.add(ComponentDSRPreferred, pol.DSRPreferredBonus)
	}

	convenience := 1.0
	if p.IsLease() {
		convenience = pol.LeaseConvenienceWeight
	}
	if prod.MobileAvailable {
		parts.add(ComponentMobile, pol.MobileBonus*convenience)
	}

	if prod.YouthPreferred && (user.Tag == models.UserTagYouth || user.Tag == models.UserTagFirstTimeBuyer) {
		parts.add(ComponentYouth, pol.YouthBonus)
	}

	if len(prod.RateTypes) >= pol.RateTypeDiversityMin {
		parts.add(ComponentRateType, pol.RateTypeBonus)
	} else if user.RatePreference != "" && prod.SupportsRateType(user.RatePreference) {
		parts.add(ComponentRateType, pol.RateTypeBonus)
	}

	if prod.PreferentialRate >= pol.PreferentialRateMin {
		parts.add(ComponentPreferentialRate, pol.PreferentialRateBonus)
	}

	if prod.SimpleDocuments {
		parts.add(ComponentSimpleDocuments, pol.SimpleDocumentsBonus*convenience)
	}

	if p.IsCollateral() && user.CollateralType != "" && prod.SupportsCollateralType(user.CollateralType) {
		parts.add(ComponentCollateralMatch, pol.CollateralMatchBonus)
	}

	if user.DebtOrZero() == 0 {
		parts.add(ComponentZeroDebt, pol.ZeroDebtBonus)
	}

	return parts
}

func (e *Engine) rateTierPoints(avg float64) float64 {
	for _, tier := range e.policy.RateTiers {
		if avg <= tier.MaxAverage {
			return tier.Points
		}
	}
	return e.policy.RateTierFloor
}

func (e *Engine) ltvTierPoints(ltv float64) float64 {
	for _, tier := range e.policy.LTVTiers {
		if ltv >= tier.MinLTV {
			return tier.Points
		}
	}
	return e.policy.LTVTierFloor
}
