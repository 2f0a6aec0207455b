package recommender

import (
	"loan-recommendation-engine/internal/models"
)

// EligibilityCheck records which predicates a product passed for a borrower.
type EligibilityCheck struct {
	CategoryEligible bool
	AgeEligible      bool
	HomeEligible     bool
	IncomeEligible   bool
	CreditEligible   bool
}

// Eligible reports whether every predicate passed.
func (c EligibilityCheck) Eligible() bool {
	return c.CategoryEligible && c.AgeEligible && c.HomeEligible && c.IncomeEligible && c.CreditEligible
}

// Check evaluates the five eligibility predicates independently.
func (e *Engine) Check(p *CompiledProduct, user *models.UserConditions) EligibilityCheck {
	return EligibilityCheck{
		CategoryEligible: p.Category.Matches(user.LoanCategory),
		AgeEligible:      p.Age.Allows(user.Age),
		HomeEligible:     p.Home.Allows(user.HomeOwnership),
		IncomeEligible:   p.Income.Allows(user.IncomeOr(e.policy.DefaultIncome)),
		CreditEligible:   p.Credit.Allows(user.CreditScore),
	}
}

// Filter keeps the catalog products the borrower qualifies for, in catalog order.
func (e *Engine) Filter(catalog *Catalog, user *models.UserConditions) []*CompiledProduct {
	if catalog == nil {
		return []*CompiledProduct{}
	}
	eligible := make([]*CompiledProduct, 0, len(catalog.products))
	for _, p := range catalog.products {
		if e.Check(p, user).Eligible() {
			eligible = append(eligible, p)
		}
	}
	return eligible
}
