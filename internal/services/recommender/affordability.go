package recommender

import (
	"math"

	"github.com/shopspring/decimal"

	"loan-recommendation-engine/internal/models"
)

// ComputeMaxAmount returns the largest loan, in 10k units, the borrower can
// take on the product. It never fails: missing inputs fall back to policy
// defaults and the result is floored at zero.
func (e *Engine) ComputeMaxAmount(p *CompiledProduct, user *models.UserConditions) int64 {
	if e.usesLeasePath(p, user) {
		return e.leaseMaxAmount(p, user)
	}
	return e.collateralMaxAmount(p, user)
}

// usesLeasePath selects by the borrower's category, then by the product's.
func (e *Engine) usesLeasePath(p *CompiledProduct, user *models.UserConditions) bool {
	switch user.LoanCategory {
	case models.LoanCategoryLease:
		return true
	case models.LoanCategoryCollateral:
		return false
	}
	return p.IsLease()
}

func (e *Engine) collateralMaxAmount(p *CompiledProduct, user *models.UserConditions) int64 {
	pol := e.policy

	income := user.IncomeOr(pol.DefaultIncome)
	collateralValue := user.CollateralValueOr(pol.DefaultCollateralValue)
	if income <= 0 || collateralValue <= 0 {
		return 0
	}

	ltvPct := p.Product.LTV
	if ltvPct <= 0 {
		ltvPct = pol.DefaultLTV
	}
	ltv := math.Min(ltvPct/100*e.collateralMultiplier(user.CollateralType), pol.MaxLTV)
	collateralBased := float64(collateralValue) * ltv

	capacity := e.annualPaymentCapacity(income, user.DebtOrZero(), pol.DSRCollateral)
	incomeBased := e.amortizedPrincipal(capacity, p)
	basicLimit := float64(income) * pol.IncomeMultiple

	amount := math.Min(math.Min(incomeBased, collateralBased), basicLimit)
	if p.HasMaxAmount {
		amount = math.Min(amount, float64(p.MaxAmount))
	}

	amount *= CreditMultiplier(pol, user.CreditScore)
	amount = math.Min(amount, float64(IncomeCeilingFor(pol, income)))

	return floorAmount(amount)
}

func (e *Engine) leaseMaxAmount(p *CompiledProduct, user *models.UserConditions) int64 {
	pol := e.policy

	income := user.IncomeOr(pol.DefaultIncome)
	deposit := user.CollateralValueOr(pol.DefaultDepositValue)

	ratio := p.GuaranteeRatio
	if ratio <= 0 {
		ratio = pol.DefaultGuaranteeRatio
	}
	leaseBased := float64(deposit) * ratio

	capacity := e.annualPaymentCapacity(income, user.DebtOrZero(), pol.DSRLease)
	incomeBased := e.amortizedPrincipal(capacity, p)
	// Income-only estimates undershoot badly for well-secured deposits.
	if incomeBased < leaseBased*pol.LeaseIncomeFloorRatio {
		incomeBased = leaseBased * pol.LeaseIncomeCorrectionRatio
	}

	maxLoanLimit := float64(income) * pol.IncomeMultiple
	amount := leaseBased
	if amount > maxLoanLimit {
		amount = maxLoanLimit
	}
	amount = math.Max(amount, math.Min(incomeBased, leaseBased*pol.LeaseRaiseRatio))

	if p.HasMaxAmount {
		amount = math.Min(amount, float64(p.MaxAmount))
	}
	amount *= CreditMultiplier(pol, user.CreditScore)
	amount = math.Min(amount, float64(IncomeCeilingFor(pol, income)))

	return floorAmount(amount)
}

// annualPaymentCapacity is what the borrower can put toward a new loan each
// year under the DSR ceiling after servicing existing debt.
func (e *Engine) annualPaymentCapacity(income, debt int64, dsr float64) float64 {
	debtService := float64(debt) * e.policy.DebtServiceRate
	return math.Max(0, float64(income)*dsr-debtService)
}

// amortizedPrincipal converts annual payment capacity into a principal using
// the product's average rate and longest term.
func (e *Engine) amortizedPrincipal(annualCapacity float64, p *CompiledProduct) float64 {
	rate := e.policy.FallbackRate
	if p.Rate.Parsed && p.Rate.Average() > 0 {
		rate = p.Rate.Average()
	}
	months := p.TermMonths
	if months <= 0 {
		months = e.policy.FallbackTermMonths
	}
	monthly := decimal.NewFromFloat(annualCapacity / 12)
	return PrincipalForPayment(monthly, rate, months).InexactFloat64()
}

func (e *Engine) collateralMultiplier(ct models.CollateralType) float64 {
	if m, ok := e.policy.CollateralMultipliers[ct]; ok {
		return m
	}
	return e.policy.DefaultCollateralMultiplier
}

// CreditMultiplier scales loan amounts by credit-score tier. A missing score
// gets the policy's MissingCreditMultiplier.
func CreditMultiplier(pol Policy, score *int) float64 {
	if score == nil {
		return pol.MissingCreditMultiplier
	}
	for _, tier := range pol.CreditTiers {
		if *score >= tier.MinScore {
			return tier.Multiplier
		}
	}
	return pol.CreditTierFloor
}

// IncomeCeilingFor returns the absolute loan cap for an annual income.
func IncomeCeilingFor(pol Policy, income int64) int64 {
	for _, c := range pol.IncomeCeilings {
		if income >= c.MinIncome {
			return c.Cap
		}
	}
	return pol.IncomeCeilingFloor
}

func floorAmount(v float64) int64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int64(math.Floor(v))
}
