// Package recommender implements the loan recommendation pipeline: filter the
// catalog by eligibility, score and rank what remains, size the maximum loan
// per product, and derive the borrower's maximum purchase amount.
package recommender

import (
	"fmt"

	"go.uber.org/zap"

	"loan-recommendation-engine/internal/models"
	"loan-recommendation-engine/internal/utils"
)

// Engine is the pure recommendation computation. It holds no per-request
// state and is safe for concurrent use.
type Engine struct {
	policy Policy
}

// NewEngine creates an engine with the given tuning.
func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Policy returns the engine's tuning.
func (e *Engine) Policy() Policy { return e.policy }

// Recommend runs filter, score, sizing and summary over catalog. It always
// returns a result; on any internal failure the result is empty.
func (e *Engine) Recommend(catalog *Catalog, user *models.UserConditions) (result *models.RecommendationResult) {
	defer func() {
		if r := recover(); r != nil {
			utils.Logger.Error("Recommendation pipeline panicked",
				zap.String("panic", fmt.Sprint(r)),
				zap.String("user_id", userIDOf(user)),
			)
			result = models.EmptyRecommendation()
		}
	}()

	if user == nil {
		user = &models.UserConditions{}
	}

	eligible := e.Filter(catalog, user)
	utils.Logger.Debug("Eligibility filter complete",
		zap.Int("catalog", catalog.Len()),
		zap.Int("eligible", len(eligible)),
	)
	if len(eligible) == 0 {
		return models.EmptyRecommendation()
	}

	ranked := e.Score(eligible, user)
	products := make([]*models.ScoredProduct, 0, len(ranked))
	for _, rp := range ranked {
		rp.MaxLoanAmount = e.ComputeMaxAmount(rp.Compiled, user)
		products = append(products, rp.ScoredProduct)
	}

	return &models.RecommendationResult{
		Products:     products,
		PurchaseInfo: e.Summarize(products, user),
	}
}

// Summarize picks the product with the largest loan amount (first wins on
// ties) and adds the borrower's cash. It returns nil for an empty list.
func (e *Engine) Summarize(products []*models.ScoredProduct, user *models.UserConditions) *models.PurchaseInfo {
	var best *models.ScoredProduct
	for _, p := range products {
		if p == nil {
			continue
		}
		if best == nil || p.MaxLoanAmount > best.MaxLoanAmount {
			best = p
		}
	}
	if best == nil {
		return nil
	}

	var cash int64
	if user != nil {
		cash = user.CashOrZero()
	}
	return &models.PurchaseInfo{
		MaxLoanAmount:     best.MaxLoanAmount,
		CashAssets:        cash,
		MaxPurchaseAmount: best.MaxLoanAmount + cash,
		SourceProductID:   best.ID,
		SourceProduct:     best.ProductName,
		SourceLender:      best.LenderName,
	}
}

func userIDOf(user *models.UserConditions) string {
	if user == nil {
		return ""
	}
	return user.UserID
}
