// Package models defines the data structures for the loan recommendation engine.
package models

// ScoreComponent is one additive contribution to a product's score.
type ScoreComponent struct {
	Name   string  `json:"name"`
	Points float64 `json:"points"`
}

// ScoredProduct is an eligible product with its ranking score and the
// maximum loan amount computed for the requesting borrower.
type ScoredProduct struct {
	LoanProduct
	Score          float64          `json:"score"`
	ScoreBreakdown []ScoreComponent `json:"score_breakdown"`
	MaxLoanAmount  int64            `json:"max_loan_amount"`
}

// PurchaseInfo summarises how much property the borrower can afford.
type PurchaseInfo struct {
	MaxLoanAmount     int64  `json:"max_loan_amount"`
	CashAssets        int64  `json:"cash_assets"`
	MaxPurchaseAmount int64  `json:"max_purchase_amount"`
	SourceProductID   int64  `json:"source_product_id"`
	SourceProduct     string `json:"source_product"`
	SourceLender      string `json:"source_lender"`
}

// RecommendationResult is the ranked output of a recommendation run.
// Products is never nil; PurchaseInfo is nil when Products is empty.
type RecommendationResult struct {
	Products     []*ScoredProduct `json:"products"`
	PurchaseInfo *PurchaseInfo    `json:"purchase_info,omitempty"`
}

// EmptyRecommendation returns a result with no products and no purchase info.
func EmptyRecommendation() *RecommendationResult {
	return &RecommendationResult{Products: []*ScoredProduct{}}
}
