// Package models defines the data structures for the loan recommendation engine.
package models

import (
	"time"
)

// RateType is a repayment rate structure a product may offer.
type RateType string

const (
	RateTypeFixed    RateType = "fixed"
	RateTypeVariable RateType = "variable"
	RateTypeMixed    RateType = "mixed"
	RateTypePeriodic RateType = "periodic"
)

// CollateralType describes the property pledged against a collateral loan.
type CollateralType string

const (
	CollateralTypeMetroApartment    CollateralType = "metro-apartment"
	CollateralTypeRegionalApartment CollateralType = "regional-apartment"
	CollateralTypeDetachedHouse     CollateralType = "detached-house"
	CollateralTypeRowHouse          CollateralType = "row-house"
)

// Qualification holds a product's free-text eligibility requirements as
// published by the lender.
type Qualification struct {
	Age           string `json:"age" db:"qual_age"`
	HomeOwnership string `json:"home_ownership" db:"qual_home_ownership"`
	Income        string `json:"income" db:"qual_income"`
	CreditScore   string `json:"credit_score" db:"qual_credit_score"`
}

// LoanProduct is a lender's offering. Catalog entries are read-only once seeded.
type LoanProduct struct {
	ID                int64            `json:"id" db:"id"`
	LenderName        string           `json:"lender_name" db:"lender_name"`
	ProductName       string           `json:"product_name" db:"product_name"`
	Category          string           `json:"category" db:"category"`
	RateRange         string           `json:"rate_range" db:"rate_range"`
	MaxAmountText     string           `json:"max_amount_text" db:"max_amount_text"`
	LoanTerm          string           `json:"loan_term" db:"loan_term"`
	Qualification     Qualification    `json:"qualification"`
	RequiredDocuments []string         `json:"required_documents" db:"required_documents"`
	InfoURL           string           `json:"info_url,omitempty" db:"info_url"`
	RateTypes         []RateType       `json:"rate_types" db:"rate_types"`
	LTV               float64          `json:"ltv" db:"ltv"`
	DSRPreferred      bool             `json:"dsr_preferred" db:"dsr_preferred"`
	MobileAvailable   bool             `json:"mobile_available" db:"mobile_available"`
	YouthPreferred    bool             `json:"youth_preferred" db:"youth_preferred"`
	PreferentialRate  float64          `json:"preferential_rate" db:"preferential_rate"`
	SimpleDocuments   bool             `json:"simple_documents" db:"simple_documents"`
	CollateralTypes   []CollateralType `json:"collateral_types" db:"collateral_types"`
	IsActive          bool             `json:"is_active" db:"is_active"`
	CreatedAt         time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at" db:"updated_at"`
}

// SupportsRateType reports whether the product offers the given rate type.
func (p *LoanProduct) SupportsRateType(rt RateType) bool {
	for _, t := range p.RateTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// SupportsCollateralType reports whether the product accepts the given collateral.
func (p *LoanProduct) SupportsCollateralType(ct CollateralType) bool {
	for _, t := range p.CollateralTypes {
		if t == ct {
			return true
		}
	}
	return false
}

// LoanProductSummary is a lightweight view for listing endpoints.
type LoanProductSummary struct {
	ID            int64  `json:"id"`
	LenderName    string `json:"lender_name"`
	ProductName   string `json:"product_name"`
	Category      string `json:"category"`
	RateRange     string `json:"rate_range"`
	MaxAmountText string `json:"max_amount_text"`
}

// ToSummary converts a LoanProduct to LoanProductSummary.
func (p *LoanProduct) ToSummary() LoanProductSummary {
	return LoanProductSummary{
		ID:            p.ID,
		LenderName:    p.LenderName,
		ProductName:   p.ProductName,
		Category:      p.Category,
		RateRange:     p.RateRange,
		MaxAmountText: p.MaxAmountText,
	}
}
