// Package models defines the data structures for the loan recommendation engine.
package models

import (
	"time"
)

// LoanCategory is the kind of loan a borrower is asking for.
type LoanCategory string

const (
	LoanCategoryCollateral LoanCategory = "collateral"
	LoanCategoryLease      LoanCategory = "lease"
)

// HomeOwnership is the borrower's current housing status.
type HomeOwnership string

const (
	HomeOwnershipNone           HomeOwnership = "no-home"
	HomeOwnershipOne            HomeOwnership = "one-home"
	HomeOwnershipFirstTimeBuyer HomeOwnership = "first-time-buyer"
	HomeOwnershipMulti          HomeOwnership = "multi-home"
)

// UserTag is a borrower condition that lenders offer preferential products for.
type UserTag string

const (
	UserTagNone           UserTag = "none"
	UserTagYouth          UserTag = "youth"
	UserTagFirstTimeBuyer UserTag = "first-time-buyer"
	UserTagNewlywed       UserTag = "newlywed"
)

// UserConditions is a borrower's financial profile, built fresh for every
// recommendation. Money fields are in 10k-currency units. Nil pointers mean
// the caller did not supply the value.
type UserConditions struct {
	UserID          string         `json:"user_id,omitempty"`
	Email           string         `json:"email,omitempty"`
	Age             *int           `json:"age,omitempty"`
	AnnualIncome    *int64         `json:"annual_income,omitempty"`
	ExistingDebt    *int64         `json:"existing_debt,omitempty"`
	CashAssets      *int64         `json:"cash_assets,omitempty"`
	CreditScore     *int           `json:"credit_score,omitempty"`
	LoanCategory    LoanCategory   `json:"loan_category,omitempty"`
	HomeOwnership   HomeOwnership  `json:"home_ownership,omitempty"`
	Tag             UserTag        `json:"tag,omitempty"`
	CollateralType  CollateralType `json:"collateral_type,omitempty"`
	CollateralValue *int64         `json:"collateral_value,omitempty"`
	RatePreference  RateType       `json:"rate_preference,omitempty"`
	PrimaryBank     string         `json:"primary_bank,omitempty"`
}

// DebtOrZero returns existing debt, treating a missing value as no debt.
func (u *UserConditions) DebtOrZero() int64 {
	if u.ExistingDebt == nil || *u.ExistingDebt < 0 {
		return 0
	}
	return *u.ExistingDebt
}

// CashOrZero returns cash assets, treating a missing value as none.
func (u *UserConditions) CashOrZero() int64 {
	if u.CashAssets == nil || *u.CashAssets < 0 {
		return 0
	}
	return *u.CashAssets
}

// IncomeOr returns annual income or the given default when missing.
func (u *UserConditions) IncomeOr(def int64) int64 {
	if u.AnnualIncome == nil {
		return def
	}
	return *u.AnnualIncome
}

// CollateralValueOr returns the collateral or deposit value or the given
// default when missing.
func (u *UserConditions) CollateralValueOr(def int64) int64 {
	if u.CollateralValue == nil {
		return def
	}
	return *u.CollateralValue
}

// CreditProfile is the stored credit record a recommendation writes its
// purchase ceiling back to.
type CreditProfile struct {
	ID                int64     `json:"id" db:"id"`
	UserID            string    `json:"user_id" db:"user_id"`
	CreditScore       *int      `json:"credit_score,omitempty" db:"credit_score"`
	MaxPurchaseAmount *int64    `json:"max_purchase_amount,omitempty" db:"max_purchase_amount"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}
