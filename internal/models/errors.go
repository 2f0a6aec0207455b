// Package models defines the data structures for the loan recommendation engine.
package models

import (
	"errors"
	"strings"
)

// Common errors
var (
	ErrInvalidLoanCategory   = errors.New("loan category must be collateral or lease")
	ErrInvalidHomeOwnership  = errors.New("invalid home ownership status")
	ErrInvalidUserTag        = errors.New("invalid user condition tag")
	ErrInvalidCollateralType = errors.New("invalid collateral type")
	ErrInvalidRateType       = errors.New("invalid rate type")
	ErrInvalidAge            = errors.New("age must be between 0 and 150")
	ErrInvalidCreditScore    = errors.New("credit score must be between 0 and 1000")
	ErrNegativeAmount        = errors.New("money amounts cannot be negative")
	ErrEmptyProductName      = errors.New("product_name cannot be empty")
	ErrEmptyLenderName       = errors.New("lender_name cannot be empty")
	ErrEmptyUserID           = errors.New("user_id cannot be empty")
	ErrCreditProfileNotFound = errors.New("credit profile not found")
)

// normalizeKey lowercases and turns separators into dashes.
func normalizeKey(s string) string {
	n := strings.ToLower(strings.TrimSpace(s))
	n = strings.ReplaceAll(n, "_", "-")
	n = strings.ReplaceAll(n, " ", "-")
	return n
}

// NormalizeLoanCategory maps user-facing spellings to a LoanCategory.
// Unknown values are returned as-is so validation can reject them.
func NormalizeLoanCategory(s string) LoanCategory {
	n := normalizeKey(s)
	switch n {
	case "":
		return ""
	case "collateral", "mortgage", "home", "home-collateral", "담보", "주택담보":
		return LoanCategoryCollateral
	case "lease", "jeonse", "deposit", "lease-deposit", "전세", "전세자금":
		return LoanCategoryLease
	}
	return LoanCategory(n)
}

// NormalizeHomeOwnership maps housing status spellings to a HomeOwnership.
func NormalizeHomeOwnership(s string) HomeOwnership {
	n := normalizeKey(s)
	switch n {
	case "":
		return ""
	case "no-home", "none", "homeless", "무주택":
		return HomeOwnershipNone
	case "one-home", "single-home", "1-home", "1주택":
		return HomeOwnershipOne
	case "first-time-buyer", "first-time", "생애최초":
		return HomeOwnershipFirstTimeBuyer
	case "multi-home", "multiple-homes", "다주택":
		return HomeOwnershipMulti
	}
	return HomeOwnership(n)
}

// NormalizeUserTag maps condition tag spellings to a UserTag.
func NormalizeUserTag(s string) UserTag {
	n := normalizeKey(s)
	switch n {
	case "", "none":
		return UserTagNone
	case "youth", "young", "청년":
		return UserTagYouth
	case "first-time-buyer", "first-time", "생애최초":
		return UserTagFirstTimeBuyer
	case "newlywed", "신혼부부":
		return UserTagNewlywed
	}
	return UserTag(n)
}

// NormalizeCollateralType maps collateral spellings to a CollateralType.
func NormalizeCollateralType(s string) CollateralType {
	n := normalizeKey(s)
	switch n {
	case "":
		return ""
	case "metro-apartment", "apartment", "capital-apartment", "수도권아파트":
		return CollateralTypeMetroApartment
	case "regional-apartment", "local-apartment", "지방아파트":
		return CollateralTypeRegionalApartment
	case "detached-house", "house", "단독주택":
		return CollateralTypeDetachedHouse
	case "row-house", "multiplex", "villa", "연립", "다세대", "연립다세대":
		return CollateralTypeRowHouse
	}
	return CollateralType(n)
}

// NormalizeRateType maps rate type spellings to a RateType.
func NormalizeRateType(s string) RateType {
	n := normalizeKey(s)
	switch n {
	case "":
		return ""
	case "fixed", "고정":
		return RateTypeFixed
	case "variable", "floating", "변동":
		return RateTypeVariable
	case "mixed", "hybrid", "혼합":
		return RateTypeMixed
	case "periodic", "periodic-reset", "주기형":
		return RateTypePeriodic
	}
	return RateType(n)
}

func (c LoanCategory) IsValid() bool {
	return c == "" || c == LoanCategoryCollateral || c == LoanCategoryLease
}

func (h HomeOwnership) IsValid() bool {
	switch h {
	case "", HomeOwnershipNone, HomeOwnershipOne, HomeOwnershipFirstTimeBuyer, HomeOwnershipMulti:
		return true
	}
	return false
}

func (t UserTag) IsValid() bool {
	switch t {
	case "", UserTagNone, UserTagYouth, UserTagFirstTimeBuyer, UserTagNewlywed:
		return true
	}
	return false
}

func (c CollateralType) IsValid() bool {
	switch c {
	case "", CollateralTypeMetroApartment, CollateralTypeRegionalApartment, CollateralTypeDetachedHouse, CollateralTypeRowHouse:
		return true
	}
	return false
}

func (r RateType) IsValid() bool {
	switch r {
	case "", RateTypeFixed, RateTypeVariable, RateTypeMixed, RateTypePeriodic:
		return true
	}
	return false
}

// ValidateUserConditions checks enum fields and value ranges. The engine
// itself accepts anything; this is for request boundaries.
func ValidateUserConditions(u *UserConditions) error {
	if !u.LoanCategory.IsValid() {
		return ErrInvalidLoanCategory
	}
	if !u.HomeOwnership.IsValid() {
		return ErrInvalidHomeOwnership
	}
	if !u.Tag.IsValid() {
		return ErrInvalidUserTag
	}
	if !u.CollateralType.IsValid() {
		return ErrInvalidCollateralType
	}
	if !u.RatePreference.IsValid() {
		return ErrInvalidRateType
	}
	if u.Age != nil && (*u.Age < 0 || *u.Age > 150) {
		return ErrInvalidAge
	}
	if u.CreditScore != nil && (*u.CreditScore < 0 || *u.CreditScore > 1000) {
		return ErrInvalidCreditScore
	}
	for _, v := range []*int64{u.AnnualIncome, u.ExistingDebt, u.CashAssets, u.CollateralValue} {
		if v != nil && *v < 0 {
			return ErrNegativeAmount
		}
	}
	return nil
}

// ValidateLoanProduct checks the fields a catalog entry cannot do without.
func ValidateLoanProduct(p *LoanProduct) error {
	if p == nil || strings.TrimSpace(p.ProductName) == "" {
		return ErrEmptyProductName
	}
	if strings.TrimSpace(p.LenderName) == "" {
		return ErrEmptyLenderName
	}
	for _, rt := range p.RateTypes {
		if rt == "" || !rt.IsValid() {
			return ErrInvalidRateType
		}
	}
	for _, ct := range p.CollateralTypes {
		if ct == "" || !ct.IsValid() {
			return ErrInvalidCollateralType
		}
	}
	return nil
}
