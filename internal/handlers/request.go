package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"loan-recommendation-engine/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report json field names rather than Go ones
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// RecommendationRequest is the JSON body of a recommendation call. Money is in
// 10k-currency units. Enum fields accept the spellings models.Normalize* knows.
type RecommendationRequest struct {
	UserID          string `json:"user_id" validate:"omitempty,max=64"`
	Email           string `json:"email" validate:"omitempty,email"`
	Age             *int   `json:"age" validate:"omitempty,min=0,max=150"`
	AnnualIncome    *int64 `json:"annual_income" validate:"omitempty,min=0"`
	ExistingDebt    *int64 `json:"existing_debt" validate:"omitempty,min=0"`
	CashAssets      *int64 `json:"cash_assets" validate:"omitempty,min=0"`
	CreditScore     *int   `json:"credit_score" validate:"omitempty,min=0,max=1000"`
	LoanCategory    string `json:"loan_category" validate:"max=32"`
	HomeOwnership   string `json:"home_ownership" validate:"max=32"`
	Tag             string `json:"tag" validate:"max=32"`
	CollateralType  string `json:"collateral_type" validate:"max=32"`
	CollateralValue *int64 `json:"collateral_value" validate:"omitempty,min=0"`
	RatePreference  string `json:"rate_preference" validate:"max=32"`
	PrimaryBank     string `json:"primary_bank" validate:"max=64"`
}

// ErrInvalidRequest wraps every request validation failure.
var ErrInvalidRequest = errors.New("invalid recommendation request")

// ToUserConditions validates the request and maps it onto the engine input.
func (r *RecommendationRequest) ToUserConditions() (*models.UserConditions, error) {
	if err := validate.Struct(r); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, describeValidation(err))
	}

	user := &models.UserConditions{
		UserID:          strings.TrimSpace(r.UserID),
		Email:           strings.TrimSpace(r.Email),
		Age:             r.Age,
		AnnualIncome:    r.AnnualIncome,
		ExistingDebt:    r.ExistingDebt,
		CashAssets:      r.CashAssets,
		CreditScore:     r.CreditScore,
		LoanCategory:    models.NormalizeLoanCategory(r.LoanCategory),
		HomeOwnership:   models.NormalizeHomeOwnership(r.HomeOwnership),
		Tag:             models.NormalizeUserTag(r.Tag),
		CollateralType:  models.NormalizeCollateralType(r.CollateralType),
		CollateralValue: r.CollateralValue,
		RatePreference:  models.NormalizeRateType(r.RatePreference),
		PrimaryBank:     strings.TrimSpace(r.PrimaryBank),
	}

	if err := models.ValidateUserConditions(user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return user, nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s must be a valid %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
