package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"loan-recommendation-engine/internal/models"
)

// CreditProfileRepository handles borrower credit profile operations.
type CreditProfileRepository struct {
	db *DB
}

// NewCreditProfileRepository creates a new credit profile repository.
func NewCreditProfileRepository(db *DB) *CreditProfileRepository {
	return &CreditProfileRepository{db: db}
}

// Upsert creates or updates the credit score for a user.
func (r *CreditProfileRepository) Upsert(ctx context.Context, userID string, creditScore *int) (int64, error) {
	if strings.TrimSpace(userID) == "" {
		return 0, models.ErrEmptyUserID
	}

	query := `
		INSERT INTO credit_profiles (user_id, credit_score, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			credit_score = EXCLUDED.credit_score,
			updated_at = EXCLUDED.updated_at
		RETURNING id`

	var id int64
	if err := r.db.QueryRowContext(ctx, query, userID, creditScore, time.Now().UTC()).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to upsert credit profile: %w", err)
	}
	return id, nil
}

// UpdateMaxPurchaseAmount records the latest purchase ceiling for a user.
// It returns models.ErrCreditProfileNotFound when the user has no profile.
func (r *CreditProfileRepository) UpdateMaxPurchaseAmount(ctx context.Context, userID string, amount int64) error {
	if strings.TrimSpace(userID) == "" {
		return models.ErrEmptyUserID
	}

	affected, err := r.db.ExecContext(ctx,
		"UPDATE credit_profiles SET max_purchase_amount = $1, updated_at = $2 WHERE user_id = $3",
		amount, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("failed to update max purchase amount: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %s: %w", userID, models.ErrCreditProfileNotFound)
	}
	return nil
}

// GetByUserID retrieves a user's credit profile, or nil if none exists.
func (r *CreditProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.CreditProfile, error) {
	query := `
		SELECT id, user_id, credit_score, max_purchase_amount, created_at, updated_at
		FROM credit_profiles
		WHERE user_id = $1`

	var profile models.CreditProfile
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.CreditScore,
		&profile.MaxPurchaseAmount,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credit profile: %w", err)
	}

	return &profile, nil
}
