package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"loan-recommendation-engine/internal/models"
)

// ProductRepository handles loan catalog database operations.
type ProductRepository struct {
	db *DB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, lender_name, product_name, category, rate_range, max_amount_text, loan_term,
	qual_age, qual_home_ownership, qual_income, qual_credit_score, required_documents, info_url,
	rate_types, ltv, dsr_preferred, mobile_available, youth_preferred, preferential_rate,
	simple_documents, collateral_types, is_active, created_at, updated_at`

// Products are keyed by lender and product name so catalog re-imports update
// in place.
const upsertProductSQL = `
	INSERT INTO loan_products (
		lender_name, product_name, category, rate_range, max_amount_text, loan_term,
		qual_age, qual_home_ownership, qual_income, qual_credit_score, required_documents, info_url,
		rate_types, ltv, dsr_preferred, mobile_available, youth_preferred, preferential_rate,
		simple_documents, collateral_types, is_active, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, true, $21, $21)
	ON CONFLICT (lender_name, product_name) DO UPDATE SET
		category = EXCLUDED.category,
		rate_range = EXCLUDED.rate_range,
		max_amount_text = EXCLUDED.max_amount_text,
		loan_term = EXCLUDED.loan_term,
		qual_age = EXCLUDED.qual_age,
		qual_home_ownership = EXCLUDED.qual_home_ownership,
		qual_income = EXCLUDED.qual_income,
		qual_credit_score = EXCLUDED.qual_credit_score,
		required_documents = EXCLUDED.required_documents,
		info_url = EXCLUDED.info_url,
		rate_types = EXCLUDED.rate_types,
		ltv = EXCLUDED.ltv,
		dsr_preferred = EXCLUDED.dsr_preferred,
		mobile_available = EXCLUDED.mobile_available,
		youth_preferred = EXCLUDED.youth_preferred,
		preferential_rate = EXCLUDED.preferential_rate,
		simple_documents = EXCLUDED.simple_documents,
		collateral_types = EXCLUDED.collateral_types,
		is_active = true,
		updated_at = EXCLUDED.updated_at
	RETURNING id`

func upsertArgs(p *models.LoanProduct, now time.Time) []interface{} {
	return []interface{}{
		p.LenderName,
		p.ProductName,
		p.Category,
		p.RateRange,
		p.MaxAmountText,
		p.LoanTerm,
		p.Qualification.Age,
		p.Qualification.HomeOwnership,
		p.Qualification.Income,
		p.Qualification.CreditScore,
		nonNilStrings(p.RequiredDocuments),
		p.InfoURL,
		rateTypeStrings(p.RateTypes),
		p.LTV,
		p.DSRPreferred,
		p.MobileAvailable,
		p.YouthPreferred,
		p.PreferentialRate,
		p.SimpleDocuments,
		collateralTypeStrings(p.CollateralTypes),
		now,
	}
}

// Upsert inserts or updates a loan product and returns its ID.
func (r *ProductRepository) Upsert(ctx context.Context, product *models.LoanProduct) (int64, error) {
	if err := models.ValidateLoanProduct(product); err != nil {
		return 0, err
	}

	var id int64
	err := r.db.QueryRowContext(ctx, upsertProductSQL, upsertArgs(product, time.Now().UTC())...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert loan product: %w", err)
	}

	product.ID = id
	return id, nil
}

// BulkUpsert writes products in one transaction. Invalid products are
// counted as failures and skipped; a database error aborts the batch.
func (r *ProductRepository) BulkUpsert(ctx context.Context, products []*models.LoanProduct) (*models.CatalogImportResult, error) {
	result := &models.CatalogImportResult{
		TotalRows: len(products),
		Errors:    []string{},
	}
	now := time.Now().UTC()

	err := r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		for _, product := range products {
			if err := models.ValidateLoanProduct(product); err != nil {
				result.FailedCount++
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", productLabel(product), err))
				continue
			}

			var id int64
			if err := tx.QueryRow(ctx, upsertProductSQL, upsertArgs(product, now)...).Scan(&id); err != nil {
				return fmt.Errorf("failed to upsert %s: %w", productLabel(product), err)
			}
			product.ID = id
			result.UpsertedCount++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetByID retrieves a loan product by its ID.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.LoanProduct, error) {
	query := `SELECT ` + productColumns + ` FROM loan_products WHERE id = $1`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get loan product: %w", err)
	}

	return product, nil
}

// GetAllActive retrieves all active loan products in catalog order.
func (r *ProductRepository) GetAllActive(ctx context.Context) ([]*models.LoanProduct, error) {
	query := `SELECT ` + productColumns + ` FROM loan_products WHERE is_active = true ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query loan products: %w", err)
	}
	defer rows.Close()

	products := []*models.LoanProduct{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read loan products: %w", err)
	}

	return products, nil
}

// Deactivate removes a loan product from the active catalog.
func (r *ProductRepository) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE loan_products SET is_active = false, updated_at = $1 WHERE id = $2",
		time.Now().UTC(), id)
	return err
}

// pgx.Row and pgx.Rows both satisfy this.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.LoanProduct, error) {
	var product models.LoanProduct
	var rateTypes, collateralTypes []string

	err := row.Scan(
		&product.ID,
		&product.LenderName,
		&product.ProductName,
		&product.Category,
		&product.RateRange,
		&product.MaxAmountText,
		&product.LoanTerm,
		&product.Qualification.Age,
		&product.Qualification.HomeOwnership,
		&product.Qualification.Income,
		&product.Qualification.CreditScore,
		&product.RequiredDocuments,
		&product.InfoURL,
		&rateTypes,
		&product.LTV,
		&product.DSRPreferred,
		&product.MobileAvailable,
		&product.YouthPreferred,
		&product.PreferentialRate,
		&product.SimpleDocuments,
		&collateralTypes,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	for _, s := range rateTypes {
		product.RateTypes = append(product.RateTypes, models.RateType(s))
	}
	for _, s := range collateralTypes {
		product.CollateralTypes = append(product.CollateralTypes, models.CollateralType(s))
	}

	return &product, nil
}

func productLabel(p *models.LoanProduct) string {
	if p == nil {
		return "<nil product>"
	}
	return p.LenderName + "/" + p.ProductName
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func rateTypeStrings(types []models.RateType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func collateralTypeStrings(types []models.CollateralType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}
