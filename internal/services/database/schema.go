package database

// Schema is the idempotent DDL for the recommendation store. Money columns
// are in 10k-currency units.
const Schema = `
CREATE TABLE IF NOT EXISTS loan_products (
	id                  BIGSERIAL PRIMARY KEY,
	lender_name         TEXT NOT NULL,
	product_name        TEXT NOT NULL,
	category            TEXT NOT NULL DEFAULT '',
	rate_range          TEXT NOT NULL DEFAULT '',
	max_amount_text     TEXT NOT NULL DEFAULT '',
	loan_term           TEXT NOT NULL DEFAULT '',
	qual_age            TEXT NOT NULL DEFAULT '',
	qual_home_ownership TEXT NOT NULL DEFAULT '',
	qual_income         TEXT NOT NULL DEFAULT '',
	qual_credit_score   TEXT NOT NULL DEFAULT '',
	required_documents  TEXT[] NOT NULL DEFAULT '{}',
	info_url            TEXT NOT NULL DEFAULT '',
	rate_types          TEXT[] NOT NULL DEFAULT '{}',
	ltv                 DOUBLE PRECISION NOT NULL DEFAULT 0,
	dsr_preferred       BOOLEAN NOT NULL DEFAULT false,
	mobile_available    BOOLEAN NOT NULL DEFAULT false,
	youth_preferred     BOOLEAN NOT NULL DEFAULT false,
	preferential_rate   DOUBLE PRECISION NOT NULL DEFAULT 0,
	simple_documents    BOOLEAN NOT NULL DEFAULT false,
	collateral_types    TEXT[] NOT NULL DEFAULT '{}',
	is_active           BOOLEAN NOT NULL DEFAULT true,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (lender_name, product_name)
);

CREATE INDEX IF NOT EXISTS idx_loan_products_active ON loan_products (is_active);

CREATE TABLE IF NOT EXISTS credit_profiles (
	id                  BIGSERIAL PRIMARY KEY,
	user_id             TEXT NOT NULL UNIQUE,
	credit_score        INTEGER,
	max_purchase_amount BIGINT,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
