// Package database provides PostgreSQL storage for the loan catalog and
// borrower credit profiles.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"loan-recommendation-engine/internal/config"
)

// connectTimeout bounds pool creation plus the first ping.
const connectTimeout = 10 * time.Second

// DB is the shared pool behind the product and credit profile repositories.
type DB struct {
	pool *pgxpool.Pool
}

// New connects using the configured DB_* settings or DATABASE_URL.
func New(cfg *config.Config) (*DB, error) {
	return NewFromURL(cfg.DatabaseURL())
}

// NewFromURL connects and pings, so callers can fall back to the seeded
// catalog when Postgres is unreachable.
func NewFromURL(databaseURL string) (*DB, error) {
	poolConfig, err := catalogPoolConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// catalogPoolConfig sizes the pool for one Lambda container or the local
// server. Reads are one catalog load per snapshot TTL; writes are credit
// profile updates and catalog imports.
func catalogPoolConfig(databaseURL string) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute
	poolConfig.ConnConfig.RuntimeParams["application_name"] = "loan-recommendation-engine"

	return poolConfig, nil
}

// Close releases the pool. Safe to call more than once.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// HealthCheck backs the /health database check.
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Migrate applies Schema. Every statement is IF NOT EXISTS, so initdb can
// be re-run against a live database.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Products returns a repository over the loan catalog.
func (db *DB) Products() *ProductRepository {
	return NewProductRepository(db)
}

// CreditProfiles returns a repository over borrower credit profiles.
func (db *DB) CreditProfiles() *CreditProfileRepository {
	return NewCreditProfileRepository(db)
}

// ExecContext runs a write and reports the affected row count, which the
// repositories use to detect missing products and profiles.
func (db *DB) ExecContext(ctx context.Context, sql string, args ...interface{}) (int64, error) {
	tag, err := db.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// QueryRowContext runs a single-row lookup or an upsert ... RETURNING id.
func (db *DB) QueryRowContext(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return db.pool.QueryRow(ctx, sql, args...)
}

// QueryContext runs a multi-row read such as the active catalog load.
func (db *DB) QueryContext(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return db.pool.Query(ctx, sql, args...)
}

// WithTransaction runs fn in one transaction. Catalog imports use it so a
// database failure leaves no partial batch behind.
func (db *DB) WithTransaction(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
