// Package cache stores the active loan catalog in Redis so Lambda containers
// can skip the database on cold start.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"loan-recommendation-engine/internal/models"
)

// DefaultCatalogKey holds the JSON-encoded active catalog.
const DefaultCatalogKey = "loan-recommendation:catalog:active"

// CatalogCache reads and writes the catalog snapshot in Redis.
type CatalogCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewCatalogCache wraps an existing client. A zero ttl stores without expiry.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, key: DefaultCatalogKey, ttl: ttl}
}

// NewCatalogCacheFromAddr dials Redis at addr.
func NewCatalogCacheFromAddr(addr, password string, ttl time.Duration) *CatalogCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return NewCatalogCache(rdb, ttl)
}

// Get returns the cached catalog. A miss is (nil, false, nil).
func (c *CatalogCache) Get(ctx context.Context) ([]*models.LoanProduct, bool, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read catalog cache: %w", err)
	}

	var products []*models.LoanProduct
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false, fmt.Errorf("failed to decode catalog cache: %w", err)
	}
	return products, true, nil
}

// Set replaces the cached catalog.
func (c *CatalogCache) Set(ctx context.Context, products []*models.LoanProduct) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := c.client.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write catalog cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached catalog.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}

// HealthCheck pings Redis.
func (c *CatalogCache) HealthCheck(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the client's connections.
func (c *CatalogCache) Close() error {
	return c.client.Close()
}
