// Package catalog serves compiled loan catalog snapshots to the recommender,
// layering an in-process snapshot over an optional Redis cache over the
// product store.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"loan-recommendation-engine/internal/models"
	"loan-recommendation-engine/internal/services/recommender"
	"loan-recommendation-engine/internal/utils"
)

// Store is the system of record for active products.
type Store interface {
	GetAllActive(ctx context.Context) ([]*models.LoanProduct, error)
}

// Cache is a shared catalog snapshot, e.g. Redis.
type Cache interface {
	Get(ctx context.Context) ([]*models.LoanProduct, bool, error)
	Set(ctx context.Context, products []*models.LoanProduct) error
	Invalidate(ctx context.Context) error
}

// Provider implements recommender.CatalogSource.
type Provider struct {
	store Store
	cache Cache
	ttl   time.Duration
	now   func() time.Time

	mu       sync.RWMutex
	snapshot *recommender.Catalog
	loadedAt time.Time
}

// Option configures a Provider.
type Option func(*Provider)

// WithCache adds a shared cache between the snapshot and the store.
func WithCache(c Cache) Option {
	return func(p *Provider) { p.cache = c }
}

// WithTTL sets how long an in-process snapshot is served before reloading.
func WithTTL(ttl time.Duration) Option {
	return func(p *Provider) {
		if ttl > 0 {
			p.ttl = ttl
		}
	}
}

// NewProvider creates a catalog provider over store.
func NewProvider(store Store, opts ...Option) *Provider {
	p := &Provider{
		store: store,
		ttl:   5 * time.Minute,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Catalog returns the current snapshot, reloading it once the TTL passes. If
// a reload fails and a previous snapshot exists, the stale one is served.
func (p *Provider) Catalog(ctx context.Context) (*recommender.Catalog, error) {
	p.mu.RLock()
	if p.fresh() {
		snap := p.snapshot
		p.mu.RUnlock()
		return snap, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Another caller may have reloaded while we waited.
	if p.fresh() {
		return p.snapshot, nil
	}

	products, err := p.load(ctx)
	if err != nil {
		if p.snapshot != nil {
			utils.Logger.Warn("Catalog reload failed, serving stale snapshot",
				zap.Time("loaded_at", p.loadedAt),
				zap.Error(err),
			)
			return p.snapshot, nil
		}
		return nil, err
	}

	p.swap(products)
	return p.snapshot, nil
}

// Refresh drops every cached layer and reloads from the store.
func (p *Provider) Refresh(ctx context.Context) (*recommender.Catalog, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cache != nil {
		if err := p.cache.Invalidate(ctx); err != nil {
			utils.Logger.Warn("Failed to invalidate catalog cache", zap.Error(err))
		}
	}

	products, err := p.loadFromStore(ctx)
	if err != nil {
		return nil, err
	}

	p.swap(products)
	utils.Logger.Info("Catalog refreshed", zap.Int("products", p.snapshot.Len()))
	return p.snapshot, nil
}

func (p *Provider) fresh() bool {
	return p.snapshot != nil && p.now().Sub(p.loadedAt) < p.ttl
}

func (p *Provider) swap(products []*models.LoanProduct) {
	p.snapshot = recommender.NewCatalog(products)
	p.loadedAt = p.now()
}

func (p *Provider) load(ctx context.Context) ([]*models.LoanProduct, error) {
	if p.cache != nil {
		products, ok, err := p.cache.Get(ctx)
		switch {
		case err != nil:
			utils.Logger.Warn("Catalog cache read failed, falling back to store", zap.Error(err))
		case ok:
			utils.Logger.Debug("Catalog loaded from cache", zap.Int("products", len(products)))
			return products, nil
		}
	}
	return p.loadFromStore(ctx)
}

func (p *Provider) loadFromStore(ctx context.Context) ([]*models.LoanProduct, error) {
	products, err := p.store.GetAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active products: %w", err)
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, products); err != nil {
			utils.Logger.Warn("Failed to populate catalog cache", zap.Error(err))
		}
	}

	utils.Logger.Debug("Catalog loaded from store", zap.Int("products", len(products)))
	return products, nil
}

// StaticStore serves a fixed product list, used in demo mode and tests.
type StaticStore []*models.LoanProduct

func (s StaticStore) GetAllActive(_ context.Context) ([]*models.LoanProduct, error) {
	active := make([]*models.LoanProduct, 0, len(s))
	for _, p := range s {
		if p != nil && p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}
