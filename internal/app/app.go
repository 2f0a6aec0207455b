// Package app wires configuration, storage, cache and the recommendation
// service together for the server and Lambda entry points.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"loan-recommendation-engine/internal/config"
	"loan-recommendation-engine/internal/handlers"
	"loan-recommendation-engine/internal/services/cache"
	"loan-recommendation-engine/internal/services/catalog"
	"loan-recommendation-engine/internal/services/database"
	"loan-recommendation-engine/internal/services/recommender"
	"loan-recommendation-engine/internal/services/ses"
	"loan-recommendation-engine/internal/utils"
)

// ErrDatabaseRequired is returned when the database is mandatory but unreachable.
var ErrDatabaseRequired = errors.New("database connection is required")

// App holds all dependencies.
type App struct {
	Config   *config.Config
	DB       *database.DB
	Cache    *cache.CatalogCache
	Catalog  *catalog.Provider
	Service  *recommender.Service
	DemoMode bool

	closeOnce sync.Once
}

// Options controls how strictly New treats missing backends.
type Options struct {
	// RequireDatabase fails New when Postgres is unreachable instead of
	// falling back to the seeded demo catalog.
	RequireDatabase bool
	// Notify enables the SES recommendation summary when a sender is configured.
	Notify bool
}

// New connects to the configured backends and builds the service.
func New(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	a := &App{Config: cfg}

	db, err := database.New(cfg)
	switch {
	case err == nil:
		a.DB = db
	case opts.RequireDatabase:
		return nil, fmt.Errorf("%w: %v", ErrDatabaseRequired, err)
	default:
		utils.Logger.Warn("Could not connect to database, running in demo mode with the seeded catalog", zap.Error(err))
		a.DemoMode = true
	}

	var store catalog.Store = catalog.StaticStore(catalog.DefaultProducts())
	if a.DB != nil {
		store = a.DB.Products()
	}

	providerOpts := []catalog.Option{catalog.WithTTL(cfg.CatalogCacheTTL)}
	if cfg.RedisAddr != "" {
		a.Cache = cache.NewCatalogCacheFromAddr(cfg.RedisAddr, cfg.RedisPassword, cfg.CatalogCacheTTL)
		if err := a.Cache.HealthCheck(ctx); err != nil {
			utils.Logger.Warn("Redis catalog cache unreachable, continuing without shared cache hits", zap.Error(err))
		}
		providerOpts = append(providerOpts, catalog.WithCache(a.Cache))
	}
	a.Catalog = catalog.NewProvider(store, providerOpts...)

	serviceOpts := []recommender.Option{recommender.WithSideEffectTimeout(cfg.WriteBackTimeout)}
	if a.DB != nil {
		serviceOpts = append(serviceOpts, recommender.WithCreditProfileWriter(a.DB.CreditProfiles()))
	}
	if opts.Notify && cfg.SESSenderEmail != "" {
		mailer, err := ses.NewService(ctx, cfg)
		if err != nil {
			utils.Logger.Warn("SES unavailable, recommendation summaries disabled", zap.Error(err))
		} else {
			serviceOpts = append(serviceOpts, recommender.WithNotifier(mailer))
		}
	}

	engine := recommender.NewEngine(recommender.PolicyFromConfig(cfg))
	a.Service = recommender.NewService(engine, a.Catalog, serviceOpts...)

	utils.Logger.Info("Application initialised",
		zap.Bool("demo_mode", a.DemoMode),
		zap.Bool("redis", a.Cache != nil),
		zap.String("stage", cfg.Stage),
	)
	return a, nil
}

// HealthHandler reports on whichever backends are configured.
func (a *App) HealthHandler() *handlers.HealthHandler {
	var db, rc handlers.HealthChecker
	if a.DB != nil {
		db = a.DB
	}
	if a.Cache != nil {
		rc = a.Cache
	}
	return handlers.NewHealthHandler(db, rc)
}

// Close drains background work and releases connections. Safe to call more
// than once.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		if a.Service != nil {
			a.Service.Wait()
		}
		if a.Cache != nil {
			_ = a.Cache.Close()
		}
		if a.DB != nil {
			a.DB.Close()
		}
	})
}
