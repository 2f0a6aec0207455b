package recommender

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"loan-recommendation-engine/internal/models"
	"loan-recommendation-engine/internal/utils"
)

// CreditProfileWriter persists a borrower's maximum purchase amount.
type CreditProfileWriter interface {
	UpdateMaxPurchaseAmount(ctx context.Context, userID string, amount int64) error
}

// Notifier delivers a recommendation summary to the borrower.
type Notifier interface {
	NotifyRecommendation(ctx context.Context, user *models.UserConditions, result *models.RecommendationResult) error
}

// Service wires the engine to a catalog source and the optional best-effort
// output ports.
type Service struct {
	engine   *Engine
	catalogs CatalogSource
	profiles CreditProfileWriter
	notifier Notifier
	timeout  time.Duration
	pending  sync.WaitGroup
}

// Option configures a Service.
type Option func(*Service)

// WithCreditProfileWriter enables the purchase-amount write-back.
func WithCreditProfileWriter(w CreditProfileWriter) Option {
	return func(s *Service) { s.profiles = w }
}

// WithNotifier enables summary notifications for borrowers with an email.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithSideEffectTimeout bounds each background write.
func WithSideEffectTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewService creates a recommendation service.
func NewService(engine *Engine, catalogs CatalogSource, opts ...Option) *Service {
	s := &Service{
		engine:   engine,
		catalogs: catalogs,
		timeout:  5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Recommend loads the current catalog and runs the engine. The only error is
// a catalog that cannot be loaded; side effects never affect the result.
func (s *Service) Recommend(ctx context.Context, user *models.UserConditions) (*models.RecommendationResult, error) {
	start := time.Now()

	catalog, err := s.catalogs.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load loan catalog: %w", err)
	}

	result := s.engine.Recommend(catalog, user)

	utils.Logger.Info("Recommendation complete",
		zap.String("user_id", userIDOf(user)),
		zap.Int("catalog", catalog.Len()),
		zap.Int("recommended", len(result.Products)),
		zap.Duration("elapsed", time.Since(start)),
	)

	s.dispatch(ctx, user, result)

	return result, nil
}

// dispatch runs the write-back and notification in the background. They
// outlive the request but not the timeout.
func (s *Service) dispatch(ctx context.Context, user *models.UserConditions, result *models.RecommendationResult) {
	if user == nil || result.PurchaseInfo == nil {
		return
	}
	writeBack := s.profiles != nil && user.UserID != ""
	notify := s.notifier != nil && user.Email != ""
	if !writeBack && !notify {
		return
	}

	bg := context.WithoutCancel(ctx)
	userID := user.UserID
	amount := result.PurchaseInfo.MaxPurchaseAmount

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		defer func() {
			if r := recover(); r != nil {
				utils.Logger.Error("Recommendation side effect panicked",
					zap.String("user_id", userID),
					zap.String("panic", fmt.Sprint(r)),
				)
			}
		}()

		if writeBack {
			wctx, cancel := context.WithTimeout(bg, s.timeout)
			if err := s.profiles.UpdateMaxPurchaseAmount(wctx, userID, amount); err != nil {
				utils.Logger.Warn("Failed to write back max purchase amount",
					zap.String("user_id", userID),
					zap.Int64("max_purchase_amount", amount),
					zap.Error(err),
				)
			}
			cancel()
		}

		if notify {
			nctx, cancel := context.WithTimeout(bg, s.timeout)
			if err := s.notifier.NotifyRecommendation(nctx, user, result); err != nil {
				utils.Logger.Warn("Failed to send recommendation summary",
					zap.String("user_id", userID),
					zap.Error(err),
				)
			}
			cancel()
		}
	}()
}

// Wait blocks until in-flight side effects finish.
func (s *Service) Wait() {
	s.pending.Wait()
}
