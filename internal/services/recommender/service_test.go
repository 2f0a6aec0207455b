package recommender_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"loan-recommendation-engine/internal/models"
	"loan-recommendation-engine/internal/services/recommender"
	"loan-recommendation-engine/internal/utils"
)

type failingSource struct{}

func (failingSource) Catalog(context.Context) (*recommender.Catalog, error) {
	return nil, errors.New("connection refused")
}

type recordingWriter struct {
	mu      sync.Mutex
	calls   map[string]int64
	err     error
	ctxErrs []error
}

func (w *recordingWriter) UpdateMaxPurchaseAmount(ctx context.Context, userID string, amount int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.calls == nil {
		w.calls = map[string]int64{}
	}
	w.calls[userID] = amount
	w.ctxErrs = append(w.ctxErrs, ctx.Err())
	return w.err
}

type recordingNotifier struct {
	mu      sync.Mutex
	emails  []string
	results []*models.RecommendationResult
}

func (n *recordingNotifier) NotifyRecommendation(_ context.Context, user *models.UserConditions, result *models.RecommendationResult) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.emails = append(n.emails, user.Email)
	n.results = append(n.results, result)
	return nil
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	utils.SetLogger(zap.New(core))
	t.Cleanup(func() { utils.SetLogger(nil) })
	return logs
}

func youthSource() *recommender.StaticSource {
	return recommender.NewStaticSource([]*models.LoanProduct{mockProduct(nil)})
}

func TestService_WritesBackMaxPurchaseAmount(t *testing.T) {
	writer := &recordingWriter{}
	svc := recommender.NewService(newEngine(), youthSource(), recommender.WithCreditProfileWriter(writer))

	result, err := svc.Recommend(context.Background(), mockUser(nil))
	require.NoError(t, err)
	require.NotNil(t, result.PurchaseInfo)

	svc.Wait()

	writer.mu.Lock()
	defer writer.mu.Unlock()
	assert.Equal(t, result.PurchaseInfo.MaxPurchaseAmount, writer.calls["USR001"])
}

func TestService_WriteBackFailureIsLoggedNotReturned(t *testing.T) {
	logs := observeLogs(t)
	writer := &recordingWriter{err: models.ErrCreditProfileNotFound}
	svc := recommender.NewService(newEngine(), youthSource(), recommender.WithCreditProfileWriter(writer))

	result, err := svc.Recommend(context.Background(), mockUser(nil))
	require.NoError(t, err)
	assert.Len(t, result.Products, 1)

	svc.Wait()

	warnings := logs.FilterMessage("Failed to write back max purchase amount")
	require.Equal(t, 1, warnings.Len())
	entry := warnings.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "USR001", entry.ContextMap()["user_id"])
}

func TestService_WriteBackOutlivesRequestContext(t *testing.T) {
	writer := &recordingWriter{}
	svc := recommender.NewService(newEngine(), youthSource(),
		recommender.WithCreditProfileWriter(writer),
		recommender.WithSideEffectTimeout(time.Second),
	)

	ctx, cancel := context.WithCancel(context.Background())
	_, err := svc.Recommend(ctx, mockUser(nil))
	require.NoError(t, err)
	cancel()

	svc.Wait()

	writer.mu.Lock()
	defer writer.mu.Unlock()
	require.Len(t, writer.ctxErrs, 1)
	assert.NoError(t, writer.ctxErrs[0], "write-back must not inherit request cancellation")
}

func TestService_SkipsSideEffectsWithoutResult(t *testing.T) {
	writer := &recordingWriter{}
	notifier := &recordingNotifier{}
	svc := recommender.NewService(newEngine(), recommender.NewStaticSource(nil),
		recommender.WithCreditProfileWriter(writer),
		recommender.WithNotifier(notifier),
	)

	result, err := svc.Recommend(context.Background(), mockUser(map[string]interface{}{"email": "kim@example.com"}))
	require.NoError(t, err)
	assert.Empty(t, result.Products)

	svc.Wait()
	assert.Empty(t, writer.calls)
	assert.Empty(t, notifier.emails)
}

func TestService_SkipsWriteBackWithoutUserID(t *testing.T) {
	writer := &recordingWriter{}
	svc := recommender.NewService(newEngine(), youthSource(), recommender.WithCreditProfileWriter(writer))

	_, err := svc.Recommend(context.Background(), mockUser(map[string]interface{}{"user_id": ""}))
	require.NoError(t, err)

	svc.Wait()
	assert.Empty(t, writer.calls)
}

func TestService_NotifiesBorrowersWithEmail(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := recommender.NewService(newEngine(), youthSource(), recommender.WithNotifier(notifier))

	_, err := svc.Recommend(context.Background(), mockUser(map[string]interface{}{"email": "kim@example.com"}))
	require.NoError(t, err)
	_, err = svc.Recommend(context.Background(), mockUser(nil))
	require.NoError(t, err)

	svc.Wait()

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.Equal(t, []string{"kim@example.com"}, notifier.emails)
	require.Len(t, notifier.results, 1)
	assert.NotNil(t, notifier.results[0].PurchaseInfo)
}

func TestService_CatalogFailure(t *testing.T) {
	svc := recommender.NewService(newEngine(), failingSource{})

	result, err := svc.Recommend(context.Background(), mockUser(nil))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load loan catalog")
	assert.Nil(t, result)
}
