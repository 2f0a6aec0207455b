package app_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-recommendation-engine/internal/app"
	"loan-recommendation-engine/internal/models"
	"loan-recommendation-engine/internal/services/catalog"
	"loan-recommendation-engine/internal/services/recommender"
)

type slowWriter struct {
	delay time.Duration

	mu     sync.Mutex
	writes map[string]int64
}

func (w *slowWriter) UpdateMaxPurchaseAmount(_ context.Context, userID string, amount int64) error {
	time.Sleep(w.delay)
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.writes == nil {
		w.writes = map[string]int64{}
	}
	w.writes[userID] = amount
	return nil
}

func youthBorrower() *models.UserConditions {
	age, credit := 25, 650
	income, value := int64(3000), int64(10000)
	return &models.UserConditions{
		UserID:          "USR001",
		Age:             &age,
		AnnualIncome:    &income,
		CreditScore:     &credit,
		LoanCategory:    models.LoanCategoryCollateral,
		HomeOwnership:   models.HomeOwnershipNone,
		Tag:             models.UserTagYouth,
		CollateralType:  models.CollateralTypeMetroApartment,
		CollateralValue: &value,
	}
}

func TestShutdownHook_DrainsPendingWriteBack(t *testing.T) {
	writer := &slowWriter{delay: 50 * time.Millisecond}
	a := &app.App{
		Service: recommender.NewService(
			recommender.NewEngine(recommender.DefaultPolicy()),
			recommender.NewStaticSource(catalog.DefaultProducts()),
			recommender.WithCreditProfileWriter(writer),
		),
	}

	result, err := a.Service.Recommend(context.Background(), youthBorrower())
	require.NoError(t, err)
	require.NotNil(t, result.PurchaseInfo)

	a.ShutdownHook()()

	writer.mu.Lock()
	defer writer.mu.Unlock()
	assert.Equal(t, result.PurchaseInfo.MaxPurchaseAmount, writer.writes["USR001"])
}

func TestClose_Idempotent(t *testing.T) {
	a := &app.App{}
	assert.NotPanics(t, func() {
		a.Close()
		a.ShutdownHook()()
	})
}

func TestLambdaOptions_RegistersHook(t *testing.T) {
	a := &app.App{}
	assert.Len(t, a.LambdaOptions(), 1)
}
