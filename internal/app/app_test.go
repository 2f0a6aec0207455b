package app_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-recommendation-engine/internal/app"
	"loan-recommendation-engine/internal/config"
	"loan-recommendation-engine/internal/services/catalog"
)

// unreachableDB points at a port nothing listens on.
func unreachableDB() *config.Config {
	return &config.Config{
		DBHost:           "127.0.0.1",
		DBPort:           1,
		DBName:           "none",
		DBUser:           "none",
		CatalogCacheTTL:  time.Minute,
		WriteBackTimeout: time.Second,
		Stage:            "test",
	}
}

func TestNew_FallsBackToDemoCatalog(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	mr := miniredis.RunT(t)
	cfg := unreachableDB()
	cfg.RedisAddr = mr.Addr()

	a, err := app.New(context.Background(), cfg, app.Options{})
	require.NoError(t, err)
	defer a.Close()

	assert.True(t, a.DemoMode)
	assert.Nil(t, a.DB)
	require.NotNil(t, a.Cache)

	snap, err := a.Catalog.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(catalog.DefaultProducts()), snap.Len())

	status, health := a.HealthHandler().Check(context.Background())
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "not configured", health.Database)
	assert.Equal(t, "connected", health.Cache)
}

func TestNew_RequireDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := app.New(context.Background(), unreachableDB(), app.Options{RequireDatabase: true})
	assert.ErrorIs(t, err, app.ErrDatabaseRequired)
}
