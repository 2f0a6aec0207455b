package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogPoolConfig(t *testing.T) {
	cfg, err := catalogPoolConfig("postgres://app:pw@localhost:5432/loans?sslmode=disable")
	require.NoError(t, err)

	assert.Equal(t, int32(10), cfg.MaxConns)
	assert.Equal(t, int32(1), cfg.MinConns)
	assert.Equal(t, time.Hour, cfg.MaxConnLifetime)
	assert.Equal(t, "loan-recommendation-engine", cfg.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, "loans", cfg.ConnConfig.Database)
}

func TestCatalogPoolConfig_BadURL(t *testing.T) {
	_, err := catalogPoolConfig("postgres://app:pw@localhost:notaport/loans")
	assert.Error(t, err)
}
