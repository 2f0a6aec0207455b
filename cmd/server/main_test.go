package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-recommendation-engine/internal/app"
	"loan-recommendation-engine/internal/config"
)

func demoApp(t *testing.T) *app.App {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	cfg := &config.Config{
		DBHost:           "127.0.0.1",
		DBPort:           1,
		CatalogCacheTTL:  time.Minute,
		WriteBackTimeout: time.Second,
	}
	a, err := app.New(context.Background(), cfg, app.Options{})
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func TestRouter_DemoMode(t *testing.T) {
	srv := httptest.NewServer(newRouter(demoApp(t)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/products")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/recommendations", "application/json",
		strings.NewReader(`{"age":28,"annual_income":4000,"credit_score":720,"loan_category":"lease","home_ownership":"no-home"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/recommendations", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	newRouter(demoApp(t)).ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
