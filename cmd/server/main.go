// Package main provides a local HTTP server for development and testing.
// Without a reachable database it serves the seeded demo catalog.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"loan-recommendation-engine/internal/app"
	"loan-recommendation-engine/internal/config"
	"loan-recommendation-engine/internal/handlers"
	"loan-recommendation-engine/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger first
	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, app.Options{Notify: true})
	if err != nil {
		utils.Logger.Fatal("Failed to initialise application", zap.Error(err))
	}
	defer a.Close()

	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", cfg.Port),
		Handler:           newRouter(a),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		utils.Logger.Info("Loan Recommendation API listening",
			zap.String("addr", srv.Addr),
			zap.Bool("demo_mode", a.DemoMode),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	utils.Logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Logger.Warn("Graceful shutdown failed", zap.Error(err))
	}
}

func newRouter(a *app.App) http.Handler {
	catalogHandler := handlers.NewCatalogHandler(a.Catalog, a.Catalog)
	health := a.HealthHandler()

	mux := http.NewServeMux()

	// Health check
	mux.Handle("/health", health)
	mux.Handle("/api/health", health)

	mux.Handle("/api/recommendations", handlers.NewRecommendHandler(a.Service))
	mux.HandleFunc("/api/products", catalogHandler.ListProducts)
	mux.HandleFunc("/api/catalog/refresh", catalogHandler.Refresh)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	return c.Handler(mux)
}
