// Recommendation Lambda entry point
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"loan-recommendation-engine/internal/app"
	"loan-recommendation-engine/internal/config"
	"loan-recommendation-engine/internal/handlers"
	"loan-recommendation-engine/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	_ = utils.InitLogger(cfg.LogLevel)
	defer utils.Sync()

	a, err := app.New(context.Background(), cfg, app.Options{RequireDatabase: true, Notify: true})
	if err != nil {
		utils.Logger.Fatal("Failed to initialise application", zap.Error(err))
	}

	handler := handlers.NewRecommendHandler(a.Service)
	// Write-backs and summaries run after the response is returned and only
	// while the sandbox is thawed; the SIGTERM hook drains them on spindown.
	utils.Logger.Info("Recommendation side effects are best-effort", zap.Duration("timeout", cfg.WriteBackTimeout))
	lambda.StartWithOptions(handler.Handle, a.LambdaOptions()...)
}
