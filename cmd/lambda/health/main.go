// Health Check Lambda entry point
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"loan-recommendation-engine/internal/app"
	"loan-recommendation-engine/internal/config"
	"loan-recommendation-engine/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	_ = utils.InitLogger(cfg.LogLevel)
	defer utils.Sync()

	// Report degraded rather than failing to start
	a, err := app.New(context.Background(), cfg, app.Options{})
	if err != nil {
		utils.Logger.Fatal("Failed to initialise application", zap.Error(err))
	}

	lambda.StartWithOptions(a.HealthHandler().Handle, a.LambdaOptions()...)
}
