// Catalog import Lambda entry point, triggered by S3 object-created events
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"loan-recommendation-engine/internal/app"
	"loan-recommendation-engine/internal/config"
	"loan-recommendation-engine/internal/handlers"
	s3service "loan-recommendation-engine/internal/services/s3"
	"loan-recommendation-engine/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	_ = utils.InitLogger(cfg.LogLevel)
	defer utils.Sync()

	ctx := context.Background()

	a, err := app.New(ctx, cfg, app.Options{RequireDatabase: true})
	if err != nil {
		utils.Logger.Fatal("Failed to initialise application", zap.Error(err))
	}

	objects, err := s3service.NewService(ctx, cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to create S3 service", zap.Error(err))
	}

	handler := handlers.NewCatalogImportHandler(
		func(bucket string) handlers.ObjectStore { return objects.ForBucket(bucket) },
		a.DB.Products(),
		a.Catalog,
	)
	lambda.StartWithOptions(handler.Handle, a.LambdaOptions()...)
}
