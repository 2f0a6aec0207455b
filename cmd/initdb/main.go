// Command initdb creates the schema and seeds the default loan catalog.
package main

import (
	"context"
	"flag"
	"time"

	"go.uber.org/zap"

	"loan-recommendation-engine/internal/config"
	"loan-recommendation-engine/internal/services/catalog"
	"loan-recommendation-engine/internal/services/database"
	"loan-recommendation-engine/internal/utils"
)

func main() {
	seed := flag.Bool("seed", true, "upsert the default loan catalog after migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		panic("Failed to initialise logger: " + err.Error())
	}
	defer utils.Sync()

	db, err := database.New(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := db.Migrate(ctx); err != nil {
		utils.Logger.Fatal("Failed to create schema", zap.Error(err))
	}
	utils.Logger.Info("Schema ready")

	if !*seed {
		return
	}

	result, err := db.Products().BulkUpsert(ctx, catalog.DefaultProducts())
	if err != nil {
		utils.Logger.Fatal("Failed to seed catalog", zap.Error(err))
	}
	utils.Logger.Info("Seeded default catalog",
		zap.Int("upserted", result.UpsertedCount),
		zap.Int("failed", result.FailedCount),
	)
}
