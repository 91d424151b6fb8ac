package main

import (
	"context"
	"log"

	schema "survey-console/database"
	"survey-console/internal/config"
	"survey-console/internal/database"
	"survey-console/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	files, err := schema.Migrations(cfg.DB.Driver)
	if err != nil {
		l.Fatal("Failed to load migrations", zap.String("driver", cfg.DB.Driver), zap.Error(err))
	}

	if err := database.RunMigrations(ctx, db, cfg.DB.Driver, files); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations applied", zap.String("driver", cfg.DB.Driver))
}
