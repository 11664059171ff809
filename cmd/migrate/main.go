package main

import (
	"log"

	"lexiquiz/internal/config"
	"lexiquiz/internal/database"
	"lexiquiz/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := database.RunMigrations("database/migrations", cfg.Database.DSN); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	logger.Get().Info("Migrations completed successfully")
}
