package main

import (
	"github.com/levelup/levelup-api/config"
	"github.com/levelup/levelup-api/utils/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Config error: %v", err)
	}

	if _, err := config.SetupDatabase(cfg.DatabaseURL); err != nil {
		logger.Fatalf("Migration failed: %v", err)
	}
	logger.Info("Database migration completed successfully")
}
