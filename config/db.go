package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/levelup/levelup-api/models"
	"github.com/levelup/levelup-api/utils/logger"
)

var DB *gorm.DB

// SetupDatabase connects to Postgres and runs migrations.
func SetupDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	DB = db
	logger.Info("Database connected and migrated")
	return db, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Gamer{},
		&models.GameType{},
		&models.Game{},
		&models.Event{},
	)
}
