package utils

import (
	"fmt"

	"steptember/backend/config"
	"steptember/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the postgres connection and migrates the schema.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the Users and StepRecords tables, including the
// (user_id, date) unique index the report upsert relies on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.StepRecord{},
	)
}
