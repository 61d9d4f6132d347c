package database

import (
	"fmt"
	"log"

	"github.com/avinashrk/billpoint-api/internal/config"
	"github.com/avinashrk/billpoint-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.ShopProfile{},

		// Catalog entities
		&entity.Product{},
		&entity.ProductVariant{},

		// Billing entities
		&entity.Bill{},
		&entity.BillItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the shop profile row the invoice header reads from.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var count int64
	if err := db.Model(&entity.ShopProfile{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check shop profile: %w", err)
	}
	if count == 0 {
		profile := entity.ShopProfile{
			Name:         "My Shop Name",
			AddressLine1: "Address Line 1, City, State",
			Phone:        "+91 12345 67890",
			Email:        "shop@example.com",
		}
		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to seed shop profile: %w", err)
		}
		log.Println("Seeded default shop profile")
	}

	log.Println("Seeding completed")
	return nil
}
