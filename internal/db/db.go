package db

import (
	"stock_portal/internal/config" // Application configuration
	"stock_portal/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library

	"gorm.io/driver/postgres" // PostgreSQL driver for GORM
	"gorm.io/driver/sqlite"   // SQLite driver for GORM
	"gorm.io/gorm"            // GORM ORM library
)

// Open connects to the store selected by the configuration
func Open(cfg *config.Config) (*gorm.DB, error) {
	// SQLite keeps the whole store in a single file, matching the reference deployment
	if cfg.DBDriver == "sqlite" {
		path := cfg.SQLitePath // Database file path
		if path == "" {
			path = "stock_portal.db" // Default database file
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	// PostgreSQL Data Source Name (DSN) built from configuration
	dsn := "host=" + cfg.DBHost + " user=" + cfg.DBUser + " password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName + " port=" + cfg.DBPort + " sslmode=disable"
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate performs automatic migration for the database schema
func Migrate(cfg *config.Config) {
	db, err := Open(cfg) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing constraints, columns and indexes
	if err := CreateTables(db); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}

// CreateTables creates the users and stocks tables if they do not exist
func CreateTables(db *gorm.DB) error {
	return db.AutoMigrate(&domain.User{}, &domain.Stock{})
}
