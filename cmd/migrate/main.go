package main

import (
	"stock_portal/internal/config" // Custom import path (Config)
	"stock_portal/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg)            // Create the schema for the configured store
}
