package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort     string // Application port
	DBDriver    string // Database driver: postgres or sqlite
	DBUser      string // Database user
	DBPassword  string // Database password
	DBHost      string // Database host
	DBPort      string // Database port
	DBName      string // Database name
	SQLitePath  string // Database file path for the sqlite driver
	JWTSecret   string // JWT secret key
	JWTTTLHours int    // Token lifetime in hours
	IsProd      bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	ttl, err := strconv.Atoi(os.Getenv("JWT_TTL_HOURS"))
	if err != nil || ttl <= 0 {
		ttl = 24 // Default token lifetime
	}
	return &Config{
		AppPort:     os.Getenv("APP_PORT"),          // Application port
		DBDriver:    os.Getenv("DB_DRIVER"),         // Database driver
		DBUser:      os.Getenv("DB_USER"),           // Database user
		DBPassword:  os.Getenv("DB_PASSWORD"),       // Database password
		DBHost:      os.Getenv("DB_HOST"),           // Database host
		DBPort:      os.Getenv("DB_PORT"),           // Database port
		DBName:      os.Getenv("DB_NAME"),           // Database name
		SQLitePath:  os.Getenv("SQLITE_PATH"),       // Database file path
		JWTSecret:   os.Getenv("JWT_SECRET"),        // JWT secret key
		JWTTTLHours: ttl,                            // Token lifetime
		IsProd:      os.Getenv("IS_PROD") == "true", // Is production environment
	}
}
