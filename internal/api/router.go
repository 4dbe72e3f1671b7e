package api

import (
	"stock_portal/internal/config"     // Application configuration
	"stock_portal/internal/middleware" // JWT middleware
	"time"                             // Token lifetime

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// SetupRouter wires all routes; shared by the server binary and the tests
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default() // Gin router instance
	tokenTTL := time.Duration(cfg.JWTTTLHours) * time.Hour

	// Account routes
	r.POST("/api/register", RegisterHandler(db))                    // Registration endpoint
	r.POST("/api/login", LoginHandler(db, cfg.JWTSecret, tokenTTL)) // Login endpoint

	// Profile routes (protected by JWT)
	profileGroup := r.Group("/api/profile")
	profileGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret)) // Protect profile routes with JWT middleware
	profileGroup.GET("", GetProfileHandler(db))                   // Profile read endpoint
	profileGroup.PUT("", UpdateProfileHandler(db))                // Profile update endpoint

	// Stock catalog routes (unauthenticated)
	r.GET("/api/stocks", ListStocksHandler(db))               // Stock listing endpoint
	r.POST("/api/populate_stocks", PopulateStocksHandler(db)) // Idempotent seeding endpoint

	return r
}
