package api

import (
	"net/http"                     // HTTP status codes
	"stock_portal/internal/domain" // Importing domain models
	"time"                         // Timestamp formatting

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// UpdateProfileRequest carries the optional profile fields; absent fields stay untouched
type UpdateProfileRequest struct {
	Username *string `json:"username"` // New username, optional
	Email    *string `json:"email"`    // New email, optional
}

// GetProfileHandler returns the authenticated user's profile
func GetProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, userID).Error; err != nil {
			// Token subject no longer exists in the store
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		// Return profile fields; created_at is serialized as an ISO-8601 UTC timestamp
		c.JSON(http.StatusOK, gin.H{
			"user_id":    user.ID,                                  // User ID
			"username":   user.Username,                            // Username
			"email":      user.Email,                               // Email address
			"created_at": user.CreatedAt.UTC().Format(time.RFC3339), // Creation timestamp
		})
	}
}

// UpdateProfileHandler overwrites only the profile fields present in the request
func UpdateProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, userID).Error; err != nil {
			// Token subject no longer exists in the store
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		var req UpdateProfileRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If the body is not valid JSON, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		updates := map[string]any{} // Only fields present in the request
		// Apply a changed username after re-checking uniqueness
		if req.Username != nil && *req.Username != user.Username {
			var taken domain.User
			if err := db.Where("username = ? AND id <> ?", *req.Username, user.ID).First(&taken).Error; err == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
				return
			}
			updates["username"] = *req.Username
		}
		// Apply a changed email after re-checking uniqueness
		if req.Email != nil && *req.Email != user.Email {
			var taken domain.User
			if err := db.Where("email = ? AND id <> ?", *req.Email, user.ID).First(&taken).Error; err == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
				return
			}
			updates["email"] = *req.Email
		}
		// Persist the partial update in a single statement
		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				// Log the error with context
				logrus.WithFields(logrus.Fields{
					"user_id": user.ID,     // User ID
					"error":   err.Error(), // Error message
				}).Error("Profile update failed")
				// Unique constraint violation in the race window lands here
				c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
				return
			}
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"msg": "Profile updated successfully"})
	}
}
