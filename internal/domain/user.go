package domain

import "time"

// User Model
type User struct {
	ID           uint      `gorm:"primaryKey"`      // Primary key
	Username     string    `gorm:"unique;not null"` // Unique username
	PasswordHash string    `gorm:"not null"`        // Bcrypt hash, never the plaintext
	Email        string    `gorm:"unique;not null"` // Unique email address
	CreatedAt    time.Time `gorm:"autoCreateTime"`  // Set once at registration (UTC)
}
