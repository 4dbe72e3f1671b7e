package domain

// Stock Model
type Stock struct {
	ID        uint     `gorm:"primaryKey"`      // Primary key
	Symbol    string   `gorm:"unique;not null"` // Unique ticker symbol
	Price     float64  `gorm:"not null"`        // Last known price
	PERatio   *float64 // Price/earnings ratio, optional
	Sentiment string   // Sentiment label, optional
}
