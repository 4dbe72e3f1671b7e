package api

import (
	"net/http"                     // HTTP status codes
	"stock_portal/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// StockResponse is one entry of the stock listing
type StockResponse struct {
	StockID   uint     `json:"stock_id"`  // Store-assigned id
	Symbol    string   `json:"symbol"`    // Ticker symbol
	Price     float64  `json:"price"`     // Last known price
	PERatio   *float64 `json:"pe_ratio"`  // Price/earnings ratio, null when absent
	Sentiment string   `json:"sentiment"` // Sentiment label
}

// Fixed reference set inserted by PopulateStocksHandler
var sampleStocks = []domain.Stock{
	{Symbol: "AAPL", Price: 150.00, PERatio: ptr(30.0), Sentiment: "Positive"},
	{Symbol: "GOOGL", Price: 2800.50, PERatio: ptr(35.0), Sentiment: "Neutral"},
	{Symbol: "AMZN", Price: 3400.25, PERatio: ptr(60.0), Sentiment: "Negative"},
}

// ptr returns a pointer to v for optional numeric columns
func ptr(v float64) *float64 { return &v }

// ListStocksHandler returns every stock record in primary-key order
func ListStocksHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stocks []domain.Stock // Fetch all stocks from database
		if err := db.Order("id").Find(&stocks).Error; err != nil {
			// If the query fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stocks"})
			return
		}
		// Empty store yields an empty list, not an error
		out := make([]StockResponse, 0, len(stocks))
		for _, s := range stocks {
			out = append(out, StockResponse{
				StockID:   s.ID,        // Store-assigned id
				Symbol:    s.Symbol,    // Ticker symbol
				Price:     s.Price,     // Last known price
				PERatio:   s.PERatio,   // Optional ratio
				Sentiment: s.Sentiment, // Sentiment label
			})
		}
		// Return the listing
		c.JSON(http.StatusOK, gin.H{"stocks": out})
	}
}

// PopulateStocksHandler seeds the fixed reference set, skipping symbols already present
func PopulateStocksHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Seed atomically so a mid-seed failure cannot leave a partial set
		err := db.Transaction(func(tx *gorm.DB) error {
			for _, sample := range sampleStocks {
				var existing domain.Stock
				// A symbol already present is skipped, never overwritten
				if err := tx.Where("symbol = ?", sample.Symbol).First(&existing).Error; err == nil {
					continue
				}
				stock := sample // Fresh copy so the template keeps a zero id
				if err := tx.Create(&stock).Error; err != nil {
					return err // Return error to rollback
				}
			}
			return nil // Commit transaction
		})
		// Handle transaction result
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"error": err.Error(), // Error message
			}).Error("Stock seeding failed")
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to populate stocks"})
			return
		}
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"msg": "Stocks populated successfully"})
	}
}
