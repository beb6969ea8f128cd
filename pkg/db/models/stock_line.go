package models

import (
	"time"

	"github.com/google/uuid"
)

// StockLine tracks how many units of a product one supermarket holds.
// Unique per (supermarket, product); quantity never goes negative.
type StockLine struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SupermarketID uuid.UUID `gorm:"column:supermarket_id;type:uuid;not null;uniqueIndex:idx_stock_lines_supermarket_product"`
	ProductID     uuid.UUID `gorm:"column:product_id;type:uuid;not null;uniqueIndex:idx_stock_lines_supermarket_product"`
	Quantity      int       `gorm:"column:quantity;not null;default:0"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
