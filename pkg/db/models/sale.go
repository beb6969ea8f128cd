package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is the immutable record of one completed transaction. UnitPrice is
// copied from the product at registration time so historical revenue is
// unaffected by later price changes.
type Sale struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SupermarketID uuid.UUID       `gorm:"column:supermarket_id;type:uuid;not null;index"`
	ProductID     uuid.UUID       `gorm:"column:product_id;type:uuid;not null;index"`
	Quantity      int             `gorm:"column:quantity;not null"`
	UnitPrice     decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
	SoldAt        time.Time       `gorm:"column:sold_at;autoCreateTime"`
}

// Total is the revenue contributed by this sale.
func (s Sale) Total() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
