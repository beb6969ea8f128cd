package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lucasferreyra/supertrack-backend/pkg/db/models"
)

// SaleDTO is the payload returned after a sale is registered.
type SaleDTO struct {
	SaleID        uuid.UUID       `json:"sale_id"`
	SupermarketID uuid.UUID       `json:"supermarket_id"`
	ProductID     uuid.UUID       `json:"product_id"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Total         decimal.Decimal `json:"total"`
	SoldAt        time.Time       `json:"sold_at"`
}

// NewSaleDTO builds the response payload from the persisted sale.
func NewSaleDTO(sale *models.Sale) *SaleDTO {
	return &SaleDTO{
		SaleID:        sale.ID,
		SupermarketID: sale.SupermarketID,
		ProductID:     sale.ProductID,
		Quantity:      sale.Quantity,
		UnitPrice:     sale.UnitPrice,
		Total:         sale.Total(),
		SoldAt:        sale.SoldAt,
	}
}

// QuantitySoldDTO reports total units sold for a product at a supermarket.
type QuantitySoldDTO struct {
	SupermarketID uuid.UUID `json:"supermarket_id"`
	ProductID     uuid.UUID `json:"product_id"`
	Quantity      int64     `json:"quantity"`
}

// RevenueDTO reports summed revenue for a store, optionally narrowed to
// one product.
type RevenueDTO struct {
	SupermarketID uuid.UUID       `json:"supermarket_id"`
	ProductID     *uuid.UUID      `json:"product_id,omitempty"`
	Revenue       decimal.Decimal `json:"revenue"`
}
