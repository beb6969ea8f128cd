package chain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lucasferreyra/supertrack-backend/pkg/db/models"
	"github.com/lucasferreyra/supertrack-backend/pkg/types"
)

// TopProductDTO is one entry of the chain-wide best-seller ranking.
type TopProductDTO struct {
	ProductID    uuid.UUID `json:"product_id"`
	Name         string    `json:"name"`
	QuantitySold int64     `json:"quantity_sold"`
}

// TotalRevenueDTO carries the chain-wide revenue sum.
type TotalRevenueDTO struct {
	Revenue decimal.Decimal `json:"revenue"`
}

// TopStoreDTO identifies the highest-grossing supermarket.
type TopStoreDTO struct {
	SupermarketID uuid.UUID       `json:"supermarket_id"`
	Name          string          `json:"name"`
	Revenue       decimal.Decimal `json:"revenue"`
}

// OpenStoreDTO describes a supermarket open at the queried moment.
type OpenStoreDTO struct {
	SupermarketID uuid.UUID       `json:"supermarket_id"`
	Name          string          `json:"name"`
	OpensAt       types.TimeOfDay `json:"opens_at"`
	ClosesAt      types.TimeOfDay `json:"closes_at"`
}

// NewOpenStoreDTO builds the response entry from the persisted model.
func NewOpenStoreDTO(market models.Supermarket) OpenStoreDTO {
	return OpenStoreDTO{
		SupermarketID: market.ID,
		Name:          market.Name,
		OpensAt:       market.OpensAt,
		ClosesAt:      market.ClosesAt,
	}
}
