package chain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductSalesRow is one aggregated line of the top-products ranking.
type ProductSalesRow struct {
	ProductID     uuid.UUID `gorm:"column:product_id"`
	Name          string    `gorm:"column:name"`
	TotalQuantity int64     `gorm:"column:total_quantity"`
}

// StoreRevenueRow is one supermarket's summed revenue.
type StoreRevenueRow struct {
	SupermarketID uuid.UUID       `gorm:"column:supermarket_id"`
	Name          string          `gorm:"column:name"`
	Revenue       decimal.Decimal `gorm:"column:revenue"`
}

// Repository answers chain-wide aggregate queries over the sales table.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CountSales reports how many sale rows exist chain-wide. Zero-revenue
// sales still count; the "no sales" answer keys off row existence.
func (r *Repository) CountSales(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM sales`).
		Scan(&count).
		Error
	return count, err
}

// TopProducts ranks products by total units sold across the whole chain.
// Ties break on ascending product id so the ranking is deterministic.
func (r *Repository) TopProducts(ctx context.Context, limit int) ([]ProductSalesRow, error) {
	var rows []ProductSalesRow
	err := r.db.WithContext(ctx).
		Raw(`SELECT s.product_id AS product_id,
       p.name AS name,
       SUM(s.quantity) AS total_quantity
FROM sales s
JOIN products p ON p.id = s.product_id
GROUP BY s.product_id, p.name
ORDER BY total_quantity DESC, s.product_id ASC
LIMIT ?`, limit).
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TotalRevenue sums quantity times frozen unit price over every sale.
func (r *Repository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(SUM(quantity * unit_price), 0) FROM sales`).
		Scan(&revenue).
		Error
	if err != nil {
		return decimal.Zero, err
	}
	return revenue, nil
}

// TopRevenueStore returns the supermarket with the highest summed revenue,
// ties broken by ascending supermarket id. Nil when there are no sales.
func (r *Repository) TopRevenueStore(ctx context.Context) (*StoreRevenueRow, error) {
	var rows []StoreRevenueRow
	err := r.db.WithContext(ctx).
		Raw(`SELECT s.supermarket_id AS supermarket_id,
       m.name AS name,
       SUM(s.quantity * s.unit_price) AS revenue
FROM sales s
JOIN supermarkets m ON m.id = s.supermarket_id
GROUP BY s.supermarket_id, m.name
ORDER BY revenue DESC, s.supermarket_id ASC
LIMIT 1`).
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
