package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lucasferreyra/supertrack-backend/pkg/db/models"
)

// Repository exposes persistence for stock lines and sale rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindStockLine loads the stock line for the supermarket/product pair.
func (r *Repository) FindStockLine(ctx context.Context, supermarketID, productID uuid.UUID) (*models.StockLine, error) {
	var line models.StockLine
	err := r.db.WithContext(ctx).
		First(&line, "supermarket_id = ? AND product_id = ?", supermarketID, productID).
		Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// StockLineExists reports whether the supermarket stocks the product at all.
func (r *Repository) StockLineExists(ctx context.Context, supermarketID, productID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.StockLine{}).
		Where("supermarket_id = ? AND product_id = ?", supermarketID, productID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpsertStockLine inserts or replaces the stock line for the pair. Used by
// the seeder and tests; sale registration only ever decrements.
func (r *Repository) UpsertStockLine(ctx context.Context, line *models.StockLine) (*models.StockLine, error) {
	if line.ID == uuid.Nil {
		line.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(line).Error; err != nil {
		return nil, err
	}
	return line, nil
}

// DecrementStock subtracts quantity from the pair's stock line with a
// guard on the current quantity. The guarded UPDATE is what keeps two
// concurrent registrations from overselling: whichever transaction loses
// the race sees zero rows affected and reports insufficient stock.
func (r *Repository) DecrementStock(ctx context.Context, supermarketID, productID uuid.UUID, quantity int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.StockLine{}).
		Where("supermarket_id = ? AND product_id = ? AND quantity >= ?", supermarketID, productID, quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CreateSale inserts an immutable sale row, generating the id when absent.
func (r *Repository) CreateSale(ctx context.Context, sale *models.Sale) (*models.Sale, error) {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(sale).Error; err != nil {
		return nil, err
	}
	return sale, nil
}

// SumQuantitySold totals the units of one product sold by one supermarket.
func (r *Repository) SumQuantitySold(ctx context.Context, supermarketID, productID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(SUM(quantity), 0)
FROM sales
WHERE supermarket_id = ? AND product_id = ?`, supermarketID, productID).
		Scan(&total).
		Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// SumRevenueForProduct totals quantity times frozen unit price for one
// product at one supermarket.
func (r *Repository) SumRevenueForProduct(ctx context.Context, supermarketID, productID uuid.UUID) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(SUM(quantity * unit_price), 0)
FROM sales
WHERE supermarket_id = ? AND product_id = ?`, supermarketID, productID).
		Scan(&revenue).
		Error
	if err != nil {
		return decimal.Zero, err
	}
	return revenue, nil
}

// SumRevenueForStore totals revenue across every product of one supermarket.
func (r *Repository) SumRevenueForStore(ctx context.Context, supermarketID uuid.UUID) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(SUM(quantity * unit_price), 0)
FROM sales
WHERE supermarket_id = ?`, supermarketID).
		Scan(&revenue).
		Error
	if err != nil {
		return decimal.Zero, err
	}
	return revenue, nil
}
