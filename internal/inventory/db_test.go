package inventory

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lucasferreyra/supertrack-backend/pkg/db/models"
	"github.com/lucasferreyra/supertrack-backend/pkg/types"
)

// Each test gets its own named in-memory database so chain-wide sums in
// one test never see another test's rows.
func setupInventoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  price TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS supermarkets (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  opens_at TEXT NOT NULL,
  closes_at TEXT NOT NULL,
  open_days TEXT NOT NULL DEFAULT '{}',
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS stock_lines (
  id TEXT PRIMARY KEY,
  supermarket_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 0,
  updated_at DATETIME,
  UNIQUE (supermarket_id, product_id)
);`,
		`CREATE TABLE IF NOT EXISTS sales (
  id TEXT PRIMARY KEY,
  supermarket_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  unit_price TEXT NOT NULL,
  sold_at DATETIME
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedSupermarket(t *testing.T, db *gorm.DB, name string) *models.Supermarket {
	t.Helper()
	market := &models.Supermarket{
		ID:       uuid.New(),
		Name:     name,
		OpensAt:  types.TimeOfDay{Hour: 9},
		ClosesAt: types.TimeOfDay{Hour: 21},
		OpenDays: pq.StringArray{"MONDAY", "TUESDAY", "WEDNESDAY"},
	}
	require.NoError(t, db.Create(market).Error)
	return market
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:    uuid.New(),
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedStock(t *testing.T, db *gorm.DB, supermarketID, productID uuid.UUID, quantity int) *models.StockLine {
	t.Helper()
	line := &models.StockLine{
		ID:            uuid.New(),
		SupermarketID: supermarketID,
		ProductID:     productID,
		Quantity:      quantity,
	}
	require.NoError(t, db.Create(line).Error)
	return line
}
