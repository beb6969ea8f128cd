package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lucasferreyra/supertrack-backend/pkg/db/models"
)

func TestFindStockLineMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupInventoryTestDB(t))

	_, err := repo.FindStockLine(ctx, uuid.New(), uuid.New())
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestStockLineExists(t *testing.T) {
	ctx := context.Background()
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)

	market := seedSupermarket(t, db, "Centro")
	pan := seedProduct(t, db, "Pan", "2.75")
	leche := seedProduct(t, db, "Leche", "1.50")
	seedStock(t, db, market.ID, pan.ID, 10)

	stocked, err := repo.StockLineExists(ctx, market.ID, pan.ID)
	require.NoError(t, err)
	require.True(t, stocked)

	stocked, err = repo.StockLineExists(ctx, market.ID, leche.ID)
	require.NoError(t, err)
	require.False(t, stocked)
}

func TestDecrementStockGuard(t *testing.T) {
	ctx := context.Background()
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)

	market := seedSupermarket(t, db, "Centro")
	product := seedProduct(t, db, "Pan", "2.75")
	seedStock(t, db, market.ID, product.ID, 10)

	ok, err := repo.DecrementStock(ctx, market.ID, product.ID, 4)
	require.NoError(t, err)
	require.True(t, ok)

	line, err := repo.FindStockLine(ctx, market.ID, product.ID)
	require.NoError(t, err)
	require.Equal(t, 6, line.Quantity)

	// More than remains: the guard must refuse and leave the line alone.
	ok, err = repo.DecrementStock(ctx, market.ID, product.ID, 7)
	require.NoError(t, err)
	require.False(t, ok)

	line, err = repo.FindStockLine(ctx, market.ID, product.ID)
	require.NoError(t, err)
	require.Equal(t, 6, line.Quantity)

	// Draining to exactly zero is allowed.
	ok, err = repo.DecrementStock(ctx, market.ID, product.ID, 6)
	require.NoError(t, err)
	require.True(t, ok)

	line, err = repo.FindStockLine(ctx, market.ID, product.ID)
	require.NoError(t, err)
	require.Equal(t, 0, line.Quantity)
}

func TestSumsAreZeroWithoutSales(t *testing.T) {
	ctx := context.Background()
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)

	market := seedSupermarket(t, db, "Centro")
	product := seedProduct(t, db, "Pan", "2.75")

	qty, err := repo.SumQuantitySold(ctx, market.ID, product.ID)
	require.NoError(t, err)
	require.Zero(t, qty)

	revenue, err := repo.SumRevenueForProduct(ctx, market.ID, product.ID)
	require.NoError(t, err)
	require.True(t, revenue.IsZero())

	revenue, err = repo.SumRevenueForStore(ctx, market.ID)
	require.NoError(t, err)
	require.True(t, revenue.IsZero())
}

func TestSumsAggregatePerScope(t *testing.T) {
	ctx := context.Background()
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)

	centro := seedSupermarket(t, db, "Centro")
	norte := seedSupermarket(t, db, "Norte")
	pan := seedProduct(t, db, "Pan", "2.75")
	leche := seedProduct(t, db, "Leche", "1.50")

	sales := []*models.Sale{
		{SupermarketID: centro.ID, ProductID: pan.ID, Quantity: 50, UnitPrice: pan.Price},
		{SupermarketID: centro.ID, ProductID: pan.ID, Quantity: 10, UnitPrice: pan.Price},
		{SupermarketID: centro.ID, ProductID: leche.ID, Quantity: 100, UnitPrice: leche.Price},
		{SupermarketID: norte.ID, ProductID: pan.ID, Quantity: 7, UnitPrice: pan.Price},
	}
	for _, sale := range sales {
		_, err := repo.CreateSale(ctx, sale)
		require.NoError(t, err)
	}

	qty, err := repo.SumQuantitySold(ctx, centro.ID, pan.ID)
	require.NoError(t, err)
	require.EqualValues(t, 60, qty)

	revenue, err := repo.SumRevenueForProduct(ctx, centro.ID, pan.ID)
	require.NoError(t, err)
	require.True(t, revenue.Equal(decimal.RequireFromString("165")), "got %s", revenue)

	// 60 * 2.75 + 100 * 1.50, Norte's sales excluded.
	revenue, err = repo.SumRevenueForStore(ctx, centro.ID)
	require.NoError(t, err)
	require.True(t, revenue.Equal(decimal.RequireFromString("315")), "got %s", revenue)
}

func TestCreateSaleGeneratesID(t *testing.T) {
	ctx := context.Background()
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)

	market := seedSupermarket(t, db, "Centro")
	product := seedProduct(t, db, "Pan", "2.75")

	created, err := repo.CreateSale(ctx, &models.Sale{
		SupermarketID: market.ID,
		ProductID:     product.ID,
		Quantity:      3,
		UnitPrice:     product.Price,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.True(t, created.Total().Equal(decimal.RequireFromString("8.25")))
}
