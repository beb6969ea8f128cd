package product

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lucasferreyra/supertrack-backend/pkg/db/models"
)

func setupProductTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  price TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func TestCreateAndFindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupProductTestDB(t))

	created, err := repo.Create(ctx, &models.Product{
		Name:  "Pan",
		Price: decimal.RequireFromString("2.75"),
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID, "id should be generated on create")

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Pan", found.Name)
	require.True(t, found.Price.Equal(decimal.RequireFromString("2.75")))
}

func TestFindByIDMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupProductTestDB(t))

	_, err := repo.FindByID(ctx, uuid.New())
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupProductTestDB(t))

	created, err := repo.Create(ctx, &models.Product{
		Name:  "Leche",
		Price: decimal.RequireFromString("1.50"),
	})
	require.NoError(t, err)

	ok, err := repo.Exists(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.Exists(ctx, uuid.New())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestListOrdersByID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupProductTestDB(t))

	for _, name := range []string{"Pan", "Leche", "Cafe"} {
		_, err := repo.Create(ctx, &models.Product{
			Name:  name,
			Price: decimal.RequireFromString("1.00"),
		})
		require.NoError(t, err)
	}

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i := 1; i < len(rows); i++ {
		require.Less(t, rows[i-1].ID.String(), rows[i].ID.String())
	}
}
