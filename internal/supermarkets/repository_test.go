package supermarket

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lucasferreyra/supertrack-backend/pkg/db/models"
	"github.com/lucasferreyra/supertrack-backend/pkg/types"
)

func setupSupermarketTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS supermarkets (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  opens_at TEXT NOT NULL,
  closes_at TEXT NOT NULL,
  open_days TEXT NOT NULL DEFAULT '{}',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func mustTime(t *testing.T, value string) types.TimeOfDay {
	t.Helper()
	parsed, err := types.ParseTimeOfDay(value)
	require.NoError(t, err)
	return parsed
}

func TestCreateRoundTripsSchedule(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupSupermarketTestDB(t))

	created, err := repo.Create(ctx, &models.Supermarket{
		Name:     "Centro",
		OpensAt:  mustTime(t, "08:30"),
		ClosesAt: mustTime(t, "21:00"),
		OpenDays: pq.StringArray{"MONDAY", "TUESDAY", "SATURDAY"},
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "08:30", found.OpensAt.String())
	require.Equal(t, "21:00", found.ClosesAt.String())
	require.Equal(t, []string{"MONDAY", "TUESDAY", "SATURDAY"}, []string(found.OpenDays))

	require.True(t, found.IsOpenAt(types.Monday, mustTime(t, "08:30")))
	require.True(t, found.IsOpenAt(types.Monday, mustTime(t, "21:00")))
	require.False(t, found.IsOpenAt(types.Monday, mustTime(t, "21:01")))
	require.False(t, found.IsOpenAt(types.Sunday, mustTime(t, "12:00")))
}

func TestFindByIDMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupSupermarketTestDB(t))

	_, err := repo.FindByID(ctx, uuid.New())
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestExistsAndListOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupSupermarketTestDB(t))

	var ids []uuid.UUID
	for _, name := range []string{"Centro", "Norte"} {
		created, err := repo.Create(ctx, &models.Supermarket{
			Name:     name,
			OpensAt:  mustTime(t, "09:00"),
			ClosesAt: mustTime(t, "18:00"),
			OpenDays: pq.StringArray{"MONDAY"},
		})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	ok, err := repo.Exists(ctx, ids[0])
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.Exists(ctx, uuid.New())
	require.NoError(t, err)
	require.False(t, ok)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Less(t, rows[0].ID.String(), rows[1].ID.String())
}
