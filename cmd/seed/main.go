package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lucasferreyra/supertrack-backend/internal/inventory"
	product "github.com/lucasferreyra/supertrack-backend/internal/products"
	supermarket "github.com/lucasferreyra/supertrack-backend/internal/supermarkets"
	"github.com/lucasferreyra/supertrack-backend/pkg/config"
	"github.com/lucasferreyra/supertrack-backend/pkg/db"
	"github.com/lucasferreyra/supertrack-backend/pkg/db/models"
	"github.com/lucasferreyra/supertrack-backend/pkg/logger"
	"github.com/lucasferreyra/supertrack-backend/pkg/types"
)

type productSeed struct {
	name  string
	price string
}

type supermarketSeed struct {
	name     string
	opensAt  string
	closesAt string
	openDays []string
	stock    map[string]int
}

var productSeeds = []productSeed{
	{name: "Pan", price: "2.75"},
	{name: "Leche", price: "1.50"},
	{name: "Cereal", price: "4.25"},
	{name: "Cafe", price: "6.25"},
	{name: "Arroz", price: "3.00"},
}

var supermarketSeeds = []supermarketSeed{
	{
		name:     "Supertrack Centro",
		opensAt:  "08:30",
		closesAt: "21:30",
		openDays: []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY"},
		stock:    map[string]int{"Pan": 200, "Leche": 150, "Cereal": 80, "Cafe": 60, "Arroz": 120},
	},
	{
		name:     "Supertrack Norte",
		opensAt:  "09:00",
		closesAt: "18:00",
		openDays: []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY"},
		stock:    map[string]int{"Pan": 100, "Leche": 90, "Cafe": 40},
	},
}

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	dbClient, err := db.New(ctx, cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if err := seed(ctx, dbClient); err != nil {
		logg.Error(ctx, "seeding failed", err)
		os.Exit(1)
	}
	logg.Info(ctx, "demo chain seeded")
}

// seed loads the demo catalog, both stores and their stock lines in one
// transaction so a partial run never leaves half a chain behind.
func seed(ctx context.Context, dbClient *db.Client) error {
	return dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		productRepo := product.NewRepository(tx)
		supermarketRepo := supermarket.NewRepository(tx)
		inventoryRepo := inventory.NewRepository(tx)

		productsByName := make(map[string]*models.Product, len(productSeeds))
		for _, seed := range productSeeds {
			created, err := productRepo.Create(ctx, &models.Product{
				Name:  seed.name,
				Price: decimal.RequireFromString(seed.price),
			})
			if err != nil {
				return err
			}
			productsByName[seed.name] = created
		}

		for _, seed := range supermarketSeeds {
			opens, err := types.ParseTimeOfDay(seed.opensAt)
			if err != nil {
				return err
			}
			closes, err := types.ParseTimeOfDay(seed.closesAt)
			if err != nil {
				return err
			}

			market, err := supermarketRepo.Create(ctx, &models.Supermarket{
				Name:     seed.name,
				OpensAt:  opens,
				ClosesAt: closes,
				OpenDays: pq.StringArray(seed.openDays),
			})
			if err != nil {
				return err
			}

			for productName, quantity := range seed.stock {
				_, err := inventoryRepo.UpsertStockLine(ctx, &models.StockLine{
					SupermarketID: market.ID,
					ProductID:     productsByName[productName].ID,
					Quantity:      quantity,
				})
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}
