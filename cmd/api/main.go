package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lucasferreyra/supertrack-backend/api/routes"
	"github.com/lucasferreyra/supertrack-backend/internal/chain"
	"github.com/lucasferreyra/supertrack-backend/internal/inventory"
	product "github.com/lucasferreyra/supertrack-backend/internal/products"
	supermarket "github.com/lucasferreyra/supertrack-backend/internal/supermarkets"
	"github.com/lucasferreyra/supertrack-backend/pkg/cache"
	"github.com/lucasferreyra/supertrack-backend/pkg/config"
	"github.com/lucasferreyra/supertrack-backend/pkg/db"
	"github.com/lucasferreyra/supertrack-backend/pkg/logger"
	"github.com/lucasferreyra/supertrack-backend/pkg/metrics"
	"github.com/lucasferreyra/supertrack-backend/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var cacheClient *cache.Client
	var cachePinger cache.Pinger
	if cfg.Redis.Enabled() {
		cacheClient, err = cache.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := cacheClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		cachePinger = cacheClient
	} else {
		logg.Info(context.Background(), "redis not configured, chain aggregate cache disabled")
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	conn := dbClient.DB()
	productRepo := product.NewRepository(conn)
	supermarketRepo := supermarket.NewRepository(conn)

	inventoryService, err := inventory.NewService(
		inventory.NewRepository(conn),
		dbClient,
		supermarketRepo,
		productRepo,
		cacheClient,
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create inventory service", err)
		os.Exit(1)
	}

	chainService, err := chain.NewService(
		chain.NewRepository(conn),
		supermarketRepo,
		cacheClient,
		cfg.Cache.ChainAggregateTTL,
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create chain service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			cachePinger,
			httpMetrics,
			registry,
			inventoryService,
			chainService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
