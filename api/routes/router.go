package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lucasferreyra/supertrack-backend/api/controllers"
	"github.com/lucasferreyra/supertrack-backend/api/middleware"
	"github.com/lucasferreyra/supertrack-backend/internal/chain"
	"github.com/lucasferreyra/supertrack-backend/internal/inventory"
	"github.com/lucasferreyra/supertrack-backend/pkg/cache"
	"github.com/lucasferreyra/supertrack-backend/pkg/config"
	"github.com/lucasferreyra/supertrack-backend/pkg/db"
	"github.com/lucasferreyra/supertrack-backend/pkg/logger"
	"github.com/lucasferreyra/supertrack-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	cacheP cache.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	inventoryService inventory.Service,
	chainService chain.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, cacheP))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/supermarkets/{supermarketId}", func(r chi.Router) {
			r.Post("/sales", controllers.RegisterSale(inventoryService, httpMetrics, logg))
			r.Get("/revenue", controllers.StoreRevenue(inventoryService, logg))
			r.Route("/products/{productId}", func(r chi.Router) {
				r.Get("/quantity-sold", controllers.QuantitySold(inventoryService, logg))
				r.Get("/revenue", controllers.ProductRevenue(inventoryService, logg))
			})
		})

		r.Route("/chain", func(r chi.Router) {
			r.Get("/top-products", controllers.ChainTopProducts(chainService, logg))
			r.Get("/revenue", controllers.ChainRevenue(chainService, logg))
			r.Get("/top-store", controllers.ChainTopStore(chainService, logg))
			r.Get("/open", controllers.ChainStoresOpen(chainService, logg))
		})
	})

	return r
}
