package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lucasferreyra/supertrack-backend/pkg/db/models"
	pkgerrors "github.com/lucasferreyra/supertrack-backend/pkg/errors"
	"github.com/lucasferreyra/supertrack-backend/pkg/logger"
	"github.com/lucasferreyra/supertrack-backend/pkg/types"
)

const topProductsLimit = 5

// Service answers questions about the chain as a whole.
type Service interface {
	TopProducts(ctx context.Context) ([]TopProductDTO, error)
	TotalRevenue(ctx context.Context) (*TotalRevenueDTO, error)
	TopRevenueStore(ctx context.Context) (*TopStoreDTO, error)
	StoresOpenAt(ctx context.Context, day types.Weekday, at types.TimeOfDay) ([]OpenStoreDTO, error)
}

type supermarketLister interface {
	List(ctx context.Context) ([]models.Supermarket, error)
}

type aggregateCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	ChainKey(parts ...string) string
}

type service struct {
	repo     *Repository
	markets  supermarketLister
	cache    aggregateCache
	cacheTTL time.Duration
	logg     *logger.Logger
}

// NewService constructs the chain service. The cache is optional; with a
// nil-connection client every lookup is a miss and the service answers
// straight from the database.
func NewService(repo *Repository, markets supermarketLister, cacheClient aggregateCache, cacheTTL time.Duration, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("chain repository required")
	}
	if markets == nil {
		return nil, fmt.Errorf("supermarket repository required")
	}
	return &service{
		repo:     repo,
		markets:  markets,
		cache:    cacheClient,
		cacheTTL: cacheTTL,
		logg:     logg,
	}, nil
}

// TopProducts ranks the chain's five best-selling products by units sold.
func (s *service) TopProducts(ctx context.Context) ([]TopProductDTO, error) {
	var cached []TopProductDTO
	key := s.cacheKey("top-products")
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	if err := s.ensureSalesExist(ctx); err != nil {
		return nil, err
	}

	rows, err := s.repo.TopProducts(ctx, topProductsLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: rank products")
	}

	result := make([]TopProductDTO, 0, len(rows))
	for _, row := range rows {
		result = append(result, TopProductDTO{
			ProductID:    row.ProductID,
			Name:         row.Name,
			QuantitySold: row.TotalQuantity,
		})
	}

	s.toCache(ctx, key, result)
	return result, nil
}

// TotalRevenue sums revenue across every sale in the chain. A chain whose
// only sales are zero-revenue still has sales, so that answers 0 rather
// than the no-sales error.
func (s *service) TotalRevenue(ctx context.Context) (*TotalRevenueDTO, error) {
	var cached TotalRevenueDTO
	key := s.cacheKey("revenue")
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	if err := s.ensureSalesExist(ctx); err != nil {
		return nil, err
	}

	revenue, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: sum chain revenue")
	}

	result := &TotalRevenueDTO{Revenue: revenue}
	s.toCache(ctx, key, result)
	return result, nil
}

// TopRevenueStore finds the highest-grossing supermarket.
func (s *service) TopRevenueStore(ctx context.Context) (*TopStoreDTO, error) {
	var cached TopStoreDTO
	key := s.cacheKey("top-store")
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	if err := s.ensureSalesExist(ctx); err != nil {
		return nil, err
	}

	row, err := s.repo.TopRevenueStore(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: rank stores")
	}
	if row == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNoSalesRecorded, "no sales recorded yet")
	}

	result := &TopStoreDTO{
		SupermarketID: row.SupermarketID,
		Name:          row.Name,
		Revenue:       row.Revenue,
	}
	s.toCache(ctx, key, result)
	return result, nil
}

// StoresOpenAt lists supermarkets trading on the given weekday at the
// given time, schedule bounds inclusive, ordered by id.
func (s *service) StoresOpenAt(ctx context.Context, day types.Weekday, at types.TimeOfDay) ([]OpenStoreDTO, error) {
	if !day.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid weekday")
	}

	var cached []OpenStoreDTO
	key := s.cacheKey("open", day.String(), at.String())
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	markets, err := s.markets.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list supermarkets")
	}

	result := make([]OpenStoreDTO, 0, len(markets))
	for _, market := range markets {
		if market.IsOpenAt(day, at) {
			result = append(result, NewOpenStoreDTO(market))
		}
	}
	if len(result) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no supermarkets open at the requested time")
	}

	s.toCache(ctx, key, result)
	return result, nil
}

func (s *service) ensureSalesExist(ctx context.Context) error {
	count, err := s.repo.CountSales(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count sales")
	}
	if count == 0 {
		return pkgerrors.New(pkgerrors.CodeNoSalesRecorded, "no sales recorded yet")
	}
	return nil
}

func (s *service) cacheKey(parts ...string) string {
	if s.cache == nil {
		return ""
	}
	return s.cache.ChainKey(parts...)
}

func (s *service) fromCache(ctx context.Context, key string, target any) bool {
	if s.cache == nil || key == "" {
		return false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), target) == nil
}

// toCache memoizes a computed aggregate. Best effort; a failed write only
// costs the next caller a database round trip.
func (s *service) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil || key == "" {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil && s.logg != nil {
		s.logg.Error(ctx, "failed to cache chain aggregate", err)
	}
}
