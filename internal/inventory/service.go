package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasferreyra/supertrack-backend/pkg/db"
	"github.com/lucasferreyra/supertrack-backend/pkg/db/models"
	pkgerrors "github.com/lucasferreyra/supertrack-backend/pkg/errors"
	"github.com/lucasferreyra/supertrack-backend/pkg/logger"
)

// Service exposes per-store sale registration and sales questions.
type Service interface {
	RegisterSale(ctx context.Context, supermarketID, productID uuid.UUID, quantity int) (*SaleDTO, error)
	QuantitySold(ctx context.Context, supermarketID, productID uuid.UUID) (*QuantitySoldDTO, error)
	RevenueForProduct(ctx context.Context, supermarketID, productID uuid.UUID) (*RevenueDTO, error)
	RevenueForStore(ctx context.Context, supermarketID uuid.UUID) (*RevenueDTO, error)
}

type supermarketChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type productCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type aggregateCache interface {
	Del(ctx context.Context, keys ...string) error
	ChainKey(parts ...string) string
}

type service struct {
	repo     *Repository
	dbClient *db.Client
	markets  supermarketChecker
	products productCatalog
	cache    aggregateCache
	logg     *logger.Logger
}

// NewService constructs the inventory service. The cache client may wrap
// a nil connection; aggregate invalidation then becomes a no-op.
func NewService(repo *Repository, dbClient *db.Client, markets supermarketChecker, products productCatalog, cacheClient aggregateCache, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if markets == nil {
		return nil, fmt.Errorf("supermarket repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{
		repo:     repo,
		dbClient: dbClient,
		markets:  markets,
		products: products,
		cache:    cacheClient,
		logg:     logg,
	}, nil
}

// RegisterSale validates the supermarket, product and stock line in that
// order, then atomically decrements stock and inserts the sale with the
// product's current price frozen in.
func (s *service) RegisterSale(ctx context.Context, supermarketID, productID uuid.UUID, quantity int) (*SaleDTO, error) {
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	if err := s.ensureSupermarket(ctx, supermarketID); err != nil {
		return nil, err
	}
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	var sale *models.Sale
	err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		line, err := txRepo.FindStockLine(ctx, supermarketID, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeProductNotStocked, "product is not stocked at this supermarket").
					WithDetails(map[string]any{
						"supermarket_id": supermarketID,
						"product_id":     productID,
					})
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load stock line")
		}
		if line.Quantity < quantity {
			return insufficientStock(line.Quantity, quantity)
		}

		decremented, err := txRepo.DecrementStock(ctx, supermarketID, productID, quantity)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: decrement stock")
		}
		if !decremented {
			// A concurrent sale drained the line between the read and
			// the guarded update.
			return insufficientStock(line.Quantity, quantity)
		}

		created, err := txRepo.CreateSale(ctx, &models.Sale{
			SupermarketID: supermarketID,
			ProductID:     productID,
			Quantity:      quantity,
			UnitPrice:     product.Price,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert sale")
		}
		sale = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateChainAggregates(ctx)
	return NewSaleDTO(sale), nil
}

// QuantitySold sums the units of one product sold at one supermarket.
// Zero when the stocked pair has no sales.
func (s *service) QuantitySold(ctx context.Context, supermarketID, productID uuid.UUID) (*QuantitySoldDTO, error) {
	if err := s.ensureSupermarket(ctx, supermarketID); err != nil {
		return nil, err
	}
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}
	if err := s.ensureStocked(ctx, supermarketID, productID); err != nil {
		return nil, err
	}

	total, err := s.repo.SumQuantitySold(ctx, supermarketID, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: sum quantity sold")
	}
	return &QuantitySoldDTO{
		SupermarketID: supermarketID,
		ProductID:     productID,
		Quantity:      total,
	}, nil
}

// RevenueForProduct sums quantity times frozen unit price for one product
// at one supermarket. Zero when the stocked pair has no sales.
func (s *service) RevenueForProduct(ctx context.Context, supermarketID, productID uuid.UUID) (*RevenueDTO, error) {
	if err := s.ensureSupermarket(ctx, supermarketID); err != nil {
		return nil, err
	}
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}
	if err := s.ensureStocked(ctx, supermarketID, productID); err != nil {
		return nil, err
	}

	revenue, err := s.repo.SumRevenueForProduct(ctx, supermarketID, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: sum product revenue")
	}
	return &RevenueDTO{
		SupermarketID: supermarketID,
		ProductID:     &productID,
		Revenue:       revenue,
	}, nil
}

// RevenueForStore sums revenue across every product of one supermarket.
func (s *service) RevenueForStore(ctx context.Context, supermarketID uuid.UUID) (*RevenueDTO, error) {
	if err := s.ensureSupermarket(ctx, supermarketID); err != nil {
		return nil, err
	}

	revenue, err := s.repo.SumRevenueForStore(ctx, supermarketID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: sum store revenue")
	}
	return &RevenueDTO{
		SupermarketID: supermarketID,
		Revenue:       revenue,
	}, nil
}

func (s *service) ensureSupermarket(ctx context.Context, id uuid.UUID) error {
	exists, err := s.markets.Exists(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check supermarket")
	}
	if !exists {
		return pkgerrors.New(pkgerrors.CodeNotFound, "supermarket not found")
	}
	return nil
}

func (s *service) ensureProduct(ctx context.Context, id uuid.UUID) error {
	exists, err := s.products.Exists(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check product")
	}
	if !exists {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return nil
}

// ensureStocked guards the per-pair reads: asking about a product the
// supermarket never stocked answers PRODUCT_NOT_STOCKED, not zero.
func (s *service) ensureStocked(ctx context.Context, supermarketID, productID uuid.UUID) error {
	stocked, err := s.repo.StockLineExists(ctx, supermarketID, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check stock line")
	}
	if !stocked {
		return pkgerrors.New(pkgerrors.CodeProductNotStocked, "product is not stocked at this supermarket").
			WithDetails(map[string]any{
				"supermarket_id": supermarketID,
				"product_id":     productID,
			})
	}
	return nil
}

func (s *service) findProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	return product, nil
}

func insufficientStock(available, requested int) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeInsufficientStock, "insufficient stock for requested quantity").
		WithDetails(map[string]any{
			"available": available,
			"requested": requested,
		})
}

// invalidateChainAggregates drops memoized chain-wide answers after a
// sale commits. Best effort; a stale entry ages out via TTL anyway.
func (s *service) invalidateChainAggregates(ctx context.Context) {
	if s.cache == nil {
		return
	}
	keys := []string{
		s.cache.ChainKey("top-products"),
		s.cache.ChainKey("revenue"),
		s.cache.ChainKey("top-store"),
	}
	if err := s.cache.Del(ctx, keys...); err != nil && s.logg != nil {
		s.logg.Error(ctx, "failed to invalidate chain aggregate cache", err)
	}
}
