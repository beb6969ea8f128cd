package supermarket

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasferreyra/supertrack-backend/pkg/db/models"
)

// Repository exposes catalog persistence for supermarkets.
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

// FindByID loads the supermarket row.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Supermarket, error) {
	var market models.Supermarket
	if err := r.db.WithContext(ctx).First(&market, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &market, nil
}

// Exists reports whether a supermarket with the given id is registered.
func (r *Repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Supermarket{}).
		Where("id = ?", id).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new supermarket row, generating the id when absent.
func (r *Repository) Create(ctx context.Context, market *models.Supermarket) (*models.Supermarket, error) {
	if market.ID == uuid.Nil {
		market.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(market).Error; err != nil {
		return nil, err
	}
	return market, nil
}

// List returns every supermarket in the chain ordered by id.
func (r *Repository) List(ctx context.Context) ([]models.Supermarket, error) {
	var rows []models.Supermarket
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
