package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/daouest/factureme/services/catalog/domain/models"
)

//go:generate mockgen -source=catalog.go -destination=mock_catalog.go -package=repositories

// ProductRepository persists products. Every method is scoped to ownerID;
// GetByID, Update and Delete return ErrProductNotFound when no row matches.
type ProductRepository interface {
	Save(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Product, error)
	// ListByOwner returns the owner's products ordered by name.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Product, error)
	// FindByIDs returns the subset of ids that exist for the owner, in any order.
	FindByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*models.Product, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// RateRepository persists hourly rates with the same contract as ProductRepository.
type RateRepository interface {
	Save(ctx context.Context, r *models.HourlyRate) error
	Update(ctx context.Context, r *models.HourlyRate) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.HourlyRate, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.HourlyRate, error)
	FindByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*models.HourlyRate, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// ClientRepository persists clients.
type ClientRepository interface {
	Save(ctx context.Context, c *models.Client) error
	Update(ctx context.Context, c *models.Client) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Client, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Client, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
