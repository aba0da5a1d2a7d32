package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/daouest/factureme/pkg/database"
	catalogdomain "github.com/daouest/factureme/services/catalog/domain"
	"github.com/daouest/factureme/services/catalog/domain/models"
	"github.com/daouest/factureme/services/catalog/infrastructure/persistence/postgres/db"
)

// RateRepository implements repositories.RateRepository against PostgreSQL.
type RateRepository struct {
	db *database.Database
}

func NewRateRepository(database *database.Database) *RateRepository {
	return &RateRepository{db: database}
}

func (r *RateRepository) Save(ctx context.Context, h *models.HourlyRate) error {
	if err := db.New(r.db.DB()).InsertHourlyRate(ctx, db.InsertHourlyRateParams{
		ID:        h.ID,
		OwnerID:   h.OwnerID,
		Label:     h.Label.String(),
		Rate:      h.Rate,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}); err != nil {
		return fmt.Errorf("insert hourly rate: %w", err)
	}
	return nil
}

func (r *RateRepository) Update(ctx context.Context, h *models.HourlyRate) error {
	n, err := db.New(r.db.DB()).UpdateHourlyRate(ctx, db.UpdateHourlyRateParams{
		ID:        h.ID,
		OwnerID:   h.OwnerID,
		Label:     h.Label.String(),
		Rate:      h.Rate,
		UpdatedAt: h.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("update hourly rate: %w", err)
	}
	if n == 0 {
		return catalogdomain.ErrRateNotFound
	}
	return nil
}

func (r *RateRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.HourlyRate, error) {
	row, err := db.New(r.db.DB()).GetHourlyRateByID(ctx, db.GetHourlyRateByIDParams{ID: id, OwnerID: ownerID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrRateNotFound
		}
		return nil, fmt.Errorf("query hourly rate: %w", err)
	}
	return rowToRate(row), nil
}

func (r *RateRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.HourlyRate, error) {
	rows, err := db.New(r.db.DB()).ListHourlyRatesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query hourly rates: %w", err)
	}
	return mapRows(rows, rowToRate), nil
}

func (r *RateRepository) FindByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*models.HourlyRate, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := db.New(r.db.DB()).FindHourlyRatesByIDs(ctx, db.FindHourlyRatesByIDsParams{OwnerID: ownerID, Ids: ids})
	if err != nil {
		return nil, fmt.Errorf("query hourly rates by ids: %w", err)
	}
	return mapRows(rows, rowToRate), nil
}

func (r *RateRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	n, err := db.New(r.db.DB()).DeleteHourlyRate(ctx, db.DeleteHourlyRateParams{ID: id, OwnerID: ownerID})
	if err != nil {
		return fmt.Errorf("delete hourly rate: %w", err)
	}
	if n == 0 {
		return catalogdomain.ErrRateNotFound
	}
	return nil
}

func rowToRate(row db.HourlyRate) *models.HourlyRate {
	return &models.HourlyRate{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Label:     models.Name(row.Label),
		Rate:      row.Rate,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
