package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daouest/factureme/pkg/database"
	accountdomain "github.com/daouest/factureme/services/account/domain"
	"github.com/daouest/factureme/services/account/domain/models"
	"github.com/daouest/factureme/services/account/infrastructure/persistence/postgres/db"
)

// BusinessRepository implements repositories.BusinessRepository against PostgreSQL.
type BusinessRepository struct {
	db *database.Database
}

func NewBusinessRepository(database *database.Database) *BusinessRepository {
	return &BusinessRepository{db: database}
}

func (r *BusinessRepository) Get(ctx context.Context, ownerID uuid.UUID) (*models.Business, error) {
	row, err := db.New(r.db.DB()).GetBusiness(ctx, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accountdomain.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("query business: %w", err)
	}
	return &models.Business{
		OwnerID: row.OwnerID,
		Name:    row.Name,
		// CHAR(2) pads shorter values.
		Province:  strings.TrimSpace(row.Province),
		TVSNumber: row.TvsNumber,
		TVQNumber: row.TvqNumber,
		TVPNumber: row.TvpNumber,
		TVHNumber: row.TvhNumber,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *BusinessRepository) Save(ctx context.Context, b *models.Business) error {
	if err := db.New(r.db.DB()).UpsertBusiness(ctx, businessParams(b, b.UpdatedAt)); err != nil {
		return fmt.Errorf("upsert business: %w", err)
	}
	return nil
}

func businessParams(b *models.Business, updatedAt time.Time) db.UpsertBusinessParams {
	return db.UpsertBusinessParams{
		OwnerID:   b.OwnerID,
		Name:      b.Name,
		Province:  b.Province,
		TvsNumber: b.TVSNumber,
		TvqNumber: b.TVQNumber,
		TvpNumber: b.TVPNumber,
		TvhNumber: b.TVHNumber,
		UpdatedAt: updatedAt,
	}
}
