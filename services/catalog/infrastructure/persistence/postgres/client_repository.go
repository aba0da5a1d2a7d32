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

// ClientRepository implements repositories.ClientRepository against PostgreSQL.
type ClientRepository struct {
	db *database.Database
}

func NewClientRepository(database *database.Database) *ClientRepository {
	return &ClientRepository{db: database}
}

func (r *ClientRepository) Save(ctx context.Context, c *models.Client) error {
	if err := db.New(r.db.DB()).InsertClient(ctx, db.InsertClientParams{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		Name:      c.Name.String(),
		Email:     c.Email,
		Address:   c.Address,
		Province:  c.Province,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *models.Client) error {
	n, err := db.New(r.db.DB()).UpdateClient(ctx, db.UpdateClientParams{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		Name:      c.Name.String(),
		Email:     c.Email,
		Address:   c.Address,
		Province:  c.Province,
		UpdatedAt: c.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if n == 0 {
		return catalogdomain.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Client, error) {
	row, err := db.New(r.db.DB()).GetClientByID(ctx, db.GetClientByIDParams{ID: id, OwnerID: ownerID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrClientNotFound
		}
		return nil, fmt.Errorf("query client: %w", err)
	}
	return rowToClient(row), nil
}

func (r *ClientRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Client, error) {
	rows, err := db.New(r.db.DB()).ListClientsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	return mapRows(rows, rowToClient), nil
}

func (r *ClientRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	n, err := db.New(r.db.DB()).DeleteClient(ctx, db.DeleteClientParams{ID: id, OwnerID: ownerID})
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if n == 0 {
		return catalogdomain.ErrClientNotFound
	}
	return nil
}

func rowToClient(row db.Client) *models.Client {
	return &models.Client{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Name:      models.Name(row.Name),
		Email:     row.Email,
		Address:   row.Address,
		Province:  row.Province,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
