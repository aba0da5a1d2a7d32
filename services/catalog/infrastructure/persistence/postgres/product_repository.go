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

// ProductRepository implements repositories.ProductRepository against PostgreSQL.
type ProductRepository struct {
	db *database.Database
}

func NewProductRepository(database *database.Database) *ProductRepository {
	return &ProductRepository{db: database}
}

func (r *ProductRepository) Save(ctx context.Context, p *models.Product) error {
	if err := db.New(r.db.DB()).InsertProduct(ctx, db.InsertProductParams{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name.String(),
		Description: p.Description,
		UnitPrice:   p.UnitPrice,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	n, err := db.New(r.db.DB()).UpdateProduct(ctx, db.UpdateProductParams{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name.String(),
		Description: p.Description,
		UnitPrice:   p.UnitPrice,
		UpdatedAt:   p.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if n == 0 {
		return catalogdomain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Product, error) {
	row, err := db.New(r.db.DB()).GetProductByID(ctx, db.GetProductByIDParams{ID: id, OwnerID: ownerID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return rowToProduct(row), nil
}

func (r *ProductRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Product, error) {
	rows, err := db.New(r.db.DB()).ListProductsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	return mapRows(rows, rowToProduct), nil
}

func (r *ProductRepository) FindByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := db.New(r.db.DB()).FindProductsByIDs(ctx, db.FindProductsByIDsParams{OwnerID: ownerID, Ids: ids})
	if err != nil {
		return nil, fmt.Errorf("query products by ids: %w", err)
	}
	return mapRows(rows, rowToProduct), nil
}

func (r *ProductRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	n, err := db.New(r.db.DB()).DeleteProduct(ctx, db.DeleteProductParams{ID: id, OwnerID: ownerID})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if n == 0 {
		return catalogdomain.ErrProductNotFound
	}
	return nil
}

func rowToProduct(row db.Product) *models.Product {
	return &models.Product{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        models.Name(row.Name),
		Description: row.Description,
		UnitPrice:   row.UnitPrice,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func mapRows[R any, M any](rows []R, fn func(R) *M) []*M {
	out := make([]*M, len(rows))
	for i, row := range rows {
		out[i] = fn(row)
	}
	return out
}
