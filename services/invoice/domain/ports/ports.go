// Package ports declares what the invoice context needs from the catalog and
// account contexts, in invoice terms.
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daouest/factureme/services/invoice/domain/models"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=ports

// CatalogItem is a product or hourly rate as seen at computation time.
// Price is the unit price or the hourly rate.
type CatalogItem struct {
	ID          uuid.UUID
	Description string
	Price       decimal.Decimal
}

// Client is the addressee of an invoice. Province may be empty.
type Client struct {
	ID       uuid.UUID
	Name     string
	Province string
}

// Catalog resolves the catalogue references of a submission. Unknown ids
// are absent from the returned maps.
type Catalog interface {
	Products(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]CatalogItem, error)
	Rates(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]CatalogItem, error)
	// Client returns ErrUnknownClient for an id the owner does not have.
	Client(ctx context.Context, ownerID, id uuid.UUID) (Client, error)
}

// Issuers loads the issuing business of an owner.
type Issuers interface {
	Issuer(ctx context.Context, ownerID uuid.UUID) (models.Issuer, error)
}
