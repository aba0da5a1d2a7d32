// Package adapters implements the invoice ports on top of the catalog and
// account application services.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	catalogsvcs "github.com/daouest/factureme/services/catalog/application/services"
	catalogdomain "github.com/daouest/factureme/services/catalog/domain"
	invoicedomain "github.com/daouest/factureme/services/invoice/domain"
	"github.com/daouest/factureme/services/invoice/domain/ports"
)

// Catalog adapts the catalog Resolver to ports.Catalog.
type Catalog struct {
	resolver *catalogsvcs.Resolver
}

func NewCatalog(resolver *catalogsvcs.Resolver) *Catalog {
	return &Catalog{resolver: resolver}
}

func (c *Catalog) Products(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]ports.CatalogItem, error) {
	found, err := c.resolver.ResolveProducts(ctx, ownerID, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]ports.CatalogItem, len(found))
	for id, p := range found {
		out[id] = ports.CatalogItem{ID: p.ID, Description: p.Name.String(), Price: p.UnitPrice}
	}
	return out, nil
}

func (c *Catalog) Rates(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]ports.CatalogItem, error) {
	found, err := c.resolver.ResolveRates(ctx, ownerID, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]ports.CatalogItem, len(found))
	for id, r := range found {
		out[id] = ports.CatalogItem{ID: r.ID, Description: r.Label.String(), Price: r.Rate}
	}
	return out, nil
}

func (c *Catalog) Client(ctx context.Context, ownerID, id uuid.UUID) (ports.Client, error) {
	client, err := c.resolver.ResolveClient(ctx, ownerID, id)
	if errors.Is(err, catalogdomain.ErrClientNotFound) {
		return ports.Client{}, fmt.Errorf("%w: %s", invoicedomain.ErrUnknownClient, id)
	}
	if err != nil {
		return ports.Client{}, err
	}
	return ports.Client{ID: client.ID, Name: client.Name.String(), Province: client.Province}, nil
}
