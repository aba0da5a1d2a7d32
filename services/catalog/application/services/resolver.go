package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/daouest/factureme/services/catalog/domain/models"
	"github.com/daouest/factureme/services/catalog/domain/repositories"
)

// Resolver loads the catalogue entries an invoice refers to. Ids that do not
// exist for the owner are absent from the returned maps; deciding what that
// means is up to the caller.
type Resolver struct {
	products repositories.ProductRepository
	rates    repositories.RateRepository
	clients  repositories.ClientRepository
}

func NewResolver(products repositories.ProductRepository, rates repositories.RateRepository, clients repositories.ClientRepository) *Resolver {
	return &Resolver{products: products, rates: rates, clients: clients}
}

func (r *Resolver) ResolveProducts(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]*models.Product, error) {
	found, err := r.products.FindByIDs(ctx, ownerID, dedupe(ids))
	if err != nil {
		return nil, fmt.Errorf("resolve products: %w", err)
	}
	out := make(map[uuid.UUID]*models.Product, len(found))
	for _, p := range found {
		out[p.ID] = p
	}
	return out, nil
}

func (r *Resolver) ResolveRates(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]*models.HourlyRate, error) {
	found, err := r.rates.FindByIDs(ctx, ownerID, dedupe(ids))
	if err != nil {
		return nil, fmt.Errorf("resolve hourly rates: %w", err)
	}
	out := make(map[uuid.UUID]*models.HourlyRate, len(found))
	for _, h := range found {
		out[h.ID] = h
	}
	return out, nil
}

// ResolveClient returns ErrClientNotFound for an unknown id.
func (r *Resolver) ResolveClient(ctx context.Context, ownerID, id uuid.UUID) (*models.Client, error) {
	c, err := r.clients.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("resolve client: %w", err)
	}
	return c, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
