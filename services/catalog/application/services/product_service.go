package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daouest/factureme/services/catalog/domain/models"
	"github.com/daouest/factureme/services/catalog/domain/repositories"
	domainsvcs "github.com/daouest/factureme/services/catalog/domain/services"
)

// ProductInput holds the editable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	UnitPrice   decimal.Decimal
}

type ProductService struct {
	repo repositories.ProductRepository
}

func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Create(ctx context.Context, ownerID uuid.UUID, in ProductInput) (*models.Product, error) {
	name, err := parseProduct(in)
	if err != nil {
		return nil, err
	}
	p := models.NewProduct(ownerID, name, in.Description, in.UnitPrice)
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, ownerID, id uuid.UUID, in ProductInput) (*models.Product, error) {
	name, err := parseProduct(in)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.Update(name, in.Description, in.UnitPrice)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (s *ProductService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Product, error) {
	p, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (s *ProductService) List(ctx context.Context, ownerID uuid.UUID) ([]*models.Product, error) {
	products, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func parseProduct(in ProductInput) (models.Name, error) {
	name, err := domainsvcs.ParseName(in.Name)
	if err != nil {
		return "", err
	}
	if err := domainsvcs.ValidateAmount("unit_price", in.UnitPrice); err != nil {
		return "", err
	}
	return name, nil
}
