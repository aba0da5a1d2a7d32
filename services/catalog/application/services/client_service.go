package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/daouest/factureme/services/catalog/domain/models"
	"github.com/daouest/factureme/services/catalog/domain/repositories"
	domainsvcs "github.com/daouest/factureme/services/catalog/domain/services"
)

type ClientInput struct {
	Name     string
	Email    string
	Address  string
	Province string
}

type ClientService struct {
	repo repositories.ClientRepository
}

func NewClientService(repo repositories.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) Create(ctx context.Context, ownerID uuid.UUID, in ClientInput) (*models.Client, error) {
	details, err := parseClient(in)
	if err != nil {
		return nil, err
	}
	c := models.NewClient(ownerID, details)
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save client: %w", err)
	}
	return c, nil
}

func (s *ClientService) Update(ctx context.Context, ownerID, id uuid.UUID, in ClientInput) (*models.Client, error) {
	details, err := parseClient(in)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	c.Update(details)
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return c, nil
}

func (s *ClientService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Client, error) {
	c, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func (s *ClientService) List(ctx context.Context, ownerID uuid.UUID) ([]*models.Client, error) {
	clients, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (s *ClientService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func parseClient(in ClientInput) (models.ClientDetails, error) {
	name, err := domainsvcs.ParseName(in.Name)
	if err != nil {
		return models.ClientDetails{}, err
	}
	if err := domainsvcs.ValidateProvince(in.Province); err != nil {
		return models.ClientDetails{}, err
	}
	return models.ClientDetails{Name: name, Email: in.Email, Address: in.Address, Province: in.Province}, nil
}
