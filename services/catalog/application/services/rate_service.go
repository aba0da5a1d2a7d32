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

type RateInput struct {
	Label string
	Rate  decimal.Decimal
}

type RateService struct {
	repo repositories.RateRepository
}

func NewRateService(repo repositories.RateRepository) *RateService {
	return &RateService{repo: repo}
}

func (s *RateService) Create(ctx context.Context, ownerID uuid.UUID, in RateInput) (*models.HourlyRate, error) {
	label, err := parseRate(in)
	if err != nil {
		return nil, err
	}
	rate := models.NewHourlyRate(ownerID, label, in.Rate)
	if err := s.repo.Save(ctx, rate); err != nil {
		return nil, fmt.Errorf("save hourly rate: %w", err)
	}
	return rate, nil
}

func (s *RateService) Update(ctx context.Context, ownerID, id uuid.UUID, in RateInput) (*models.HourlyRate, error) {
	label, err := parseRate(in)
	if err != nil {
		return nil, err
	}
	rate, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get hourly rate: %w", err)
	}
	rate.Update(label, in.Rate)
	if err := s.repo.Update(ctx, rate); err != nil {
		return nil, fmt.Errorf("update hourly rate: %w", err)
	}
	return rate, nil
}

func (s *RateService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.HourlyRate, error) {
	rate, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get hourly rate: %w", err)
	}
	return rate, nil
}

func (s *RateService) List(ctx context.Context, ownerID uuid.UUID) ([]*models.HourlyRate, error) {
	rates, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list hourly rates: %w", err)
	}
	return rates, nil
}

func (s *RateService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete hourly rate: %w", err)
	}
	return nil
}

func parseRate(in RateInput) (models.Name, error) {
	label, err := domainsvcs.ParseName(in.Label)
	if err != nil {
		return "", err
	}
	if err := domainsvcs.ValidateAmount("rate", in.Rate); err != nil {
		return "", err
	}
	return label, nil
}
