package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	pkgvalidator "github.com/daouest/factureme/pkg/validator"
	accountdomain "github.com/daouest/factureme/services/account/domain"
	"github.com/daouest/factureme/services/account/domain/models"
	"github.com/daouest/factureme/services/account/domain/repositories"
)

// BusinessInput holds the editable fields of a business profile.
type BusinessInput struct {
	Name      string
	Province  string
	TVSNumber string
	TVQNumber string
	TVPNumber string
	TVHNumber string
}

type BusinessService struct {
	repo repositories.BusinessRepository
}

func NewBusinessService(repo repositories.BusinessRepository) *BusinessService {
	return &BusinessService{repo: repo}
}

// Get returns the owner's profile, or the default one when none was saved.
func (s *BusinessService) Get(ctx context.Context, ownerID uuid.UUID) (*models.Business, error) {
	b, err := s.repo.Get(ctx, ownerID)
	if errors.Is(err, accountdomain.ErrBusinessNotFound) {
		return models.DefaultBusiness(ownerID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}
	return b, nil
}

func (s *BusinessService) Update(ctx context.Context, ownerID uuid.UUID, in BusinessInput) (*models.Business, error) {
	b := &models.Business{
		OwnerID:   ownerID,
		Name:      in.Name,
		Province:  in.Province,
		TVSNumber: in.TVSNumber,
		TVQNumber: in.TVQNumber,
		TVPNumber: in.TVPNumber,
		TVHNumber: in.TVHNumber,
		UpdatedAt: time.Now().UTC(),
	}
	b.Normalize()
	if b.Name == "" || !pkgvalidator.IsProvince(b.Province) {
		return nil, accountdomain.ErrInvalidProfile
	}
	if err := s.repo.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("save business: %w", err)
	}
	return b, nil
}

// TaxProfile returns the owner's province and the taxes it is registered for.
func (s *BusinessService) TaxProfile(ctx context.Context, ownerID uuid.UUID) (string, []string, error) {
	b, err := s.Get(ctx, ownerID)
	if err != nil {
		return "", nil, err
	}
	return b.Province, b.TaxProfile(), nil
}
