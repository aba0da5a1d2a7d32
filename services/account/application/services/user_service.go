package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	accountdomain "github.com/daouest/factureme/services/account/domain"
	"github.com/daouest/factureme/services/account/domain/models"
	"github.com/daouest/factureme/services/account/domain/repositories"
)

type UserService struct {
	repo repositories.UserRepository
}

func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Me(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// List returns every account. Only administrators may call it.
func (s *UserService) List(ctx context.Context, requesterID uuid.UUID) ([]*models.User, error) {
	requester, err := s.Me(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !requester.IsAdmin {
		return nil, accountdomain.ErrForbidden
	}
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
