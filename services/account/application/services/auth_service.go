package services

import (
	"context"
	"errors"
	"fmt"

	accountdomain "github.com/daouest/factureme/services/account/domain"
	"github.com/daouest/factureme/services/account/domain/models"
	"github.com/daouest/factureme/services/account/domain/repositories"
	domainsvcs "github.com/daouest/factureme/services/account/domain/services"
)

// RegisterInput holds the fields of a new account.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type AuthService struct {
	repo repositories.UserRepository
	// dummyHash keeps unknown-email logins as slow as wrong-password ones.
	dummyHash string
}

func NewAuthService(repo repositories.UserRepository) *AuthService {
	hash, _ := domainsvcs.HashPassword("factureme-timing-guard")
	return &AuthService{repo: repo, dummyHash: hash}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	hash, err := domainsvcs.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := models.NewUser(in.Email, in.Name, hash, false)
	if err := s.repo.Register(ctx, u); err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}
	return u, nil
}

// Login returns ErrInvalidCredentials for an unknown email as well as for a
// wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, accountdomain.ErrUserNotFound) {
		_ = domainsvcs.CheckPassword(s.dummyHash, password)
		return nil, accountdomain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if err := domainsvcs.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, err
	}
	return u, nil
}
