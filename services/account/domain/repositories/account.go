package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/daouest/factureme/services/account/domain/models"
)

//go:generate mockgen -source=account.go -destination=mock_account.go -package=repositories

// UserRepository persists users.
type UserRepository interface {
	// Register stores the user, making it an administrator when it is the
	// first account, and creates its default business profile. Returns
	// ErrEmailTaken when the address is already registered.
	Register(ctx context.Context, u *models.User) error
	// GetByID and GetByEmail return ErrUserNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}

// BusinessRepository persists business profiles, one per owner.
type BusinessRepository interface {
	// Get returns ErrBusinessNotFound when the owner has no profile yet.
	Get(ctx context.Context, ownerID uuid.UUID) (*models.Business, error)
	Save(ctx context.Context, b *models.Business) error
}
