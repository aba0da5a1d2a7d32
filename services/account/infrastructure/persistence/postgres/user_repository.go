package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/daouest/factureme/pkg/database"
	accountdomain "github.com/daouest/factureme/services/account/domain"
	"github.com/daouest/factureme/services/account/domain/models"
	"github.com/daouest/factureme/services/account/infrastructure/persistence/postgres/db"
)

const uniqueViolation = "23505"

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db *database.Database
}

func NewUserRepository(database *database.Database) *UserRepository {
	return &UserRepository{db: database}
}

// Register inserts the user and its default business profile in one
// transaction. The first account ever registered becomes an administrator.
func (r *UserRepository) Register(ctx context.Context, u *models.User) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		count, err := q.CountUsers(ctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		if count == 0 {
			u.IsAdmin = true
		}

		if err := q.InsertUser(ctx, db.InsertUserParams{
			ID:           u.ID,
			Email:        u.Email,
			Name:         u.Name,
			PasswordHash: u.PasswordHash,
			IsAdmin:      u.IsAdmin,
			CreatedAt:    u.CreatedAt,
			UpdatedAt:    u.UpdatedAt,
		}); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return accountdomain.ErrEmailTaken
			}
			return fmt.Errorf("insert user: %w", err)
		}

		if err := q.UpsertBusiness(ctx, businessParams(models.DefaultBusiness(u.ID), u.CreatedAt)); err != nil {
			return fmt.Errorf("insert default business: %w", err)
		}
		return nil
	})
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row, err := db.New(r.db.DB()).GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accountdomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return rowToUser(row), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row, err := db.New(r.db.DB()).GetUserByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accountdomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return rowToUser(row), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	rows, err := db.New(r.db.DB()).ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	users := make([]*models.User, len(rows))
	for i, row := range rows {
		users[i] = rowToUser(row)
	}
	return users, nil
}

func rowToUser(row db.User) *models.User {
	return &models.User{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		IsAdmin:      row.IsAdmin,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
