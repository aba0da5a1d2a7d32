package services

import (
	"github.com/daouest/factureme/pkg/app"
	"github.com/daouest/factureme/services/account/infrastructure/persistence/postgres"
)

// Services is the application-layer container for the account context.
type Services struct {
	Auth     *AuthService
	Users    *UserService
	Business *BusinessService
}

// New wires the account services with their PostgreSQL repositories.
func New(a *app.Application) *Services {
	users := postgres.NewUserRepository(a.Db)
	businesses := postgres.NewBusinessRepository(a.Db)
	return &Services{
		Auth:     NewAuthService(users),
		Users:    NewUserService(users),
		Business: NewBusinessService(businesses),
	}
}
