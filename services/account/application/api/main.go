package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/daouest/factureme/pkg/app"
	"github.com/daouest/factureme/services/account/application/handlers"
	appsvcs "github.com/daouest/factureme/services/account/application/services"
)

// AuthRoutes registers the public register, login and logout endpoints.
func AuthRoutes(r chi.Router, svcs *appsvcs.Services, a *app.Application) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewPostRegisterHandler(svcs, a).Execute)
		r.Post("/login", handlers.NewPostLoginHandler(svcs, a).Execute)
		r.Post("/logout", handlers.NewPostLogoutHandler(a).Execute)
	})
}

// AccountRoutes registers the endpoints that require a session.
func AccountRoutes(r chi.Router, svcs *appsvcs.Services, a *app.Application) {
	r.Get("/me", handlers.NewGetMeHandler(svcs, a).Execute)
	r.Method("GET", "/users", handlers.NewListUsersHandler(svcs, a))
	r.Route("/business", func(r chi.Router) {
		r.Get("/", handlers.NewGetBusinessHandler(svcs, a).Execute)
		r.Put("/", handlers.NewPutBusinessHandler(svcs, a).Execute)
	})
}
