package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/daouest/factureme/pkg/app"
	"github.com/daouest/factureme/services/catalog/application/handlers"
	appsvcs "github.com/daouest/factureme/services/catalog/application/services"
)

// Mount registers the product, hourly rate and client endpoints. The
// services are built by the caller so the invoice context can share their
// catalogue resolver.
func Mount(r chi.Router, svcs *appsvcs.Services, a *app.Application) {
	products := handlers.NewProductHandlers(svcs, a)
	rates := handlers.NewRateHandlers(svcs, a)
	clients := handlers.NewClientHandlers(svcs, a)

	r.Route("/products", func(r chi.Router) {
		r.Method("GET", "/", products.List())
		r.Post("/", products.Create)
		r.Get("/{id}", products.Get)
		r.Put("/{id}", products.Update)
		r.Delete("/{id}", products.Delete)
	})
	r.Route("/rates", func(r chi.Router) {
		r.Method("GET", "/", rates.List())
		r.Post("/", rates.Create)
		r.Get("/{id}", rates.Get)
		r.Put("/{id}", rates.Update)
		r.Delete("/{id}", rates.Delete)
	})
	r.Route("/clients", func(r chi.Router) {
		r.Method("GET", "/", clients.List())
		r.Post("/", clients.Create)
		r.Get("/{id}", clients.Get)
		r.Put("/{id}", clients.Update)
		r.Delete("/{id}", clients.Delete)
	})
}
