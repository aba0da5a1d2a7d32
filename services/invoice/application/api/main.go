package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/daouest/factureme/pkg/app"
	"github.com/daouest/factureme/services/invoice/application/handlers"
	appsvcs "github.com/daouest/factureme/services/invoice/application/services"
)

// InvoiceRoutes registers the invoice and dashboard endpoints.
func InvoiceRoutes(r chi.Router, svcs *appsvcs.Services, a *app.Application) {
	h := handlers.NewInvoiceHandlers(svcs, a)

	r.Route("/invoices", func(r chi.Router) {
		r.Method("GET", "/", h.List())
		r.Post("/", h.Create)
		r.Post("/preview", h.Preview)
		r.Method("GET", "/recent", h.Recent())
		r.Get("/{id}", h.Get)
		r.Delete("/{id}", h.Delete)
		r.Get("/{id}/pdf", h.PDF)
	})
	r.Get("/dashboard", h.Dashboard)
}
