package services

import (
	"github.com/daouest/factureme/pkg/app"
	"github.com/daouest/factureme/pkg/cache"
	accountsvcs "github.com/daouest/factureme/services/account/application/services"
	catalogsvcs "github.com/daouest/factureme/services/catalog/application/services"
	"github.com/daouest/factureme/services/invoice/infrastructure/adapters"
	"github.com/daouest/factureme/services/invoice/infrastructure/pdf"
	"github.com/daouest/factureme/services/invoice/infrastructure/persistence/postgres"
)

// Services is the application-layer container for the invoice context.
type Services struct {
	Invoice *InvoiceService
	PDF     *PDFService
}

// New wires the invoice services. The catalog and account contexts are
// reached through their own application services.
func New(a *app.Application, resolver *catalogsvcs.Resolver, business *accountsvcs.BusinessService) *Services {
	repo := postgres.NewInvoiceRepository(a.Db, a.EventBus)
	catalog := adapters.NewCatalog(resolver)
	issuers := adapters.NewIssuers(business)

	var (
		invoiceCache InvoiceCache
		pdfCache     PDFCache
	)
	if a.Redis != nil {
		invoiceCache = cache.NewInvoiceCache(a.Redis, a.Config.InvoiceCacheTTL)
		pdfCache = cache.NewPDFCache(a.Redis, a.Config.PDFCacheTTL)
	}

	invoices := NewInvoiceService(repo, catalog, issuers, invoiceCache, pdfCache, a.Logger)
	return &Services{
		Invoice: invoices,
		PDF:     NewPDFService(invoices, issuers, pdf.NewRenderer(), pdfCache, a.Logger),
	}
}
