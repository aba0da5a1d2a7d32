package services

import (
	"github.com/daouest/factureme/pkg/app"
	"github.com/daouest/factureme/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer container for the catalog context.
type Services struct {
	Product  *ProductService
	Rate     *RateService
	Client   *ClientService
	Resolver *Resolver
}

// New wires the catalog services with their PostgreSQL repositories.
func New(a *app.Application) *Services {
	products := postgres.NewProductRepository(a.Db)
	rates := postgres.NewRateRepository(a.Db)
	clients := postgres.NewClientRepository(a.Db)
	return &Services{
		Product:  NewProductService(products),
		Rate:     NewRateService(rates),
		Client:   NewClientService(clients),
		Resolver: NewResolver(products, rates, clients),
	}
}
