package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalogue item billed by quantity.
type Product struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID // tenant scope, always filter by this in queries
	Name        Name
	Description string
	UnitPrice   decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProduct(ownerID uuid.UUID, name Name, description string, unitPrice decimal.Decimal) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		UnitPrice:   unitPrice.Round(2),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Update replaces the editable fields and bumps UpdatedAt.
func (p *Product) Update(name Name, description string, unitPrice decimal.Decimal) {
	p.Name = name
	p.Description = description
	p.UnitPrice = unitPrice.Round(2)
	p.UpdatedAt = time.Now().UTC()
}
