package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultProvince is used until the owner fills in the business profile.
const DefaultProvince = "QC"

// Tax type names, in the order they are applied on an invoice.
const (
	TaxTVS = "TVS"
	TaxTVQ = "TVQ"
	TaxTVP = "TVP"
	TaxTVH = "TVH"
)

// Business is the issuer profile of an owner: where it operates and which
// sales taxes it is registered for.
type Business struct {
	OwnerID   uuid.UUID
	Name      string
	Province  string
	TVSNumber string
	TVQNumber string
	TVPNumber string
	TVHNumber string
	UpdatedAt time.Time
}

// DefaultBusiness is the profile of an owner who never saved one.
func DefaultBusiness(ownerID uuid.UUID) *Business {
	return &Business{OwnerID: ownerID, Province: DefaultProvince}
}

// Normalize trims every field and upper-cases the province.
func (b *Business) Normalize() {
	b.Name = strings.TrimSpace(b.Name)
	b.Province = strings.ToUpper(strings.TrimSpace(b.Province))
	b.TVSNumber = strings.TrimSpace(b.TVSNumber)
	b.TVQNumber = strings.TrimSpace(b.TVQNumber)
	b.TVPNumber = strings.TrimSpace(b.TVPNumber)
	b.TVHNumber = strings.TrimSpace(b.TVHNumber)
}

// TaxProfile lists the taxes the business collects: one per non-empty
// registration number, always in the order TVS, TVQ, TVP, TVH.
func (b *Business) TaxProfile() []string {
	registered := []struct {
		name   string
		number string
	}{
		{TaxTVS, b.TVSNumber},
		{TaxTVQ, b.TVQNumber},
		{TaxTVP, b.TVPNumber},
		{TaxTVH, b.TVHNumber},
	}
	taxes := make([]string, 0, len(registered))
	for _, r := range registered {
		if strings.TrimSpace(r.number) != "" {
			taxes = append(taxes, r.name)
		}
	}
	return taxes
}
