package adapters

import (
	"context"

	"github.com/google/uuid"

	accountsvcs "github.com/daouest/factureme/services/account/application/services"
	accountmodels "github.com/daouest/factureme/services/account/domain/models"
	"github.com/daouest/factureme/services/invoice/domain/models"
)

// Issuers adapts the account BusinessService to ports.Issuers.
type Issuers struct {
	business *accountsvcs.BusinessService
}

func NewIssuers(business *accountsvcs.BusinessService) *Issuers {
	return &Issuers{business: business}
}

func (i *Issuers) Issuer(ctx context.Context, ownerID uuid.UUID) (models.Issuer, error) {
	b, err := i.business.Get(ctx, ownerID)
	if err != nil {
		return models.Issuer{}, err
	}
	return IssuerFromBusiness(b), nil
}

// IssuerFromBusiness keeps the tax order decided by Business.TaxProfile.
func IssuerFromBusiness(b *accountmodels.Business) models.Issuer {
	numbers := map[string]string{
		accountmodels.TaxTVS: b.TVSNumber,
		accountmodels.TaxTVQ: b.TVQNumber,
		accountmodels.TaxTVP: b.TVPNumber,
		accountmodels.TaxTVH: b.TVHNumber,
	}
	profile := b.TaxProfile()
	regs := make([]models.Registration, len(profile))
	for k, tax := range profile {
		regs[k] = models.Registration{Tax: models.TaxType(tax), Number: numbers[tax]}
	}
	return models.Issuer{Name: b.Name, Province: b.Province, Registrations: regs}
}
