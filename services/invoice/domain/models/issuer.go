package models

// Registration is a sales tax number held by the issuer.
type Registration struct {
	Tax    TaxType
	Number string
}

// Issuer is the business an invoice is issued by. Registrations are kept in
// the order the taxes are applied.
type Issuer struct {
	Name          string
	Province      string
	Registrations []Registration
}

// TaxTypes returns the taxes the issuer collects.
func (i Issuer) TaxTypes() []TaxType {
	out := make([]TaxType, len(i.Registrations))
	for k, r := range i.Registrations {
		out[k] = r.Tax
	}
	return out
}
