package services

import (
	"github.com/shopspring/decimal"

	"github.com/daouest/factureme/services/invoice/domain/models"
)

// flatRates apply regardless of province.
var flatRates = map[models.TaxType]decimal.Decimal{
	models.TaxTVS: decimal.NewFromInt(5),
	models.TaxTVQ: decimal.RequireFromString("9.975"),
}

// provincialRates hold the province-dependent taxes. A province missing from
// a table resolves to 0.
var provincialRates = map[models.TaxType]map[string]decimal.Decimal{
	models.TaxTVP: {
		"MB": decimal.NewFromInt(7),
		"SK": decimal.NewFromInt(6),
		"BC": decimal.NewFromInt(7),
	},
	models.TaxTVH: {
		"ON": decimal.NewFromInt(13),
		"NB": decimal.NewFromInt(15),
		"NL": decimal.NewFromInt(15),
		"NS": decimal.NewFromInt(14),
		"PE": decimal.NewFromInt(15),
	},
}

// LookupRate returns the percentage for a tax type in a province.
// ok is false for an unrecognized tax type.
func LookupRate(taxType models.TaxType, province string) (rate decimal.Decimal, ok bool) {
	if r, found := flatRates[taxType]; found {
		return r, true
	}
	table, found := provincialRates[taxType]
	if !found {
		return decimal.Zero, false
	}
	if r, found := table[province]; found {
		return r, true
	}
	return decimal.Zero, true
}
