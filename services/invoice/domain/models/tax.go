package models

import "github.com/shopspring/decimal"

// TaxType names a Canadian sales tax.
type TaxType string

const (
	TaxTVS TaxType = "TVS" // federal goods and services tax
	TaxTVQ TaxType = "TVQ" // Quebec sales tax
	TaxTVP TaxType = "TVP" // provincial sales tax
	TaxTVH TaxType = "TVH" // harmonized sales tax
)

// TaxTypes lists every recognized tax in display order.
var TaxTypes = []TaxType{TaxTVS, TaxTVQ, TaxTVP, TaxTVH}

// Provinces lists the two-letter codes of every province and territory.
var Provinces = []string{"AB", "BC", "MB", "NB", "NL", "NS", "NT", "NU", "ON", "PE", "QC", "SK", "YT"}

// TaxRate is one computed tax line. Rate is a percentage; a zero rate is a
// valid entry meaning the tax does not apply in the province.
type TaxRate struct {
	Name   TaxType         `json:"name"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}
