package models

import "github.com/shopspring/decimal"

// ComputedLine is a LineItem with its derived amounts.
// HoursWorked is nil for product lines.
type ComputedLine struct {
	Item        LineItem
	HoursWorked *decimal.Decimal
	LineTotal   decimal.Decimal
}

// Totals is the result of an invoice computation.
type Totals struct {
	Lines    []ComputedLine
	Subtotal decimal.Decimal
	Taxes    []TaxRate
	Total    decimal.Decimal
}

// TaxTotal sums the tax amounts.
func (t Totals) TaxTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, tax := range t.Taxes {
		sum = sum.Add(tax.Amount)
	}
	return sum
}
