// Package services holds the pure invoice computations: worked hours, line
// totals, sales taxes and invoice totals. Nothing here reads a clock, touches
// storage or keeps state between calls.
//
// Every rounding uses decimal.Decimal.Round, which rounds half away from zero.
// Intermediate values (worked hours in particular) are never rounded; only
// line totals and tax amounts are brought to two decimals.
package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/daouest/factureme/services/invoice/domain/models"
)

const moneyPlaces = 2

var (
	hundred       = decimal.NewFromInt(100)
	sixty         = decimal.NewFromInt(60)
	nanosInMinute = decimal.NewFromInt(int64(time.Minute))
)

// ComputeHoursWorked returns the hours between start and end minus the break.
// An end at or before the start is read as the next day. The result is never
// negative and is not rounded.
func ComputeHoursWorked(start, end time.Time, breakMinutes int) decimal.Decimal {
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}

	totalMinutes := decimal.NewFromInt(int64(end.Sub(start))).Div(nanosInMinute)
	worked := totalMinutes.Sub(decimal.NewFromInt(int64(breakMinutes)))
	if worked.Sign() <= 0 {
		return decimal.Zero
	}
	return worked.Div(sixty)
}

// ComputeLineTotal prices a single line.
func ComputeLineTotal(item models.LineItem) models.ComputedLine {
	switch line := item.(type) {
	case models.ProductLine:
		return models.ComputedLine{
			Item:      line,
			LineTotal: decimal.NewFromInt(int64(line.Quantity)).Mul(line.UnitPrice).Round(moneyPlaces),
		}
	case models.HourlyLine:
		hours := ComputeHoursWorked(line.StartTime, line.EndTime, line.BreakMinutes)
		return models.ComputedLine{
			Item:        line,
			HoursWorked: &hours,
			LineTotal:   hours.Mul(line.HourlyRate).Round(moneyPlaces),
		}
	default:
		panic(fmt.Sprintf("invoice: unhandled line item %T", item))
	}
}

// ComputeTax applies one tax to the taxable amount. ok is false only when the
// tax type is not recognized; a tax that does not apply in the province comes
// back with a zero rate and amount.
func ComputeTax(taxable decimal.Decimal, taxType models.TaxType, province string) (models.TaxRate, bool) {
	rate, ok := LookupRate(taxType, NormalizeProvince(province))
	if !ok {
		return models.TaxRate{}, false
	}
	return models.TaxRate{
		Name:   taxType,
		Rate:   rate,
		Amount: taxable.Mul(rate).Div(hundred).Round(moneyPlaces),
	}, true
}

// ComputeInvoiceTotal prices every line, applies the taxes in the order given
// and sums the result. Unrecognized tax types are skipped.
func ComputeInvoiceTotal(lines []models.LineItem, taxTypes []models.TaxType, province string) models.Totals {
	computed := make([]models.ComputedLine, len(lines))
	subtotal := decimal.Zero.Round(moneyPlaces)
	for i, line := range lines {
		computed[i] = ComputeLineTotal(line)
		subtotal = subtotal.Add(computed[i].LineTotal)
	}

	taxes := make([]models.TaxRate, 0, len(taxTypes))
	total := subtotal
	for _, taxType := range taxTypes {
		tax, ok := ComputeTax(subtotal, taxType, province)
		if !ok {
			continue
		}
		taxes = append(taxes, tax)
		total = total.Add(tax.Amount)
	}

	return models.Totals{
		Lines:    computed,
		Subtotal: subtotal,
		Taxes:    taxes,
		Total:    total,
	}
}

// NormalizeProvince upper-cases and trims a province code.
func NormalizeProvince(province string) string {
	return strings.ToUpper(strings.TrimSpace(province))
}
