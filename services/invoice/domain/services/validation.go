package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/daouest/factureme/services/invoice/domain"
	"github.com/daouest/factureme/services/invoice/domain/models"
)

const (
	// MaxQuantity keeps quantities inside the INTEGER column.
	MaxQuantity = 1_000_000
	// MaxBreakMinutes is one day.
	MaxBreakMinutes = 24 * 60
)

// MaxAmount is the largest value a NUMERIC(12,2) column holds. It bounds
// line totals and the invoice total.
var MaxAmount = decimal.RequireFromString("9999999999.99")

// ValidateLines checks every resolved line before computation and returns
// one error per offending field. Line numbers are 1-based. A line whose
// inputs are in range is also priced, and rejected on line_total when the
// amount would not fit the money columns.
func ValidateLines(lines []models.LineItem) domain.LineErrors {
	var errs domain.LineErrors
	reject := func(line int, field, reason string) {
		errs = append(errs, &domain.InvalidNumericInputError{Line: line, Field: field, Reason: reason})
	}

	for i, item := range lines {
		n := i + 1
		before := len(errs)
		switch line := item.(type) {
		case models.ProductLine:
			if line.Quantity < 1 {
				reject(n, "quantity", "must be at least 1")
			}
			if line.Quantity > MaxQuantity {
				reject(n, "quantity", fmt.Sprintf("must be at most %d", MaxQuantity))
			}
			if line.UnitPrice.IsNegative() {
				reject(n, "unit_price", "must not be negative")
			}
		case models.HourlyLine:
			if line.HourlyRate.IsNegative() {
				reject(n, "hourly_rate", "must not be negative")
			}
			if line.BreakMinutes < 0 {
				reject(n, "break_minutes", "must not be negative")
			}
			if line.BreakMinutes > MaxBreakMinutes {
				reject(n, "break_minutes", fmt.Sprintf("must be at most %d", MaxBreakMinutes))
			}
			if line.StartTime.IsZero() {
				reject(n, "start_time", "must be set")
			}
			if line.EndTime.IsZero() {
				reject(n, "end_time", "must be set")
			}
		}
		if len(errs) == before && ComputeLineTotal(item).LineTotal.GreaterThan(MaxAmount) {
			reject(n, "line_total", "exceeds "+MaxAmount.StringFixed(2))
		}
	}
	return errs
}
