package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is the persisted aggregate for this bounded context. Amounts are
// frozen at issue time; later catalogue edits never change an issued invoice.
type Invoice struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID // tenant scope, always filter by this in queries
	ClientID    uuid.UUID
	ClientName  string
	Number      string
	InvoiceDate time.Time
	DueDate     *time.Time
	Province    string
	Lines       []StoredLine
	Subtotal    decimal.Decimal
	Taxes       []TaxRate
	Total       decimal.Decimal
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StoredLine snapshots a computed line together with the catalogue data it
// was resolved from.
type StoredLine struct {
	Position     int                 `json:"position"`
	Kind         LineKind            `json:"kind"`
	CatalogID    uuid.UUID           `json:"catalog_id"`
	Description  string              `json:"description"`
	Quantity     int                 `json:"quantity,omitempty"`
	UnitPrice    decimal.Decimal     `json:"unit_price"`
	StartTime    *time.Time          `json:"start_time,omitempty"`
	EndTime      *time.Time          `json:"end_time,omitempty"`
	BreakMinutes int                 `json:"break_minutes,omitempty"`
	HoursWorked  decimal.NullDecimal `json:"hours_worked"`
	LineTotal    decimal.Decimal     `json:"line_total"`
}

// NewInvoiceParams carries everything needed to issue an invoice.
// Descriptions is indexed like Totals.Lines.
type NewInvoiceParams struct {
	OwnerID      uuid.UUID
	ClientID     uuid.UUID
	ClientName   string
	Number       string
	InvoiceDate  time.Time
	DueDate      *time.Time
	Province     string
	Notes        string
	Totals       Totals
	Descriptions []string
}

// NewInvoice builds an Invoice from a finished computation.
func NewInvoice(p NewInvoiceParams) (*Invoice, error) {
	if len(p.Totals.Lines) == 0 {
		return nil, fmt.Errorf("invoice must have at least one line")
	}
	if len(p.Descriptions) != len(p.Totals.Lines) {
		return nil, fmt.Errorf("got %d descriptions for %d lines", len(p.Descriptions), len(p.Totals.Lines))
	}

	lines := make([]StoredLine, len(p.Totals.Lines))
	for i, cl := range p.Totals.Lines {
		lines[i] = SnapshotLine(i+1, p.Descriptions[i], cl)
	}

	now := time.Now().UTC()
	return &Invoice{
		ID:          uuid.New(),
		OwnerID:     p.OwnerID,
		ClientID:    p.ClientID,
		ClientName:  p.ClientName,
		Number:      p.Number,
		InvoiceDate: p.InvoiceDate,
		DueDate:     p.DueDate,
		Province:    p.Province,
		Lines:       lines,
		Subtotal:    p.Totals.Subtotal,
		Taxes:       p.Totals.Taxes,
		Total:       p.Totals.Total,
		Notes:       p.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// SnapshotLine flattens a computed line at the given 1-based position.
func SnapshotLine(position int, description string, cl ComputedLine) StoredLine {
	sl := StoredLine{
		Position:    position,
		Kind:        cl.Item.Kind(),
		CatalogID:   cl.Item.CatalogID(),
		Description: description,
		LineTotal:   cl.LineTotal,
	}
	if cl.HoursWorked != nil {
		sl.HoursWorked = decimal.NewNullDecimal(*cl.HoursWorked)
	}

	switch item := cl.Item.(type) {
	case ProductLine:
		sl.Quantity = item.Quantity
		sl.UnitPrice = item.UnitPrice
	case HourlyLine:
		start, end := item.StartTime, item.EndTime
		sl.UnitPrice = item.HourlyRate
		sl.StartTime = &start
		sl.EndTime = &end
		sl.BreakMinutes = item.BreakMinutes
	}
	return sl
}

// TaxTotal sums the recorded tax amounts.
func (inv *Invoice) TaxTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, tax := range inv.Taxes {
		sum = sum.Add(tax.Amount)
	}
	return sum
}

// Stamp is the freshness timestamp of the invoice: the last update, falling
// back to creation.
func (inv *Invoice) Stamp() time.Time {
	if !inv.UpdatedAt.IsZero() {
		return inv.UpdatedAt
	}
	return inv.CreatedAt
}
