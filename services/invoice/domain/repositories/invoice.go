package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daouest/factureme/services/invoice/domain/models"
)

//go:generate mockgen -source=invoice.go -destination=mock_invoice.go -package=repositories

// Sort orders accepted by ListByOwner. The zero value is newest first.
const (
	SortDateDesc  = "date_desc"
	SortDateAsc   = "date_asc"
	SortTotalDesc = "total_desc"
	SortTotalAsc  = "total_asc"
	SortNumber    = "number"
)

// ListFilter narrows ListByOwner.
type ListFilter struct {
	ClientID uuid.UUID // uuid.Nil for every client
	Sort     string
}

// Stats aggregates an owner's invoices for the dashboard.
type Stats struct {
	InvoiceCount int64
	Revenue      decimal.Decimal
	TaxCollected decimal.Decimal
	MonthRevenue decimal.Decimal
}

// InvoiceRepository persists invoices. Every method is scoped to ownerID;
// GetByID and Delete return ErrInvoiceNotFound when no row matches.
type InvoiceRepository interface {
	// Save stores the invoice with its lines, allocating inv.Number from the
	// owner's daily sequence, and publishes InvoiceCreatedEvent in the same
	// transaction.
	Save(ctx context.Context, inv *models.Invoice) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Invoice, error)
	// ListByOwner returns invoices without their lines.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*models.Invoice, error)
	// Recent returns the latest limit invoices by invoice date, without lines.
	Recent(ctx context.Context, ownerID uuid.UUID, limit int) ([]*models.Invoice, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	// Stats aggregates every invoice; MonthRevenue covers invoices dated on
	// or after monthStart.
	Stats(ctx context.Context, ownerID uuid.UUID, monthStart time.Time) (Stats, error)
}
