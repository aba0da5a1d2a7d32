package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/daouest/factureme/pkg/database"
	"github.com/daouest/factureme/pkg/events"
	invoicedomain "github.com/daouest/factureme/services/invoice/domain"
	domainevents "github.com/daouest/factureme/services/invoice/domain/events"
	"github.com/daouest/factureme/services/invoice/domain/models"
	"github.com/daouest/factureme/services/invoice/domain/repositories"
	domainsvcs "github.com/daouest/factureme/services/invoice/domain/services"
	"github.com/daouest/factureme/services/invoice/infrastructure/persistence/postgres/db"
)

const foreignKeyViolation = "23503"

// InvoiceRepository implements repositories.InvoiceRepository against PostgreSQL.
type InvoiceRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewInvoiceRepository returns a repository publishing InvoiceCreatedEvent on
// bus. A nil bus disables publishing.
func NewInvoiceRepository(database *database.Database, bus *events.EventBus) *InvoiceRepository {
	return &InvoiceRepository{db: database, bus: bus}
}

func (r *InvoiceRepository) Save(ctx context.Context, inv *models.Invoice) error {
	taxes, err := json.Marshal(inv.Taxes)
	if err != nil {
		return fmt.Errorf("marshal taxes: %w", err)
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		seq, err := q.NextInvoiceSequence(ctx, db.NextInvoiceSequenceParams{
			OwnerID: inv.OwnerID,
			Day:     dateOnly(inv.InvoiceDate),
		})
		if err != nil {
			return fmt.Errorf("next invoice number: %w", err)
		}
		inv.Number = domainsvcs.FormatInvoiceNumber(inv.InvoiceDate, seq)

		if err := q.InsertInvoice(ctx, db.InsertInvoiceParams{
			ID:          inv.ID,
			OwnerID:     inv.OwnerID,
			ClientID:    nullUUID(inv.ClientID),
			ClientName:  inv.ClientName,
			Number:      inv.Number,
			InvoiceDate: dateOnly(inv.InvoiceDate),
			DueDate:     nullTime(inv.DueDate),
			Province:    inv.Province,
			Subtotal:    inv.Subtotal,
			Taxes:       taxes,
			Total:       inv.Total,
			Notes:       inv.Notes,
			CreatedAt:   inv.CreatedAt,
			UpdatedAt:   inv.UpdatedAt,
		}); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
				return invoicedomain.ErrUnknownClient
			}
			return fmt.Errorf("insert invoice: %w", err)
		}

		for _, line := range inv.Lines {
			if err := q.InsertInvoiceLine(ctx, lineParams(inv.ID, line)); err != nil {
				return fmt.Errorf("insert invoice line %d: %w", line.Position, err)
			}
		}

		if r.bus != nil {
			if err := r.publishCreated(ctx, tx, inv); err != nil {
				return fmt.Errorf("publish invoice created: %w", err)
			}
		}
		return nil
	})
}

func (r *InvoiceRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Invoice, error) {
	q := db.New(r.db.DB())
	row, err := q.GetInvoiceByID(ctx, db.GetInvoiceByIDParams{ID: id, OwnerID: ownerID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoicedomain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("query invoice: %w", err)
	}
	inv, err := rowToInvoice(row)
	if err != nil {
		return nil, err
	}

	lines, err := q.ListInvoiceLines(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query invoice lines: %w", err)
	}
	inv.Lines = make([]models.StoredLine, len(lines))
	for i, l := range lines {
		inv.Lines[i] = rowToLine(l)
	}
	return inv, nil
}

func (r *InvoiceRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter repositories.ListFilter) ([]*models.Invoice, error) {
	rows, err := db.New(r.db.DB()).ListInvoicesByOwner(ctx, db.ListInvoicesByOwnerParams{
		OwnerID:  ownerID,
		ClientID: nullUUID(filter.ClientID),
		Sort:     filter.Sort,
	})
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	return rowsToInvoices(rows)
}

func (r *InvoiceRepository) Recent(ctx context.Context, ownerID uuid.UUID, limit int) ([]*models.Invoice, error) {
	rows, err := db.New(r.db.DB()).ListRecentInvoices(ctx, db.ListRecentInvoicesParams{
		OwnerID: ownerID,
		Limit:   int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("query recent invoices: %w", err)
	}
	return rowsToInvoices(rows)
}

func (r *InvoiceRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	n, err := db.New(r.db.DB()).DeleteInvoice(ctx, db.DeleteInvoiceParams{ID: id, OwnerID: ownerID})
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if n == 0 {
		return invoicedomain.ErrInvoiceNotFound
	}
	return nil
}

func (r *InvoiceRepository) Stats(ctx context.Context, ownerID uuid.UUID, monthStart time.Time) (repositories.Stats, error) {
	row, err := db.New(r.db.DB()).InvoiceStats(ctx, db.InvoiceStatsParams{
		OwnerID:    ownerID,
		MonthStart: dateOnly(monthStart),
	})
	if err != nil {
		return repositories.Stats{}, fmt.Errorf("query invoice stats: %w", err)
	}
	return repositories.Stats{
		InvoiceCount: row.InvoiceCount,
		Revenue:      row.Revenue,
		TaxCollected: row.TaxCollected,
		MonthRevenue: row.MonthRevenue,
	}, nil
}

func (r *InvoiceRepository) publishCreated(ctx context.Context, tx *sql.Tx, inv *models.Invoice) error {
	event := domainevents.InvoiceCreatedEvent{
		EventID:     uuid.New(),
		Version:     domainevents.InvoiceCreatedVersion,
		InvoiceID:   inv.ID,
		OwnerID:     inv.OwnerID,
		Number:      inv.Number,
		Total:       inv.Total.StringFixed(2),
		InvoiceDate: inv.InvoiceDate,
		OccurredAt:  inv.CreatedAt,
	}
	msg, err := events.NewMessage(ctx, event.EventID, event.Version, event)
	if err != nil {
		return err
	}
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicInvoiceCreated, msg)
}

func rowsToInvoices(rows []db.Invoice) ([]*models.Invoice, error) {
	out := make([]*models.Invoice, len(rows))
	for i, row := range rows {
		inv, err := rowToInvoice(row)
		if err != nil {
			return nil, err
		}
		out[i] = inv
	}
	return out, nil
}

func rowToInvoice(row db.Invoice) (*models.Invoice, error) {
	var taxes []models.TaxRate
	if err := json.Unmarshal(row.Taxes, &taxes); err != nil {
		return nil, fmt.Errorf("decode taxes of invoice %s: %w", row.ID, err)
	}
	inv := &models.Invoice{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		ClientName:  row.ClientName,
		Number:      row.Number,
		InvoiceDate: row.InvoiceDate.UTC(),
		Province:    strings.TrimSpace(row.Province),
		Subtotal:    row.Subtotal,
		Taxes:       taxes,
		Total:       row.Total,
		Notes:       row.Notes,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.ClientID.Valid {
		inv.ClientID = row.ClientID.UUID
	}
	if row.DueDate.Valid {
		due := row.DueDate.Time.UTC()
		inv.DueDate = &due
	}
	return inv, nil
}

func lineParams(invoiceID uuid.UUID, l models.StoredLine) db.InsertInvoiceLineParams {
	p := db.InsertInvoiceLineParams{
		InvoiceID:    invoiceID,
		Position:     int32(l.Position),
		Kind:         string(l.Kind),
		CatalogID:    l.CatalogID,
		Description:  l.Description,
		UnitPrice:    l.UnitPrice,
		StartTime:    nullTime(l.StartTime),
		EndTime:      nullTime(l.EndTime),
		BreakMinutes: int32(l.BreakMinutes),
		HoursWorked:  l.HoursWorked,
		LineTotal:    l.LineTotal,
	}
	if l.Kind == models.LineKindProduct {
		p.Quantity = sql.NullInt32{Int32: int32(l.Quantity), Valid: true}
	}
	return p
}

func rowToLine(row db.InvoiceLine) models.StoredLine {
	l := models.StoredLine{
		Position:     int(row.Position),
		Kind:         models.LineKind(row.Kind),
		CatalogID:    row.CatalogID,
		Description:  row.Description,
		UnitPrice:    row.UnitPrice,
		BreakMinutes: int(row.BreakMinutes),
		HoursWorked:  row.HoursWorked,
		LineTotal:    row.LineTotal,
	}
	if row.Quantity.Valid {
		l.Quantity = int(row.Quantity.Int32)
	}
	if row.StartTime.Valid {
		start := row.StartTime.Time
		l.StartTime = &start
	}
	if row.EndTime.Valid {
		end := row.EndTime.Time
		l.EndTime = &end
	}
	return l
}

func nullUUID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
