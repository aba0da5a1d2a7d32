package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	pkgcache "github.com/daouest/factureme/pkg/cache"
	"github.com/daouest/factureme/pkg/logger"
	"github.com/daouest/factureme/pkg/telemetry"
	invoicedomain "github.com/daouest/factureme/services/invoice/domain"
	"github.com/daouest/factureme/services/invoice/domain/models"
	"github.com/daouest/factureme/services/invoice/domain/ports"
	"github.com/daouest/factureme/services/invoice/domain/repositories"
	domainsvcs "github.com/daouest/factureme/services/invoice/domain/services"
)

var tracer = telemetry.Tracer("invoice")

// RecentLimit is the number of invoices returned by Recent and shown on the
// dashboard.
const RecentLimit = 3

// LineInput is one submitted line. Exactly one of ProductID and RateID is
// expected; ProductID wins when both are set.
type LineInput struct {
	ProductID    uuid.UUID
	Quantity     int
	RateID       uuid.UUID
	StartTime    time.Time
	EndTime      time.Time
	BreakMinutes int
}

// InvoiceInput is a submission for preview or creation. A zero InvoiceDate
// means today (UTC).
type InvoiceInput struct {
	ClientID    uuid.UUID
	InvoiceDate time.Time
	DueDate     *time.Time
	Notes       string
	Lines       []LineInput
}

// Computation is a priced submission. Descriptions is indexed like
// Totals.Lines.
type Computation struct {
	Totals       models.Totals
	Descriptions []string
	Province     string
	ClientName   string
	InvoiceDate  time.Time
}

// Dashboard summarizes an owner's invoicing.
type Dashboard struct {
	Stats  repositories.Stats
	Recent []*models.Invoice
}

// InvoiceService prices, issues and serves invoices. Event publishing is
// handled by the repository (outbox). Reads by id go through the Redis cache
// when one is configured.
type InvoiceService struct {
	repo    repositories.InvoiceRepository
	catalog ports.Catalog
	issuers ports.Issuers
	cache   InvoiceCache
	pdfs    PDFCache
	log     logger.Logger
	now     func() time.Time
}

// NewInvoiceService wires the service. invoiceCache and pdfCache may be nil.
func NewInvoiceService(
	repo repositories.InvoiceRepository,
	catalog ports.Catalog,
	issuers ports.Issuers,
	invoiceCache InvoiceCache,
	pdfCache PDFCache,
	log logger.Logger,
) *InvoiceService {
	return &InvoiceService{
		repo:    repo,
		catalog: catalog,
		issuers: issuers,
		cache:   invoiceCache,
		pdfs:    pdfCache,
		log:     log,
		now:     time.Now,
	}
}

// Preview prices the submission without persisting anything.
func (s *InvoiceService) Preview(ctx context.Context, ownerID uuid.UUID, in InvoiceInput) (*Computation, error) {
	return s.compute(ctx, ownerID, in)
}

// Create prices the submission and stores it. The repository allocates the
// invoice number and publishes InvoiceCreatedEvent.
func (s *InvoiceService) Create(ctx context.Context, ownerID uuid.UUID, in InvoiceInput) (*models.Invoice, error) {
	comp, err := s.compute(ctx, ownerID, in)
	if err != nil {
		return nil, err
	}

	inv, err := models.NewInvoice(models.NewInvoiceParams{
		OwnerID:      ownerID,
		ClientID:     in.ClientID,
		ClientName:   comp.ClientName,
		InvoiceDate:  comp.InvoiceDate,
		DueDate:      in.DueDate,
		Province:     comp.Province,
		Notes:        in.Notes,
		Totals:       comp.Totals,
		Descriptions: comp.Descriptions,
	})
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	if err := s.repo.Save(ctx, inv); err != nil {
		return nil, fmt.Errorf("save invoice: %w", err)
	}
	return inv, nil
}

// GetByID reads through the cache:
//  1. Check Redis first.
//  2. On a miss (or a cache error), query Postgres.
//  3. Warm the cache asynchronously with the Postgres result.
func (s *InvoiceService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Invoice, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, ownerID, id)
		switch {
		case err == nil:
			var inv models.Invoice
			if uerr := json.Unmarshal(cached.Payload, &inv); uerr == nil && inv.OwnerID == ownerID {
				return &inv, nil
			}
			s.log.WarnContext(ctx, "discarding unreadable cached invoice", "invoice_id", id)
		case !errors.Is(err, redis.Nil):
			s.log.WarnContext(ctx, "invoice cache read failed", "invoice_id", id, "error", err)
		}
	}

	inv, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	if s.cache != nil {
		go s.store(context.Background(), inv)
	}
	return inv, nil
}

// Warm loads the invoice from Postgres and stores it in the cache. The worker
// calls it when an invoice is created.
func (s *InvoiceService) Warm(ctx context.Context, ownerID, id uuid.UUID) error {
	if s.cache == nil {
		return nil
	}
	inv, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("warm invoice: %w", err)
	}
	return s.store(ctx, inv)
}

func (s *InvoiceService) store(ctx context.Context, inv *models.Invoice) error {
	payload, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("encode invoice: %w", err)
	}
	err = s.cache.Set(ctx, &pkgcache.CachedInvoice{
		ID:        inv.ID,
		OwnerID:   inv.OwnerID,
		Number:    inv.Number,
		UpdatedAt: inv.Stamp(),
		Payload:   payload,
	})
	if err != nil {
		s.log.WarnContext(ctx, "invoice cache write failed", "invoice_id", inv.ID, "error", err)
		return err
	}
	return nil
}

// List returns the owner's invoices without their lines.
func (s *InvoiceService) List(ctx context.Context, ownerID uuid.UUID, filter repositories.ListFilter) ([]*models.Invoice, error) {
	if !validSort(filter.Sort) {
		return nil, fmt.Errorf("%w: %q", invoicedomain.ErrInvalidSort, filter.Sort)
	}
	invoices, err := s.repo.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

// Recent returns the last RecentLimit invoices by invoice date.
func (s *InvoiceService) Recent(ctx context.Context, ownerID uuid.UUID) ([]*models.Invoice, error) {
	invoices, err := s.repo.Recent(ctx, ownerID, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent invoices: %w", err)
	}
	return invoices, nil
}

// Dashboard aggregates every invoice of the owner; the month figure covers
// the current calendar month in UTC.
func (s *InvoiceService) Dashboard(ctx context.Context, ownerID uuid.UUID) (*Dashboard, error) {
	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	stats, err := s.repo.Stats(ctx, ownerID, monthStart)
	if err != nil {
		return nil, fmt.Errorf("invoice stats: %w", err)
	}
	recent, err := s.Recent(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &Dashboard{Stats: stats, Recent: recent}, nil
}

// Delete removes the invoice and drops its cached copies.
func (s *InvoiceService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, ownerID, id); err != nil {
			s.log.WarnContext(ctx, "invoice cache delete failed", "invoice_id", id, "error", err)
		}
	}
	if s.pdfs != nil {
		if err := s.pdfs.Delete(ctx, ownerID, id); err != nil {
			s.log.WarnContext(ctx, "pdf cache delete failed", "invoice_id", id, "error", err)
		}
	}
	return nil
}

func (s *InvoiceService) compute(ctx context.Context, ownerID uuid.UUID, in InvoiceInput) (_ *Computation, err error) {
	ctx, span := tracer.Start(ctx, "invoice.compute", trace.WithAttributes(attribute.Int("invoice.lines", len(in.Lines))))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "invoice not priced")
		}
		span.End()
	}()

	if len(in.Lines) == 0 {
		return nil, invoicedomain.ErrEmptyInvoice
	}

	invoiceDate := in.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = s.now().UTC()
	}
	invoiceDate = time.Date(invoiceDate.Year(), invoiceDate.Month(), invoiceDate.Day(), 0, 0, 0, 0, time.UTC)
	if in.DueDate != nil && in.DueDate.Before(invoiceDate) {
		return nil, invoicedomain.ErrInvalidDueDate
	}

	items, descriptions, err := s.resolve(ctx, ownerID, in.Lines)
	if err != nil {
		return nil, err
	}

	issuer, err := s.issuers.Issuer(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load issuer: %w", err)
	}

	province := issuer.Province
	var clientName string
	if in.ClientID != uuid.Nil {
		client, err := s.catalog.Client(ctx, ownerID, in.ClientID)
		if err != nil {
			return nil, fmt.Errorf("resolve client: %w", err)
		}
		clientName = client.Name
		if client.Province != "" {
			province = client.Province
		}
	}
	province = domainsvcs.NormalizeProvince(province)
	span.SetAttributes(attribute.String("invoice.province", province))

	totals := domainsvcs.ComputeInvoiceTotal(items, issuer.TaxTypes(), province)
	if totals.Total.GreaterThan(domainsvcs.MaxAmount) {
		return nil, fmt.Errorf("%w: invoice total exceeds %s", invoicedomain.ErrInvalidNumericInput, domainsvcs.MaxAmount.StringFixed(2))
	}

	return &Computation{
		Totals:       totals,
		Descriptions: descriptions,
		Province:     province,
		ClientName:   clientName,
		InvoiceDate:  invoiceDate,
	}, nil
}

// resolve turns submitted lines into line items and validates them. Every
// offending line is reported, ordered by line number.
func (s *InvoiceService) resolve(ctx context.Context, ownerID uuid.UUID, lines []LineInput) ([]models.LineItem, []string, error) {
	var productIDs, rateIDs []uuid.UUID
	for _, l := range lines {
		switch {
		case l.ProductID != uuid.Nil:
			productIDs = append(productIDs, l.ProductID)
		case l.RateID != uuid.Nil:
			rateIDs = append(rateIDs, l.RateID)
		}
	}

	products, err := s.catalog.Products(ctx, ownerID, productIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve products: %w", err)
	}
	rates, err := s.catalog.Rates(ctx, ownerID, rateIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve rates: %w", err)
	}

	items := make([]models.LineItem, len(lines))
	descriptions := make([]string, len(lines))
	var errs invoicedomain.LineErrors
	unresolved := func(n int, field string, id uuid.UUID) {
		errs = append(errs, &invoicedomain.ItemResolutionError{Line: n, Field: field, ItemID: id})
	}

	for i, l := range lines {
		n := i + 1
		switch {
		case l.ProductID != uuid.Nil:
			p, ok := products[l.ProductID]
			if !ok {
				unresolved(n, "product_id", l.ProductID)
			}
			items[i] = models.ProductLine{ID: l.ProductID, Quantity: l.Quantity, UnitPrice: p.Price}
			descriptions[i] = p.Description
		case l.RateID != uuid.Nil:
			r, ok := rates[l.RateID]
			if !ok {
				unresolved(n, "rate_id", l.RateID)
			}
			items[i] = models.HourlyLine{
				ID:           l.RateID,
				HourlyRate:   r.Price,
				StartTime:    l.StartTime,
				EndTime:      l.EndTime,
				BreakMinutes: l.BreakMinutes,
			}
			descriptions[i] = r.Description
		default:
			unresolved(n, "product_id", uuid.Nil)
			// placeholder so the remaining lines are still validated
			items[i] = models.ProductLine{Quantity: 1}
		}
	}

	errs = append(errs, domainsvcs.ValidateLines(items)...)
	sort.SliceStable(errs, func(a, b int) bool { return errs[a].LineNumber() < errs[b].LineNumber() })
	if err := errs.Err(); err != nil {
		return nil, nil, err
	}
	return items, descriptions, nil
}

func validSort(s string) bool {
	switch s {
	case "", repositories.SortDateDesc, repositories.SortDateAsc,
		repositories.SortTotalDesc, repositories.SortTotalAsc, repositories.SortNumber:
		return true
	}
	return false
}
