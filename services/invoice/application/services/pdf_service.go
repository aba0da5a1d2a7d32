package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/daouest/factureme/pkg/logger"
	"github.com/daouest/factureme/services/invoice/domain/models"
	"github.com/daouest/factureme/services/invoice/domain/ports"
)

// Renderer lays out an invoice as a PDF document.
type Renderer interface {
	Render(inv *models.Invoice, issuer models.Issuer) ([]byte, error)
}

// PDFService serves invoice PDFs, preferring a copy pre-rendered by the
// worker.
type PDFService struct {
	invoices *InvoiceService
	issuers  ports.Issuers
	renderer Renderer
	cache    PDFCache
	log      logger.Logger
}

// NewPDFService wires the service. pdfCache may be nil.
func NewPDFService(invoices *InvoiceService, issuers ports.Issuers, renderer Renderer, pdfCache PDFCache, log logger.Logger) *PDFService {
	return &PDFService{invoices: invoices, issuers: issuers, renderer: renderer, cache: pdfCache, log: log}
}

// Get returns the PDF of the invoice, rendering it when no cached copy exists.
func (s *PDFService) Get(ctx context.Context, ownerID, id uuid.UUID) ([]byte, error) {
	if s.cache != nil {
		data, err := s.cache.Get(ctx, ownerID, id)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "pdf cache read failed", "invoice_id", id, "error", err)
		}
	}
	return s.render(ctx, ownerID, id)
}

// Prerender renders the invoice and stores it in the cache. It is the body of
// the PDF workflow activity.
func (s *PDFService) Prerender(ctx context.Context, ownerID, id uuid.UUID) error {
	data, err := s.render(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Set(ctx, ownerID, id, data); err != nil {
		return fmt.Errorf("store pdf: %w", err)
	}
	return nil
}

func (s *PDFService) render(ctx context.Context, ownerID, id uuid.UUID) ([]byte, error) {
	inv, err := s.invoices.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	issuer, err := s.issuers.Issuer(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load issuer: %w", err)
	}
	data, err := s.renderer.Render(inv, issuer)
	if err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", inv.Number, err)
	}
	return data, nil
}
