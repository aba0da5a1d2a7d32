package services

import (
	"context"

	"github.com/google/uuid"

	pkgcache "github.com/daouest/factureme/pkg/cache"
)

//go:generate mockgen -source=cache.go -destination=mock_cache.go -package=services

// InvoiceCache is the read-through store for issued invoices. Get returns
// redis.Nil on a miss.
type InvoiceCache interface {
	Get(ctx context.Context, ownerID, invoiceID uuid.UUID) (*pkgcache.CachedInvoice, error)
	Set(ctx context.Context, inv *pkgcache.CachedInvoice) error
	Delete(ctx context.Context, ownerID, invoiceID uuid.UUID) error
}

// PDFCache holds rendered invoice PDFs. Get returns redis.Nil on a miss.
type PDFCache interface {
	Get(ctx context.Context, ownerID, invoiceID uuid.UUID) ([]byte, error)
	Set(ctx context.Context, ownerID, invoiceID uuid.UUID, data []byte) error
	Delete(ctx context.Context, ownerID, invoiceID uuid.UUID) error
}
