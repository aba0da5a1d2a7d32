package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultPDFTTL = time.Hour

	pdfKeyPrefix = "invoice_pdf"
)

// PDFCache keeps pre-rendered invoice PDFs.
// Key format: "invoice_pdf:{ownerID}:{invoiceID}"
type PDFCache struct {
	client *RedisClient
	ttl    time.Duration
}

func NewPDFCache(r *RedisClient, ttl time.Duration) *PDFCache {
	if ttl <= 0 {
		ttl = DefaultPDFTTL
	}
	return &PDFCache{client: r, ttl: ttl}
}

// Get returns redis.Nil on a miss.
func (c *PDFCache) Get(ctx context.Context, ownerID, invoiceID uuid.UUID) ([]byte, error) {
	data, err := c.client.Client().Get(ctx, PDFKey(ownerID, invoiceID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.client.recordLookup(ctx, pdfKeyPrefix, false)
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("pdf cache get: %w", err)
	}
	c.client.recordLookup(ctx, pdfKeyPrefix, true)
	return data, nil
}

func (c *PDFCache) Set(ctx context.Context, ownerID, invoiceID uuid.UUID, data []byte) error {
	if err := c.client.Client().Set(ctx, PDFKey(ownerID, invoiceID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("pdf cache set: %w", err)
	}
	return nil
}

func (c *PDFCache) Delete(ctx context.Context, ownerID, invoiceID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, PDFKey(ownerID, invoiceID)).Err(); err != nil {
		return fmt.Errorf("pdf cache delete: %w", err)
	}
	return nil
}

func PDFKey(ownerID, invoiceID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", pdfKeyPrefix, ownerID, invoiceID)
}
