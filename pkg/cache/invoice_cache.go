package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultInvoiceTTL applies when NewInvoiceCache receives a zero TTL.
	DefaultInvoiceTTL = 24 * time.Hour

	invoiceKeyPrefix = "invoice"
)

// CachedInvoice is the read model stored in Redis. Payload holds the full
// invoice JSON; the other fields are kept as hash fields so they can be
// inspected without decoding it.
type CachedInvoice struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Number    string
	UpdatedAt time.Time
	Payload   json.RawMessage
}

// InvoiceCache stores issued invoices as Redis hashes.
// Key format: "invoice:{ownerID}:{invoiceID}"
type InvoiceCache struct {
	client *RedisClient
	ttl    time.Duration
}

func NewInvoiceCache(r *RedisClient, ttl time.Duration) *InvoiceCache {
	if ttl <= 0 {
		ttl = DefaultInvoiceTTL
	}
	return &InvoiceCache{client: r, ttl: ttl}
}

// Get returns redis.Nil when the key does not exist or has expired.
func (c *InvoiceCache) Get(ctx context.Context, ownerID, invoiceID uuid.UUID) (*CachedInvoice, error) {
	vals, err := c.client.Client().HGetAll(ctx, InvoiceKey(ownerID, invoiceID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		c.client.recordLookup(ctx, invoiceKeyPrefix, false)
		return nil, redis.Nil
	}
	c.client.recordLookup(ctx, invoiceKeyPrefix, true)
	return decodeInvoiceHash(vals)
}

// Set writes the hash and its TTL in one pipeline.
func (c *InvoiceCache) Set(ctx context.Context, inv *CachedInvoice) error {
	key := InvoiceKey(inv.OwnerID, inv.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key, encodeInvoiceHash(inv)...)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *InvoiceCache) Delete(ctx context.Context, ownerID, invoiceID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, InvoiceKey(ownerID, invoiceID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// InvoiceKey builds "invoice:{ownerID}:{invoiceID}".
func InvoiceKey(ownerID, invoiceID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", invoiceKeyPrefix, ownerID, invoiceID)
}

func encodeInvoiceHash(inv *CachedInvoice) []any {
	return []any{
		"id", inv.ID.String(),
		"owner_id", inv.OwnerID.String(),
		"number", inv.Number,
		"updated_at", inv.UpdatedAt.UTC().Format(time.RFC3339Nano),
		"payload", string(inv.Payload),
	}
}

func decodeInvoiceHash(vals map[string]string) (*CachedInvoice, error) {
	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	ownerID, err := uuid.Parse(vals["owner_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse owner_id: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, vals["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse updated_at: %w", err)
	}
	payload := vals["payload"]
	if !json.Valid([]byte(payload)) {
		return nil, fmt.Errorf("cache parse payload: invalid json")
	}
	return &CachedInvoice{
		ID:        id,
		OwnerID:   ownerID,
		Number:    vals["number"],
		UpdatedAt: updatedAt,
		Payload:   json.RawMessage(payload),
	}, nil
}
