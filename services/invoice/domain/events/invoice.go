package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicInvoiceCreated is the Watermill topic published when an invoice is issued.
const TopicInvoiceCreated = "invoice.created"

// InvoiceCreatedVersion is the current schema version of InvoiceCreatedEvent.
const InvoiceCreatedVersion = 1

// InvoiceCreatedEvent is published in the same transaction as the invoice.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicInvoiceCreated, ...).
type InvoiceCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"` // deduplication key
	Version     int       `json:"version"`
	InvoiceID   uuid.UUID `json:"invoice_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Number      string    `json:"number"`
	Total       string    `json:"total"` // decimal string, two places
	InvoiceDate time.Time `json:"invoice_date"`
	OccurredAt  time.Time `json:"occurred_at"`
}
