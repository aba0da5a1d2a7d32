package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daouest/factureme/pkg/app"
	"github.com/daouest/factureme/pkg/events"
	"github.com/daouest/factureme/pkg/logger"
	invoiceEvents "github.com/daouest/factureme/services/invoice/domain/events"
)

type fakeWarmer struct {
	err   error
	calls [][2]uuid.UUID
}

func (f *fakeWarmer) Warm(_ context.Context, ownerID, invoiceID uuid.UUID) error {
	f.calls = append(f.calls, [2]uuid.UUID{ownerID, invoiceID})
	return f.err
}

func createdMessage(t *testing.T, evt invoiceEvents.InvoiceCreatedEvent) *message.Message {
	t.Helper()
	msg, err := events.NewMessage(context.Background(), evt.EventID, evt.Version, evt)
	require.NoError(t, err)
	return msg
}

func TestHandleInvoiceCreated(t *testing.T) {
	evt := invoiceEvents.InvoiceCreatedEvent{
		EventID:     uuid.New(),
		Version:     invoiceEvents.InvoiceCreatedVersion,
		InvoiceID:   uuid.New(),
		OwnerID:     uuid.New(),
		Number:      "FM-20240115-0001",
		Total:       "86.23",
		InvoiceDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		OccurredAt:  time.Now().UTC(),
	}

	tests := []struct {
		name    string
		warmErr error
	}{
		{name: "Warmed"},
		{name: "WarmFailureIsAcked", warmErr: errors.New("redis down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warmer := &fakeWarmer{err: tt.warmErr}
			handler := handleInvoiceCreated(&app.Application{Logger: logger.Discard()}, warmer)

			err := handler(context.Background(), createdMessage(t, evt))

			require.NoError(t, err)
			require.Len(t, warmer.calls, 1)
			assert.Equal(t, evt.OwnerID, warmer.calls[0][0])
			assert.Equal(t, evt.InvoiceID, warmer.calls[0][1])
		})
	}
}

func TestHandleInvoiceCreated_BadPayload(t *testing.T) {
	warmer := &fakeWarmer{}
	handler := handleInvoiceCreated(&app.Application{Logger: logger.Discard()}, warmer)

	err := handler(context.Background(), message.NewMessage(uuid.NewString(), []byte("{")))

	require.Error(t, err)
	assert.Empty(t, warmer.calls)
}
