package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTotals() Totals {
	hours := decimal.RequireFromString("7")
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return Totals{
		Lines: []ComputedLine{
			{
				Item:      ProductLine{ID: uuid.New(), Quantity: 3, UnitPrice: decimal.RequireFromString("25.00")},
				LineTotal: decimal.RequireFromString("75.00"),
			},
			{
				Item: HourlyLine{
					ID:           uuid.New(),
					HourlyRate:   decimal.NewFromInt(40),
					StartTime:    start,
					EndTime:      start.Add(8 * time.Hour),
					BreakMinutes: 60,
				},
				HoursWorked: &hours,
				LineTotal:   decimal.RequireFromString("280.00"),
			},
		},
		Subtotal: decimal.RequireFromString("355.00"),
		Taxes: []TaxRate{
			{Name: TaxTVS, Rate: decimal.NewFromInt(5), Amount: decimal.RequireFromString("17.75")},
		},
		Total: decimal.RequireFromString("372.75"),
	}
}

func TestNewInvoice(t *testing.T) {
	owner := uuid.New()
	totals := sampleTotals()

	inv, err := NewInvoice(NewInvoiceParams{
		OwnerID:      owner,
		ClientID:     uuid.New(),
		Number:       "FM-20240101-0001",
		InvoiceDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Province:     "QC",
		Totals:       totals,
		Descriptions: []string{"Widget", "Consulting"},
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, inv.ID)
	assert.Equal(t, owner, inv.OwnerID)
	require.Len(t, inv.Lines, 2)

	product := inv.Lines[0]
	assert.Equal(t, 1, product.Position)
	assert.Equal(t, LineKindProduct, product.Kind)
	assert.Equal(t, 3, product.Quantity)
	assert.Equal(t, "Widget", product.Description)
	assert.False(t, product.HoursWorked.Valid)

	hourly := inv.Lines[1]
	assert.Equal(t, 2, hourly.Position)
	assert.Equal(t, LineKindHourly, hourly.Kind)
	require.NotNil(t, hourly.StartTime)
	assert.True(t, hourly.HoursWorked.Valid)
	assert.True(t, hourly.HoursWorked.Decimal.Equal(decimal.NewFromInt(7)))
	assert.True(t, hourly.UnitPrice.Equal(decimal.NewFromInt(40)))

	assert.True(t, inv.TaxTotal().Equal(decimal.RequireFromString("17.75")))
	assert.Equal(t, inv.UpdatedAt, inv.Stamp())
}

func TestNewInvoice_Rejects(t *testing.T) {
	t.Run("no lines", func(t *testing.T) {
		_, err := NewInvoice(NewInvoiceParams{OwnerID: uuid.New()})
		assert.Error(t, err)
	})

	t.Run("description count mismatch", func(t *testing.T) {
		_, err := NewInvoice(NewInvoiceParams{Totals: sampleTotals(), Descriptions: []string{"only one"}})
		assert.Error(t, err)
	})
}

func TestInvoiceStamp_FallsBackToCreatedAt(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	inv := &Invoice{CreatedAt: created}
	assert.Equal(t, created, inv.Stamp())
}
