package postgres

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daouest/factureme/services/invoice/domain/models"
	"github.com/daouest/factureme/services/invoice/infrastructure/persistence/postgres/db"
)

func TestLineParams_RoundTrip(t *testing.T) {
	start := time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)
	hours := decimal.RequireFromString("2.5")

	tests := []models.StoredLine{
		{
			Position:    1,
			Kind:        models.LineKindProduct,
			CatalogID:   uuid.New(),
			Description: "Widget",
			Quantity:    3,
			UnitPrice:   decimal.RequireFromString("19.99"),
			LineTotal:   decimal.RequireFromString("59.97"),
		},
		{
			Position:     2,
			Kind:         models.LineKindHourly,
			CatalogID:    uuid.New(),
			Description:  "Consulting",
			UnitPrice:    decimal.NewFromInt(80),
			StartTime:    &start,
			EndTime:      &end,
			BreakMinutes: 30,
			HoursWorked:  decimal.NewNullDecimal(hours),
			LineTotal:    decimal.NewFromInt(200),
		},
	}

	invoiceID := uuid.New()
	for _, want := range tests {
		p := lineParams(invoiceID, want)
		if p.InvoiceID != invoiceID {
			t.Fatalf("invoice id not carried")
		}
		if want.Kind == models.LineKindHourly && p.Quantity.Valid {
			t.Fatalf("hourly line must store a NULL quantity")
		}

		got := rowToLine(db.InvoiceLine{
			InvoiceID:    p.InvoiceID,
			Position:     p.Position,
			Kind:         p.Kind,
			CatalogID:    p.CatalogID,
			Description:  p.Description,
			Quantity:     p.Quantity,
			UnitPrice:    p.UnitPrice,
			StartTime:    p.StartTime,
			EndTime:      p.EndTime,
			BreakMinutes: p.BreakMinutes,
			HoursWorked:  p.HoursWorked,
			LineTotal:    p.LineTotal,
		})
		if got.Position != want.Position || got.Kind != want.Kind || got.Quantity != want.Quantity {
			t.Errorf("line %d: got %+v", want.Position, got)
		}
		if !got.LineTotal.Equal(want.LineTotal) || got.HoursWorked.Valid != want.HoursWorked.Valid {
			t.Errorf("line %d: amounts differ: %+v", want.Position, got)
		}
		if (got.StartTime == nil) != (want.StartTime == nil) {
			t.Errorf("line %d: start time presence differs", want.Position)
		}
	}
}

func TestRowToInvoice(t *testing.T) {
	taxes, _ := json.Marshal([]models.TaxRate{{Name: models.TaxTVS, Rate: decimal.NewFromInt(5), Amount: decimal.RequireFromString("5.00")}})
	row := db.Invoice{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Number:      "FM-20240115-0001",
		InvoiceDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Province:    "QC",
		Subtotal:    decimal.NewFromInt(100),
		Taxes:       taxes,
		Total:       decimal.NewFromInt(105),
	}

	inv, err := rowToInvoice(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.ClientID != uuid.Nil || inv.DueDate != nil {
		t.Fatalf("NULL client and due date must map to zero values, got %+v", inv)
	}
	if len(inv.Taxes) != 1 || inv.Taxes[0].Name != models.TaxTVS {
		t.Fatalf("unexpected taxes %+v", inv.Taxes)
	}

	row.Taxes = []byte("{")
	if _, err := rowToInvoice(row); err == nil {
		t.Fatal("expected error for corrupt taxes")
	}
}

func TestNullHelpers(t *testing.T) {
	if nullUUID(uuid.Nil).Valid {
		t.Error("nil uuid must be NULL")
	}
	if !nullUUID(uuid.New()).Valid {
		t.Error("set uuid must be valid")
	}
	if nullTime(nil).Valid {
		t.Error("nil time must be NULL")
	}
	local := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))
	if got := dateOnly(local); !got.Equal(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("dateOnly kept the wall date? got %v", got)
	}
}
