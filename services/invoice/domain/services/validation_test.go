package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daouest/factureme/services/invoice/domain"
	"github.com/daouest/factureme/services/invoice/domain/models"
)

func TestValidateLines_Valid(t *testing.T) {
	lines := []models.LineItem{
		models.ProductLine{Quantity: 1, UnitPrice: dec("0")},
		models.HourlyLine{HourlyRate: dec("0"), StartTime: at(9, 0), EndTime: at(10, 0)},
	}
	assert.NoError(t, ValidateLines(lines).Err())
}

func TestValidateLines_CollectsEveryLine(t *testing.T) {
	lines := []models.LineItem{
		models.ProductLine{Quantity: 0, UnitPrice: dec("-1")},
		models.ProductLine{Quantity: 2, UnitPrice: dec("10")},
		models.HourlyLine{HourlyRate: dec("-5"), BreakMinutes: -1, EndTime: at(10, 0)},
	}

	errs := ValidateLines(lines)
	require.Len(t, errs, 5)

	type got struct {
		line  int
		field string
	}
	var pairs []got
	for _, e := range errs {
		pairs = append(pairs, got{e.LineNumber(), e.FieldName()})
		assert.ErrorIs(t, e, domain.ErrInvalidNumericInput)
	}
	assert.Equal(t, []got{
		{1, "quantity"},
		{1, "unit_price"},
		{3, "hourly_rate"},
		{3, "break_minutes"},
		{3, "start_time"},
	}, pairs)
}

func TestValidateLines_MissingEnd(t *testing.T) {
	errs := ValidateLines([]models.LineItem{models.HourlyLine{StartTime: at(9, 0), EndTime: time.Time{}}})
	require.Len(t, errs, 1)
	assert.Equal(t, "end_time", errs[0].FieldName())
}

func TestValidateLines_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		line      models.LineItem
		wantField string
	}{
		{
			name:      "QuantityPastIntegerColumn",
			line:      models.ProductLine{Quantity: MaxQuantity + 1, UnitPrice: dec("1")},
			wantField: "quantity",
		},
		{
			name:      "BreakLongerThanADay",
			line:      models.HourlyLine{HourlyRate: dec("50"), StartTime: at(9, 0), EndTime: at(17, 0), BreakMinutes: MaxBreakMinutes + 1},
			wantField: "break_minutes",
		},
		{
			name:      "ProductAmountPastMoneyColumn",
			line:      models.ProductLine{Quantity: MaxQuantity, UnitPrice: dec("10000000")},
			wantField: "line_total",
		},
		{
			name: "HourlyAmountPastMoneyColumn",
			line: models.HourlyLine{
				HourlyRate: dec("9999999999.99"),
				StartTime:  at(9, 0),
				EndTime:    at(11, 0),
			},
			wantField: "line_total",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateLines([]models.LineItem{models.ProductLine{Quantity: 1, UnitPrice: dec("1")}, tt.line})

			require.Len(t, errs, 1)
			assert.Equal(t, 2, errs[0].LineNumber())
			assert.Equal(t, tt.wantField, errs[0].FieldName())
			assert.ErrorIs(t, errs[0], domain.ErrInvalidNumericInput)
		})
	}
}

func TestValidateLines_AtBounds(t *testing.T) {
	lines := []models.LineItem{
		models.ProductLine{Quantity: MaxQuantity, UnitPrice: dec("9999.99")},
		models.HourlyLine{HourlyRate: dec("100"), StartTime: at(0, 0), EndTime: at(0, 0).Add(48 * time.Hour), BreakMinutes: MaxBreakMinutes},
	}
	assert.NoError(t, ValidateLines(lines).Err())
}
