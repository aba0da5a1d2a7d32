package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineErrors_Unwrap(t *testing.T) {
	id := uuid.New()
	errs := LineErrors{
		&ItemResolutionError{Line: 1, Field: "product_id", ItemID: id},
		&InvalidNumericInputError{Line: 3, Field: "quantity", Reason: "must be at least 1"},
	}

	err := fmt.Errorf("preview invoice: %w", errs.Err())

	assert.ErrorIs(t, err, ErrItemResolution)
	assert.ErrorIs(t, err, ErrInvalidNumericInput)

	var resolution *ItemResolutionError
	require.ErrorAs(t, err, &resolution)
	assert.Equal(t, id, resolution.ItemID)

	var lines LineErrors
	require.ErrorAs(t, err, &lines)
	assert.Len(t, lines, 2)
	assert.Equal(t, 3, lines[1].LineNumber())
	assert.Equal(t, "quantity", lines[1].FieldName())
}

func TestLineErrors_ErrEmpty(t *testing.T) {
	var errs LineErrors
	assert.NoError(t, errs.Err())
}

func TestLineErrors_Message(t *testing.T) {
	errs := LineErrors{&InvalidNumericInputError{Line: 2, Field: "break_minutes", Reason: "must not be negative"}}
	assert.Equal(t, "invalid invoice lines: line 2: break_minutes must not be negative", errs.Error())
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrInvoiceNotFound, ErrEmptyInvoice, ErrItemResolution, ErrInvalidNumericInput}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Fatalf("%v should not match %v", a, b)
			}
		}
	}
}
