package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Sentinel errors for the invoice domain. Use errors.Is() to check these.
var (
	// ErrInvoiceNotFound indicates the requested invoice does not exist for the owner.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrEmptyInvoice indicates an invoice was submitted without lines.
	ErrEmptyInvoice = errors.New("invoice must contain at least one line")

	// ErrItemResolution indicates a line references a catalogue entry that
	// cannot be found for the owner.
	ErrItemResolution = errors.New("catalogue item could not be resolved")

	// ErrInvalidNumericInput indicates a line carries a quantity, price,
	// rate, break or timestamp outside its allowed range.
	ErrInvalidNumericInput = errors.New("invalid numeric input")
	// ErrUnknownClient indicates the invoice is addressed to a client the
	// owner does not have.
	ErrUnknownClient = errors.New("client not found")
	// ErrInvalidSort indicates an unsupported sort order on the invoice list.
	ErrInvalidSort = errors.New("invalid sort order")
	// ErrInvalidFilter indicates a malformed filter on the invoice list.
	ErrInvalidFilter = errors.New("invalid list filter")
	// ErrInvalidDueDate indicates a due date earlier than the invoice date.
	ErrInvalidDueDate = errors.New("due date must not precede the invoice date")
)

// LineError is implemented by errors that pinpoint a single invoice line.
type LineError interface {
	error
	LineNumber() int
	FieldName() string
}

// ItemResolutionError reports an unresolvable catalogue reference.
// Line is 1-based.
type ItemResolutionError struct {
	Line   int
	Field  string
	ItemID uuid.UUID
}

func (e *ItemResolutionError) Error() string {
	return fmt.Sprintf("line %d: %s %s not found", e.Line, e.Field, e.ItemID)
}

func (e *ItemResolutionError) Unwrap() error     { return ErrItemResolution }
func (e *ItemResolutionError) LineNumber() int   { return e.Line }
func (e *ItemResolutionError) FieldName() string { return e.Field }

// InvalidNumericInputError reports a line value rejected before computation.
type InvalidNumericInputError struct {
	Line   int
	Field  string
	Reason string
}

func (e *InvalidNumericInputError) Error() string {
	return fmt.Sprintf("line %d: %s %s", e.Line, e.Field, e.Reason)
}

func (e *InvalidNumericInputError) Unwrap() error     { return ErrInvalidNumericInput }
func (e *InvalidNumericInputError) LineNumber() int   { return e.Line }
func (e *InvalidNumericInputError) FieldName() string { return e.Field }

// LineErrors collects every offending line of a submission so the caller can
// report them all at once.
type LineErrors []LineError

func (le LineErrors) Error() string {
	msgs := make([]string, len(le))
	for i, e := range le {
		msgs[i] = e.Error()
	}
	return "invalid invoice lines: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (le LineErrors) Unwrap() []error {
	errs := make([]error, len(le))
	for i, e := range le {
		errs[i] = e
	}
	return errs
}

// Err returns nil when no line failed.
func (le LineErrors) Err() error {
	if len(le) == 0 {
		return nil
	}
	return le
}
