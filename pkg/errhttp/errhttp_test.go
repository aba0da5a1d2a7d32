package errhttp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/daouest/factureme/pkg/auth"
	"github.com/daouest/factureme/pkg/freshness"
	"github.com/daouest/factureme/pkg/logger"
	accountdomain "github.com/daouest/factureme/services/account/domain"
	catalogdomain "github.com/daouest/factureme/services/catalog/domain"
	invoicedomain "github.com/daouest/factureme/services/invoice/domain"
)

func TestResponder_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invoice not found", invoicedomain.ErrInvoiceNotFound, http.StatusNotFound},
		{"wrapped product not found", fmt.Errorf("get product: %w", catalogdomain.ErrProductNotFound), http.StatusNotFound},
		{"rate not found", catalogdomain.ErrRateNotFound, http.StatusNotFound},
		{"client not found", catalogdomain.ErrClientNotFound, http.StatusNotFound},
		{"email taken", accountdomain.ErrEmailTaken, http.StatusConflict},
		{"bad credentials", accountdomain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"no session user", auth.ErrUserIDNotFound, http.StatusUnauthorized},
		{"forbidden", accountdomain.ErrForbidden, http.StatusForbidden},
		{"empty invoice", invoicedomain.ErrEmptyInvoice, http.StatusUnprocessableEntity},
		{"invalid province", catalogdomain.ErrInvalidProvince, http.StatusUnprocessableEntity},
		{"invalid catalogue entry", fmt.Errorf("create product: %w", catalogdomain.ErrInvalidEntry), http.StatusUnprocessableEntity},
		{"unknown client on invoice", invoicedomain.ErrUnknownClient, http.StatusUnprocessableEntity},
		{"due date before invoice date", invoicedomain.ErrInvalidDueDate, http.StatusUnprocessableEntity},
		{"bad sort", invoicedomain.ErrInvalidSort, http.StatusBadRequest},
		{"bad client filter", invoicedomain.ErrInvalidFilter, http.StatusBadRequest},
		{"weak password", accountdomain.ErrWeakPassword, http.StatusUnprocessableEntity},
		{"wrapped unauthenticated list", &freshness.StorageFetchError{Endpoint: "products", Err: auth.ErrUserIDNotFound}, http.StatusUnauthorized},
		{"storage fetch", &freshness.StorageFetchError{Endpoint: "invoices", Err: errors.New("db down")}, http.StatusInternalServerError},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			NewResponder(logger.Discard(), false).Write(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not valid JSON: %v", err)
			}
			if _, ok := body["error"]; !ok {
				t.Fatal("response body missing 'error' key")
			}
		})
	}
}

func TestResponder_LineErrorsListEveryLine(t *testing.T) {
	errs := invoicedomain.LineErrors{
		&invoicedomain.ItemResolutionError{Line: 1, Field: "product_id", ItemID: uuid.New()},
		&invoicedomain.InvalidNumericInputError{Line: 2, Field: "quantity", Reason: "must be at least 1"},
	}

	w := httptest.NewRecorder()
	NewResponder(logger.Discard(), true).Write(w, httptest.NewRequest(http.MethodPost, "/api/invoices", http.NoBody), fmt.Errorf("create invoice: %w", errs))

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	var body LineErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Lines) != 2 {
		t.Fatalf("expected 2 line details, got %d", len(body.Lines))
	}
	if body.Lines[0].Line != 1 || body.Lines[0].Field != "product_id" {
		t.Errorf("unexpected first detail %+v", body.Lines[0])
	}
	if body.Lines[1].Line != 2 || body.Lines[1].Field != "quantity" {
		t.Errorf("unexpected second detail %+v", body.Lines[1])
	}
}

func TestResponder_HidesServerErrorsInProduction(t *testing.T) {
	var buf bytes.Buffer
	rs := NewResponder(logger.NewWithWriter(&buf, "info"), true)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/invoices", http.NoBody)
	rs.Write(w, r, errors.New("pq: connection reset"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "connection reset") {
		t.Fatalf("internal detail leaked: %s", w.Body.String())
	}
	if !strings.Contains(buf.String(), "connection reset") {
		t.Fatal("expected the internal error to be logged")
	}
}

func TestResponder_KeepsClientErrors(t *testing.T) {
	rs := NewResponder(logger.Discard(), true)

	w := httptest.NewRecorder()
	rs.Write(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), accountdomain.ErrEmailTaken)

	if w.Code != http.StatusConflict || !strings.Contains(w.Body.String(), "email already registered") {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
