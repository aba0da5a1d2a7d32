package validator_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	pkgvalidator "github.com/daouest/factureme/pkg/validator"
)

type productRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=10"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"gte=0"`
	Email     string          `json:"email" validate:"omitempty,email"`
}

type line struct {
	Quantity int `json:"quantity" validate:"gte=1"`
}

type invoiceRequest struct {
	Province string `json:"province" validate:"omitempty,province"`
	Lines    []line `json:"lines" validate:"required,min=1,dive"`
}

func TestValidate_Valid(t *testing.T) {
	s := productRequest{Name: "Widget", UnitPrice: decimal.RequireFromString("19.99")}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestFormatValidationErrors_Messages(t *testing.T) {
	tests := []struct {
		name  string
		input productRequest
		field string
		want  string
	}{
		{"required", productRequest{}, "name", "This field is required"},
		{"max", productRequest{Name: "12345678901"}, "name", "Maximum length is 10"},
		{"negative decimal", productRequest{Name: "a", UnitPrice: decimal.RequireFromString("-0.01")}, "unit_price", "Must be greater than or equal to 0"},
		{"email", productRequest{Name: "a", Email: "nope"}, "email", "Must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&tt.input))
			if m[tt.field] != tt.want {
				t.Fatalf("%s: got %q, want %q (all: %v)", tt.field, m[tt.field], tt.want, m)
			}
		})
	}
}

func TestFormatValidationErrors_NestedPath(t *testing.T) {
	s := invoiceRequest{Lines: []line{{Quantity: 1}, {Quantity: 0}}}
	m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&s))
	if m["lines[1].quantity"] != "Must be greater than or equal to 1" {
		t.Fatalf("unexpected messages %v", m)
	}
}

func TestProvince(t *testing.T) {
	ok := invoiceRequest{Province: "qc", Lines: []line{{Quantity: 1}}}
	if err := pkgvalidator.Validate(&ok); err != nil {
		t.Fatalf("expected lower-case province to pass, got %v", err)
	}

	bad := invoiceRequest{Province: "XX", Lines: []line{{Quantity: 1}}}
	m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&bad))
	if !strings.Contains(m["province"], "Canadian province") {
		t.Fatalf("unexpected messages %v", m)
	}

	if !pkgvalidator.IsProvince(" on ") || pkgvalidator.IsProvince("ZZ") {
		t.Fatal("IsProvince mismatch")
	}
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	if m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie); len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantStatus int
	}{
		{"valid", `{"name":"Widget","unit_price":"10.50"}`, true, http.StatusOK},
		{"numeric price", `{"name":"Widget","unit_price":10.5}`, true, http.StatusOK},
		{"malformed json", `{"name":`, false, http.StatusBadRequest},
		{"validation failure", `{"unit_price":"-1"}`, false, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(tt.body))

			req, ok := pkgvalidator.ValidateRequest[productRequest](w, r)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok {
				if req.Name != "Widget" {
					t.Fatalf("unexpected decoded request %+v", req)
				}
				return
			}
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestValidateRequest_FieldsInBody(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"lines":[{"quantity":0}]}`))

	if _, ok := pkgvalidator.ValidateRequest[invoiceRequest](w, r); ok {
		t.Fatal("expected failure")
	}
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "Validation failed" || body.Fields["lines[0].quantity"] == "" {
		t.Fatalf("unexpected body %+v", body)
	}
}
