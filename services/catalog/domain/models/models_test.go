package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Name
		wantErr bool
	}{
		{"plain", "Consultation", "Consultation", false},
		{"trimmed", "  Web design ", "Web design", false},
		{"blank", "   ", "", true},
		{"empty", "", "", true},
		{"too long", strings.Repeat("a", 256), "", true},
		{"max length", strings.Repeat("a", 255), Name(strings.Repeat("a", 255)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("NewName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewProduct(t *testing.T) {
	owner := uuid.New()
	p := NewProduct(owner, "Widget", "blue", decimal.RequireFromString("19.999"))

	if p.ID == uuid.Nil {
		t.Fatal("expected generated ID")
	}
	if p.OwnerID != owner {
		t.Fatalf("expected owner %v, got %v", owner, p.OwnerID)
	}
	if !p.UnitPrice.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("expected price rounded to 20.00, got %s", p.UnitPrice)
	}
	if !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Fatal("expected CreatedAt == UpdatedAt on creation")
	}
}

func TestProduct_UpdateBumpsUpdatedAt(t *testing.T) {
	p := NewProduct(uuid.New(), "Widget", "", decimal.NewFromInt(5))
	before := p.UpdatedAt

	p.Update("Gadget", "new", decimal.NewFromInt(7))

	if p.Name != "Gadget" || !p.UnitPrice.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("fields not updated: %+v", p)
	}
	if p.UpdatedAt.Before(before) {
		t.Fatal("UpdatedAt went backwards")
	}
}

func TestNewClient_NormalizesProvince(t *testing.T) {
	c := NewClient(uuid.New(), ClientDetails{Name: "Acme", Email: " billing@acme.ca ", Province: " on "})
	if c.Province != "ON" {
		t.Fatalf("expected ON, got %q", c.Province)
	}
	if c.Email != "billing@acme.ca" {
		t.Fatalf("expected trimmed email, got %q", c.Email)
	}
}

func TestNewHourlyRate(t *testing.T) {
	r := NewHourlyRate(uuid.New(), "Senior dev", decimal.RequireFromString("95.5"))
	if !r.Rate.Equal(decimal.RequireFromString("95.50")) {
		t.Fatalf("unexpected rate %s", r.Rate)
	}
}
