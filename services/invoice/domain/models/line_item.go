package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineKind discriminates the two kinds of invoice line.
type LineKind string

const (
	LineKindProduct LineKind = "product"
	LineKindHourly  LineKind = "hourly"
)

// LineItem is a resolved invoice line. The set of implementations is closed:
// ProductLine and HourlyLine are the only ones, and code switching on a
// LineItem handles both.
type LineItem interface {
	Kind() LineKind
	CatalogID() uuid.UUID
	isLineItem()
}

// ProductLine bills a catalogue product at a flat unit price.
type ProductLine struct {
	ID        uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

func (ProductLine) Kind() LineKind         { return LineKindProduct }
func (l ProductLine) CatalogID() uuid.UUID { return l.ID }
func (ProductLine) isLineItem()            {}

// HourlyLine bills worked time at a catalogue hourly rate.
type HourlyLine struct {
	ID           uuid.UUID
	HourlyRate   decimal.Decimal
	StartTime    time.Time
	EndTime      time.Time
	BreakMinutes int
}

func (HourlyLine) Kind() LineKind         { return LineKindHourly }
func (l HourlyLine) CatalogID() uuid.UUID { return l.ID }
func (HourlyLine) isLineItem()            {}
