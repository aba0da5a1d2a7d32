package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HourlyRate is a catalogue rate billed by worked time.
type HourlyRate struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Label     Name
	Rate      decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewHourlyRate(ownerID uuid.UUID, label Name, rate decimal.Decimal) *HourlyRate {
	now := time.Now().UTC()
	return &HourlyRate{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Label:     label,
		Rate:      rate.Round(2),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (h *HourlyRate) Update(label Name, rate decimal.Decimal) {
	h.Label = label
	h.Rate = rate.Round(2)
	h.UpdatedAt = time.Now().UTC()
}
