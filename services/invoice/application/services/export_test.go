package services

import "time"

// SetClock replaces the service clock.
func (s *InvoiceService) SetClock(now func() time.Time) {
	s.now = now
}
