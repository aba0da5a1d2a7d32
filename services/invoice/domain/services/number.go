package services

import (
	"fmt"
	"time"
)

// FormatInvoiceNumber renders the human invoice number, e.g. FM-20240115-0007.
func FormatInvoiceNumber(date time.Time, seq int64) string {
	return fmt.Sprintf("FM-%s-%04d", date.Format("20060102"), seq)
}
