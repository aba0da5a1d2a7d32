// Package freshness implements conditional fetches for owner-scoped list
// endpoints. A Strategy derives a cheap signal from the current records; when
// every signal the client sent back still matches, the endpoint answers 304
// without a body.
//
// Signals are approximations chosen per endpoint. A count misses in-place
// edits, and a latest-timestamp signal misses edits to records other than the
// most recent one.
package freshness

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// EmptySignal is the signal of an empty collection for strategies that derive
// their value from a record.
const EmptySignal = "empty"

// StampLayout renders timestamps the way browsers render Date.toISOString.
const StampLayout = "2006-01-02T15:04:05.000Z"

// Strategy derives a freshness signal from a collection. The signal must be
// stable while the collection is unchanged, including when it is empty. An
// empty string never matches anything the client sends.
type Strategy[T any] interface {
	DeriveSignal(records []T) string
}

// Count signals the number of records.
type Count[T any] struct{}

func (Count[T]) DeriveSignal(records []T) string {
	return strconv.Itoa(len(records))
}

// LatestTimestamp signals the stamp of the most recently dated record.
// Date selects the ordering field and Stamp the value reported for the
// winning record (Date itself when nil). Records are scanned, so storage order
// does not matter. Records sharing the latest date resolve to the latest
// stamp, then to the one that appears last. An empty collection signals
// EmptySignal.
type LatestTimestamp[T any] struct {
	Date  func(T) time.Time
	Stamp func(T) time.Time
}

func (s LatestTimestamp[T]) DeriveSignal(records []T) string {
	if len(records) == 0 {
		return EmptySignal
	}

	stamp := s.Date
	if s.Stamp != nil {
		stamp = s.Stamp
	}

	best := 0
	for i := 1; i < len(records); i++ {
		d, bd := s.Date(records[i]), s.Date(records[best])
		switch {
		case d.After(bd):
			best = i
		case d.Equal(bd) && !stamp(records[i]).Before(stamp(records[best])):
			best = i
		}
	}
	return FormatStamp(stamp(records[best]))
}

// ContentHash signals an xxhash of the JSON encoding of the collection. It
// catches every visible change at the cost of serializing the records.
type ContentHash[T any] struct{}

func (ContentHash[T]) DeriveSignal(records []T) string {
	b, err := json.Marshal(records)
	if err != nil {
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64(b), 16)
}

// FormatStamp formats t in UTC with millisecond precision.
func FormatStamp(t time.Time) string {
	return t.UTC().Format(StampLayout)
}
