package freshness

import (
	"testing"
	"time"
)

type record struct {
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	UpdatedAt time.Time `json:"updated_at"`
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func latestByDate() LatestTimestamp[record] {
	return LatestTimestamp[record]{
		Date:  func(r record) time.Time { return r.Date },
		Stamp: func(r record) time.Time { return r.UpdatedAt },
	}
}

func TestCount(t *testing.T) {
	var s Count[record]
	if got := s.DeriveSignal(nil); got != "0" {
		t.Fatalf("expected 0, got %q", got)
	}
	if got := s.DeriveSignal(make([]record, 12)); got != "12" {
		t.Fatalf("expected 12, got %q", got)
	}
}

func TestLatestTimestamp_PicksMaxRegardlessOfOrder(t *testing.T) {
	stamp := time.Date(2024, 2, 1, 10, 30, 0, 123_000_000, time.UTC)
	records := []record{
		{Name: "b", Date: day(5), UpdatedAt: day(5)},
		{Name: "latest", Date: day(20), UpdatedAt: stamp},
		{Name: "a", Date: day(1), UpdatedAt: day(1)},
	}

	got := latestByDate().DeriveSignal(records)
	if want := "2024-02-01T10:30:00.123Z"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLatestTimestamp_TieGoesToLatestStamp(t *testing.T) {
	at := func(h int) time.Time { return day(9).Add(time.Duration(h) * time.Hour) }

	tests := []struct {
		name    string
		records []record
		want    time.Time
	}{
		{
			name: "NewestFirst",
			records: []record{
				{Name: "b", Date: day(9), UpdatedAt: at(10)},
				{Name: "a", Date: day(9), UpdatedAt: at(9)},
			},
			want: at(10),
		},
		{
			name: "NewestLast",
			records: []record{
				{Name: "a", Date: day(9), UpdatedAt: at(9)},
				{Name: "b", Date: day(9), UpdatedAt: at(10)},
			},
			want: at(10),
		},
		{
			name: "EarlierDateNewerStamp",
			records: []record{
				{Name: "old", Date: day(8), UpdatedAt: at(23)},
				{Name: "b", Date: day(9), UpdatedAt: at(10)},
			},
			want: at(10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := latestByDate().DeriveSignal(tt.records), FormatStamp(tt.want); got != want {
				t.Fatalf("expected %q, got %q", want, got)
			}
		})
	}
}

func TestLatestTimestamp_SameDayReplacementChangesSignal(t *testing.T) {
	at := func(h int) time.Time { return day(15).Add(time.Duration(h) * time.Hour) }
	a := record{Name: "a", Date: day(15), UpdatedAt: at(9)}
	b := record{Name: "b", Date: day(15), UpdatedAt: at(10)}
	c := record{Name: "c", Date: day(15), UpdatedAt: at(11)}

	// listed newest first, as the invoice repository does
	before := latestByDate().DeriveSignal([]record{b, a})
	after := latestByDate().DeriveSignal([]record{c, a})

	if before == after {
		t.Fatalf("expected the signal to change when b is replaced by c, both %q", before)
	}
}

func TestLatestTimestamp_DefaultsStampToDate(t *testing.T) {
	s := LatestTimestamp[record]{Date: func(r record) time.Time { return r.Date }}
	got := s.DeriveSignal([]record{{Date: day(3)}})
	if want := "2024-01-03T00:00:00.000Z"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLatestTimestamp_Empty(t *testing.T) {
	if got := latestByDate().DeriveSignal(nil); got != EmptySignal {
		t.Fatalf("expected %q, got %q", EmptySignal, got)
	}
}

func TestLatestTimestamp_ChangesWhenLatestEdited(t *testing.T) {
	records := []record{{Date: day(1), UpdatedAt: day(1)}, {Date: day(2), UpdatedAt: day(2)}}
	before := latestByDate().DeriveSignal(records)

	records[1].UpdatedAt = day(3)
	after := latestByDate().DeriveSignal(records)

	if before == after {
		t.Fatal("expected signal to change after editing the latest record")
	}
}

func TestFormatStamp_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	got := FormatStamp(time.Date(2024, 1, 1, 19, 0, 0, 0, loc))
	if want := "2024-01-02T00:00:00.000Z"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestContentHash(t *testing.T) {
	var s ContentHash[record]
	records := []record{{Name: "a", Date: day(1)}}

	first := s.DeriveSignal(records)
	if first == "" {
		t.Fatal("expected non-empty hash")
	}
	if again := s.DeriveSignal(records); again != first {
		t.Fatalf("expected stable hash, got %q then %q", first, again)
	}

	records[0].Name = "b"
	if changed := s.DeriveSignal(records); changed == first {
		t.Fatal("expected hash to change after an edit")
	}
}
