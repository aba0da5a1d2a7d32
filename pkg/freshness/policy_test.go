package freshness

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newRequest(target string, headers map[string]string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	return r
}

func compositePolicy() Policy[record] {
	return Policy[record]{
		Checks: []Check[record]{CountCheck[record](), ETagCheck[record](latestByDate())},
		Bypass: AnyQueryParam("sort", "client_id"),
	}
}

func TestEvaluate_CountMatch(t *testing.T) {
	p := Policy[record]{Checks: []Check[record]{CountCheck[record]()}}
	records := make([]record, 3)

	d := p.Evaluate(newRequest("/api/products", map[string]string{HeaderCollectionCount: "3"}), records)
	if !d.Unchanged {
		t.Fatal("expected unchanged")
	}
	if d.Headers[HeaderCollectionCount] != "3" {
		t.Fatalf("expected count header 3, got %q", d.Headers[HeaderCollectionCount])
	}
}

func TestEvaluate_CountMismatchOrMissing(t *testing.T) {
	p := Policy[record]{Checks: []Check[record]{CountCheck[record]()}}
	records := make([]record, 3)

	if p.Evaluate(newRequest("/", map[string]string{HeaderCollectionCount: "2"}), records).Unchanged {
		t.Fatal("expected changed on mismatched count")
	}
	if p.Evaluate(newRequest("/", nil), records).Unchanged {
		t.Fatal("expected changed when client sent nothing")
	}
}

func TestEvaluate_EmptyCollectionCountMatches(t *testing.T) {
	p := Policy[record]{Checks: []Check[record]{CountCheck[record]()}}
	if !p.Evaluate(newRequest("/", map[string]string{HeaderCollectionCount: "0"}), nil).Unchanged {
		t.Fatal("expected unchanged for an empty collection the client already holds")
	}
}

func TestEvaluate_ETagForms(t *testing.T) {
	records := []record{{Date: day(1), UpdatedAt: day(1)}}
	signal := FormatStamp(day(1))
	p := Policy[record]{Checks: []Check[record]{ETagCheck[record](latestByDate())}}

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{"quoted", `"` + signal + `"`, true},
		{"weak", `W/"` + signal + `"`, true},
		{"bare", signal, true},
		{"list", `"other", "` + signal + `"`, true},
		{"wildcard", "*", true},
		{"stale", `"2023-01-01T00:00:00.000Z"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := p.Evaluate(newRequest("/", map[string]string{HeaderIfNoneMatch: tt.header}), records)
			if d.Unchanged != tt.want {
				t.Fatalf("expected unchanged=%v, got %v", tt.want, d.Unchanged)
			}
			if d.Headers[HeaderETag] != `"`+signal+`"` {
				t.Fatalf("expected quoted ETag, got %q", d.Headers[HeaderETag])
			}
		})
	}
}

func TestEvaluate_EmptyCollectionComposite(t *testing.T) {
	first := compositePolicy().Evaluate(newRequest("/api/invoices", nil), nil)
	if first.Unchanged {
		t.Fatal("expected changed without client signals")
	}
	if got := first.Headers[HeaderETag]; got != `"`+EmptySignal+`"` {
		t.Fatalf("expected stable ETag for an empty collection, got %q", got)
	}

	echoed := map[string]string{
		HeaderCollectionCount: first.Headers[HeaderCollectionCount],
		HeaderIfNoneMatch:     first.Headers[HeaderETag],
	}
	if !compositePolicy().Evaluate(newRequest("/api/invoices", echoed), nil).Unchanged {
		t.Fatal("expected unchanged when the client echoes the empty collection's signals")
	}

	// the first record invalidates both signals
	added := []record{{Date: day(1), UpdatedAt: day(1)}}
	if compositePolicy().Evaluate(newRequest("/api/invoices", echoed), added).Unchanged {
		t.Fatal("expected changed after the first record is added")
	}
}

func TestEvaluate_CompositeRequiresEveryCheck(t *testing.T) {
	records := []record{{Date: day(1), UpdatedAt: day(1)}, {Date: day(2), UpdatedAt: day(2)}}
	etag := `"` + FormatStamp(day(2)) + `"`
	p := compositePolicy()

	both := map[string]string{HeaderCollectionCount: "2", HeaderIfNoneMatch: etag}
	if !p.Evaluate(newRequest("/api/invoices", both), records).Unchanged {
		t.Fatal("expected unchanged when count and ETag match")
	}

	countOnly := map[string]string{HeaderCollectionCount: "2"}
	if p.Evaluate(newRequest("/api/invoices", countOnly), records).Unchanged {
		t.Fatal("expected changed when the ETag is missing")
	}

	staleETag := map[string]string{HeaderCollectionCount: "2", HeaderIfNoneMatch: `"` + FormatStamp(day(1)) + `"`}
	if p.Evaluate(newRequest("/api/invoices", staleETag), records).Unchanged {
		t.Fatal("expected changed when the ETag is stale")
	}
}

func TestEvaluate_Bypass(t *testing.T) {
	records := []record{{Date: day(1), UpdatedAt: day(1)}}
	headers := map[string]string{
		HeaderCollectionCount: "1",
		HeaderIfNoneMatch:     `"` + FormatStamp(day(1)) + `"`,
	}

	for _, target := range []string{"/api/invoices?sort=total_desc", "/api/invoices?client_id=abc"} {
		d := compositePolicy().Evaluate(newRequest(target, headers), records)
		if d.Unchanged || !d.Bypassed {
			t.Fatalf("%s: expected bypassed 200, got %+v", target, d)
		}
		if len(d.Headers) != 2 {
			t.Fatalf("%s: expected signals to still be reported, got %v", target, d.Headers)
		}
	}

	always := Policy[record]{Checks: []Check[record]{CountCheck[record]()}, Bypass: Always}
	if always.Evaluate(newRequest("/", map[string]string{HeaderCollectionCount: "1"}), records).Unchanged {
		t.Fatal("expected Always to bypass")
	}
}

func TestEvaluate_NoChecksNeverUnchanged(t *testing.T) {
	if (Policy[record]{}).Evaluate(newRequest("/", nil), nil).Unchanged {
		t.Fatal("expected a policy without checks to always serve the body")
	}
}
