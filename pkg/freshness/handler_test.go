package freshness

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type store struct {
	records []record
	err     error
}

func (s *store) handler(rec *Recorder) Handler[record] {
	return Handler[record]{
		Endpoint: "products",
		Policy:   Policy[record]{Checks: []Check[record]{CountCheck[record]()}},
		Load: func(*http.Request) ([]record, error) {
			return s.records, s.err
		},
		Recorder: rec,
	}
}

func serve(h http.Handler, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, newRequest("/api/products", headers))
	return w
}

func TestHandler_SecondRequestNotModified(t *testing.T) {
	s := &store{records: []record{{Name: "a"}, {Name: "b"}}}
	h := s.handler(nil)

	first := serve(h, nil)
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}
	var body []record
	if err := json.Unmarshal(first.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 records, got %d", len(body))
	}

	signal := first.Header().Get(HeaderCollectionCount)
	second := serve(h, map[string]string{HeaderCollectionCount: signal})
	if second.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", second.Code)
	}
	if second.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", second.Body.String())
	}
}

func TestHandler_InsertBetweenRequestsReturnsFullList(t *testing.T) {
	s := &store{records: []record{{Name: "a"}}}
	h := s.handler(nil)

	first := serve(h, nil)
	s.records = append(s.records, record{Name: "b"})

	second := serve(h, map[string]string{HeaderCollectionCount: first.Header().Get(HeaderCollectionCount)})
	if second.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", second.Code)
	}
	if got := second.Header().Get(HeaderCollectionCount); got != "2" {
		t.Fatalf("expected new count 2, got %q", got)
	}
	var body []record
	if err := json.Unmarshal(second.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected full updated list, got %d records", len(body))
	}
}

func TestHandler_EmptyListEncodesArray(t *testing.T) {
	h := (&store{}).handler(nil)
	w := serve(h, nil)
	if got := w.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", got)
	}
}

func TestHandler_LoadErrorIsServerErrorWithoutSignals(t *testing.T) {
	s := &store{err: errors.New("connection refused")}
	h := s.handler(nil)

	w := serve(h, map[string]string{HeaderCollectionCount: "0"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if w.Header().Get(HeaderCollectionCount) != "" || w.Header().Get(HeaderETag) != "" {
		t.Fatalf("expected no signal headers, got %v", w.Header())
	}
}

func TestHandler_OnErrorReceivesStorageFetchError(t *testing.T) {
	cause := errors.New("timeout")
	s := &store{err: cause}
	h := s.handler(nil)

	var got error
	h.OnError = func(w http.ResponseWriter, _ *http.Request, err error) {
		got = err
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	w := serve(h, nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected OnError status, got %d", w.Code)
	}
	var fetchErr *StorageFetchError
	if !errors.As(got, &fetchErr) {
		t.Fatalf("expected StorageFetchError, got %T", got)
	}
	if !errors.Is(got, cause) || fetchErr.Endpoint != "products" {
		t.Fatalf("unexpected error %v", got)
	}
}

func TestHandler_Render(t *testing.T) {
	s := &store{records: []record{{Name: "a"}}}
	h := s.handler(nil)
	h.Render = func(records []record) any {
		names := make([]string, len(records))
		for i, r := range records {
			names[i] = r.Name
		}
		return names
	}

	w := serve(h, nil)
	if got := w.Body.String(); got != "[\"a\"]\n" {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestHandler_RecordsOutcomes(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer provider.Shutdown(context.Background()) //nolint:errcheck

	rec, err := NewRecorder(provider.Meter("freshness-test"))
	if err != nil {
		t.Fatalf("new recorder: %v", err)
	}

	s := &store{records: []record{{Name: "a"}}}
	h := s.handler(rec)
	serve(h, nil)
	serve(h, map[string]string{HeaderCollectionCount: "1"})
	serve(h, map[string]string{HeaderCollectionCount: "1"})

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "freshness.responses" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("unexpected data type %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				outcome, _ := dp.Attributes.Value(attribute.Key("outcome"))
				counts[outcome.AsString()] += dp.Value
			}
		}
	}

	if counts[OutcomeChanged] != 1 || counts[OutcomeNotModified] != 2 {
		t.Fatalf("unexpected outcome counts %v", counts)
	}
}
