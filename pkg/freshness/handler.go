package freshness

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/daouest/factureme/pkg/httpx"
)

// Outcomes reported by Recorder.
const (
	OutcomeNotModified = "not_modified"
	OutcomeChanged     = "changed"
	OutcomeBypassed    = "bypassed"
	OutcomeError       = "error"
)

// StorageFetchError wraps a failure to load the records of a list endpoint.
type StorageFetchError struct {
	Endpoint string
	Err      error
}

func (e *StorageFetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
}

func (e *StorageFetchError) Unwrap() error { return e.Err }

// Recorder counts responses per endpoint and outcome. A nil Recorder is valid
// and records nothing.
type Recorder struct {
	responses metric.Int64Counter
}

// NewRecorder registers the freshness.responses counter on meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	counter, err := meter.Int64Counter("freshness.responses",
		metric.WithDescription("List responses by conditional fetch outcome"),
		metric.WithUnit("{response}"),
	)
	if err != nil {
		return nil, fmt.Errorf("freshness: create counter: %w", err)
	}
	return &Recorder{responses: counter}, nil
}

func (r *Recorder) record(ctx context.Context, endpoint, outcome string) {
	if r == nil {
		return
	}
	r.responses.Add(ctx, 1, metric.WithAttributes(
		attribute.String("endpoint", endpoint),
		attribute.String("outcome", outcome),
	))
}

// Handler serves a list endpoint under a freshness policy.
//
// Load fetches the records for the request's owner. Render, when set, maps
// the records to the response body; otherwise the records are encoded as is.
// OnError writes the response for a failed load and defaults to a bare 500.
// No signal header is ever written on that path.
type Handler[T any] struct {
	Endpoint string
	Policy   Policy[T]
	Load     func(r *http.Request) ([]T, error)
	Render   func(records []T) any
	OnError  func(w http.ResponseWriter, r *http.Request, err error)
	Recorder *Recorder
}

func (h Handler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.Load(r)
	if err != nil {
		h.Recorder.record(ctx, h.Endpoint, OutcomeError)
		fetchErr := &StorageFetchError{Endpoint: h.Endpoint, Err: err}
		if h.OnError != nil {
			h.OnError(w, r, fetchErr)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	decision := h.Policy.Evaluate(r, records)
	for name, value := range decision.Headers {
		w.Header().Set(name, value)
	}

	if decision.Unchanged {
		h.Recorder.record(ctx, h.Endpoint, OutcomeNotModified)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	outcome := OutcomeChanged
	if decision.Bypassed {
		outcome = OutcomeBypassed
	}
	h.Recorder.record(ctx, h.Endpoint, outcome)

	var body any = records
	if h.Render != nil {
		body = h.Render(records)
	}
	if records == nil && h.Render == nil {
		body = []T{}
	}
	httpx.JSON(w, http.StatusOK, body)
}
