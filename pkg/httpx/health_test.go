package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/daouest/factureme/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

type healthBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func TestHealthHandler(t *testing.T) {
	down := errors.New("conn refused")
	tests := []struct {
		name       string
		checks     []httpx.HealthCheck
		wantStatus int
		wantBody   healthBody
	}{
		{
			name: "all healthy",
			checks: []httpx.HealthCheck{
				{Name: "database", Checker: &stubChecker{}},
				{Name: "redis", Checker: &stubChecker{}},
			},
			wantStatus: http.StatusOK,
			wantBody:   healthBody{Status: "ok", Checks: map[string]string{"database": "ok", "redis": "ok"}},
		},
		{
			name: "database down",
			checks: []httpx.HealthCheck{
				{Name: "database", Checker: &stubChecker{err: down}},
				{Name: "redis", Checker: &stubChecker{}},
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   healthBody{Status: "degraded", Checks: map[string]string{"database": "unreachable", "redis": "ok"}},
		},
		{
			name: "optional dependency absent",
			checks: []httpx.HealthCheck{
				{Name: "event_bus", Checker: &stubChecker{}},
				{Name: "temporal", Checker: nil},
			},
			wantStatus: http.StatusOK,
			wantBody:   healthBody{Status: "ok", Checks: map[string]string{"event_bus": "ok"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			httpx.HealthHandler(tt.checks...).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rr.Code)
			}
			var got healthBody
			if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Status != tt.wantBody.Status {
				t.Errorf("status: got %q, want %q", got.Status, tt.wantBody.Status)
			}
			if len(got.Checks) != len(tt.wantBody.Checks) {
				t.Fatalf("checks: got %v, want %v", got.Checks, tt.wantBody.Checks)
			}
			for k, v := range tt.wantBody.Checks {
				if got.Checks[k] != v {
					t.Errorf("%s: got %q, want %q", k, got.Checks[k], v)
				}
			}
		})
	}
}
