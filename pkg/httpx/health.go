package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (Database, RedisClient, EventBus and TemporalClient all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthCheck names one probed dependency.
type HealthCheck struct {
	Name    string
	Checker HealthChecker
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler probes every dependency and answers 503 when any of them fails.
// A nil Checker is skipped, which lets optional dependencies stay in the list.
func HealthHandler(checks ...HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		for _, c := range checks {
			if c.Checker == nil {
				continue
			}
			if err := c.Checker.Ping(ctx); err != nil {
				resp.Status = "degraded"
				resp.Checks[c.Name] = "unreachable"
				continue
			}
			resp.Checks[c.Name] = "ok"
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
