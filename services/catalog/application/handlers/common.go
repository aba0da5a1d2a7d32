package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/daouest/factureme/pkg/app"
	"github.com/daouest/factureme/pkg/auth"
	"github.com/daouest/factureme/pkg/errhttp"
	"github.com/daouest/factureme/pkg/freshness"
	"github.com/daouest/factureme/pkg/httpx"
	appsvcs "github.com/daouest/factureme/services/catalog/application/services"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"product not found"`
} // @name ErrorResponse

// base carries what every catalog handler needs.
type base struct {
	svc      *appsvcs.Services
	errs     *errhttp.Responder
	recorder *freshness.Recorder
}

func newBase(svc *appsvcs.Services, a *app.Application) base {
	return base{svc: svc, errs: a.Errors, recorder: a.Freshness}
}

// owner returns the authenticated owner or writes 401.
func (b base) owner(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		b.errs.Write(w, r, err)
		return uuid.Nil, false
	}
	return ownerID, true
}

// ownerAndID also parses the {id} route parameter, writing 400 when malformed.
func (b base) ownerAndID(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	ownerID, ok := b.owner(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	id, err := httpx.URLParamUUID(r, "id")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return uuid.Nil, uuid.Nil, false
	}
	return ownerID, id, true
}

// countedList serves an owner-scoped list under the X-Collection-Count policy.
func countedList[T any, R any](b base, endpoint string, load func(*http.Request, uuid.UUID) ([]T, error), render func(T) R) http.Handler {
	return freshness.Handler[T]{
		Endpoint: endpoint,
		Policy:   freshness.Policy[T]{Checks: []freshness.Check[T]{freshness.CountCheck[T]()}},
		Load: func(r *http.Request) ([]T, error) {
			ownerID, err := auth.UserIDFromCtx(r.Context())
			if err != nil {
				return nil, err
			}
			return load(r, ownerID)
		},
		Render: func(records []T) any {
			out := make([]R, len(records))
			for i, rec := range records {
				out[i] = render(rec)
			}
			return out
		},
		OnError:  b.errs.Write,
		Recorder: b.recorder,
	}
}
