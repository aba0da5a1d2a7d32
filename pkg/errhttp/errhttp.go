// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/daouest/factureme/pkg/auth"
	"github.com/daouest/factureme/pkg/httpx"
	"github.com/daouest/factureme/pkg/logger"
	"github.com/daouest/factureme/pkg/telemetry"
	accountdomain "github.com/daouest/factureme/services/account/domain"
	catalogdomain "github.com/daouest/factureme/services/catalog/domain"
	invoicedomain "github.com/daouest/factureme/services/invoice/domain"
)

// LineDetail is one entry of a per-line validation response.
type LineDetail struct {
	Line    int    `json:"line"`
	Field   string `json:"field"`
	Message string `json:"message"`
} // @name LineDetail

// LineErrorResponse is returned with 422 when invoice lines are rejected.
type LineErrorResponse struct {
	Error string       `json:"error" example:"invalid invoice lines"`
	Lines []LineDetail `json:"lines"`
} // @name LineErrorResponse

// Responder writes error responses, hiding 5xx details in production and
// logging them with the request context.
type Responder struct {
	log          logger.Logger
	isProduction bool
}

// NewResponder returns a Responder.
func NewResponder(log logger.Logger, isProduction bool) *Responder {
	return &Responder{log: log, isProduction: isProduction}
}

// Write maps err to a status with errors.Is, so wrapped sentinels match, and
// writes the JSON response. Unrecognized errors are 500.
func (rs *Responder) Write(w http.ResponseWriter, r *http.Request, err error) {
	var lineErrs invoicedomain.LineErrors
	if errors.As(err, &lineErrs) {
		writeLineErrors(w, lineErrs)
		return
	}

	status := mapErrorToStatus(err)
	if status >= http.StatusInternalServerError {
		rs.log.ErrorContext(r.Context(), "request failed", "error", err, "path", r.URL.Path)
		telemetry.CaptureError(r.Context(), err)
	}
	httpx.JSONError(w, status, httpx.SafeError(err, status, rs.isProduction))
}

func writeLineErrors(w http.ResponseWriter, errs invoicedomain.LineErrors) {
	resp := LineErrorResponse{Error: "invalid invoice lines", Lines: make([]LineDetail, len(errs))}
	for i, e := range errs {
		resp.Lines[i] = LineDetail{Line: e.LineNumber(), Field: e.FieldName(), Message: e.Error()}
	}
	httpx.JSON(w, http.StatusUnprocessableEntity, resp)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, invoicedomain.ErrInvoiceNotFound),
		errors.Is(err, catalogdomain.ErrProductNotFound),
		errors.Is(err, catalogdomain.ErrRateNotFound),
		errors.Is(err, catalogdomain.ErrClientNotFound),
		errors.Is(err, accountdomain.ErrUserNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, invoicedomain.ErrInvalidSort),
		errors.Is(err, invoicedomain.ErrInvalidFilter):
		return http.StatusBadRequest // 400
	case errors.Is(err, accountdomain.ErrEmailTaken):
		return http.StatusConflict // 409
	case errors.Is(err, accountdomain.ErrInvalidCredentials),
		errors.Is(err, auth.ErrUserIDNotFound):
		return http.StatusUnauthorized // 401
	case errors.Is(err, accountdomain.ErrForbidden):
		return http.StatusForbidden // 403
	case errors.Is(err, invoicedomain.ErrEmptyInvoice),
		errors.Is(err, invoicedomain.ErrItemResolution),
		errors.Is(err, invoicedomain.ErrInvalidNumericInput),
		errors.Is(err, invoicedomain.ErrUnknownClient),
		errors.Is(err, invoicedomain.ErrInvalidDueDate),
		errors.Is(err, catalogdomain.ErrInvalidProvince),
		errors.Is(err, catalogdomain.ErrInvalidEntry),
		errors.Is(err, accountdomain.ErrWeakPassword),
		errors.Is(err, accountdomain.ErrInvalidProfile):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
