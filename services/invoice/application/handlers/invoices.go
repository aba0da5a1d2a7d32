package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/daouest/factureme/pkg/app"
	"github.com/daouest/factureme/pkg/auth"
	"github.com/daouest/factureme/pkg/errhttp"
	"github.com/daouest/factureme/pkg/freshness"
	"github.com/daouest/factureme/pkg/httpx"
	pkgvalidator "github.com/daouest/factureme/pkg/validator"
	appsvcs "github.com/daouest/factureme/services/invoice/application/services"
	invoicedomain "github.com/daouest/factureme/services/invoice/domain"
	"github.com/daouest/factureme/services/invoice/domain/models"
	"github.com/daouest/factureme/services/invoice/domain/repositories"
)

// InvoiceHandlers serves /invoices and /dashboard.
type InvoiceHandlers struct {
	svc      *appsvcs.Services
	errs     *errhttp.Responder
	recorder *freshness.Recorder
}

func NewInvoiceHandlers(svc *appsvcs.Services, a *app.Application) *InvoiceHandlers {
	return &InvoiceHandlers{svc: svc, errs: a.Errors, recorder: a.Freshness}
}

// latestInvoice signals the stamp of the invoice with the latest invoice date.
var latestInvoice = freshness.LatestTimestamp[*models.Invoice]{
	Date:  func(inv *models.Invoice) time.Time { return inv.InvoiceDate },
	Stamp: func(inv *models.Invoice) time.Time { return inv.Stamp() },
}

// Preview prices a submission without storing it.
//
//	@Summary		Preview invoice
//	@Description	Resolves the catalogue references and computes every amount. Nothing is persisted.
//	@Tags			invoices
//	@Accept			json
//	@Produce		json
//	@Param			request	body		InvoiceRequest	true	"Invoice"
//	@Success		200		{object}	PreviewResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	errhttp.LineErrorResponse
//	@Router			/invoices/preview [post]
func (h *InvoiceHandlers) Preview(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[InvoiceRequest](w, r)
	if !ok {
		return
	}
	comp, err := h.svc.Invoice.Preview(r.Context(), ownerID, req.input())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toPreviewResponse(comp))
}

// Create issues an invoice.
//
//	@Summary		Create invoice
//	@Description	Prices the submission, stores it with a new FM-YYYYMMDD-NNNN number and publishes invoice.created
//	@Tags			invoices
//	@Accept			json
//	@Produce		json
//	@Param			request	body		InvoiceRequest	true	"Invoice"
//	@Success		201		{object}	InvoiceResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	errhttp.LineErrorResponse
//	@Router			/invoices [post]
func (h *InvoiceHandlers) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[InvoiceRequest](w, r)
	if !ok {
		return
	}
	inv, err := h.svc.Invoice.Create(r.Context(), ownerID, req.input())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toInvoiceResponse(inv))
}

// List returns the owner's invoices without their lines.
//
//	@Summary		List invoices
//	@Description	Returns 304 with no body when both X-Collection-Count and If-None-Match match. Any sort or client_id parameter forces a 200.
//	@Tags			invoices
//	@Produce		json
//	@Param			X-Collection-Count	header		string	false	"Count seen by the client"
//	@Param			If-None-Match		header		string	false	"ETag seen by the client"
//	@Param			sort				query		string	false	"date_desc, date_asc, total_desc, total_asc or number"
//	@Param			client_id			query		string	false	"Only invoices of this client"
//	@Success		200					{array}		InvoiceResponse
//	@Success		304
//	@Failure		400					{object}	ErrorResponse
//	@Failure		500					{object}	ErrorResponse
//	@Router			/invoices [get]
func (h *InvoiceHandlers) List() http.Handler {
	return freshness.Handler[*models.Invoice]{
		Endpoint: "invoices",
		Policy: freshness.Policy[*models.Invoice]{
			Checks: []freshness.Check[*models.Invoice]{
				freshness.CountCheck[*models.Invoice](),
				freshness.ETagCheck[*models.Invoice](latestInvoice),
			},
			Bypass: freshness.AnyQueryParam("sort", "client_id"),
		},
		Load: func(r *http.Request) ([]*models.Invoice, error) {
			ownerID, err := auth.UserIDFromCtx(r.Context())
			if err != nil {
				return nil, err
			}
			filter, err := listFilter(r)
			if err != nil {
				return nil, err
			}
			return h.svc.Invoice.List(r.Context(), ownerID, filter)
		},
		Render:   renderInvoices,
		OnError:  h.errs.Write,
		Recorder: h.recorder,
	}
}

// Recent returns the last three invoices by invoice date. The window is
// capped, so the count rarely moves; the ETag hashes the listed invoices.
//
//	@Summary		Recent invoices
//	@Description	Always 200. X-Collection-Count and ETag are reported for the client to keep.
//	@Tags			invoices
//	@Produce		json
//	@Success		200	{array}		InvoiceResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/invoices/recent [get]
func (h *InvoiceHandlers) Recent() http.Handler {
	return freshness.Handler[*models.Invoice]{
		Endpoint: "invoices_recent",
		Policy: freshness.Policy[*models.Invoice]{
			Checks: []freshness.Check[*models.Invoice]{
				freshness.CountCheck[*models.Invoice](),
				freshness.ETagCheck[*models.Invoice](freshness.ContentHash[*models.Invoice]{}),
			},
			Bypass: freshness.Always,
		},
		Load: func(r *http.Request) ([]*models.Invoice, error) {
			ownerID, err := auth.UserIDFromCtx(r.Context())
			if err != nil {
				return nil, err
			}
			return h.svc.Invoice.Recent(r.Context(), ownerID)
		},
		Render:   renderInvoices,
		OnError:  h.errs.Write,
		Recorder: h.recorder,
	}
}

// Get returns one invoice with its lines.
//
//	@Summary	Get invoice
//	@Tags		invoices
//	@Produce	json
//	@Param		id	path		string	true	"Invoice ID"
//	@Success	200	{object}	InvoiceResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/invoices/{id} [get]
func (h *InvoiceHandlers) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.ownerAndID(w, r)
	if !ok {
		return
	}
	inv, err := h.svc.Invoice.GetByID(r.Context(), ownerID, id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toInvoiceResponse(inv))
}

// Delete removes an invoice.
//
//	@Summary	Delete invoice
//	@Tags		invoices
//	@Param		id	path	string	true	"Invoice ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/invoices/{id} [delete]
func (h *InvoiceHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.ownerAndID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Invoice.Delete(r.Context(), ownerID, id); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// PDF returns the invoice as a PDF document.
//
//	@Summary	Invoice PDF
//	@Tags		invoices
//	@Produce	application/pdf
//	@Param		id	path		string	true	"Invoice ID"
//	@Success	200	{file}		binary
//	@Failure	404	{object}	ErrorResponse
//	@Router		/invoices/{id}/pdf [get]
func (h *InvoiceHandlers) PDF(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.ownerAndID(w, r)
	if !ok {
		return
	}
	data, err := h.svc.PDF.Get(r.Context(), ownerID, id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.PDF(w, fmt.Sprintf("facture-%s.pdf", id), data)
}

// Dashboard returns the invoicing summary.
//
//	@Summary	Dashboard
//	@Tags		invoices
//	@Produce	json
//	@Success	200	{object}	DashboardResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/dashboard [get]
func (h *InvoiceHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	d, err := h.svc.Invoice.Dashboard(r.Context(), ownerID)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, DashboardResponse{
		InvoiceCount: d.Stats.InvoiceCount,
		Revenue:      d.Stats.Revenue,
		TaxCollected: d.Stats.TaxCollected,
		MonthRevenue: d.Stats.MonthRevenue,
		Recent:       toInvoiceResponses(d.Recent),
	})
}

func (h *InvoiceHandlers) owner(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return uuid.Nil, false
	}
	return ownerID, true
}

func (h *InvoiceHandlers) ownerAndID(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	ownerID, ok := h.owner(w, r)
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

func listFilter(r *http.Request) (repositories.ListFilter, error) {
	q := r.URL.Query()
	filter := repositories.ListFilter{Sort: q.Get("sort")}
	if raw := q.Get("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, fmt.Errorf("%w: client_id %q", invoicedomain.ErrInvalidFilter, raw)
		}
		filter.ClientID = id
	}
	return filter, nil
}

func renderInvoices(invoices []*models.Invoice) any {
	return toInvoiceResponses(invoices)
}

func toInvoiceResponses(invoices []*models.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		out[i] = toInvoiceResponse(inv)
	}
	return out
}
