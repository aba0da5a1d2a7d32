package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daouest/factureme/pkg/app"
	"github.com/daouest/factureme/pkg/httpx"
	pkgvalidator "github.com/daouest/factureme/pkg/validator"
	appsvcs "github.com/daouest/factureme/services/catalog/application/services"
	"github.com/daouest/factureme/services/catalog/domain/models"
)

// RateRequest is the body of POST and PUT /rates.
type RateRequest struct {
	Label string          `json:"label" validate:"required,max=255" example:"Consulting"`
	Rate  decimal.Decimal `json:"rate"  validate:"gte=0"            example:"85.00" swaggertype:"string"`
} // @name RateRequest

// RateResponse is a catalogue hourly rate.
type RateResponse struct {
	ID        uuid.UUID       `json:"id"`
	Label     string          `json:"label" example:"Consulting"`
	Rate      decimal.Decimal `json:"rate"  example:"85.00" swaggertype:"string"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
} // @name RateResponse

func toRateResponse(h *models.HourlyRate) RateResponse {
	return RateResponse{ID: h.ID, Label: h.Label.String(), Rate: h.Rate, CreatedAt: h.CreatedAt, UpdatedAt: h.UpdatedAt}
}

// RateHandlers serves /rates.
type RateHandlers struct {
	base
}

func NewRateHandlers(svc *appsvcs.Services, a *app.Application) *RateHandlers {
	return &RateHandlers{base: newBase(svc, a)}
}

// List returns the owner's hourly rates.
//
//	@Summary	List hourly rates
//	@Tags		rates
//	@Produce	json
//	@Param		X-Collection-Count	header	string	false	"Count seen by the client"
//	@Success	200					{array}	RateResponse
//	@Success	304
//	@Router		/rates [get]
func (h *RateHandlers) List() http.Handler {
	return countedList(h.base, "rates",
		func(r *http.Request, ownerID uuid.UUID) ([]*models.HourlyRate, error) {
			return h.svc.Rate.List(r.Context(), ownerID)
		},
		toRateResponse,
	)
}

// Get returns one hourly rate.
//
//	@Summary	Get hourly rate
//	@Tags		rates
//	@Produce	json
//	@Param		id	path		string	true	"Rate ID"
//	@Success	200	{object}	RateResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/rates/{id} [get]
func (h *RateHandlers) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.ownerAndID(w, r)
	if !ok {
		return
	}
	rate, err := h.svc.Rate.GetByID(r.Context(), ownerID, id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toRateResponse(rate))
}

// Create adds an hourly rate.
//
//	@Summary	Create hourly rate
//	@Tags		rates
//	@Accept		json
//	@Produce	json
//	@Param		request	body		RateRequest	true	"Rate"
//	@Success	201		{object}	RateResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/rates [post]
func (h *RateHandlers) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[RateRequest](w, r)
	if !ok {
		return
	}
	rate, err := h.svc.Rate.Create(r.Context(), ownerID, appsvcs.RateInput{Label: req.Label, Rate: req.Rate})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toRateResponse(rate))
}

// Update replaces an hourly rate's fields.
//
//	@Summary	Update hourly rate
//	@Tags		rates
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string		true	"Rate ID"
//	@Param		request	body		RateRequest	true	"Rate"
//	@Success	200		{object}	RateResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/rates/{id} [put]
func (h *RateHandlers) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.ownerAndID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[RateRequest](w, r)
	if !ok {
		return
	}
	rate, err := h.svc.Rate.Update(r.Context(), ownerID, id, appsvcs.RateInput{Label: req.Label, Rate: req.Rate})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toRateResponse(rate))
}

// Delete removes an hourly rate.
//
//	@Summary	Delete hourly rate
//	@Tags		rates
//	@Param		id	path	string	true	"Rate ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/rates/{id} [delete]
func (h *RateHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.ownerAndID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Rate.Delete(r.Context(), ownerID, id); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.NoContent(w)
}
