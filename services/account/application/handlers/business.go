package handlers

import (
	"net/http"
	"time"

	"github.com/daouest/factureme/pkg/app"
	"github.com/daouest/factureme/pkg/auth"
	"github.com/daouest/factureme/pkg/errhttp"
	"github.com/daouest/factureme/pkg/httpx"
	pkgvalidator "github.com/daouest/factureme/pkg/validator"
	appsvcs "github.com/daouest/factureme/services/account/application/services"
	"github.com/daouest/factureme/services/account/domain/models"
)

// BusinessRequest is the request body for PUT /business. A tax applies to
// new invoices as soon as its registration number is filled in.
type BusinessRequest struct {
	Name      string `json:"name"       validate:"required,max=255" example:"Atelier Tremblay"`
	Province  string `json:"province"   validate:"required,province" example:"QC"`
	TVSNumber string `json:"tvs_number" validate:"max=64"            example:"123456789RT0001"`
	TVQNumber string `json:"tvq_number" validate:"max=64"            example:"1234567890TQ0001"`
	TVPNumber string `json:"tvp_number" validate:"max=64"`
	TVHNumber string `json:"tvh_number" validate:"max=64"`
} // @name BusinessRequest

// BusinessResponse is the issuer profile with the taxes it currently collects.
type BusinessResponse struct {
	Name      string    `json:"name"       example:"Atelier Tremblay"`
	Province  string    `json:"province"   example:"QC"`
	TVSNumber string    `json:"tvs_number" example:"123456789RT0001"`
	TVQNumber string    `json:"tvq_number" example:"1234567890TQ0001"`
	TVPNumber string    `json:"tvp_number"`
	TVHNumber string    `json:"tvh_number"`
	TaxTypes  []string  `json:"tax_types"  example:"TVS,TVQ"`
	UpdatedAt time.Time `json:"updated_at"`
} // @name BusinessResponse

func toBusinessResponse(b *models.Business) BusinessResponse {
	return BusinessResponse{
		Name:      b.Name,
		Province:  b.Province,
		TVSNumber: b.TVSNumber,
		TVQNumber: b.TVQNumber,
		TVPNumber: b.TVPNumber,
		TVHNumber: b.TVHNumber,
		TaxTypes:  b.TaxProfile(),
		UpdatedAt: b.UpdatedAt,
	}
}

// GetBusinessHandler handles GET /business.
type GetBusinessHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Responder
}

func NewGetBusinessHandler(svc *appsvcs.Services, a *app.Application) *GetBusinessHandler {
	return &GetBusinessHandler{svc: svc, errs: a.Errors}
}

// Execute returns the owner's business profile.
//
//	@Summary	Get business profile
//	@Tags		business
//	@Produce	json
//	@Success	200	{object}	BusinessResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/business [get]
func (h *GetBusinessHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	b, err := h.svc.Business.Get(r.Context(), ownerID)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toBusinessResponse(b))
}

// PutBusinessHandler handles PUT /business.
type PutBusinessHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Responder
}

func NewPutBusinessHandler(svc *appsvcs.Services, a *app.Application) *PutBusinessHandler {
	return &PutBusinessHandler{svc: svc, errs: a.Errors}
}

// Execute replaces the owner's business profile.
//
//	@Summary	Update business profile
//	@Tags		business
//	@Accept		json
//	@Produce	json
//	@Param		request	body		BusinessRequest	true	"Profile"
//	@Success	200		{object}	BusinessResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/business [put]
func (h *PutBusinessHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[BusinessRequest](w, r)
	if !ok {
		return
	}
	b, err := h.svc.Business.Update(r.Context(), ownerID, appsvcs.BusinessInput{
		Name:      req.Name,
		Province:  req.Province,
		TVSNumber: req.TVSNumber,
		TVQNumber: req.TVQNumber,
		TVPNumber: req.TVPNumber,
		TVHNumber: req.TVHNumber,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toBusinessResponse(b))
}
