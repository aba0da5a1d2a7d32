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

// ProductRequest is the body of POST and PUT /products.
type ProductRequest struct {
	Name        string          `json:"name"        validate:"required,max=255" example:"Website audit"`
	Description string          `json:"description" validate:"max=2000"         example:"Full technical audit"`
	UnitPrice   decimal.Decimal `json:"unit_price"  validate:"gte=0"            example:"150.00" swaggertype:"string"`
} // @name ProductRequest

// ProductResponse is a catalogue product.
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string          `json:"name"        example:"Website audit"`
	Description string          `json:"description" example:"Full technical audit"`
	UnitPrice   decimal.Decimal `json:"unit_price"  example:"150.00" swaggertype:"string"`
	CreatedAt   time.Time       `json:"created_at"  example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time       `json:"updated_at"  example:"2024-01-15T10:30:00Z"`
} // @name ProductResponse

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name.String(),
		Description: p.Description,
		UnitPrice:   p.UnitPrice,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (req ProductRequest) input() appsvcs.ProductInput {
	return appsvcs.ProductInput{Name: req.Name, Description: req.Description, UnitPrice: req.UnitPrice}
}

// ProductHandlers serves /products.
type ProductHandlers struct {
	base
}

func NewProductHandlers(svc *appsvcs.Services, a *app.Application) *ProductHandlers {
	return &ProductHandlers{base: newBase(svc, a)}
}

// List returns the owner's products.
//
//	@Summary		List products
//	@Description	Returns 304 with no body when X-Collection-Count matches the current count
//	@Tags			products
//	@Produce		json
//	@Param			X-Collection-Count	header		string	false	"Count seen by the client"
//	@Success		200					{array}		ProductResponse
//	@Success		304
//	@Failure		401					{object}	ErrorResponse
//	@Failure		500					{object}	ErrorResponse
//	@Router			/products [get]
func (h *ProductHandlers) List() http.Handler {
	return countedList(h.base, "products",
		func(r *http.Request, ownerID uuid.UUID) ([]*models.Product, error) {
			return h.svc.Product.List(r.Context(), ownerID)
		},
		toProductResponse,
	)
}

// Get returns one product.
//
//	@Summary	Get product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"Product ID"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (h *ProductHandlers) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.ownerAndID(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Product.GetByID(r.Context(), ownerID, id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductResponse(p))
}

// Create adds a product.
//
//	@Summary	Create product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ProductRequest	true	"Product"
//	@Success	201		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/products [post]
func (h *ProductHandlers) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ProductRequest](w, r)
	if !ok {
		return
	}
	p, err := h.svc.Product.Create(r.Context(), ownerID, req.input())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toProductResponse(p))
}

// Update replaces a product's fields.
//
//	@Summary	Update product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Product ID"
//	@Param		request	body		ProductRequest	true	"Product"
//	@Success	200		{object}	ProductResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/products/{id} [put]
func (h *ProductHandlers) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.ownerAndID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ProductRequest](w, r)
	if !ok {
		return
	}
	p, err := h.svc.Product.Update(r.Context(), ownerID, id, req.input())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductResponse(p))
}

// Delete removes a product. Issued invoices keep their snapshot.
//
//	@Summary	Delete product
//	@Tags		products
//	@Param		id	path	string	true	"Product ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (h *ProductHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.ownerAndID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Product.Delete(r.Context(), ownerID, id); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.NoContent(w)
}
