package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/daouest/factureme/pkg/app"
	"github.com/daouest/factureme/pkg/httpx"
	pkgvalidator "github.com/daouest/factureme/pkg/validator"
	appsvcs "github.com/daouest/factureme/services/catalog/application/services"
	"github.com/daouest/factureme/services/catalog/domain/models"
)

// ClientRequest is the body of POST and PUT /clients.
type ClientRequest struct {
	Name     string `json:"name"     validate:"required,max=255"         example:"Acme Inc."`
	Email    string `json:"email"    validate:"omitempty,email,max=255"  example:"billing@acme.ca"`
	Address  string `json:"address"  validate:"max=1000"                 example:"123 rue Principale, Montréal"`
	Province string `json:"province" validate:"omitempty,province"       example:"QC"`
} // @name ClientRequest

// ClientResponse is a client record.
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"     example:"Acme Inc."`
	Email     string    `json:"email"    example:"billing@acme.ca"`
	Address   string    `json:"address"`
	Province  string    `json:"province" example:"QC"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
} // @name ClientResponse

func toClientResponse(c *models.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name.String(),
		Email:     c.Email,
		Address:   c.Address,
		Province:  c.Province,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (req ClientRequest) input() appsvcs.ClientInput {
	return appsvcs.ClientInput{Name: req.Name, Email: req.Email, Address: req.Address, Province: req.Province}
}

// ClientHandlers serves /clients.
type ClientHandlers struct {
	base
}

func NewClientHandlers(svc *appsvcs.Services, a *app.Application) *ClientHandlers {
	return &ClientHandlers{base: newBase(svc, a)}
}

// List returns the owner's clients.
//
//	@Summary	List clients
//	@Tags		clients
//	@Produce	json
//	@Param		X-Collection-Count	header	string	false	"Count seen by the client"
//	@Success	200					{array}	ClientResponse
//	@Success	304
//	@Router		/clients [get]
func (h *ClientHandlers) List() http.Handler {
	return countedList(h.base, "clients",
		func(r *http.Request, ownerID uuid.UUID) ([]*models.Client, error) {
			return h.svc.Client.List(r.Context(), ownerID)
		},
		toClientResponse,
	)
}

// Get returns one client.
//
//	@Summary	Get client
//	@Tags		clients
//	@Produce	json
//	@Param		id	path		string	true	"Client ID"
//	@Success	200	{object}	ClientResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/clients/{id} [get]
func (h *ClientHandlers) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.ownerAndID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.Client.GetByID(r.Context(), ownerID, id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toClientResponse(c))
}

// Create adds a client.
//
//	@Summary	Create client
//	@Tags		clients
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ClientRequest	true	"Client"
//	@Success	201		{object}	ClientResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/clients [post]
func (h *ClientHandlers) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ClientRequest](w, r)
	if !ok {
		return
	}
	c, err := h.svc.Client.Create(r.Context(), ownerID, req.input())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toClientResponse(c))
}

// Update replaces a client's fields.
//
//	@Summary	Update client
//	@Tags		clients
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Client ID"
//	@Param		request	body		ClientRequest	true	"Client"
//	@Success	200		{object}	ClientResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/clients/{id} [put]
func (h *ClientHandlers) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.ownerAndID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ClientRequest](w, r)
	if !ok {
		return
	}
	c, err := h.svc.Client.Update(r.Context(), ownerID, id, req.input())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toClientResponse(c))
}

// Delete removes a client. Issued invoices keep the client name they were issued to.
//
//	@Summary	Delete client
//	@Tags		clients
//	@Param		id	path	string	true	"Client ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/clients/{id} [delete]
func (h *ClientHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.ownerAndID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Client.Delete(r.Context(), ownerID, id); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.NoContent(w)
}
