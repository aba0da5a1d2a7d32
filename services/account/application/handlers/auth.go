package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/daouest/factureme/pkg/app"
	"github.com/daouest/factureme/pkg/auth"
	"github.com/daouest/factureme/pkg/errhttp"
	"github.com/daouest/factureme/pkg/httpx"
	pkgvalidator "github.com/daouest/factureme/pkg/validator"
	appsvcs "github.com/daouest/factureme/services/account/application/services"
	"github.com/daouest/factureme/services/account/domain/models"
)

// RegisterRequest is the request body for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255" example:"jane@example.com"`
	Name     string `json:"name"     validate:"required,max=255"       example:"Jane Tremblay"`
	Password string `json:"password" validate:"required,min=8,max=72"  example:"correct horse battery"`
} // @name RegisterRequest

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email" example:"jane@example.com"`
	Password string `json:"password" validate:"required"       example:"correct horse battery"`
} // @name LoginRequest

// UserResponse describes an account. The password hash is never returned.
type UserResponse struct {
	ID        uuid.UUID `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Email     string    `json:"email"      example:"jane@example.com"`
	Name      string    `json:"name"       example:"Jane Tremblay"`
	IsAdmin   bool      `json:"is_admin"   example:"false"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name UserResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid email or password"`
} // @name ErrorResponse

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, IsAdmin: u.IsAdmin, CreatedAt: u.CreatedAt}
}

// PostRegisterHandler handles POST /auth/register.
type PostRegisterHandler struct {
	svc   *appsvcs.Services
	errs  *errhttp.Responder
	store sessions.Store
}

func NewPostRegisterHandler(svc *appsvcs.Services, a *app.Application) *PostRegisterHandler {
	return &PostRegisterHandler{svc: svc, errs: a.Errors, store: a.SessionStore}
}

// Execute creates an account and signs it in.
//
//	@Summary		Register
//	@Description	Creates an account; the first account becomes an administrator
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Account"
//	@Success		201		{object}	UserResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/auth/register [post]
func (h *PostRegisterHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RegisterRequest](w, r)
	if !ok {
		return
	}

	u, err := h.svc.Auth.Register(r.Context(), appsvcs.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if err := auth.Login(w, r, h.store, u.ID); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toUserResponse(u))
}

// PostLoginHandler handles POST /auth/login.
type PostLoginHandler struct {
	svc   *appsvcs.Services
	errs  *errhttp.Responder
	store sessions.Store
}

func NewPostLoginHandler(svc *appsvcs.Services, a *app.Application) *PostLoginHandler {
	return &PostLoginHandler{svc: svc, errs: a.Errors, store: a.SessionStore}
}

// Execute checks the credentials and starts a session.
//
//	@Summary	Log in
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		LoginRequest	true	"Credentials"
//	@Success	200		{object}	UserResponse
//	@Failure	401		{object}	ErrorResponse
//	@Router		/auth/login [post]
func (h *PostLoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	u, err := h.svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if err := auth.Login(w, r, h.store, u.ID); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toUserResponse(u))
}

// PostLogoutHandler handles POST /auth/logout.
type PostLogoutHandler struct {
	errs  *errhttp.Responder
	store sessions.Store
}

func NewPostLogoutHandler(a *app.Application) *PostLogoutHandler {
	return &PostLogoutHandler{errs: a.Errors, store: a.SessionStore}
}

// Execute ends the session. Logging out without a session is not an error.
//
//	@Summary	Log out
//	@Tags		auth
//	@Success	204
//	@Router		/auth/logout [post]
func (h *PostLogoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := auth.Logout(w, r, h.store); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.NoContent(w)
}
