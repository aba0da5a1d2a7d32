package handlers

import (
	"net/http"

	"github.com/daouest/factureme/pkg/app"
	"github.com/daouest/factureme/pkg/auth"
	"github.com/daouest/factureme/pkg/errhttp"
	"github.com/daouest/factureme/pkg/freshness"
	"github.com/daouest/factureme/pkg/httpx"
	appsvcs "github.com/daouest/factureme/services/account/application/services"
	"github.com/daouest/factureme/services/account/domain/models"
)

// GetMeHandler handles GET /me.
type GetMeHandler struct {
	svc  *appsvcs.Services
	errs *errhttp.Responder
}

func NewGetMeHandler(svc *appsvcs.Services, a *app.Application) *GetMeHandler {
	return &GetMeHandler{svc: svc, errs: a.Errors}
}

// Execute returns the authenticated account.
//
//	@Summary	Current user
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	UserResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/me [get]
func (h *GetMeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	u, err := h.svc.Users.Me(r.Context(), userID)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toUserResponse(u))
}

// NewListUsersHandler serves GET /users under the X-Collection-Count policy.
//
//	@Summary		List users
//	@Description	Administrators only. Returns 304 when X-Collection-Count matches
//	@Tags			users
//	@Produce		json
//	@Param			X-Collection-Count	header		string	false	"Count seen by the client"
//	@Success		200					{array}		UserResponse
//	@Success		304
//	@Failure		403					{object}	ErrorResponse
//	@Router			/users [get]
func NewListUsersHandler(svc *appsvcs.Services, a *app.Application) http.Handler {
	return freshness.Handler[*models.User]{
		Endpoint: "users",
		Policy:   freshness.Policy[*models.User]{Checks: []freshness.Check[*models.User]{freshness.CountCheck[*models.User]()}},
		Load: func(r *http.Request) ([]*models.User, error) {
			userID, err := auth.UserIDFromCtx(r.Context())
			if err != nil {
				return nil, err
			}
			return svc.Users.List(r.Context(), userID)
		},
		Render: func(users []*models.User) any {
			out := make([]UserResponse, len(users))
			for i, u := range users {
				out[i] = toUserResponse(u)
			}
			return out
		},
		OnError:  a.Errors.Write,
		Recorder: a.Freshness,
	}
}
