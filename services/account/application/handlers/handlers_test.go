package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/daouest/factureme/pkg/app"
	"github.com/daouest/factureme/pkg/auth"
	"github.com/daouest/factureme/pkg/errhttp"
	"github.com/daouest/factureme/pkg/logger"
	"github.com/daouest/factureme/services/account/application/api"
	appsvcs "github.com/daouest/factureme/services/account/application/services"
	accountdomain "github.com/daouest/factureme/services/account/domain"
	"github.com/daouest/factureme/services/account/domain/models"
	"github.com/daouest/factureme/services/account/domain/repositories"
)

type fixture struct {
	router     http.Handler
	users      *repositories.MockUserRepository
	businesses *repositories.MockBusinessRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		users:      repositories.NewMockUserRepository(ctrl),
		businesses: repositories.NewMockBusinessRepository(ctrl),
	}
	a := &app.Application{
		Logger:       logger.Discard(),
		Errors:       errhttp.NewResponder(logger.Discard(), false),
		SessionStore: sessions.NewCookieStore([]byte("test-auth-key-must-be-32-bytes!!")),
	}
	svcs := &appsvcs.Services{
		Auth:     appsvcs.NewAuthService(f.users),
		Users:    appsvcs.NewUserService(f.users),
		Business: appsvcs.NewBusinessService(f.businesses),
	}

	r := chi.NewRouter()
	api.AuthRoutes(r, svcs, a)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
		api.AccountRoutes(r, svcs, a)
	})
	f.router = r
	return f
}

func (f *fixture) do(method, target, body string, cookies []*http.Cookie, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRegister_StartsSession(t *testing.T) {
	f := newFixture(t)
	var registered *models.User
	f.users.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			u.IsAdmin = true
			registered = u
			return nil
		})

	w := f.do(http.MethodPost, "/auth/register",
		`{"email":"jane@example.com","name":"Jane","password":"correct horse"}`, nil, nil)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")
	assert.Contains(t, w.Body.String(), `"is_admin":true`)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	f.users.EXPECT().GetByID(gomock.Any(), registered.ID).Return(registered, nil)
	me := f.do(http.MethodGet, "/me", "", cookies, nil)
	assert.Equal(t, http.StatusOK, me.Code)
	assert.Contains(t, me.Body.String(), "jane@example.com")
}

func TestRegister_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *repositories.MockUserRepository)
		wantStatus int
	}{
		{
			name:       "ShortPassword",
			body:       `{"email":"jane@example.com","name":"Jane","password":"short"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "BadEmail",
			body:       `{"email":"jane","name":"Jane","password":"correct horse"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "EmailTaken",
			body: `{"email":"jane@example.com","name":"Jane","password":"correct horse"}`,
			setupMock: func(m *repositories.MockUserRepository) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(accountdomain.ErrEmailTaken)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMock != nil {
				tt.setupMock(f.users)
			}

			w := f.do(http.MethodPost, "/auth/register", tt.body, nil, nil)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newFixture(t)
	f.users.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(nil, accountdomain.ErrUserNotFound)

	w := f.do(http.MethodPost, "/auth/login", `{"email":"jane@example.com","password":"whatever"}`, nil, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestProtectedRoutes_RequireSession(t *testing.T) {
	f := newFixture(t)

	for _, target := range []string{"/me", "/users", "/business"} {
		w := f.do(http.MethodGet, target, "", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, target)
	}
}

func TestLogout_ExpiresCookie(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/auth/logout", "", nil, nil)

	require.Equal(t, http.StatusNoContent, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Less(t, cookies[0].MaxAge, 0)
}

// login registers a session for u and returns its cookies.
func login(t *testing.T, f *fixture, u *models.User) []*http.Cookie {
	t.Helper()
	f.users.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reg *models.User) error {
			reg.ID = u.ID
			return nil
		})
	w := f.do(http.MethodPost, "/auth/register",
		`{"email":"`+u.Email+`","name":"x","password":"correct horse"}`, nil, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	return w.Result().Cookies()
}

func TestListUsers(t *testing.T) {
	admin := &models.User{ID: uuid.New(), Email: "admin@example.com", IsAdmin: true}
	member := &models.User{ID: uuid.New(), Email: "member@example.com"}

	t.Run("AdminNotModified", func(t *testing.T) {
		f := newFixture(t)
		cookies := login(t, f, admin)
		f.users.EXPECT().GetByID(gomock.Any(), admin.ID).Return(admin, nil)
		f.users.EXPECT().List(gomock.Any()).Return([]*models.User{admin, member}, nil)

		w := f.do(http.MethodGet, "/users", "", cookies, map[string]string{"X-Collection-Count": "2"})

		assert.Equal(t, http.StatusNotModified, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-Collection-Count"))
		assert.Empty(t, w.Body.String())
	})

	t.Run("MemberForbidden", func(t *testing.T) {
		f := newFixture(t)
		cookies := login(t, f, member)
		f.users.EXPECT().GetByID(gomock.Any(), member.ID).Return(member, nil)

		w := f.do(http.MethodGet, "/users", "", cookies, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("X-Collection-Count"))
	})
}

func TestBusiness_PutThenTaxTypes(t *testing.T) {
	owner := &models.User{ID: uuid.New(), Email: "owner@example.com"}
	f := newFixture(t)
	cookies := login(t, f, owner)
	f.businesses.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	w := f.do(http.MethodPut, "/business",
		`{"name":"Atelier","province":"on","tvh_number":"123"}`, cookies, nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"province":"ON"`)
	assert.Contains(t, w.Body.String(), `"tax_types":["TVH"]`)
}

func TestBusiness_GetDefault(t *testing.T) {
	owner := &models.User{ID: uuid.New(), Email: "owner@example.com"}
	f := newFixture(t)
	cookies := login(t, f, owner)
	f.businesses.EXPECT().Get(gomock.Any(), owner.ID).Return(nil, accountdomain.ErrBusinessNotFound)

	w := f.do(http.MethodGet, "/business", "", cookies, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"province":"QC"`)
	assert.Contains(t, w.Body.String(), `"tax_types":[]`)
}
