package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/daouest/factureme/pkg/app"
	"github.com/daouest/factureme/pkg/auth"
	"github.com/daouest/factureme/pkg/errhttp"
	"github.com/daouest/factureme/pkg/logger"
	"github.com/daouest/factureme/services/catalog/application/api"
	appsvcs "github.com/daouest/factureme/services/catalog/application/services"
	catalogdomain "github.com/daouest/factureme/services/catalog/domain"
	"github.com/daouest/factureme/services/catalog/domain/models"
	"github.com/daouest/factureme/services/catalog/domain/repositories"
)

type fixture struct {
	router   http.Handler
	products *repositories.MockProductRepository
	rates    *repositories.MockRateRepository
	clients  *repositories.MockClientRepository
	owner    uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		products: repositories.NewMockProductRepository(ctrl),
		rates:    repositories.NewMockRateRepository(ctrl),
		clients:  repositories.NewMockClientRepository(ctrl),
		owner:    uuid.New(),
	}
	a := &app.Application{
		Logger: logger.Discard(),
		Errors: errhttp.NewResponder(logger.Discard(), false),
	}
	svcs := &appsvcs.Services{
		Product: appsvcs.NewProductService(f.products),
		Rate:    appsvcs.NewRateService(f.rates),
		Client:  appsvcs.NewClientService(f.clients),
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithUserID(req.Context(), f.owner)))
		})
	})
	api.Mount(r, svcs, a)
	f.router = r
	return f
}

func (f *fixture) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func products(owner uuid.UUID, n int) []*models.Product {
	out := make([]*models.Product, n)
	for i := range out {
		out[i] = models.NewProduct(owner, models.Name("Widget"), "", decimal.NewFromInt(10))
	}
	return out
}

func TestListProducts_CountFreshness(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		stored     int
		wantStatus int
	}{
		{name: "NoHeader", stored: 2, wantStatus: http.StatusOK},
		{name: "SameCount", header: "2", stored: 2, wantStatus: http.StatusNotModified},
		{name: "CountChanged", header: "2", stored: 3, wantStatus: http.StatusOK},
		{name: "EmptyMatches", header: "0", stored: 0, wantStatus: http.StatusNotModified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.products.EXPECT().ListByOwner(gomock.Any(), f.owner).Return(products(f.owner, tt.stored), nil)

			headers := map[string]string{}
			if tt.header != "" {
				headers["X-Collection-Count"] = tt.header
			}
			w := f.do(http.MethodGet, "/products", "", headers)

			require.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, strconv.Itoa(tt.stored), w.Header().Get("X-Collection-Count"))
			if tt.wantStatus == http.StatusNotModified {
				assert.Empty(t, w.Body.String())
				return
			}
			var body []map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Len(t, body, tt.stored)
		})
	}
}

func TestListProducts_StorageErrorHasNoSignal(t *testing.T) {
	f := newFixture(t)
	f.products.EXPECT().ListByOwner(gomock.Any(), f.owner).Return(nil, assert.AnError)

	w := f.do(http.MethodGet, "/products", "", map[string]string{"X-Collection-Count": "2"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("X-Collection-Count"))
}

func TestCreateProduct(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *repositories.MockProductRepository)
		wantStatus int
	}{
		{
			name: "Created",
			body: `{"name":"Audit","unit_price":"150.00"}`,
			setupMock: func(m *repositories.MockProductRepository) {
				m.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "NegativePrice",
			body:       `{"name":"Audit","unit_price":-1}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "MissingName",
			body:       `{"unit_price":"1.00"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "MalformedJSON",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMock != nil {
				tt.setupMock(f.products)
			}

			w := f.do(http.MethodPost, "/products", tt.body, nil)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestCreateProduct_EncodesPriceAsString(t *testing.T) {
	f := newFixture(t)
	f.products.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	w := f.do(http.MethodPost, "/products", `{"name":"Audit","unit_price":150.5}`, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "150.5", body["unit_price"])
}

func TestGetProduct(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.products.EXPECT().GetByID(gomock.Any(), f.owner, id).Return(nil, catalogdomain.ErrProductNotFound)

		w := f.do(http.MethodGet, "/products/"+id.String(), "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("MalformedID", func(t *testing.T) {
		f := newFixture(t)

		w := f.do(http.MethodGet, "/products/not-a-uuid", "", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteRate(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.rates.EXPECT().Delete(gomock.Any(), f.owner, id).Return(nil)

	w := f.do(http.MethodDelete, "/rates/"+id.String(), "", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCreateClient_RejectsUnknownProvince(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/clients", `{"name":"Acme","province":"ZZ"}`, nil)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "province")
}

func TestListClients_CountHeader(t *testing.T) {
	f := newFixture(t)
	c := models.NewClient(f.owner, models.ClientDetails{Name: models.Name("Acme"), Province: "on"})
	f.clients.EXPECT().ListByOwner(gomock.Any(), f.owner).Return([]*models.Client{c}, nil)

	w := f.do(http.MethodGet, "/clients", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Collection-Count"))
	assert.Contains(t, w.Body.String(), `"province":"ON"`)
}
