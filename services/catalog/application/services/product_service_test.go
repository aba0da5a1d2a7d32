package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	appsvcs "github.com/daouest/factureme/services/catalog/application/services"
	catalogdomain "github.com/daouest/factureme/services/catalog/domain"
	"github.com/daouest/factureme/services/catalog/domain/models"
	"github.com/daouest/factureme/services/catalog/domain/repositories"
)

func TestProductService_Create(t *testing.T) {
	ownerID := uuid.New()

	type testCase struct {
		name      string
		input     appsvcs.ProductInput
		setupMock func(m *repositories.MockProductRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:  "Success",
			input: appsvcs.ProductInput{Name: " Widget ", UnitPrice: decimal.RequireFromString("19.99")},
			setupMock: func(m *repositories.MockProductRepository) {
				m.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *models.Product) error {
						assert.Equal(t, ownerID, p.OwnerID)
						assert.Equal(t, models.Name("Widget"), p.Name)
						return nil
					})
			},
		},
		{
			name:    "BlankName",
			input:   appsvcs.ProductInput{Name: "  ", UnitPrice: decimal.NewFromInt(1)},
			wantErr: catalogdomain.ErrInvalidEntry,
		},
		{
			name:    "NegativePrice",
			input:   appsvcs.ProductInput{Name: "Widget", UnitPrice: decimal.NewFromInt(-1)},
			wantErr: catalogdomain.ErrInvalidEntry,
		},
		{
			name:  "RepoError",
			input: appsvcs.ProductInput{Name: "Widget", UnitPrice: decimal.Zero},
			setupMock: func(m *repositories.MockProductRepository) {
				m.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repositories.NewMockProductRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := appsvcs.NewProductService(repo).Create(context.Background(), ownerID, tt.input)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, got)
				if errors.Is(tt.wantErr, catalogdomain.ErrInvalidEntry) {
					assert.ErrorIs(t, err, catalogdomain.ErrInvalidEntry)
				}
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
		})
	}
}

func TestProductService_Update(t *testing.T) {
	ownerID, id := uuid.New(), uuid.New()

	tests := []struct {
		name      string
		setupMock func(m *repositories.MockProductRepository)
		wantErr   error
	}{
		{
			name: "Success",
			setupMock: func(m *repositories.MockProductRepository) {
				m.EXPECT().GetByID(gomock.Any(), ownerID, id).
					Return(models.NewProduct(ownerID, "Old", "", decimal.NewFromInt(1)), nil)
				m.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *models.Product) error {
						assert.Equal(t, models.Name("New"), p.Name)
						assert.True(t, p.UnitPrice.Equal(decimal.NewFromInt(2)))
						return nil
					})
			},
		},
		{
			name: "NotFound",
			setupMock: func(m *repositories.MockProductRepository) {
				m.EXPECT().GetByID(gomock.Any(), ownerID, id).Return(nil, catalogdomain.ErrProductNotFound)
			},
			wantErr: catalogdomain.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repositories.NewMockProductRepository(ctrl)
			tt.setupMock(repo)

			_, err := appsvcs.NewProductService(repo).Update(context.Background(), ownerID, id,
				appsvcs.ProductInput{Name: "New", UnitPrice: decimal.NewFromInt(2)})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProductService_ListAndDelete(t *testing.T) {
	ownerID := uuid.New()
	ctrl := gomock.NewController(t)
	repo := repositories.NewMockProductRepository(ctrl)

	repo.EXPECT().ListByOwner(gomock.Any(), ownerID).Return([]*models.Product{{ID: uuid.New()}, {ID: uuid.New()}}, nil)
	repo.EXPECT().Delete(gomock.Any(), ownerID, gomock.Any()).Return(catalogdomain.ErrProductNotFound)

	svc := appsvcs.NewProductService(repo)

	got, err := svc.List(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	err = svc.Delete(context.Background(), ownerID, uuid.New())
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
}
