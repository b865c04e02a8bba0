package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SandyBridge101/AudiophileEcommerce/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) GetByCategory(ctx context.Context, category string) ([]model.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func TestProductHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	testProducts := []model.Product{
		{ID: 1, Slug: "yx1-earphones", Name: "YX1 Wireless Earphones", Category: "earphones", Price: 599},
		{ID: 5, Slug: "zx9-speaker", Name: "ZX9 Speaker", Category: "speakers", Price: 4500},
	}

	tests := []struct {
		name           string
		method         string
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			method:         http.MethodGet,
			mockReturn:     testProducts,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Service error",
			method:         http.MethodGet,
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodPost,
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockProductService)
			if tt.expectService {
				svc.On("GetAll", mock.Anything).Return(tt.mockReturn, tt.mockError)
			}

			h := NewProductHandler(svc, logger)

			req := httptest.NewRequest(tt.method, "/products", nil)
			w := httptest.NewRecorder()

			h.GetAll(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got []model.Product
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Len(t, got, 2)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestProductHandler_GetBySlug(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Known slug", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("GetBySlug", mock.Anything, "zx9-speaker").
			Return(&model.Product{ID: 5, Slug: "zx9-speaker", Name: "ZX9 Speaker", Price: 4500}, nil)

		h := NewProductHandler(svc, logger)

		req := httptest.NewRequest(http.MethodGet, "/products/zx9-speaker", nil)
		w := httptest.NewRecorder()

		h.GetBySlug(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got model.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "zx9-speaker", got.Slug)
	})

	t.Run("Unknown slug returns 404 with code", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("GetBySlug", mock.Anything, "zx11-speaker").Return(nil, model.ErrProductNotFound)

		h := NewProductHandler(svc, logger)

		req := httptest.NewRequest(http.MethodGet, "/products/zx11-speaker", nil)
		w := httptest.NewRecorder()

		h.GetBySlug(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrCodeProductNotFound, resp.Error)
	})

	t.Run("Backend failure returns 500, not 404", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("GetBySlug", mock.Anything, "zx9-speaker").
			Return(nil, errors.New("connection refused"))

		h := NewProductHandler(svc, logger)

		req := httptest.NewRequest(http.MethodGet, "/products/zx9-speaker", nil)
		w := httptest.NewRecorder()

		h.GetBySlug(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrCodeInternalError, resp.Error)
	})

	t.Run("Method not allowed", func(t *testing.T) {
		svc := new(MockProductService)
		h := NewProductHandler(svc, logger)

		req := httptest.NewRequest(http.MethodDelete, "/products/zx9-speaker", nil)
		w := httptest.NewRecorder()

		h.GetBySlug(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestProductHandler_GetByCategory(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Known category", func(t *testing.T) {
		speakers := []model.Product{
			{ID: 5, Slug: "zx9-speaker", Category: "speakers"},
			{ID: 6, Slug: "zx7-speaker", Category: "speakers"},
		}
		svc := new(MockProductService)
		svc.On("GetByCategory", mock.Anything, "speakers").Return(speakers, nil)

		h := NewProductHandler(svc, logger)

		req := httptest.NewRequest(http.MethodGet, "/products/category/speakers", nil)
		w := httptest.NewRecorder()

		h.GetByCategory(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []model.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("Unknown category returns empty list, not 404", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("GetByCategory", mock.Anything, "turntables").Return([]model.Product{}, nil)

		h := NewProductHandler(svc, logger)

		req := httptest.NewRequest(http.MethodGet, "/products/category/turntables", nil)
		w := httptest.NewRecorder()

		h.GetByCategory(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("Missing category", func(t *testing.T) {
		svc := new(MockProductService)
		h := NewProductHandler(svc, logger)

		req := httptest.NewRequest(http.MethodGet, "/products/category/", nil)
		w := httptest.NewRecorder()

		h.GetByCategory(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
