package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SandyBridge101/AudiophileEcommerce/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Submit(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func validOrderBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(model.OrderRequest{
		Name:          "Alexei Ward",
		Email:         "alexei@mail.com",
		Phone:         "+1 202-555-0136",
		Address:       "1137 Williams Avenue",
		Zip:           "10001",
		City:          "New York",
		Country:       "United States",
		PaymentMethod: model.PaymentMethodEMoney,
		EMoneyNumber:  "238521993",
		EMoneyPin:     "6891",
		Items: []model.OrderItem{
			{ID: 1, Name: "YX1", Price: 599, Quantity: 1},
		},
		Subtotal:   599,
		Shipping:   50,
		VAT:        120,
		GrandTotal: 769,
	})
	require.NoError(t, err)
	return body
}

func TestOrderHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success returns 201 with assigned id", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("Submit", mock.Anything, mock.AnythingOfType("*model.OrderRequest")).
			Return(&model.Order{ID: 1, Name: "Alexei Ward", GrandTotal: 769}, nil)

		h := NewOrderHandler(svc, logger)

		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(validOrderBody(t)))
		w := httptest.NewRecorder()

		h.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var got model.Order
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int64(1), got.ID)
		svc.AssertExpectations(t)
	})

	t.Run("Validation failure returns 400 with field messages", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("Submit", mock.Anything, mock.AnythingOfType("*model.OrderRequest")).
			Return(nil, model.NewValidationError(map[string]string{
				"email": "Invalid email address",
				"name":  "Name is required",
			}))

		h := NewOrderHandler(svc, logger)

		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(validOrderBody(t)))
		w := httptest.NewRecorder()

		h.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp model.ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrCodeValidationFailed, resp.Error)
		assert.Equal(t, "Invalid email address", resp.Fields["email"])
		assert.Equal(t, "Name is required", resp.Fields["name"])
	})

	t.Run("Malformed body returns 400 without touching the service", func(t *testing.T) {
		svc := new(MockOrderService)
		h := NewOrderHandler(svc, logger)

		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{not json"))
		w := httptest.NewRecorder()

		h.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrCodeInvalidJSON, resp.Error)
		svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("Service failure returns 500", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("Submit", mock.Anything, mock.AnythingOfType("*model.OrderRequest")).
			Return(nil, errors.New("database error"))

		h := NewOrderHandler(svc, logger)

		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(validOrderBody(t)))
		w := httptest.NewRecorder()

		h.Create(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Method not allowed", func(t *testing.T) {
		svc := new(MockOrderService)
		h := NewOrderHandler(svc, logger)

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		w := httptest.NewRecorder()

		h.Create(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestOrderHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Found", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("GetByID", mock.Anything, int64(7)).
			Return(&model.Order{ID: 7, Name: "Alexei Ward"}, nil)

		h := NewOrderHandler(svc, logger)

		req := httptest.NewRequest(http.MethodGet, "/orders/7", nil)
		w := httptest.NewRecorder()

		h.GetByID(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got model.Order
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int64(7), got.ID)
	})

	t.Run("Not found", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("GetByID", mock.Anything, int64(99)).Return(nil, model.ErrOrderNotFound)

		h := NewOrderHandler(svc, logger)

		req := httptest.NewRequest(http.MethodGet, "/orders/99", nil)
		w := httptest.NewRecorder()

		h.GetByID(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrCodeOrderNotFound, resp.Error)
	})

	t.Run("Backend failure returns 500, not 404", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("GetByID", mock.Anything, int64(7)).
			Return(nil, errors.New("connection refused"))

		h := NewOrderHandler(svc, logger)

		req := httptest.NewRequest(http.MethodGet, "/orders/7", nil)
		w := httptest.NewRecorder()

		h.GetByID(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrCodeInternalError, resp.Error)
	})

	t.Run("Non-numeric id", func(t *testing.T) {
		svc := new(MockOrderService)
		h := NewOrderHandler(svc, logger)

		req := httptest.NewRequest(http.MethodGet, "/orders/abc", nil)
		w := httptest.NewRecorder()

		h.GetByID(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
