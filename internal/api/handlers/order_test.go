package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vietcommerce/marketplace/internal/api/handlers"
	appErrors "github.com/vietcommerce/marketplace/internal/errors"
	"github.com/vietcommerce/marketplace/internal/models"
	"github.com/vietcommerce/marketplace/internal/services/mocks"
	"github.com/vietcommerce/marketplace/internal/testutils"
	"github.com/vietcommerce/marketplace/internal/utils/response"
)

func TestOrderHandler_PlaceOrder(t *testing.T) {
	accountID := uuid.New()

	t.Run("Success - Order Created", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		order := &models.Order{
			ID:     uuid.New(),
			Status: models.OrderStatusPending,
			Total:  decimal.RequireFromString("60.00"),
			Items: []models.OrderItem{
				{ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.RequireFromString("10.50")},
			},
		}

		mockService.On("PlaceOrder", mock.Anything, accountID, mock.MatchedBy(func(req *models.CreateOrderRequest) bool {
			return req.PaymentMethod == models.PaymentMethodCOD
		})).Return(order, nil).Once()

		body, err := json.Marshal(models.CreateOrderRequest{PaymentMethod: models.PaymentMethodCOD})
		require.NoError(t, err)

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/orders",
			bytes.NewReader(body), accountID, models.RoleCustomer, nil)
		rr := httptest.NewRecorder()

		handler.PlaceOrder()(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Nil(t, resp.Error)

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		mockService.On("PlaceOrder", mock.Anything, accountID, mock.Anything).
			Return(nil, appErrors.BadRequestError("Cart is empty")).Once()

		body, err := json.Marshal(models.CreateOrderRequest{PaymentMethod: models.PaymentMethodCOD})
		require.NoError(t, err)

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/orders",
			bytes.NewReader(body), accountID, models.RoleCustomer, nil)
		rr := httptest.NewRecorder()

		handler.PlaceOrder()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, appErrors.ErrCodeBadRequest, resp.Error.Code)
		assert.Equal(t, "Cart is empty", resp.Error.Message)
	})

	t.Run("Failure - Invalid Payment Method", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/orders",
			bytes.NewReader([]byte(`{"payment_method":"BARTER"}`)), accountID, models.RoleCustomer, nil)
		rr := httptest.NewRecorder()

		handler.PlaceOrder()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Missing Claims", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/orders",
			bytes.NewReader([]byte(`{"payment_method":"COD"}`)), nil)
		rr := httptest.NewRecorder()

		handler.PlaceOrder()(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	accountID := uuid.New()
	orderID := uuid.New()

	t.Run("Success - Order Returned", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		order := &models.Order{ID: orderID, Status: models.OrderStatusConfirmed}

		mockService.On("GetOrder", mock.Anything, mock.MatchedBy(func(claims *models.Claims) bool {
			return claims.AccountID == accountID
		}), orderID).Return(order, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/orders/"+orderID.String(),
			nil, accountID, models.RoleCustomer, map[string]string{"id": orderID.String()})
		rr := httptest.NewRecorder()

		handler.GetOrder()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid ID", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/orders/not-a-uuid",
			nil, accountID, models.RoleCustomer, map[string]string{"id": "not-a-uuid"})
		rr := httptest.NewRecorder()

		handler.GetOrder()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Foreign Order", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		mockService.On("GetOrder", mock.Anything, mock.Anything, orderID).
			Return(nil, appErrors.ForbiddenError("Order belongs to another customer")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/orders/"+orderID.String(),
			nil, accountID, models.RoleCustomer, map[string]string{"id": orderID.String()})
		rr := httptest.NewRecorder()

		handler.GetOrder()(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestOrderHandler_CancelOrder(t *testing.T) {
	accountID := uuid.New()
	orderID := uuid.New()

	t.Run("Success - Order Cancelled", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		mockService.On("CancelOrder", mock.Anything, accountID, orderID).
			Return(&models.Order{ID: orderID, Status: models.OrderStatusCancelled}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/cancel",
			nil, accountID, models.RoleCustomer, map[string]string{"id": orderID.String()})
		rr := httptest.NewRecorder()

		handler.CancelOrder()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Already Delivered", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		mockService.On("CancelOrder", mock.Anything, accountID, orderID).
			Return(nil, appErrors.BadRequestError("Order in status DELIVERED cannot be cancelled")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/cancel",
			nil, accountID, models.RoleCustomer, map[string]string{"id": orderID.String()})
		rr := httptest.NewRecorder()

		handler.CancelOrder()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	accountID := uuid.New()
	orderID := uuid.New()

	t.Run("Success - Status Updated", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		mockService.On("UpdateOrderStatus", mock.Anything, mock.MatchedBy(func(claims *models.Claims) bool {
			return claims.AccountID == accountID && claims.Role == models.RoleAdmin
		}), orderID, mock.MatchedBy(func(req *models.UpdateOrderStatusRequest) bool {
			return req.Status == models.OrderStatusConfirmed
		})).Return(&models.Order{ID: orderID, Status: models.OrderStatusConfirmed}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/orders/"+orderID.String()+"/status",
			bytes.NewReader([]byte(`{"status":"CONFIRMED"}`)), accountID, models.RoleAdmin, map[string]string{"id": orderID.String()})
		rr := httptest.NewRecorder()

		handler.UpdateOrderStatus()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Unknown Status", func(t *testing.T) {
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/orders/"+orderID.String()+"/status",
			bytes.NewReader([]byte(`{"status":"LOST"}`)), accountID, models.RoleAdmin, map[string]string{"id": orderID.String()})
		rr := httptest.NewRecorder()

		handler.UpdateOrderStatus()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
