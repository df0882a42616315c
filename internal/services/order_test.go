package service_test

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appErrors "github.com/vietcommerce/marketplace/internal/errors"
	"github.com/vietcommerce/marketplace/internal/models"
	repository "github.com/vietcommerce/marketplace/internal/repositories"
	"github.com/vietcommerce/marketplace/internal/repositories/mocks"
	service "github.com/vietcommerce/marketplace/internal/services"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	mockOrderRepo := new(mocks.OrderRepository)
	mockCartRepo := new(mocks.CartRepository)
	mockCustomerRepo := new(mocks.CustomerRepository)
	mockSellerRepo := new(mocks.SellerRepository)

	orderService := service.NewOrderService(mockOrderRepo, mockCartRepo, mockCustomerRepo, mockSellerRepo)

	accountID := uuid.New()
	customerID := uuid.New()
	cartID := uuid.New()

	customer := &models.Customer{ID: customerID, AccountID: accountID}
	cart := &models.Cart{ID: cartID, CustomerID: customerID}
	req := &models.CreateOrderRequest{PaymentMethod: models.PaymentMethodCOD}

	t.Run("Success - Order Placed", func(t *testing.T) {
		ctx := t.Context()

		placed := &models.Order{
			ID:         uuid.New(),
			CustomerID: customerID,
			Total:      decimal.RequireFromString("60.00"),
			Status:     models.OrderStatusPending,
			Items: []models.OrderItem{
				{ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.RequireFromString("10.50")},
				{ProductID: uuid.New(), Quantity: 3, UnitPrice: decimal.RequireFromString("13.00")},
			},
			Payment: &models.Payment{
				Method: models.PaymentMethodCOD,
				Status: models.PaymentStatusPending,
				Amount: decimal.RequireFromString("60.00"),
			},
		}

		mockCustomerRepo.On("GetCustomerByAccountID", ctx, accountID).Return(customer, nil).Once()
		mockCartRepo.On("GetCartByCustomerID", ctx, customerID).Return(cart, nil).Once()
		mockOrderRepo.On("CheckoutCart", ctx, customerID, cartID, models.PaymentMethodCOD).Return(placed, nil).Once()

		order, err := orderService.PlaceOrder(ctx, accountID, req)

		require.NoError(t, err)
		assert.True(t, order.Total.Equal(decimal.RequireFromString("60.00")))
		assert.Equal(t, models.OrderStatusPending, order.Status)

		mockCustomerRepo.AssertExpectations(t)
		mockCartRepo.AssertExpectations(t)
		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		ctx := t.Context()

		mockCustomerRepo.On("GetCustomerByAccountID", ctx, accountID).Return(customer, nil).Once()
		mockCartRepo.On("GetCartByCustomerID", ctx, customerID).Return(cart, nil).Once()
		mockOrderRepo.On("CheckoutCart", ctx, customerID, cartID, models.PaymentMethodCOD).
			Return(nil, repository.ErrEmptyCart).Once()

		order, err := orderService.PlaceOrder(ctx, accountID, req)

		assert.Nil(t, order)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)

		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("Failure - Insufficient Stock", func(t *testing.T) {
		ctx := t.Context()

		mockCustomerRepo.On("GetCustomerByAccountID", ctx, accountID).Return(customer, nil).Once()
		mockCartRepo.On("GetCartByCustomerID", ctx, customerID).Return(cart, nil).Once()
		mockOrderRepo.On("CheckoutCart", ctx, customerID, cartID, models.PaymentMethodCOD).
			Return(nil, repository.ErrInsufficientStock).Once()

		order, err := orderService.PlaceOrder(ctx, accountID, req)

		assert.Nil(t, order)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)

		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("Failure - No Customer Profile", func(t *testing.T) {
		ctx := t.Context()

		mockCustomerRepo.On("GetCustomerByAccountID", ctx, accountID).Return(nil, sql.ErrNoRows).Once()

		order, err := orderService.PlaceOrder(ctx, accountID, req)

		assert.Nil(t, order)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)

		mockCustomerRepo.AssertExpectations(t)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	mockOrderRepo := new(mocks.OrderRepository)
	mockCartRepo := new(mocks.CartRepository)
	mockCustomerRepo := new(mocks.CustomerRepository)
	mockSellerRepo := new(mocks.SellerRepository)

	orderService := service.NewOrderService(mockOrderRepo, mockCartRepo, mockCustomerRepo, mockSellerRepo)

	accountID := uuid.New()
	customerID := uuid.New()
	orderID := uuid.New()

	order := &models.Order{ID: orderID, CustomerID: customerID, Status: models.OrderStatusPending}

	t.Run("Success - Own Order", func(t *testing.T) {
		ctx := t.Context()
		claims := &models.Claims{AccountID: accountID, Role: models.RoleCustomer}

		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(order, nil).Once()
		mockCustomerRepo.On("GetCustomerByAccountID", ctx, accountID).
			Return(&models.Customer{ID: customerID, AccountID: accountID}, nil).Once()

		got, err := orderService.GetOrder(ctx, claims, orderID)

		require.NoError(t, err)
		assert.Equal(t, orderID, got.ID)

		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("Success - Admin Sees Any Order", func(t *testing.T) {
		ctx := t.Context()
		claims := &models.Claims{AccountID: uuid.New(), Role: models.RoleAdmin}

		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(order, nil).Once()

		got, err := orderService.GetOrder(ctx, claims, orderID)

		require.NoError(t, err)
		assert.Equal(t, orderID, got.ID)

		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("Failure - Foreign Order", func(t *testing.T) {
		ctx := t.Context()
		claims := &models.Claims{AccountID: accountID, Role: models.RoleCustomer}

		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(order, nil).Once()
		mockCustomerRepo.On("GetCustomerByAccountID", ctx, accountID).
			Return(&models.Customer{ID: uuid.New(), AccountID: accountID}, nil).Once()

		got, err := orderService.GetOrder(ctx, claims, orderID)

		assert.Nil(t, got)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeForbidden, appErr.Code)
	})
}

func TestOrderService_CancelOrder(t *testing.T) {
	mockOrderRepo := new(mocks.OrderRepository)
	mockCartRepo := new(mocks.CartRepository)
	mockCustomerRepo := new(mocks.CustomerRepository)
	mockSellerRepo := new(mocks.SellerRepository)

	orderService := service.NewOrderService(mockOrderRepo, mockCartRepo, mockCustomerRepo, mockSellerRepo)

	accountID := uuid.New()
	customerID := uuid.New()
	orderID := uuid.New()
	customer := &models.Customer{ID: customerID, AccountID: accountID}

	t.Run("Success - Pending Order", func(t *testing.T) {
		ctx := t.Context()

		mockCustomerRepo.On("GetCustomerByAccountID", ctx, accountID).Return(customer, nil).Once()
		mockOrderRepo.On("GetOrderByID", ctx, orderID).
			Return(&models.Order{ID: orderID, CustomerID: customerID, Status: models.OrderStatusPending}, nil).Once()
		mockOrderRepo.On("UpdateOrderStatus", ctx, orderID, models.OrderStatusCancelled).Return(nil).Once()

		order, err := orderService.CancelOrder(ctx, accountID, orderID)

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCancelled, order.Status)

		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("Failure - Delivered Order", func(t *testing.T) {
		ctx := t.Context()

		mockCustomerRepo.On("GetCustomerByAccountID", ctx, accountID).Return(customer, nil).Once()
		mockOrderRepo.On("GetOrderByID", ctx, orderID).
			Return(&models.Order{ID: orderID, CustomerID: customerID, Status: models.OrderStatusDelivered}, nil).Once()

		order, err := orderService.CancelOrder(ctx, accountID, orderID)

		assert.Nil(t, order)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	mockOrderRepo := new(mocks.OrderRepository)
	mockCartRepo := new(mocks.CartRepository)
	mockCustomerRepo := new(mocks.CustomerRepository)
	mockSellerRepo := new(mocks.SellerRepository)

	orderService := service.NewOrderService(mockOrderRepo, mockCartRepo, mockCustomerRepo, mockSellerRepo)

	orderID := uuid.New()
	sellerID := uuid.New()
	sellerAccountID := uuid.New()

	adminClaims := &models.Claims{AccountID: uuid.New(), Role: models.RoleAdmin}
	sellerClaims := &models.Claims{AccountID: sellerAccountID, Role: models.RoleSeller}
	seller := &models.Seller{ID: sellerID, AccountID: sellerAccountID, Approved: true}

	orderWithSellerItem := func(status models.OrderStatus, itemSellerID uuid.UUID) *models.Order {
		return &models.Order{
			ID:     orderID,
			Status: status,
			Items: []models.OrderItem{
				{ProductID: uuid.New(), Quantity: 1, Product: &models.Product{SellerID: itemSellerID}},
			},
		}
	}

	t.Run("Success - Admin Pending To Confirmed", func(t *testing.T) {
		ctx := t.Context()

		mockOrderRepo.On("GetOrderByID", ctx, orderID).
			Return(&models.Order{ID: orderID, Status: models.OrderStatusPending}, nil).Once()
		mockOrderRepo.On("UpdateOrderStatus", ctx, orderID, models.OrderStatusConfirmed).Return(nil).Once()

		order, err := orderService.UpdateOrderStatus(ctx, adminClaims, orderID, &models.UpdateOrderStatusRequest{Status: models.OrderStatusConfirmed})

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	})

	t.Run("Success - Seller With Product In Order", func(t *testing.T) {
		ctx := t.Context()

		mockOrderRepo.On("GetOrderByID", ctx, orderID).
			Return(orderWithSellerItem(models.OrderStatusConfirmed, sellerID), nil).Once()
		mockSellerRepo.On("GetSellerByAccountID", ctx, sellerAccountID).Return(seller, nil).Once()
		mockOrderRepo.On("UpdateOrderStatus", ctx, orderID, models.OrderStatusShipping).Return(nil).Once()

		order, err := orderService.UpdateOrderStatus(ctx, sellerClaims, orderID, &models.UpdateOrderStatusRequest{Status: models.OrderStatusShipping})

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusShipping, order.Status)
	})

	t.Run("Failure - Seller Without Product In Order", func(t *testing.T) {
		ctx := t.Context()

		mockOrderRepo.On("GetOrderByID", ctx, orderID).
			Return(orderWithSellerItem(models.OrderStatusConfirmed, uuid.New()), nil).Once()
		mockSellerRepo.On("GetSellerByAccountID", ctx, sellerAccountID).Return(seller, nil).Once()

		order, err := orderService.UpdateOrderStatus(ctx, sellerClaims, orderID, &models.UpdateOrderStatusRequest{Status: models.OrderStatusShipping})

		assert.Nil(t, order)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeForbidden, appErr.Code)

		mockOrderRepo.AssertNotCalled(t, "UpdateOrderStatus", ctx, orderID, models.OrderStatusShipping)
	})

	t.Run("Failure - Pending To Delivered Skips Steps", func(t *testing.T) {
		ctx := t.Context()

		mockOrderRepo.On("GetOrderByID", ctx, orderID).
			Return(&models.Order{ID: orderID, Status: models.OrderStatusPending}, nil).Once()

		order, err := orderService.UpdateOrderStatus(ctx, adminClaims, orderID, &models.UpdateOrderStatusRequest{Status: models.OrderStatusDelivered})

		assert.Nil(t, order)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})

	t.Run("Failure - Cancelled Is Terminal", func(t *testing.T) {
		ctx := t.Context()

		mockOrderRepo.On("GetOrderByID", ctx, orderID).
			Return(&models.Order{ID: orderID, Status: models.OrderStatusCancelled}, nil).Once()

		order, err := orderService.UpdateOrderStatus(ctx, adminClaims, orderID, &models.UpdateOrderStatusRequest{Status: models.OrderStatusConfirmed})

		assert.Nil(t, order)
		assert.Error(t, err)
	})
}
