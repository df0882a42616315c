package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vietcommerce/marketplace/internal/models"
)

type OrderService struct {
	mock.Mock
}

func (m *OrderService) PlaceOrder(ctx context.Context, accountID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error) {
	args := m.Called(ctx, accountID, req)

	var order *models.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*models.Order)
	}

	return order, args.Error(1)
}

func (m *OrderService) GetOrder(ctx context.Context, claims *models.Claims, orderID uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, claims, orderID)

	var order *models.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*models.Order)
	}

	return order, args.Error(1)
}

func (m *OrderService) ListOrders(ctx context.Context, claims *models.Claims) ([]models.Order, error) {
	args := m.Called(ctx, claims)

	var orders []models.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]models.Order)
	}

	return orders, args.Error(1)
}

func (m *OrderService) CancelOrder(ctx context.Context, accountID, orderID uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, accountID, orderID)

	var order *models.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*models.Order)
	}

	return order, args.Error(1)
}

func (m *OrderService) UpdateOrderStatus(ctx context.Context, claims *models.Claims, orderID uuid.UUID, req *models.UpdateOrderStatusRequest) (*models.Order, error) {
	args := m.Called(ctx, claims, orderID, req)

	var order *models.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*models.Order)
	}

	return order, args.Error(1)
}
