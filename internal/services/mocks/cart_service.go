package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vietcommerce/marketplace/internal/models"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, accountID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, accountID)

	var cart *models.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*models.Cart)
	}

	return cart, args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, accountID uuid.UUID, req *models.AddCartItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, accountID, req)

	var cart *models.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*models.Cart)
	}

	return cart, args.Error(1)
}

func (m *CartService) UpdateItem(ctx context.Context, accountID, itemID uuid.UUID, req *models.UpdateCartItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, accountID, itemID, req)

	var cart *models.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*models.Cart)
	}

	return cart, args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, accountID, itemID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, accountID, itemID)

	var cart *models.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*models.Cart)
	}

	return cart, args.Error(1)
}

func (m *CartService) ClearCart(ctx context.Context, accountID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, accountID)

	var cart *models.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*models.Cart)
	}

	return cart, args.Error(1)
}
