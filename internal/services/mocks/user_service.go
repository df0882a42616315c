package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vietcommerce/marketplace/internal/models"
)

type UserService struct {
	mock.Mock
}

func (m *UserService) GetCustomerProfile(ctx context.Context, accountID uuid.UUID) (*models.Customer, error) {
	args := m.Called(ctx, accountID)

	var customer *models.Customer
	if args.Get(0) != nil {
		customer = args.Get(0).(*models.Customer)
	}

	return customer, args.Error(1)
}

func (m *UserService) UpdateCustomerProfile(ctx context.Context, accountID uuid.UUID, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	args := m.Called(ctx, accountID, req)

	var customer *models.Customer
	if args.Get(0) != nil {
		customer = args.Get(0).(*models.Customer)
	}

	return customer, args.Error(1)
}

func (m *UserService) GetSellerProfile(ctx context.Context, accountID uuid.UUID) (*models.Seller, error) {
	args := m.Called(ctx, accountID)

	var seller *models.Seller
	if args.Get(0) != nil {
		seller = args.Get(0).(*models.Seller)
	}

	return seller, args.Error(1)
}

func (m *UserService) UpdateSellerProfile(ctx context.Context, accountID uuid.UUID, req *models.UpdateSellerRequest) (*models.Seller, error) {
	args := m.Called(ctx, accountID, req)

	var seller *models.Seller
	if args.Get(0) != nil {
		seller = args.Get(0).(*models.Seller)
	}

	return seller, args.Error(1)
}

func (m *UserService) ListSellers(ctx context.Context) ([]models.Seller, error) {
	args := m.Called(ctx)

	var sellers []models.Seller
	if args.Get(0) != nil {
		sellers = args.Get(0).([]models.Seller)
	}

	return sellers, args.Error(1)
}

func (m *UserService) ApproveSeller(ctx context.Context, sellerID uuid.UUID, approved bool) (*models.Seller, error) {
	args := m.Called(ctx, sellerID, approved)

	var seller *models.Seller
	if args.Get(0) != nil {
		seller = args.Get(0).(*models.Seller)
	}

	return seller, args.Error(1)
}
