package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vietcommerce/marketplace/internal/models"
)

type SellerRepository struct {
	mock.Mock
}

func (m *SellerRepository) CreateSeller(ctx context.Context, seller *models.Seller) error {
	args := m.Called(ctx, seller)

	return args.Error(0)
}

func (m *SellerRepository) GetSellerByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Seller, error) {
	args := m.Called(ctx, accountID)

	var seller *models.Seller
	if args.Get(0) != nil {
		seller = args.Get(0).(*models.Seller)
	}

	return seller, args.Error(1)
}

func (m *SellerRepository) GetSellerByID(ctx context.Context, id uuid.UUID) (*models.Seller, error) {
	args := m.Called(ctx, id)

	var seller *models.Seller
	if args.Get(0) != nil {
		seller = args.Get(0).(*models.Seller)
	}

	return seller, args.Error(1)
}

func (m *SellerRepository) UpdateSeller(ctx context.Context, seller *models.Seller) error {
	args := m.Called(ctx, seller)

	return args.Error(0)
}

func (m *SellerRepository) ListSellers(ctx context.Context) ([]models.Seller, error) {
	args := m.Called(ctx)

	var sellers []models.Seller
	if args.Get(0) != nil {
		sellers = args.Get(0).([]models.Seller)
	}

	return sellers, args.Error(1)
}

func (m *SellerRepository) SetSellerApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	args := m.Called(ctx, id, approved)

	return args.Error(0)
}
