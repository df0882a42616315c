package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vietcommerce/marketplace/internal/models"
)

type ProductService struct {
	mock.Mock
}

func (m *ProductService) CreateProduct(ctx context.Context, sellerAccountID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, sellerAccountID, req)

	var product *models.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*models.Product)
	}

	return product, args.Error(1)
}

func (m *ProductService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)

	var product *models.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*models.Product)
	}

	return product, args.Error(1)
}

func (m *ProductService) ListProducts(ctx context.Context, filter *models.ProductFilter) (*models.PaginatedResponse, error) {
	args := m.Called(ctx, filter)

	var page *models.PaginatedResponse
	if args.Get(0) != nil {
		page = args.Get(0).(*models.PaginatedResponse)
	}

	return page, args.Error(1)
}

func (m *ProductService) ListOwnProducts(ctx context.Context, sellerAccountID uuid.UUID) ([]models.Product, error) {
	args := m.Called(ctx, sellerAccountID)

	var products []models.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]models.Product)
	}

	return products, args.Error(1)
}

func (m *ProductService) UpdateProduct(ctx context.Context, sellerAccountID, productID uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, sellerAccountID, productID, req)

	var product *models.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*models.Product)
	}

	return product, args.Error(1)
}

func (m *ProductService) DeleteProduct(ctx context.Context, sellerAccountID, productID uuid.UUID) error {
	args := m.Called(ctx, sellerAccountID, productID)

	return args.Error(0)
}
