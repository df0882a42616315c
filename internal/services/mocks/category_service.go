package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vietcommerce/marketplace/internal/models"
)

type CategoryService struct {
	mock.Mock
}

func (m *CategoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, req)

	var category *models.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*models.Category)
	}

	return category, args.Error(1)
}

func (m *CategoryService) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)

	var category *models.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*models.Category)
	}

	return category, args.Error(1)
}

func (m *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)

	var categories []models.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]models.Category)
	}

	return categories, args.Error(1)
}

func (m *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *models.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, id, req)

	var category *models.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*models.Category)
	}

	return category, args.Error(1)
}

func (m *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
