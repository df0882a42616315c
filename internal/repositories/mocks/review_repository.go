package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vietcommerce/marketplace/internal/models"
)

type ReviewRepository struct {
	mock.Mock
}

func (m *ReviewRepository) CreateReview(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *ReviewRepository) GetReviewByCustomerAndProduct(ctx context.Context, customerID, productID uuid.UUID) (*models.Review, error) {
	args := m.Called(ctx, customerID, productID)

	var review *models.Review
	if args.Get(0) != nil {
		review = args.Get(0).(*models.Review)
	}

	return review, args.Error(1)
}

func (m *ReviewRepository) ListReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error) {
	args := m.Called(ctx, productID)

	var reviews []models.Review
	if args.Get(0) != nil {
		reviews = args.Get(0).([]models.Review)
	}

	return reviews, args.Error(1)
}

func (m *ReviewRepository) HasDeliveredOrderWithProduct(ctx context.Context, customerID, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, customerID, productID)

	return args.Bool(0), args.Error(1)
}

func (m *ReviewRepository) ListReviewsByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Review, error) {
	args := m.Called(ctx, customerID)

	var reviews []models.Review
	if args.Get(0) != nil {
		reviews = args.Get(0).([]models.Review)
	}

	return reviews, args.Error(1)
}
