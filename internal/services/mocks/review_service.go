package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vietcommerce/marketplace/internal/models"
)

type ReviewService struct {
	mock.Mock
}

func (m *ReviewService) CreateReview(ctx context.Context, accountID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error) {
	args := m.Called(ctx, accountID, req)

	var review *models.Review
	if args.Get(0) != nil {
		review = args.Get(0).(*models.Review)
	}

	return review, args.Error(1)
}

func (m *ReviewService) ListReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error) {
	args := m.Called(ctx, productID)

	var reviews []models.Review
	if args.Get(0) != nil {
		reviews = args.Get(0).([]models.Review)
	}

	return reviews, args.Error(1)
}

func (m *ReviewService) ListOwnReviews(ctx context.Context, accountID uuid.UUID) ([]models.Review, error) {
	args := m.Called(ctx, accountID)

	var reviews []models.Review
	if args.Get(0) != nil {
		reviews = args.Get(0).([]models.Review)
	}

	return reviews, args.Error(1)
}
