package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	appErrors "github.com/vietcommerce/marketplace/internal/errors"
	"github.com/vietcommerce/marketplace/internal/models"
	repository "github.com/vietcommerce/marketplace/internal/repositories"
)

type ReviewService interface {
	CreateReview(ctx context.Context, accountID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error)
	ListReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error)
	ListOwnReviews(ctx context.Context, accountID uuid.UUID) ([]models.Review, error)
}

type reviewService struct {
	reviewRepo   repository.ReviewRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	sanitizer    *bluemonday.Policy
}

func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository, customerRepo repository.CustomerRepository) ReviewService {
	return &reviewService{
		reviewRepo:   reviewRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		sanitizer:    bluemonday.UGCPolicy(),
	}
}

// CreateReview accepts one review per customer per product, and only after a
// delivered order containing that product.
func (s *reviewService) CreateReview(ctx context.Context, accountID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error) {

	customer, err := s.customerRepo.GetCustomerByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Customer profile not found")
		}

		return nil, appErrors.DatabaseError("Failed to load customer profile").WithError(err)
	}

	if _, err := s.productRepo.GetProductByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found")
		}

		return nil, appErrors.DatabaseError("Failed to load product").WithError(err)
	}

	delivered, err := s.reviewRepo.HasDeliveredOrderWithProduct(ctx, customer.ID, req.ProductID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to check order history").WithError(err)
	}

	if !delivered {
		return nil, appErrors.ForbiddenError("Only customers with a delivered order can review this product")
	}

	if existing, _ := s.reviewRepo.GetReviewByCustomerAndProduct(ctx, customer.ID, req.ProductID); existing != nil {
		return nil, appErrors.DuplicateEntryError("Product already reviewed")
	}

	review := &models.Review{
		ID:         uuid.New(),
		ProductID:  req.ProductID,
		CustomerID: customer.ID,
		Rating:     req.Rating,
		Comment:    s.sanitizer.Sanitize(req.Comment),
	}

	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, appErrors.DatabaseError("Failed to create review").WithError(err)
	}

	return review, nil
}

func (s *reviewService) ListReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error) {

	if _, err := s.productRepo.GetProductByID(ctx, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found")
		}

		return nil, appErrors.DatabaseError("Failed to load product").WithError(err)
	}

	reviews, err := s.reviewRepo.ListReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list reviews").WithError(err)
	}

	return reviews, nil
}

func (s *reviewService) ListOwnReviews(ctx context.Context, accountID uuid.UUID) ([]models.Review, error) {

	customer, err := s.customerRepo.GetCustomerByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Customer profile not found")
		}

		return nil, appErrors.DatabaseError("Failed to load customer profile").WithError(err)
	}

	reviews, err := s.reviewRepo.ListReviewsByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list reviews").WithError(err)
	}

	return reviews, nil
}
