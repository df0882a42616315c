package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/vietcommerce/marketplace/internal/models"
	"github.com/vietcommerce/marketplace/internal/utils"
)

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *models.Review) error
	GetReviewByCustomerAndProduct(ctx context.Context, customerID, productID uuid.UUID) (*models.Review, error)
	ListReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error)
	ListReviewsByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Review, error)
	HasDeliveredOrderWithProduct(ctx context.Context, customerID, productID uuid.UUID) (bool, error)
}

type reviewRepository struct {
	DB *sql.DB
}

func NewReviewRepo(db *sql.DB) ReviewRepository {
	return &reviewRepository{DB: db}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *models.Review) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO reviews (id, customer_id, product_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		review.ID, review.CustomerID, review.ProductID, review.Rating, review.Comment).
		Scan(&review.CreatedAt)
}

func (r *reviewRepository) GetReviewByCustomerAndProduct(ctx context.Context, customerID, productID uuid.UUID) (*models.Review, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	review := &models.Review{}

	err := r.DB.QueryRowContext(dbCtx,
		`SELECT id, customer_id, product_id, rating, comment, created_at FROM reviews WHERE customer_id = $1 AND product_id = $2`,
		customerID, productID).
		Scan(&review.ID, &review.CustomerID, &review.ProductID, &review.Rating, &review.Comment, &review.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

func (r *reviewRepository) ListReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT r.id, r.customer_id, r.product_id, r.rating, r.comment, r.created_at, c.full_name
		FROM reviews r
		JOIN customers c ON c.id = r.customer_id
		WHERE r.product_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	defer rows.Close()

	var reviews []models.Review

	for rows.Next() {

		review := models.Review{Customer: &models.Customer{}}

		err := rows.Scan(&review.ID, &review.CustomerID, &review.ProductID, &review.Rating,
			&review.Comment, &review.CreatedAt, &review.Customer.FullName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}

		review.Customer.ID = review.CustomerID

		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *reviewRepository) ListReviewsByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Review, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT r.id, r.customer_id, r.product_id, r.rating, r.comment, r.created_at, p.name
		FROM reviews r
		JOIN products p ON p.id = r.product_id
		WHERE r.customer_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	defer rows.Close()

	var reviews []models.Review

	for rows.Next() {

		review := models.Review{Product: &models.Product{}}

		err := rows.Scan(&review.ID, &review.CustomerID, &review.ProductID, &review.Rating,
			&review.Comment, &review.CreatedAt, &review.Product.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}

		review.Product.ID = review.ProductID

		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}

// HasDeliveredOrderWithProduct reports whether the customer has a DELIVERED
// order containing the product. Reviews are gated on it.
func (r *reviewRepository) HasDeliveredOrderWithProduct(ctx context.Context, customerID, productID uuid.UUID) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM orders o
			JOIN order_items oi ON oi.order_id = o.id
			WHERE o.customer_id = $1 AND oi.product_id = $2 AND o.status = $3
		)
	`

	var exists bool

	err := r.DB.QueryRowContext(dbCtx, query, customerID, productID, models.OrderStatusDelivered).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check delivered orders: %w", err)
	}

	return exists, nil
}
