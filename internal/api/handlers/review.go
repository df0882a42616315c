package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vietcommerce/marketplace/internal/api/middleware"
	appErrors "github.com/vietcommerce/marketplace/internal/errors"
	"github.com/vietcommerce/marketplace/internal/models"
	service "github.com/vietcommerce/marketplace/internal/services"
	"github.com/vietcommerce/marketplace/internal/utils"
	"github.com/vietcommerce/marketplace/internal/utils/response"
)

type ReviewHandler struct {
	reviewService service.ReviewService
	validator     *validator.Validate
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, validator: validator.New()}
}

// CreateReview godoc
//
//	@Summary		Review a product
//	@Description	Creates a review for a product the caller received in a delivered order. One review per product per customer; the comment is sanitized.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			review	body		models.CreateReviewRequest	true	"Rating and comment"
//	@Success		201		{object}	models.Review		"Created review"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		403		{object}	response.ErrorResponse		"No delivered order with this product"
//	@Failure		409		{object}	response.ErrorResponse		"Product already reviewed"
//	@Security		BearerAuth
//	@Router			/reviews [post]
func (h *ReviewHandler) CreateReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CreateReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		review, err := h.reviewService.CreateReview(r.Context(), claims.AccountID, &req)
		if err != nil {
			logger.Warn("review creation failed", "productId", req.ProductID.String(), "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("review created", "reviewId", review.ID.String(), "rating", review.Rating)
		response.Success(w, http.StatusCreated, review)
	}
}

// ListReviewsByProduct godoc
//
//	@Summary		List a product's reviews
//	@Description	Returns the product's reviews with customer names, newest first.
//	@Tags			Reviews
//	@Produce		json
//	@Param			id	path	string	true	"Product ID"
//	@Success		200	{array}		models.Review		"Reviews"
//	@Failure		404	{object}	response.ErrorResponse		"Product not found"
//	@Router			/products/{id}/reviews [get]
func (h *ReviewHandler) ListReviewsByProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		reviews, err := h.reviewService.ListReviewsByProduct(r.Context(), productID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, reviews)
	}
}

// ListOwnReviews godoc
//
//	@Summary		List the caller's reviews
//	@Description	Returns every review the authenticated customer has written, with product names.
//	@Tags			Reviews
//	@Produce		json
//	@Success		200	{array}		models.Review		"Reviews"
//	@Failure		404	{object}	response.ErrorResponse		"Customer profile not found"
//	@Security		BearerAuth
//	@Router			/reviews/mine [get]
func (h *ReviewHandler) ListOwnReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		reviews, err := h.reviewService.ListOwnReviews(r.Context(), claims.AccountID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, reviews)
	}
}
