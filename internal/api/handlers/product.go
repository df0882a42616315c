package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/vietcommerce/marketplace/internal/api/middleware"
	appErrors "github.com/vietcommerce/marketplace/internal/errors"
	"github.com/vietcommerce/marketplace/internal/models"
	service "github.com/vietcommerce/marketplace/internal/services"
	"github.com/vietcommerce/marketplace/internal/utils"
	"github.com/vietcommerce/marketplace/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

// CreateProduct godoc
//
//	@Summary		Create a product
//	@Description	Adds a product under the caller's seller profile. The seller must be approved.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product details"
//	@Success		201		{object}	models.Product		"Created product"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error or unknown category"
//	@Failure		403		{object}	response.ErrorResponse		"Seller not approved"
//	@Security		BearerAuth
//	@Router			/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), claims.AccountID, &req)
		if err != nil {
			logger.Warn("product creation failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("product created", "productId", product.ID.String())
		response.Success(w, http.StatusCreated, product)
	}
}

// GetProduct godoc
//
//	@Summary		Get a product
//	@Description	Returns an active product with its category, seller and reviews. Cached.
//	@Tags			Products
//	@Produce		json
//	@Param			id	path	string	true	"Product ID"
//	@Success		200	{object}	models.Product		"Product"
//	@Failure		404	{object}	response.ErrorResponse		"Product not found"
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// ListProducts godoc
//
//	@Summary		List products
//	@Description	Paginated listing of active products with optional name search and category filter.
//	@Tags			Products
//	@Produce		json
//	@Param			search		query	string	false	"Name substring"
//	@Param			category_id	query	string	false	"Category ID"
//	@Param			page		query	int		false	"Page number"			default(1)
//	@Param			page_size	query	int		false	"Items per page"	default(20)
//	@Success		200		{object}	models.PaginatedResponse		"Page of products"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query := r.URL.Query()

		filter := &models.ProductFilter{Search: query.Get("search")}

		if raw := query.Get("category_id"); raw != "" {

			categoryID, err := uuid.Parse(raw)
			if err != nil {
				response.Error(w, appErrors.BadRequestError("Invalid category_id format"))
				return
			}

			filter.CategoryID = &categoryID
		}

		filter.Page, _ = strconv.Atoi(query.Get("page"))
		filter.PageSize, _ = strconv.Atoi(query.Get("page_size"))

		page, err := h.productService.ListProducts(r.Context(), filter)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, page)
	}
}

// ListOwnProducts godoc
//
//	@Summary		List the caller's products
//	@Description	Returns every product of the authenticated seller, active or not.
//	@Tags			Products
//	@Produce		json
//	@Success		200	{array}		models.Product		"Products"
//	@Failure		404	{object}	response.ErrorResponse		"Seller profile not found"
//	@Security		BearerAuth
//	@Router			/sellers/products [get]
func (h *ProductHandler) ListOwnProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		products, err := h.productService.ListOwnProducts(r.Context(), claims.AccountID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// UpdateProduct godoc
//
//	@Summary		Update a product
//	@Description	Updates one of the caller's products and invalidates its cache entry.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string						true	"Product ID"
//	@Param			product	body		models.UpdateProductRequest	true	"Changed fields"
//	@Success		200		{object}	models.Product		"Updated product"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		403		{object}	response.ErrorResponse		"Product belongs to another seller"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Security		BearerAuth
//	@Router			/products/{id} [put]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), claims.AccountID, id, &req)
		if err != nil {
			logger.Warn("product update failed", "productId", id.String(), "error", err.Error())
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
//
//	@Summary		Delete a product
//	@Description	Soft-deletes one of the caller's products by marking it inactive.
//	@Tags			Products
//	@Produce		json
//	@Param			id	path	string	true	"Product ID"
//	@Success		200	{object}	response.APIResponse	"Deleted"
//	@Failure		403	{object}	response.ErrorResponse		"Product belongs to another seller"
//	@Failure		404	{object}	response.ErrorResponse		"Product not found"
//	@Security		BearerAuth
//	@Router			/products/{id} [delete]
func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), claims.AccountID, id); err != nil {
			response.Error(w, err)
			return
		}

		logger.Info("product deleted", "productId", id.String())
		response.Success(w, http.StatusOK, map[string]string{"id": id.String()})
	}
}
