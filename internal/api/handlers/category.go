package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vietcommerce/marketplace/internal/api/middleware"
	"github.com/vietcommerce/marketplace/internal/models"
	service "github.com/vietcommerce/marketplace/internal/services"
	"github.com/vietcommerce/marketplace/internal/utils"
	"github.com/vietcommerce/marketplace/internal/utils/response"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	validator       *validator.Validate
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, validator: validator.New()}
}

// CreateCategory godoc
//
//	@Summary		Create a category
//	@Description	Adds a product category. Admin only.
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Param			category	body		models.CreateCategoryRequest	true	"Category details"
//	@Success		201		{object}	models.Category		"Created category"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		403		{object}	response.ErrorResponse		"Admin role required"
//	@Security		BearerAuth
//	@Router			/categories [post]
func (h *CategoryHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		category, err := h.categoryService.CreateCategory(r.Context(), &req)
		if err != nil {
			logger.Warn("category creation failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("category created", "categoryId", category.ID.String())
		response.Success(w, http.StatusCreated, category)
	}
}

// GetCategory godoc
//
//	@Summary		Get a category
//	@Description	Returns one category by ID.
//	@Tags			Categories
//	@Produce		json
//	@Param			id	path	string	true	"Category ID"
//	@Success		200	{object}	models.Category		"Category"
//	@Failure		404	{object}	response.ErrorResponse		"Category not found"
//	@Router			/categories/{id} [get]
func (h *CategoryHandler) GetCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		category, err := h.categoryService.GetCategoryByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

// ListCategories godoc
//
//	@Summary		List categories
//	@Description	Returns all categories.
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{array}		models.Category		"Categories"
//	@Failure		500	{object}	response.ErrorResponse		"Internal server error"
//	@Router			/categories [get]
func (h *CategoryHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.categoryService.ListCategories(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// UpdateCategory godoc
//
//	@Summary		Update a category
//	@Description	Renames or re-describes a category. Admin only.
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Category ID"
//	@Param			category	body		models.CreateCategoryRequest	true	"New details"
//	@Success		200		{object}	models.Category		"Updated category"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		404		{object}	response.ErrorResponse		"Category not found"
//	@Security		BearerAuth
//	@Router			/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.CreateCategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		category, err := h.categoryService.UpdateCategory(r.Context(), id, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

// DeleteCategory godoc
//
//	@Summary		Delete a category
//	@Description	Removes a category that has no products. Admin only.
//	@Tags			Categories
//	@Produce		json
//	@Param			id	path	string	true	"Category ID"
//	@Success		200	{object}	response.APIResponse	"Deleted"
//	@Failure		400	{object}	response.ErrorResponse		"Category still has products"
//	@Failure		404	{object}	response.ErrorResponse		"Category not found"
//	@Security		BearerAuth
//	@Router			/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.categoryService.DeleteCategory(r.Context(), id); err != nil {
			response.Error(w, err)
			return
		}

		logger.Info("category deleted", "categoryId", id.String())
		response.Success(w, http.StatusOK, map[string]string{"id": id.String()})
	}
}
