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

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//
//	@Summary		Get the caller's cart
//	@Description	Returns the cart with its lines, creating an empty cart on first use.
//	@Tags			Carts
//	@Produce		json
//	@Success		200		{object}	models.Cart		"Cart with items"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Customer profile not found"
//	@Security		BearerAuth
//	@Router			/carts [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), claims.AccountID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//
//	@Summary		Add a product to the cart
//	@Description	Adds the product or increases the line quantity when it is already in the cart. Quantity is capped by stock.
//	@Tags			Carts
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddCartItemRequest	true	"Product and quantity"
//	@Success		201		{object}	models.Cart		"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error, inactive product or not enough stock"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Security		BearerAuth
//	@Router			/carts/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), claims.AccountID, &req)
		if err != nil {
			logger.Warn("cart add failed", "productId", req.ProductID.String(), "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("cart item added", "productId", req.ProductID.String(), "quantity", req.Quantity)
		response.Success(w, http.StatusCreated, cart)
	}
}

// UpdateItem godoc
//
//	@Summary		Change a cart line quantity
//	@Description	Sets the quantity of an existing cart line owned by the caller.
//	@Tags			Carts
//	@Accept			json
//	@Produce		json
//	@Param			itemId	path		string						true	"Cart item ID"
//	@Param			item	body		models.UpdateCartItemRequest	true	"New quantity"
//	@Success		200		{object}	models.Cart		"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error or not enough stock"
//	@Failure		403		{object}	response.ErrorResponse		"Line belongs to another cart"
//	@Failure		404		{object}	response.ErrorResponse		"Cart item not found"
//	@Security		BearerAuth
//	@Router			/carts/items/{itemId} [put]
func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		itemID, err := utils.ParseID(r, "itemId")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.UpdateItem(r.Context(), claims.AccountID, itemID, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveItem godoc
//
//	@Summary		Remove a cart line
//	@Description	Deletes one line from the caller's cart.
//	@Tags			Carts
//	@Produce		json
//	@Param			itemId	path	string	true	"Cart item ID"
//	@Success		200		{object}	models.Cart		"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse		"Invalid ID"
//	@Failure		403		{object}	response.ErrorResponse		"Line belongs to another cart"
//	@Failure		404		{object}	response.ErrorResponse		"Cart item not found"
//	@Security		BearerAuth
//	@Router			/carts/items/{itemId} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		itemID, err := utils.ParseID(r, "itemId")
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), claims.AccountID, itemID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// ClearCart godoc
//
//	@Summary		Empty the cart
//	@Description	Removes every line from the caller's cart.
//	@Tags			Carts
//	@Produce		json
//	@Success		200		{object}	models.Cart		"Emptied cart"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Customer profile not found"
//	@Security		BearerAuth
//	@Router			/carts [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		cart, err := h.cartService.ClearCart(r.Context(), claims.AccountID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}
