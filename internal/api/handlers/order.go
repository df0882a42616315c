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

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// PlaceOrder godoc
//
//	@Summary		Place an order
//	@Description	Converts the caller's cart into an order with price-snapshot lines and a pending payment, then clears the cart. The whole conversion runs in one transaction.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.CreateOrderRequest	true	"Payment method"
//	@Success		201		{object}	models.Order		"Created order"
//	@Failure		400		{object}	response.ErrorResponse		"Empty cart, inactive product or not enough stock"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Customer profile not found"
//	@Security		BearerAuth
//	@Router			/orders [post]
func (h *OrderHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CreateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.PlaceOrder(r.Context(), claims.AccountID, &req)
		if err != nil {
			logger.Warn("order placement failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("order placed",
			"orderId", order.ID.String(),
			"total", order.Total.String(),
			"items", len(order.Items))
		response.Success(w, http.StatusCreated, order)
	}
}

// GetOrder godoc
//
//	@Summary		Get an order
//	@Description	Returns one order with its lines, payment and customer. Customers see their own orders, admins any.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	string	true	"Order ID"
//	@Success		200	{object}	models.Order		"Order"
//	@Failure		403	{object}	response.ErrorResponse		"Order belongs to another customer"
//	@Failure		404	{object}	response.ErrorResponse		"Order not found"
//	@Security		BearerAuth
//	@Router			/orders/{id} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		orderID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		order, err := h.orderService.GetOrder(r.Context(), claims, orderID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// ListOrders godoc
//
//	@Summary		List orders
//	@Description	Customers get their own orders, admins every order, newest first.
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{array}		models.Order		"Orders"
//	@Failure		401	{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		orders, err := h.orderService.ListOrders(r.Context(), claims)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}

// CancelOrder godoc
//
//	@Summary		Cancel an order
//	@Description	Cancels the caller's own order while it is still in a non-terminal status.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	string	true	"Order ID"
//	@Success		200	{object}	models.Order		"Cancelled order"
//	@Failure		400	{object}	response.ErrorResponse		"Order already delivered or cancelled"
//	@Failure		403	{object}	response.ErrorResponse		"Order belongs to another customer"
//	@Failure		404	{object}	response.ErrorResponse		"Order not found"
//	@Security		BearerAuth
//	@Router			/orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		orderID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		order, err := h.orderService.CancelOrder(r.Context(), claims.AccountID, orderID)
		if err != nil {
			logger.Warn("order cancellation failed", "orderId", orderID.String(), "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("order cancelled", "orderId", orderID.String())
		response.Success(w, http.StatusOK, order)
	}
}

// UpdateOrderStatus godoc
//
//	@Summary		Update an order status
//	@Description	Moves the order along PENDING, CONFIRMED, SHIPPING, DELIVERED. Admins update any order; a seller only orders containing their products.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Order ID"
//	@Param			status	body		models.UpdateOrderStatusRequest	true	"Target status"
//	@Success		200		{object}	models.Order		"Updated order"
//	@Failure		400		{object}	response.ErrorResponse		"Transition not allowed"
//	@Failure		403		{object}	response.ErrorResponse		"Order contains none of your products"
//	@Failure		404		{object}	response.ErrorResponse		"Order not found"
//	@Security		BearerAuth
//	@Router			/orders/{id}/status [put]
func (h *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		orderID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.UpdateOrderStatus(r.Context(), claims, orderID, &req)
		if err != nil {
			logger.Warn("order status update failed", "orderId", orderID.String(), "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("order status updated", "orderId", orderID.String(), "status", string(order.Status))
		response.Success(w, http.StatusOK, order)
	}
}
