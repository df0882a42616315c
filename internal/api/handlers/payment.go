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

type PaymentHandler struct {
	paymentService service.PaymentService
	validator      *validator.Validate
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, validator: validator.New()}
}

// GetPaymentForOrder godoc
//
//	@Summary		Get an order's payment
//	@Description	Returns the payment record created with an order. Customers see their own, admins any.
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path	string	true	"Order ID"
//	@Success		200	{object}	models.Payment		"Payment"
//	@Failure		403	{object}	response.ErrorResponse		"Order belongs to another customer"
//	@Failure		404	{object}	response.ErrorResponse		"Order not found"
//	@Security		BearerAuth
//	@Router			/orders/{id}/payment [get]
func (h *PaymentHandler) GetPaymentForOrder() http.HandlerFunc {
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

		payment, err := h.paymentService.GetPaymentForOrder(r.Context(), claims, orderID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, payment)
	}
}

// UpdatePaymentStatus godoc
//
//	@Summary		Update a payment status
//	@Description	Settles a pending payment as COMPLETED or FAILED. Admin only.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string									true	"Payment ID"
//	@Param			status	body		models.UpdatePaymentStatusRequest	true	"Target status"
//	@Success		200		{object}	models.Payment		"Updated payment"
//	@Failure		400		{object}	response.ErrorResponse		"Payment already settled"
//	@Failure		404		{object}	response.ErrorResponse		"Payment not found"
//	@Security		BearerAuth
//	@Router			/payments/{id}/status [patch]
func (h *PaymentHandler) UpdatePaymentStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		paymentID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdatePaymentStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		payment, err := h.paymentService.UpdatePaymentStatus(r.Context(), paymentID, &req)
		if err != nil {
			logger.Warn("payment status update failed", "paymentId", paymentID.String(), "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("payment status updated", "paymentId", paymentID.String(), "status", string(payment.Status))
		response.Success(w, http.StatusOK, payment)
	}
}

// GetPayment godoc
//
//	@Summary		Get a payment
//	@Description	Returns one payment with its order. Customers see their own, admins any.
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path	string	true	"Payment ID"
//	@Success		200	{object}	models.Payment		"Payment"
//	@Failure		403	{object}	response.ErrorResponse		"Payment belongs to another customer"
//	@Failure		404	{object}	response.ErrorResponse		"Payment not found"
//	@Security		BearerAuth
//	@Router			/payments/{id} [get]
func (h *PaymentHandler) GetPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		paymentID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		payment, err := h.paymentService.GetPayment(r.Context(), claims, paymentID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, payment)
	}
}
