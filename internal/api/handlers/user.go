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

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

// GetProfile godoc
//
//	@Summary		Get the caller's profile
//	@Description	Returns the customer or seller profile matching the caller's role.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	response.APIResponse	"Role profile"
//	@Failure		404	{object}	response.ErrorResponse		"Profile not found"
//	@Security		BearerAuth
//	@Router			/users/profile [get]
func (h *UserHandler) GetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		switch claims.Role {
		case models.RoleCustomer:

			customer, err := h.userService.GetCustomerProfile(r.Context(), claims.AccountID)
			if err != nil {
				response.Error(w, err)
				return
			}

			response.Success(w, http.StatusOK, customer)

		case models.RoleSeller:

			seller, err := h.userService.GetSellerProfile(r.Context(), claims.AccountID)
			if err != nil {
				response.Error(w, err)
				return
			}

			response.Success(w, http.StatusOK, seller)

		default:
			response.Success(w, http.StatusOK, models.AccountSummary{
				ID:    claims.AccountID,
				Email: claims.Email,
				Role:  claims.Role,
			})
		}
	}
}

// UpdateCustomerProfile godoc
//
//	@Summary		Update the customer profile
//	@Description	Updates the caller's name, phone and address.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			profile	body		models.UpdateCustomerRequest	true	"Profile fields"
//	@Success		200		{object}	models.Customer		"Updated profile"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		404		{object}	response.ErrorResponse		"Customer profile not found"
//	@Security		BearerAuth
//	@Router			/users/customer [put]
func (h *UserHandler) UpdateCustomerProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.UpdateCustomerRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		customer, err := h.userService.UpdateCustomerProfile(r.Context(), claims.AccountID, &req)
		if err != nil {
			logger.Warn("customer profile update failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, customer)
	}
}

// UpdateSellerProfile godoc
//
//	@Summary		Update the seller profile
//	@Description	Updates the caller's store name and description.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			profile	body		models.UpdateSellerRequest	true	"Store fields"
//	@Success		200		{object}	models.Seller		"Updated profile"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		404		{object}	response.ErrorResponse		"Seller profile not found"
//	@Security		BearerAuth
//	@Router			/users/seller [put]
func (h *UserHandler) UpdateSellerProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.UpdateSellerRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		seller, err := h.userService.UpdateSellerProfile(r.Context(), claims.AccountID, &req)
		if err != nil {
			logger.Warn("seller profile update failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, seller)
	}
}

// ListSellers godoc
//
//	@Summary		List sellers
//	@Description	Returns every seller with its approval state. Admin only.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		models.Seller		"Sellers"
//	@Failure		401	{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/sellers [get]
func (h *UserHandler) ListSellers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sellers, err := h.userService.ListSellers(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, sellers)
	}
}

// ApproveSeller godoc
//
//	@Summary		Approve or revoke a seller
//	@Description	Sets the seller's approval flag. Unapproved sellers cannot create products. Admin only.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Seller ID"
//	@Param			approval	body		models.SellerApprovalRequest	true	"Approval flag"
//	@Success		200		{object}	models.Seller		"Updated seller"
//	@Failure		404		{object}	response.ErrorResponse		"Seller not found"
//	@Security		BearerAuth
//	@Router			/sellers/{id}/approval [patch]
func (h *UserHandler) ApproveSeller() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sellerID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.SellerApprovalRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		seller, err := h.userService.ApproveSeller(r.Context(), sellerID, *req.Approved)
		if err != nil {
			logger.Warn("seller approval failed", "sellerId", sellerID.String(), "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("seller approval updated", "sellerId", sellerID.String(), "approved", seller.Approved)
		response.Success(w, http.StatusOK, seller)
	}
}
