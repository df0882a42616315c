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

type ComplaintHandler struct {
	complaintService service.ComplaintService
	validator        *validator.Validate
}

func NewComplaintHandler(complaintService service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService, validator: validator.New()}
}

// CreateComplaint godoc
//
//	@Summary		File a complaint
//	@Description	Opens a PENDING complaint about one of the caller's orders, with optional evidence URLs.
//	@Tags			Complaints
//	@Accept			json
//	@Produce		json
//	@Param			complaint	body		models.CreateComplaintRequest	true	"Order, content and evidence"
//	@Success		201		{object}	models.Complaint		"Created complaint"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		403		{object}	response.ErrorResponse		"Order belongs to another customer"
//	@Failure		404		{object}	response.ErrorResponse		"Order not found"
//	@Security		BearerAuth
//	@Router			/complaints [post]
func (h *ComplaintHandler) CreateComplaint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CreateComplaintRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		complaint, err := h.complaintService.CreateComplaint(r.Context(), claims.AccountID, &req)
		if err != nil {
			logger.Warn("complaint creation failed", "orderId", req.OrderID.String(), "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("complaint created", "complaintId", complaint.ID.String())
		response.Success(w, http.StatusCreated, complaint)
	}
}

// GetComplaint godoc
//
//	@Summary		Get a complaint
//	@Description	Returns one complaint with its order. Customers see their own, admins any.
//	@Tags			Complaints
//	@Produce		json
//	@Param			id	path	string	true	"Complaint ID"
//	@Success		200	{object}	models.Complaint		"Complaint"
//	@Failure		403	{object}	response.ErrorResponse		"Complaint belongs to another customer"
//	@Failure		404	{object}	response.ErrorResponse		"Complaint not found"
//	@Security		BearerAuth
//	@Router			/complaints/{id} [get]
func (h *ComplaintHandler) GetComplaint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		complaintID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		complaint, err := h.complaintService.GetComplaint(r.Context(), claims, complaintID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, complaint)
	}
}

// ListComplaints godoc
//
//	@Summary		List complaints
//	@Description	Customers get their own complaints, admins every complaint, newest first.
//	@Tags			Complaints
//	@Produce		json
//	@Success		200	{array}		models.Complaint		"Complaints"
//	@Failure		401	{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/complaints [get]
func (h *ComplaintHandler) ListComplaints() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		complaints, err := h.complaintService.ListComplaints(r.Context(), claims)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, complaints)
	}
}

// UpdateComplaintStatus godoc
//
//	@Summary		Update a complaint status
//	@Description	Moves a complaint to INVESTIGATING, RESOLVED or REJECTED. Admin only.
//	@Tags			Complaints
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string										true	"Complaint ID"
//	@Param			status	body		models.UpdateComplaintStatusRequest	true	"Target status"
//	@Success		200		{object}	models.Complaint		"Updated complaint"
//	@Failure		400		{object}	response.ErrorResponse		"Transition not allowed"
//	@Failure		404		{object}	response.ErrorResponse		"Complaint not found"
//	@Security		BearerAuth
//	@Router			/complaints/{id}/status [patch]
func (h *ComplaintHandler) UpdateComplaintStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		complaintID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateComplaintStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		complaint, err := h.complaintService.UpdateComplaintStatus(r.Context(), complaintID, &req)
		if err != nil {
			logger.Warn("complaint status update failed", "complaintId", complaintID.String(), "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("complaint status updated", "complaintId", complaintID.String(), "status", string(complaint.Status))
		response.Success(w, http.StatusOK, complaint)
	}
}
