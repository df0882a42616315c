package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	appErrors "github.com/vietcommerce/marketplace/internal/errors"
	"github.com/vietcommerce/marketplace/internal/models"
	repository "github.com/vietcommerce/marketplace/internal/repositories"
)

type ComplaintService interface {
	CreateComplaint(ctx context.Context, accountID uuid.UUID, req *models.CreateComplaintRequest) (*models.Complaint, error)
	GetComplaint(ctx context.Context, claims *models.Claims, complaintID uuid.UUID) (*models.Complaint, error)
	ListComplaints(ctx context.Context, claims *models.Claims) ([]models.Complaint, error)
	UpdateComplaintStatus(ctx context.Context, complaintID uuid.UUID, req *models.UpdateComplaintStatusRequest) (*models.Complaint, error)
}

type complaintService struct {
	complaintRepo repository.ComplaintRepository
	orderRepo     repository.OrderRepository
	customerRepo  repository.CustomerRepository
	sanitizer     *bluemonday.Policy
}

func NewComplaintService(complaintRepo repository.ComplaintRepository, orderRepo repository.OrderRepository, customerRepo repository.CustomerRepository) ComplaintService {
	return &complaintService{
		complaintRepo: complaintRepo,
		orderRepo:     orderRepo,
		customerRepo:  customerRepo,
		sanitizer:     bluemonday.UGCPolicy(),
	}
}

func (s *complaintService) customer(ctx context.Context, accountID uuid.UUID) (*models.Customer, error) {

	customer, err := s.customerRepo.GetCustomerByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Customer profile not found")
		}

		return nil, appErrors.DatabaseError("Failed to load customer profile").WithError(err)
	}

	return customer, nil
}

// CreateComplaint files a complaint against the caller's own order.
func (s *complaintService) CreateComplaint(ctx context.Context, accountID uuid.UUID, req *models.CreateComplaintRequest) (*models.Complaint, error) {

	customer, err := s.customer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found")
		}

		return nil, appErrors.DatabaseError("Failed to load order").WithError(err)
	}

	if order.CustomerID != customer.ID {
		return nil, appErrors.ForbiddenError("Order belongs to another customer")
	}

	complaint := &models.Complaint{
		ID:         uuid.New(),
		OrderID:    req.OrderID,
		CustomerID: customer.ID,
		Content:    s.sanitizer.Sanitize(req.Content),
		Evidence:   req.Evidence,
		Status:     models.ComplaintStatusPending,
	}

	if err := s.complaintRepo.CreateComplaint(ctx, complaint); err != nil {
		return nil, appErrors.DatabaseError("Failed to create complaint").WithError(err)
	}

	return complaint, nil
}

func (s *complaintService) GetComplaint(ctx context.Context, claims *models.Claims, complaintID uuid.UUID) (*models.Complaint, error) {

	complaint, err := s.complaintRepo.GetComplaintByID(ctx, complaintID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Complaint not found")
		}

		return nil, appErrors.DatabaseError("Failed to load complaint").WithError(err)
	}

	if claims.Role == models.RoleAdmin {
		return complaint, nil
	}

	customer, err := s.customer(ctx, claims.AccountID)
	if err != nil {
		return nil, err
	}

	if complaint.CustomerID != customer.ID {
		return nil, appErrors.ForbiddenError("Complaint belongs to another customer")
	}

	return complaint, nil
}

func (s *complaintService) ListComplaints(ctx context.Context, claims *models.Claims) ([]models.Complaint, error) {

	if claims.Role == models.RoleAdmin {

		complaints, err := s.complaintRepo.ListComplaints(ctx)
		if err != nil {
			return nil, appErrors.DatabaseError("Failed to list complaints").WithError(err)
		}

		return complaints, nil
	}

	customer, err := s.customer(ctx, claims.AccountID)
	if err != nil {
		return nil, err
	}

	complaints, err := s.complaintRepo.ListComplaintsByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list complaints").WithError(err)
	}

	return complaints, nil
}

func (s *complaintService) UpdateComplaintStatus(ctx context.Context, complaintID uuid.UUID, req *models.UpdateComplaintStatusRequest) (*models.Complaint, error) {

	complaint, err := s.complaintRepo.GetComplaintByID(ctx, complaintID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Complaint not found")
		}

		return nil, appErrors.DatabaseError("Failed to load complaint").WithError(err)
	}

	if !complaint.Status.CanTransitionTo(req.Status) {
		return nil, appErrors.BadRequestError(
			fmt.Sprintf("Complaint cannot move from %s to %s", complaint.Status, req.Status))
	}

	resolution := s.sanitizer.Sanitize(req.Resolution)

	if err := s.complaintRepo.UpdateComplaintStatus(ctx, complaintID, req.Status, resolution); err != nil {
		return nil, appErrors.DatabaseError("Failed to update complaint status").WithError(err)
	}

	complaint.Status = req.Status
	complaint.Resolution = resolution

	return complaint, nil
}
