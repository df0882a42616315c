package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vietcommerce/marketplace/internal/models"
)

type ComplaintService struct {
	mock.Mock
}

func (m *ComplaintService) CreateComplaint(ctx context.Context, accountID uuid.UUID, req *models.CreateComplaintRequest) (*models.Complaint, error) {
	args := m.Called(ctx, accountID, req)

	var complaint *models.Complaint
	if args.Get(0) != nil {
		complaint = args.Get(0).(*models.Complaint)
	}

	return complaint, args.Error(1)
}

func (m *ComplaintService) GetComplaint(ctx context.Context, claims *models.Claims, complaintID uuid.UUID) (*models.Complaint, error) {
	args := m.Called(ctx, claims, complaintID)

	var complaint *models.Complaint
	if args.Get(0) != nil {
		complaint = args.Get(0).(*models.Complaint)
	}

	return complaint, args.Error(1)
}

func (m *ComplaintService) ListComplaints(ctx context.Context, claims *models.Claims) ([]models.Complaint, error) {
	args := m.Called(ctx, claims)

	var complaints []models.Complaint
	if args.Get(0) != nil {
		complaints = args.Get(0).([]models.Complaint)
	}

	return complaints, args.Error(1)
}

func (m *ComplaintService) UpdateComplaintStatus(ctx context.Context, complaintID uuid.UUID, req *models.UpdateComplaintStatusRequest) (*models.Complaint, error) {
	args := m.Called(ctx, complaintID, req)

	var complaint *models.Complaint
	if args.Get(0) != nil {
		complaint = args.Get(0).(*models.Complaint)
	}

	return complaint, args.Error(1)
}
